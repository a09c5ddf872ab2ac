// Package client talks to the external tab generator. It returns producer
// responses verbatim and never retries; retry policy belongs to callers.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/guitarlab/tabcheck/model"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Generate requests a tab for one combination. Non-200 statuses are data in
// the result, not errors; only transport failures and malformed success
// bodies return an error.
func (c *Client) Generate(ctx context.Context, p model.Params) (model.ProducerResult, error) {
	var res model.ProducerResult

	body, err := json.Marshal(p)
	if err != nil {
		return res, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate-tab", bytes.NewReader(body))
	if err != nil {
		return res, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return res, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return res, err
	}

	res.Status = resp.StatusCode
	if resp.StatusCode == http.StatusOK {
		var gr model.GenerateResponse
		if err := json.Unmarshal(data, &gr); err != nil {
			return res, fmt.Errorf("malformed generate response: %w", err)
		}
		res.Tab = gr.Tab
		return res, nil
	}

	var er model.ErrorResponse
	if json.Unmarshal(data, &er) == nil && er.Detail != "" {
		res.Detail = er.Detail
	} else {
		res.Detail = strings.TrimSpace(string(data))
	}
	return res, nil
}

// Scales fetches the scale names the producer offers.
func (c *Client) Scales(ctx context.Context) ([]string, error) {
	var sr model.ScalesResponse
	if err := c.getJSON(ctx, "/scales", &sr); err != nil {
		return nil, err
	}
	return sr.Scales, nil
}

// Patterns fetches the pattern names the producer offers.
func (c *Client) Patterns(ctx context.Context) ([]string, error) {
	var pr model.PatternsResponse
	if err := c.getJSON(ctx, "/patterns", &pr); err != nil {
		return nil, err
	}
	return pr.Patterns, nil
}

func (c *Client) getJSON(ctx context.Context, path string, into any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(into)
}
