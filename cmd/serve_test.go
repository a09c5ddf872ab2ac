package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guitarlab/tabcheck/model"
)

const validTab = `e|-----------0---|
B|---------0-----|
G|-------0-------|
D|-----2---------|
A|---2-----------|
E|-0-------------|`

func postValidate(t *testing.T, body any) *http.Response {
	data, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/validate", bytes.NewReader(data))
	w := httptest.NewRecorder()
	HandleValidate(w, req)
	return w.Result()
}

func TestHandleValidatePass(t *testing.T) {
	resp := postValidate(t, model.ValidateRequest{
		Params: model.Params{Root: "E", Scale: "minor", Pattern: "ascending", Bars: 2},
		Tab:    validTab,
	})
	defer resp.Body.Close()

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)
	assert.Equal("application/json", resp.Header.Get("Content-Type"))

	var verdict model.Verdict
	assert.NoError(json.NewDecoder(resp.Body).Decode(&verdict))
	assert.True(verdict.Passed)
	assert.Empty(verdict.Errors)
}

func TestHandleValidateFail(t *testing.T) {
	resp := postValidate(t, model.ValidateRequest{
		Params: model.Params{Root: "E", Scale: "minor", Pattern: "ascending", Bars: 2},
		Tab:    "E|-1-|",
	})
	defer resp.Body.Close()

	assert := assert.New(t)
	assert.Equal(http.StatusOK, resp.StatusCode)

	var verdict model.Verdict
	assert.NoError(json.NewDecoder(resp.Body).Decode(&verdict))
	assert.False(verdict.Passed)

	var ks []model.ErrorKind
	for _, e := range verdict.Errors {
		ks = append(ks, e.Kind)
	}
	assert.Contains(ks, model.WrongStringCount)
	assert.Contains(ks, model.NoteOutsideScale)
}

func TestHandleValidateMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/validate", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	HandleValidate(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "malformed")
}
