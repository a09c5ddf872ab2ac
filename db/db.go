package db

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/guitarlab/tabcheck/sweep"
)

const tableName = "tabcheck-runs"

func endpoint() string {
	if ep := os.Getenv("TABCHECK_DYNAMO_ENDPOINT"); ep != "" {
		return ep
	}
	return "http://localhost:8000"
}

// PersistRun writes a sweep run to DynamoDB: one summary item plus one item
// per failing combination, all keyed by the run id.
func PersistRun(runID string, results []sweep.Result) error {
	ep := endpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &ep,
	})
	if err != nil {
		return fmt.Errorf("could not create DynamoDB session: %w", err)
	}
	client := dynamodb.New(sess)

	var passed int
	for _, r := range results {
		if r.Verdict.Passed {
			passed++
		}
	}

	summary := map[string]*dynamodb.AttributeValue{
		"PK":     {S: aws.String(runID)},
		"SK":     {S: aws.String("summary")},
		"Total":  {N: aws.String(strconv.Itoa(len(results)))},
		"Passed": {N: aws.String(strconv.Itoa(passed))},
		"Failed": {N: aws.String(strconv.Itoa(len(results) - passed))},
	}
	if _, err := client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      summary,
	}); err != nil {
		return fmt.Errorf("could not write run summary: %w", err)
	}

	for _, r := range results {
		if r.Verdict.Passed {
			continue
		}
		var errStrings []*dynamodb.AttributeValue
		for _, e := range r.Verdict.Errors {
			errStrings = append(errStrings, &dynamodb.AttributeValue{S: aws.String(e.String())})
		}
		item := map[string]*dynamodb.AttributeValue{
			"PK":     {S: aws.String(runID)},
			"SK":     {S: aws.String(r.Params.String())},
			"Errors": {L: errStrings},
		}
		if _, err := client.PutItem(&dynamodb.PutItemInput{
			TableName: aws.String(tableName),
			Item:      item,
		}); err != nil {
			return fmt.Errorf("could not write result for %s: %w", r.Params, err)
		}
	}

	return nil
}
