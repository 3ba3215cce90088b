// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"testing"
)

type fakeDynamoDB struct {
	dynamodbiface.DynamoDBAPI
	items []map[string]*dynamodb.AttributeValue
}

func (f *fakeDynamoDB) PutItemWithContext(_ aws.Context, input *dynamodb.PutItemInput, _ ...request.Option) (*dynamodb.PutItemOutput, error) {
	f.items = append(f.items, input.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoDB) QueryWithContext(_ aws.Context, input *dynamodb.QueryInput, _ ...request.Option) (*dynamodb.QueryOutput, error) {
	return &dynamodb.QueryOutput{
		Items: f.items,
		Count: aws.Int64(int64(len(f.items))),
	}, nil
}

func (f *fakeDynamoDB) ScanWithContext(_ aws.Context, _ *dynamodb.ScanInput, _ ...request.Option) (*dynamodb.ScanOutput, error) {
	return &dynamodb.ScanOutput{
		Items:        f.items,
		Count:        aws.Int64(int64(len(f.items))),
		ScannedCount: aws.Int64(int64(len(f.items))),
	}, nil
}

func TestDynamoDBDatabase_runs(t *testing.T) {
	fake := &fakeDynamoDB{}
	var database Database = NewDynamoDBDatabaseFromIface(fake, "quadsat-runs")

	run := Run{Name: "default", Time: 1, Capacity: 5, Bounds: 1000, Nodes: 85, Queries: 10, Hits: 42}
	if err := database.PutRun(run); err != nil {
		t.Fatal(err)
	}

	if len(fake.items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(fake.items))
	}
	if name := fake.items[0]["name"]; name == nil || aws.StringValue(name.S) != "default" {
		t.Errorf("unexpected name attribute %v", name)
	}
	if _, ok := fake.items[0]["snapshot"]; ok {
		t.Error("expected empty snapshot to be omitted")
	}

	runs, err := database.ReadRunsByName("default")
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0] != run {
		t.Errorf("expected %+v, got %+v", run, runs)
	}

	other := Run{Name: "large", Time: 2, Capacity: 8, Bounds: 100000, Snapshot: "large-1.json"}
	if err := database.PutRun(other); err != nil {
		t.Fatal(err)
	}

	runs, err = database.ReadRuns()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 || runs[0] != run || runs[1] != other {
		t.Errorf("expected %+v and %+v, got %+v", run, other, runs)
	}
}
