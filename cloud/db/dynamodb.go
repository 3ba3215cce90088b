// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/guregu/dynamo"
)

type DynamoDBDatabase struct {
	db        *dynamo.DB
	runsTable dynamo.Table
}

func NewDynamoDBDatabase(session *session.Session, table string) (*DynamoDBDatabase, error) {
	return NewDynamoDBDatabaseFromIface(dynamodb.New(session), table), nil
}

// NewDynamoDBDatabaseFromIface is for swapping out the client in tests.
func NewDynamoDBDatabaseFromIface(svc dynamodbiface.DynamoDBAPI, table string) *DynamoDBDatabase {
	ddb := &DynamoDBDatabase{db: dynamo.NewFromIface(svc)}
	ddb.runsTable = ddb.db.Table(table)
	return ddb
}

func (ddb *DynamoDBDatabase) PutRun(run Run) error {
	return ddb.runsTable.Put(run).Run()
}

func (ddb *DynamoDBDatabase) ReadRuns() (runs []Run, err error) {
	err = ddb.runsTable.Scan().All(&runs)
	return
}

func (ddb *DynamoDBDatabase) ReadRunsByName(name string) (runs []Run, err error) {
	query := ddb.runsTable.Get("name", name).Iter()

	for {
		var run Run
		if !query.Next(&run) {
			err = query.Err()
			return
		}
		runs = append(runs, run)
	}
}
