// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

// Run records one query_cmd benchmark run.
type Run struct {
	Name     string `dynamo:"name"`
	Time     int64  `dynamo:"time"` // unix nanos
	Seed     int64  `dynamo:"seed"`
	Capacity int    `dynamo:"capacity"`
	Bounds   int    `dynamo:"bounds"`
	Nodes    int    `dynamo:"nodes"`
	Queries  int    `dynamo:"queries"`
	Hits     int    `dynamo:"hits"`
	InsertNS int64  `dynamo:"insertNS"`
	QueryNS  int64  `dynamo:"queryNS"`
	Snapshot string `dynamo:"snapshot,omitempty"`
}
