// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

type Database interface {
	PutRun(run Run) error
	ReadRuns() (runs []Run, err error)
	ReadRunsByName(name string) (runs []Run, err error)
}
