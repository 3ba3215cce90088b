// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

// Filesystem stores index snapshots.
type Filesystem interface {
	WriteFile(filename string, data []byte) error
}
