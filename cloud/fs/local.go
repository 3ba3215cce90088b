// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package fs

import (
	"os"
	"path/filepath"
)

// LocalFilesystem writes files under a directory, creating it if needed.
type LocalFilesystem struct {
	dir string
}

func NewLocalFilesystem(dir string) *LocalFilesystem {
	return &LocalFilesystem{dir: dir}
}

func (local *LocalFilesystem) WriteFile(filename string, data []byte) error {
	path := filepath.Join(local.dir, filepath.FromSlash(filename))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
