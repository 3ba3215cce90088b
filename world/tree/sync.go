// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package tree

import (
	"github.com/SoftbearStudios/quadsat/world"
	"sync"
)

// SyncIndex is an Index that can be shared between goroutines.
// Queries run concurrently with each other but never with a mutation,
// so a subdivide or collapse is never observed half done.
type SyncIndex struct {
	mutex sync.RWMutex
	index Index
}

func NewSync(region world.AABB, capacity int) *SyncIndex {
	return &SyncIndex{index: *New(region, capacity)}
}

func (s *SyncIndex) Insert(bound world.Bound) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.index.Insert(bound)
}

func (s *SyncIndex) Remove(bound world.Bound) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.index.Remove(bound)
}

func (s *SyncIndex) Move(bound, moved world.Bound) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.index.Move(bound, moved)
}

func (s *SyncIndex) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.index.Clear()
}

func (s *SyncIndex) Query(window world.Bound) []Result {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.index.Query(window)
}

func (s *SyncIndex) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.index.Count()
}

func (s *SyncIndex) Bounds() []world.Bound {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.index.Bounds()
}

func (s *SyncIndex) MarshalJSON() ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.index.MarshalJSON()
}

// UnmarshalJSON replaces the index with a snapshot, see Index.UnmarshalJSON.
func (s *SyncIndex) UnmarshalJSON(data []byte) error {
	var index Index
	if err := index.UnmarshalJSON(data); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.index = index
	return nil
}
