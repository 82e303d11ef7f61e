package logic

import (
	"slices"
	"sync"

	"advocates/internal/domain"
)

// MemoryRecordStore is an in-memory implementation of RecordStore
type MemoryRecordStore struct {
	mu      sync.RWMutex
	dataset Dataset
}

// NewMemoryRecordStore creates an empty store at generation 0
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		dataset: Dataset{Records: []domain.Advocate{}},
	}
}

func (s *MemoryRecordStore) Snapshot() Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

func (s *MemoryRecordStore) Replace(records []domain.Advocate) Dataset {
	// Copy so the caller cannot mutate the held dataset in place
	owned := slices.Clone(records)
	if owned == nil {
		owned = []domain.Advocate{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = Dataset{
		Generation: s.dataset.Generation + 1,
		Records:    owned,
	}
	return s.dataset
}
