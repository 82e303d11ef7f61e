package logic

import "advocates/internal/domain"

// Dataset is one loaded snapshot of advocates.
// Generation identifies the snapshot: a reload always produces a new one,
// so consumers can detect replacement without comparing contents.
type Dataset struct {
	Generation uint64
	Records    []domain.Advocate
}

// Len returns the number of records
func (d Dataset) Len() int {
	return len(d.Records)
}

// RecordStore provides access to the advocate dataset
type RecordStore interface {
	// Snapshot returns the dataset currently held
	Snapshot() Dataset
	// Replace swaps in a new dataset wholesale and returns it
	Replace(records []domain.Advocate) Dataset
}
