package ports

import "go.trai.ch/cbuild/internal/core/domain"

// BuildRecordStore defines the interface for storing and retrieving build records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get retrieves the last record of the given phase.
	// Returns nil, nil if not found.
	Get(phase domain.Phase) (*domain.BuildRecord, error)

	// Put stores the record, replacing the previous one for its phase.
	Put(record domain.BuildRecord) error
}

// BuildRecordStoreFactory opens the store located at path.
type BuildRecordStoreFactory func(path string) (BuildRecordStore, error)
