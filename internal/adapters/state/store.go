// Package state persists the most recent build record of each phase.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildRecordStore = (*Store)(nil)

// Store implements ports.BuildRecordStore using a flat JSON file keyed by phase.
type Store struct {
	path    string
	mu      sync.RWMutex
	records map[domain.Phase]domain.BuildRecord
}

// NewStore opens the store backed by the file at path. A missing file is an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:    filepath.Clean(path),
		records: make(map[domain.Phase]domain.BuildRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Open adapts NewStore to ports.BuildRecordStoreFactory.
func Open(path string) (ports.BuildRecordStore, error) {
	return NewStore(path)
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.records); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}

	return nil
}

// saveLocked writes all records to disk. Must be called with s.mu held.
func (s *Store) saveLocked() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the last record of the given phase.
func (s *Store) Get(phase domain.Phase) (*domain.BuildRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[phase]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record and saves the store to disk.
func (s *Store) Put(record domain.BuildRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.Phase] = record
	return s.saveLocked()
}
