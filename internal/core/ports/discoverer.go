// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cbuild/internal/core/domain"
)

// Discoverer defines the interface for locating source files.
//
//go:generate go run go.uber.org/mock/mockgen -source=discoverer.go -destination=mocks/mock_discoverer.go -package=mocks
type Discoverer interface {
	// Discover walks cfg.Root recursively and returns every regular file whose
	// path ends with cfg.Extension, in directory listing order.
	//
	// Any file system error aborts the walk and is returned.
	Discover(ctx context.Context, cfg domain.DiscoveryConfig) (domain.SourceFileSet, error)
}

// Fingerprinter defines the interface for summarizing a source set.
type Fingerprinter interface {
	// Fingerprint returns a digest over the paths and contents of the set.
	Fingerprint(sources domain.SourceFileSet) (string, error)
}
