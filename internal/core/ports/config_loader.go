package ports

import "go.trai.ch/cbuild/internal/core/domain"

// ConfigLoader defines the interface for resolving the effective configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, if it exists, on top of the
	// built-in defaults. A missing file is not an error unless required is set.
	Load(path string, required bool) (domain.Config, error)
}
