// Package config provides the configuration loader for cbuild.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load returns the built-in defaults overlaid with the settings found in the file at path.
// The result is not validated, as command line overrides still apply on top of it.
func (l *Loader) Load(path string, required bool) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	file, err := parse(data)
	if err != nil {
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	apply(&cfg, file)

	return cfg, nil
}

// parse decodes data strictly, rejecting keys the schema does not know.
func parse(data []byte) (File, error) {
	var file File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}

	return file, nil
}

func apply(cfg *domain.Config, file File) {
	if file.Root != nil {
		cfg.Discovery.Root = *file.Root
	}
	if file.Extension != nil {
		cfg.Discovery.Extension = *file.Extension
	}
	if file.Ignore != nil {
		cfg.Discovery.Ignore = file.Ignore
	}
	if file.Compiler != nil {
		cfg.Invocation.Compiler = *file.Compiler
	}
	if file.Flags != nil {
		cfg.Invocation.Flags = file.Flags
	}
	if file.Binary != nil {
		cfg.Invocation.Binary = *file.Binary
	}
	if file.State != nil {
		cfg.StatePath = *file.State
	}
}
