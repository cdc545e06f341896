// Package fs provides file system adapters for discovering and fingerprinting sources.
package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Discoverer = (*Discoverer)(nil)

// Discoverer implements ports.Discoverer by walking the build root.
type Discoverer struct {
	logger ports.Logger
}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer(logger ports.Logger) *Discoverer {
	return &Discoverer{logger: logger}
}

// Discover walks cfg.Root depth first in lexical order and collects every regular
// file matching cfg.Extension. Each directory is logged as it is scanned.
// Symbolic links below the root are neither followed nor collected; a root
// that is itself a link is resolved first.
func (d *Discoverer) Discover(ctx context.Context, cfg domain.DiscoveryConfig) (domain.SourceFileSet, error) {
	root := resolveRoot(cfg.Root)

	files := domain.SourceFileSet{}

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrDiscoveryFailed.Error()), "path", path)
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if path != root && isIgnored(entry, cfg.Ignore) {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			if !cfg.Quiet {
				d.logger.Info("Scanning Directory: " + path)
			}
			return nil
		}

		if entry.Type().IsRegular() && domain.MatchesExtension(path, cfg.Extension) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func resolveRoot(root string) string {
	if root == "" {
		return domain.DefaultRoot
	}
	info, err := os.Lstat(root)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return root
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		return resolved
	}
	return root
}

// isIgnored reports whether the entry's base name matches one of the ignore patterns.
func isIgnored(entry fs.DirEntry, ignores []string) bool {
	name := entry.Name()
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
