package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/ui/output"
	"go.trai.ch/cbuild/internal/ui/style"
)

// SourceState describes the current sources relative to the last compile.
type SourceState string

const (
	// SourcesUnknown means no comparison was possible.
	SourcesUnknown SourceState = "unknown"
	// SourcesUnchanged means the fingerprint matches the last compile.
	SourcesUnchanged SourceState = "unchanged since last compile"
	// SourcesChanged means the fingerprint differs from the last compile.
	SourcesChanged SourceState = "changed since last compile"
)

// Status summarizes the recorded build state of a root.
type Status struct {
	Records map[domain.Phase]*domain.BuildRecord
	Sources SourceState
}

// Status loads the last record of each phase and compares the current sources
// with the fingerprint of the last compile.
func (a *App) Status(ctx context.Context, opts RunOptions) (*Status, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	store, err := a.openStore(cfg.ResolveStatePath())
	if err != nil {
		return nil, err
	}

	status := &Status{
		Records: make(map[domain.Phase]*domain.BuildRecord, 2),
		Sources: SourcesUnknown,
	}
	for _, phase := range []domain.Phase{domain.PhaseCompile, domain.PhaseRun} {
		record, err := store.Get(phase)
		if err != nil {
			return nil, err
		}
		status.Records[phase] = record
	}

	compiled := status.Records[domain.PhaseCompile]
	if compiled == nil || compiled.Fingerprint == "" {
		return status, nil
	}

	// Same root resolution as the compile phase, so the fingerprints are comparable.
	discovery := cfg.Discovery
	discovery.Quiet = true
	if discovery.Root, err = discovery.AbsoluteRoot(); err != nil {
		return nil, err
	}

	sources, err := a.discoverer.Discover(ctx, discovery)
	if err != nil {
		return nil, err
	}
	current, err := a.fingerprinter.Fingerprint(sources)
	if err != nil {
		return nil, err
	}

	status.Sources = SourcesChanged
	if current == compiled.Fingerprint {
		status.Sources = SourcesUnchanged
	}

	return status, nil
}

// Render writes the status as one line per phase followed by the source state.
func (s *Status) Render(w io.Writer) {
	out := output.New(w, output.Detected)

	for _, phase := range []domain.Phase{domain.PhaseCompile, domain.PhaseRun} {
		record := s.Records[phase]
		state := record.Status()

		mark := style.ForStatus(state)
		icon := output.Paint(out, mark.Icon, mark.Color)

		line := fmt.Sprintf("%s %-8s %s", icon, phase.String(), state)
		if record != nil {
			line += fmt.Sprintf(" (exit %d", record.ExitCode)
			if record.SourceCount > 0 {
				line += fmt.Sprintf(", %d sources", record.SourceCount)
			}
			if !record.Timestamp.IsZero() {
				line += ", " + record.Timestamp.Format(time.RFC3339)
			}
			line += ")"
		}
		_, _ = fmt.Fprintln(w, line)
	}

	_, _ = fmt.Fprintf(w, "%s sources  %s\n", out.String(style.Dot).Faint(), s.Sources)
}
