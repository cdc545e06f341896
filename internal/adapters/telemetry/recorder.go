// Package telemetry records build phases as progrock vertices.
package telemetry

import (
	"context"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock recorder.
// Warnings noted on a vertex and phases interrupted by Close are also
// reported through the logger, since the tape itself is not displayed.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	logger ports.Logger

	mu   sync.Mutex
	open map[*Vertex]struct{}
}

// New creates a Recorder writing to an in-memory tape.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(progrock.NewTape(), logger)
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer, logger ports.Logger) *Recorder {
	return &Recorder{
		w:      w,
		rec:    progrock.NewRecorder(w),
		logger: logger,
		open:   make(map[*Vertex]struct{}),
	}
}

// Record starts a vertex named after the phase and returns a context carrying it.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &Vertex{
		name:   name,
		vertex: r.rec.Vertex(digest.FromString(name), name),
		logger: r.logger,
		done:   r.forget,
	}

	r.mu.Lock()
	r.open[v] = struct{}{}
	r.mu.Unlock()

	return ports.ContextWithVertex(ctx, v), v
}

// Close completes vertices that are still open and closes the underlying writer.
func (r *Recorder) Close() error {
	r.mu.Lock()
	pending := make([]*Vertex, 0, len(r.open))
	for v := range r.open {
		pending = append(pending, v)
	}
	r.mu.Unlock()

	for _, v := range pending {
		v.Log(domain.SeverityWarn, domain.ErrPhaseInterrupted.Error())
		v.Complete(domain.ErrPhaseInterrupted)
	}

	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func (r *Recorder) forget(v *Vertex) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.open, v)
}
