package telemetry

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	name   string
	vertex *progrock.VertexRecorder
	logger ports.Logger
	once   sync.Once
	done   func(*Vertex)
}

// Stdout returns a writer for the phase's standard output.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer for the phase's error output.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log records a note on the vertex. Warnings go to the error stream and
// are logged as "<phase>: <msg>".
func (v *Vertex) Log(level domain.Severity, msg string) {
	w := v.vertex.Stdout()
	if level.Diagnostic() {
		w = v.vertex.Stderr()
		if v.logger != nil {
			v.logger.Warn(v.name + ": " + msg)
		}
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex as finished. Only the first call has an effect.
func (v *Vertex) Complete(err error) {
	v.once.Do(func() {
		v.vertex.Done(err)
		if v.done != nil {
			v.done(v)
		}
	})
}
