package ports

import (
	"context"
	"io"

	"go.trai.ch/cbuild/internal/core/domain"
)

// Telemetry is the entry point for recording phase progress.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a new vertex and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the standard output stream.
	Stdout() io.Writer
	// Stderr returns a writer for the error output stream.
	Stderr() io.Writer
	// Log records a message associated with this vertex.
	Log(level domain.Severity, msg string)
	// Complete marks the vertex as finished, successfully if err is nil.
	Complete(err error)
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
