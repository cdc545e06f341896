package ports

import (
	"context"
	"io"

	"go.trai.ch/cbuild/internal/core/domain"
)

// Invoker defines the interface for running external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type Invoker interface {
	// Invoke spawns the process and blocks until it terminates.
	//
	// Output is captured per stream and also copied to stdout and stderr when
	// they are non-nil. A non-zero exit status is not an error: it is reported
	// through the returned result. An error is returned only when the process
	// could not be started or its output could not be read.
	Invoke(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) (*domain.ProcessResult, error)
}

// Reporter defines the interface for presenting the outcome of a phase.
type Reporter interface {
	// Report prints the success or failure line followed by the captured
	// streams that are non-empty.
	Report(phase domain.Phase, result *domain.ProcessResult)
}
