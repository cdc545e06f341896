// Package shell provides the process invoker adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"

	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Invoker = (*Invoker)(nil)

// Invoker implements ports.Invoker using os/exec.
type Invoker struct{}

// NewInvoker creates a new Invoker.
func NewInvoker() *Invoker {
	return &Invoker{}
}

// Invoke runs the executable with its arguments in inv.Dir and waits for it to exit.
// Both streams are drained concurrently so a chatty child cannot block on a full pipe.
func (i *Invoker) Invoke(
	ctx context.Context,
	inv domain.Invocation,
	stdout, stderr io.Writer,
) (*domain.ProcessResult, error) {
	cmd := exec.CommandContext(ctx, inv.Executable, inv.Args...) //nolint:gosec // user configured command
	cmd.Dir = inv.Dir

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, startError(err, inv)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, startError(err, inv)
	}

	if err := cmd.Start(); err != nil {
		return nil, startError(err, inv)
	}

	var outBuf, errBuf bytes.Buffer
	g := new(errgroup.Group)
	g.Go(func() error { return drain(stdoutPipe, &outBuf, stdout) })
	g.Go(func() error { return drain(stderrPipe, &errBuf, stderr) })

	// Pipes must be fully read before Wait closes them.
	copyErr := g.Wait()
	waitErr := cmd.Wait()

	if copyErr != nil {
		return nil, zerr.With(
			zerr.Wrap(copyErr, domain.ErrProcessOutputFailed.Error()),
			"executable", inv.Executable,
		)
	}

	result := &domain.ProcessResult{
		Stdout: outBuf.String(),
		Stderr: errBuf.String(),
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, zerr.With(
				zerr.Wrap(waitErr, domain.ErrProcessOutputFailed.Error()),
				"executable", inv.Executable,
			)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}

// drain copies r into buf and, when sink is set, into sink as well.
func drain(r io.Reader, buf *bytes.Buffer, sink io.Writer) error {
	var w io.Writer = buf
	if sink != nil {
		w = io.MultiWriter(buf, sink)
	}
	_, err := io.Copy(w, r)
	return err
}

func startError(err error, inv domain.Invocation) error {
	err = zerr.Wrap(err, domain.ErrProcessStartFailed.Error())
	err = zerr.With(err, "executable", inv.Executable)
	return zerr.With(err, "dir", inv.Dir)
}
