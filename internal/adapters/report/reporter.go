// Package report prints the outcome of each build phase to the terminal.
package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/cbuild/internal/ui/output"
	"go.trai.ch/cbuild/internal/ui/style"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter with a plain, line-oriented layout.
type Reporter struct {
	mu     sync.Mutex
	w      io.Writer
	output *termenv.Output
}

// NewReporter creates a Reporter writing to w. A nil writer means os.Stdout.
func NewReporter(w io.Writer) *Reporter {
	out := output.New(w, output.ANSI)
	return &Reporter{
		w:      out,
		output: out,
	}
}

// Report prints the status line followed by the non-empty captured streams:
//
//	<Label> Successful|Failure
//	Response:
//	<stdout>
//	Errors and warnings:
//	<stderr>
func (r *Reporter) Report(phase domain.Phase, result *domain.ProcessResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if result == nil {
		return
	}

	word, color := style.Outcome(result)
	status := output.Paint(r.output, word, color)
	_, _ = fmt.Fprintf(r.w, "\n%s %s\n\n", phase.Label(), status)

	if result.Stdout != "" {
		_, _ = fmt.Fprintf(r.w, "Response: \n%s \n\n", result.Stdout)
	}
	if result.Stderr != "" {
		label := output.Paint(r.output, "Errors and warnings:", style.Caution)
		_, _ = fmt.Fprintf(r.w, "%s \n%s \n\n", label, result.Stderr)
	}
}
