// Package style holds the palette and icons shared by phase reports, the
// status view and the pretty log handler.
package style

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cbuild/internal/core/domain"
)

// Palette.
var (
	// Muted is used for informational log lines and phases that never ran.
	Muted = lipgloss.Color("#667085")
	// Success marks exit status 0.
	Success = lipgloss.Color("#22A06B")
	// Failure marks exit status 1 and errors.
	Failure = lipgloss.Color("#D93025")
	// Caution marks warnings, stderr output and tolerated exit codes.
	Caution = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Mark is an icon together with the colour it is drawn in.
type Mark struct {
	Icon  string
	Color lipgloss.Color
}

// ForStatus returns the mark shown next to a phase in the status view.
func ForStatus(status domain.PhaseStatus) Mark {
	switch status {
	case domain.PhaseStatusSucceeded:
		return Mark{Icon: Check, Color: Success}
	case domain.PhaseStatusFailed:
		return Mark{Icon: Cross, Color: Failure}
	case domain.PhaseStatusTolerated:
		return Mark{Icon: Warning, Color: Caution}
	default:
		return Mark{Icon: Circle, Color: Muted}
	}
}

// ForLevel returns the mark prefixed to log lines. Levels below warn have no icon.
func ForLevel(level slog.Level) Mark {
	switch {
	case level >= slog.LevelError:
		return Mark{Icon: Cross, Color: Failure}
	case level >= slog.LevelWarn:
		return Mark{Icon: Warning, Color: Caution}
	default:
		return Mark{Color: Muted}
	}
}

// Outcome returns the status word and colour of a finished phase.
func Outcome(result *domain.ProcessResult) (string, lipgloss.Color) {
	if result.Succeeded() {
		return "Successful", Success
	}
	return "Failure", Failure
}
