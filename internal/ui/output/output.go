// Package output creates the termenv outputs cbuild writes reports and logs through.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Profile picks the colour profile for an output.
type Profile func() termenv.Profile

// NoColor reports whether the NO_COLOR convention asks for plain output.
func NoColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

// Detected uses the capabilities advertised by the environment.
// Logs and the status view are drawn with it.
func Detected() termenv.Profile {
	if NoColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ANSI forces the 16 colour palette. Phase reports use it since they are
// usually read back from CI logs rather than a terminal.
func ANSI() termenv.Profile {
	if NoColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New returns an output over w, or over os.Stdout when w is nil.
func New(w io.Writer, profile Profile) *termenv.Output {
	if w == nil {
		w = os.Stdout
	}
	return termenv.NewOutput(w, termenv.WithProfile(profile()), termenv.WithTTY(true))
}

// Paint renders s in c, degraded to whatever out's profile supports.
func Paint(out *termenv.Output, s string, c lipgloss.Color) termenv.Style {
	return out.String(s).Foreground(out.Color(string(c)))
}
