package domain

// Severity classifies a note attached to a phase while it is recorded.
type Severity int

const (
	// SeverityInfo is a progress note, such as the number of sources found.
	SeverityInfo Severity = iota
	// SeverityWarn flags an outcome that did not fail the phase.
	SeverityWarn
)

// String returns the tag printed in front of the note.
func (s Severity) String() string {
	if s >= SeverityWarn {
		return "warn"
	}
	return "info"
}

// Diagnostic reports whether notes of this severity belong on the error stream.
func (s Severity) Diagnostic() bool {
	return s >= SeverityWarn
}
