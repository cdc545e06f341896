package domain

import "go.trai.ch/zerr"

// Phase identifies one step of a build invocation.
type Phase string

const (
	// PhaseCompile invokes the compiler on the discovered sources.
	PhaseCompile Phase = "compile"
	// PhaseRun executes the binary produced by the compile phase.
	PhaseRun Phase = "run"
)

// phaseOrder is the fixed execution order, independent of how phases were requested.
var phaseOrder = []Phase{PhaseCompile, PhaseRun}

// String returns the command token of the phase.
func (p Phase) String() string {
	return string(p)
}

// Label returns the human-readable name used in reports.
func (p Phase) Label() string {
	switch p {
	case PhaseCompile:
		return "Compilation"
	case PhaseRun:
		return "Run"
	default:
		return string(p)
	}
}

// Failure returns the error raised when the phase's process exits with status 1.
func (p Phase) Failure() error {
	switch p {
	case PhaseCompile:
		return ErrCompilationFailed
	case PhaseRun:
		return ErrRunFailed
	default:
		return zerr.With(ErrUnknownPhase, "phase", string(p))
	}
}

// ParsePhase converts a command token into a Phase.
// Matching is exact, as tokens are compared by set membership.
func ParsePhase(token string) (Phase, bool) {
	switch Phase(token) {
	case PhaseCompile, PhaseRun:
		return Phase(token), true
	default:
		return "", false
	}
}

// PhasesFromTokens returns the requested phases in execution order together with
// any tokens that were not recognized. Duplicates and token order are ignored.
func PhasesFromTokens(tokens []string) ([]Phase, []string) {
	requested := make(map[Phase]struct{}, len(phaseOrder))
	var unknown []string

	for _, token := range tokens {
		phase, ok := ParsePhase(token)
		if !ok {
			unknown = append(unknown, token)
			continue
		}
		requested[phase] = struct{}{}
	}

	phases := make([]Phase, 0, len(requested))
	for _, phase := range phaseOrder {
		if _, ok := requested[phase]; ok {
			phases = append(phases, phase)
		}
	}
	return phases, unknown
}
