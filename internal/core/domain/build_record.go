package domain

import "time"

// BuildRecord is the persisted summary of the most recent execution of a phase.
type BuildRecord struct {
	Phase       Phase     `json:"phase"`
	ExitCode    int       `json:"exit_code"`
	Succeeded   bool      `json:"succeeded"`
	SourceCount int       `json:"source_count,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}

// PhaseStatus summarizes a phase's last recorded outcome.
type PhaseStatus string

const (
	// PhaseStatusNeverRun indicates no record exists for the phase.
	PhaseStatusNeverRun PhaseStatus = "never run"
	// PhaseStatusSucceeded indicates the phase exited with status 0.
	PhaseStatusSucceeded PhaseStatus = "succeeded"
	// PhaseStatusFailed indicates the phase exited with status 1 and aborted the build.
	PhaseStatusFailed PhaseStatus = "failed"
	// PhaseStatusTolerated indicates a non-zero status other than 1, which does not abort.
	PhaseStatusTolerated PhaseStatus = "exited non-zero"
)

// NewBuildRecord summarizes a process result for persistence.
func NewBuildRecord(phase Phase, result *ProcessResult, at time.Time) BuildRecord {
	return BuildRecord{
		Phase:     phase,
		ExitCode:  result.ExitCode,
		Succeeded: result.Succeeded(),
		Timestamp: at,
	}
}

// Status derives the phase status from a possibly nil record.
func (r *BuildRecord) Status() PhaseStatus {
	switch {
	case r == nil:
		return PhaseStatusNeverRun
	case r.ExitCode == 0:
		return PhaseStatusSucceeded
	case r.ExitCode == 1:
		return PhaseStatusFailed
	default:
		return PhaseStatusTolerated
	}
}
