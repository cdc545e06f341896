package domain

// ProcessResult is the captured outcome of one external process execution.
type ProcessResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded reports whether the process exited with status 0.
func (r *ProcessResult) Succeeded() bool {
	return r.ExitCode == 0
}

// IsFailure reports whether the exit status is the one that aborts a build.
// Only status 1 qualifies; other non-zero statuses are reported but tolerated.
func (r *ProcessResult) IsFailure() bool {
	return r.ExitCode == 1
}

// Invocation describes a single external process to spawn.
type Invocation struct {
	Executable string
	Args       []string
	Dir        string
}
