package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrCompilationFailed is raised when the compiler exits with status 1.
	ErrCompilationFailed = zerr.New("Compilation Failed")

	// ErrRunFailed is raised when the produced binary exits with status 1.
	ErrRunFailed = zerr.New("Run Failed")

	// ErrDiscoveryFailed is returned when the source tree cannot be traversed.
	ErrDiscoveryFailed = zerr.New("failed to discover source files")

	// ErrProcessStartFailed is returned when an external process cannot be spawned.
	ErrProcessStartFailed = zerr.New("failed to start process")

	// ErrProcessOutputFailed is returned when the output streams of a process cannot be read.
	ErrProcessOutputFailed = zerr.New("failed to capture process output")

	// ErrNoPhasesSpecified is returned when no recognized command token was given.
	ErrNoPhasesSpecified = zerr.New("no phases specified, expected 'compile' and/or 'run'")

	// ErrUnknownPhase is returned when a phase name is not recognized.
	ErrUnknownPhase = zerr.New("unknown phase")

	// ErrInvalidConfig is returned when the effective configuration fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFingerprintFailed is returned when the source fingerprint cannot be computed.
	ErrFingerprintFailed = zerr.New("failed to compute source fingerprint")

	// ErrPhaseInterrupted marks a phase that was still recording when telemetry closed.
	ErrPhaseInterrupted = zerr.New("phase interrupted")

	// ErrStoreReadFailed is returned when the build record store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build records")

	// ErrStoreUnmarshalFailed is returned when the build record store cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build records")

	// ErrStoreMarshalFailed is returned when the build records cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build records")

	// ErrStoreCreateFailed is returned when the build record directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build record directory")

	// ErrStoreWriteFailed is returned when the build records cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build records")
)

// IsProcessFailure reports whether err is the failure raised by a phase whose
// process exited with status 1.
func IsProcessFailure(err error) bool {
	return errors.Is(err, ErrCompilationFailed) || errors.Is(err, ErrRunFailed)
}
