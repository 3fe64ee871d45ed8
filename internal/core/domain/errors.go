package domain

import "go.trai.ch/zerr"

var (
	// ErrConflictingOptions is returned when mutually exclusive build flags are set together.
	ErrConflictingOptions = zerr.New("conflicting options")

	// ErrNotAProject is returned when the working directory is not a scaffolded platform project.
	ErrNotAProject = zerr.New("could not find project")

	// ErrUnsupportedTargetVersion is returned when a declared target version has no known build target.
	ErrUnsupportedTargetVersion = zerr.New("unsupported target version")

	// ErrToolchainNotFound is returned when no compatible MSBuild tools are installed.
	ErrToolchainNotFound = zerr.New("MSBuild tools not found")

	// ErrInvalidToolchainVersion is returned when a toolchain version string cannot be parsed.
	ErrInvalidToolchainVersion = zerr.New("invalid toolchain version")

	// ErrJobFailed is returned when a native build invocation exits unsuccessfully.
	ErrJobFailed = zerr.New("build job failed")

	// ErrPlatformConfigNotFound is returned when the ApplyPlatformConfig script is missing.
	ErrPlatformConfigNotFound = zerr.New("platform config script not found")
)

// JobError reports the build job whose invocation failed.
// It matches both ErrJobFailed and the underlying cause with errors.Is.
type JobError struct {
	Job BuildJob
	Err error
}

func (e *JobError) Error() string {
	return ErrJobFailed.Error() + ": " + e.Job.String() + ": " + e.Err.Error()
}

// Unwrap returns the sentinel and the underlying cause.
func (e *JobError) Unwrap() []error {
	return []error{ErrJobFailed, e.Err}
}
