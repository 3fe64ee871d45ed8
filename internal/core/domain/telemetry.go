package domain

import "strings"

// JobStatus represents the lifecycle state of a build job.
type JobStatus string

const (
	// JobStatusPending indicates the job is queued.
	JobStatusPending JobStatus = "pending"
	// JobStatusRunning indicates MSBuild is running for the job.
	JobStatusRunning JobStatus = "running"
	// JobStatusCompleted indicates the job built successfully.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusFailed indicates the job's build failed.
	JobStatusFailed JobStatus = "failed"
	// JobStatusSkipped indicates the job was abandoned after an earlier failure.
	JobStatusSkipped JobStatus = "skipped"
)

// IsTerminal checks if a status is a terminal state (Completed, Failed, Skipped).
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusSkipped:
		return true
	default:
		return false
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLogLevel converts a level name to a LogLevel, defaulting to info if unknown.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug", "verbose":
		return LogLevelDebug
	case "warn", "warning":
		return LogLevelWarn
	case "error", "silent":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}
