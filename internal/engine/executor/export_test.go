package executor

import "go.trai.ch/winbuild/internal/core/domain"

// GetJobStatuses returns a copy of the job statuses of the last Execute call.
// This is exported for testing purposes only.
func (e *Executor) GetJobStatuses() []domain.JobStatus {
	e.mu.RLock()
	defer e.mu.RUnlock()

	statuses := make([]domain.JobStatus, len(e.jobStatus))
	copy(statuses, e.jobStatus)
	return statuses
}
