// Package executor runs build jobs serially against the native toolchain.
package executor

import (
	"context"
	"path/filepath"
	"sync"

	"go.trai.ch/winbuild/internal/core/domain"
	"go.trai.ch/winbuild/internal/core/ports"
)

// Executor runs a job list one job at a time.
// MSBuild invocations share the project's output directories, so jobs never overlap.
type Executor struct {
	builder   ports.NativeBuilder
	telemetry ports.Telemetry
	logger    ports.Logger

	mu        sync.RWMutex
	jobStatus []domain.JobStatus
}

// New creates a new Executor.
func New(builder ports.NativeBuilder, telemetry ports.Telemetry, logger ports.Logger) *Executor {
	return &Executor{
		builder:   builder,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Execute builds the jobs in order. The first failing job stops the queue and its
// error is returned; jobs that already completed are left as they are.
// An empty job list succeeds without invoking MSBuild.
func (e *Executor) Execute(ctx context.Context, cfg domain.BuildConfig, jobs []domain.BuildJob) error {
	e.initJobStatuses(len(jobs))

	for i, job := range jobs {
		e.updateStatus(i, domain.JobStatusRunning)
		if err := e.run(ctx, cfg, job); err != nil {
			e.updateStatus(i, domain.JobStatusFailed)
			for j := i + 1; j < len(jobs); j++ {
				e.updateStatus(j, domain.JobStatusSkipped)
			}
			e.reportSkipped(jobs)
			return &domain.JobError{Job: job, Err: err}
		}
		e.updateStatus(i, domain.JobStatusCompleted)
	}
	return nil
}

func (e *Executor) run(ctx context.Context, cfg domain.BuildConfig, job domain.BuildJob) error {
	ctx, vertex := e.telemetry.Record(ctx, job.String())
	e.logger.Info("Building " + job.String() + " in " + string(cfg.Request.Mode) + " mode")

	file := filepath.Join(cfg.Root, job.Target.File)
	err := e.builder.Build(ctx, cfg.Toolchain, file, cfg.Request.Mode, job.Architecture)
	vertex.Complete(err)
	return err
}

// reportSkipped warns about every job abandoned after a failure.
func (e *Executor) reportSkipped(jobs []domain.BuildJob) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for i, status := range e.jobStatus {
		if status == domain.JobStatusSkipped {
			e.logger.Warn("Skipping " + jobs[i].String() + " after an earlier failure")
		}
	}
}

func (e *Executor) initJobStatuses(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.jobStatus = make([]domain.JobStatus, n)
	for i := range e.jobStatus {
		e.jobStatus[i] = domain.JobStatusPending
	}
}

func (e *Executor) updateStatus(i int, status domain.JobStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.jobStatus[i] = status
}
