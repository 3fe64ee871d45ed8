// Package planner expands resolved targets into an ordered list of build jobs.
package planner

import "go.trai.ch/winbuild/internal/core/domain"

// Planner builds the job list for a resolved target set.
type Planner struct{}

// New creates a new Planner.
func New() *Planner {
	return &Planner{}
}

// Plan returns one job per target and requested architecture, target-major.
// For targets [T1, T2] and architectures [A, B] the order is (T1,A), (T1,B), (T2,A), (T2,B).
func (p *Planner) Plan(cfg domain.BuildConfig, targets []domain.Target) []domain.BuildJob {
	archs := cfg.Request.Architectures
	jobs := make([]domain.BuildJob, 0, len(targets)*len(archs))
	for _, target := range targets {
		for _, arch := range archs {
			jobs = append(jobs, newJob(target, arch, cfg.Toolchain))
		}
	}
	return jobs
}

func newJob(target domain.Target, arch string, toolchain domain.ToolchainCapability) domain.BuildJob {
	// MSBuild 4.0 builds the store app through the vs2012 solution instead of a jsproj.
	if toolchain.IsLegacy() && (target.ID == domain.TargetStore80 || target.ID == domain.TargetStore) {
		target = domain.Solution2012Target
	}
	return domain.BuildJob{
		Target:       target,
		Architecture: domain.NormalizeArchitecture(arch),
	}
}
