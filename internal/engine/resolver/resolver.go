// Package resolver maps declared platform target versions to build targets.
package resolver

import (
	"strings"

	"go.trai.ch/winbuild/internal/core/domain"
	"go.trai.ch/winbuild/internal/core/ports"
)

// Resolver turns a build request and the project preferences into the set of targets to build.
type Resolver struct {
	logger ports.Logger
}

// New creates a new Resolver.
func New(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve returns the targets for the request's scope, store targets first.
// An unrecognized target version fails the whole resolution. Targets the toolchain
// cannot build are dropped with a warning; an empty result is not an error.
func (r *Resolver) Resolve(cfg domain.BuildConfig, prefs ports.PreferenceSource) (domain.ResolvedTargetSet, error) {
	var targets []domain.Target
	req := cfg.Request

	if req.Scope.IncludesStore() {
		value, _ := prefs.Get(domain.PreferenceStoreTargetVersion)
		version, err := domain.ParseStoreTargetVersion(value)
		if err != nil {
			return domain.ResolvedTargetSet{}, err
		}
		target, _ := version.Target()
		targets = append(targets, target)
	}

	if req.Scope.IncludesPhone() {
		value, _ := prefs.Get(domain.PreferencePhoneTargetVersion)
		version, err := domain.ParsePhoneTargetVersion(value)
		if err != nil {
			return domain.ResolvedTargetSet{}, err
		}
		target, _ := version.Target()
		targets = append(targets, target)
	}

	return r.filterSupported(targets, cfg.Toolchain), nil
}

func (r *Resolver) filterSupported(targets []domain.Target, toolchain domain.ToolchainCapability) domain.ResolvedTargetSet {
	// Resolve always yields a target or an error today; the check guards future scopes.
	if len(targets) == 0 {
		r.logger.Warn("No build targets are specified.")
		return domain.ResolvedTargetSet{}
	}

	if !toolchain.IsLegacy() {
		return domain.ResolvedTargetSet{Targets: targets}
	}

	var set domain.ResolvedTargetSet
	for _, t := range targets {
		if t.RequiresModernToolchain {
			set.Skipped = append(set.Skipped, t)
			continue
		}
		set.Targets = append(set.Targets, t)
	}

	if set.Degraded() {
		names := make([]string, len(set.Skipped))
		for i, t := range set.Skipped {
			names[i] = t.File
		}
		r.logger.Warn("Windows 8.1 and Windows Phone 8.1 target platforms are not supported on this " +
			"development machine and will be skipped: " + strings.Join(names, ", "))
		r.logger.Warn("Please install OS Windows 8.1 and Visual Studio 2013 Update2 in order to build " +
			"for Windows 8.1 and Windows Phone 8.1.")
	}
	return set
}
