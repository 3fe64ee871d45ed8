package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// DefaultArchitecture is built when no architectures are requested.
const DefaultArchitecture = "anycpu"

// BuildMode selects the MSBuild configuration.
type BuildMode string

const (
	// ModeDebug builds the Debug configuration.
	ModeDebug BuildMode = "debug"
	// ModeRelease builds the Release configuration.
	ModeRelease BuildMode = "release"
)

// PlatformScope selects which platform families are built.
type PlatformScope string

const (
	// ScopeBoth builds the store and the phone targets.
	ScopeBoth PlatformScope = "both"
	// ScopeStore builds the store target only.
	ScopeStore PlatformScope = "store"
	// ScopePhone builds the phone target only.
	ScopePhone PlatformScope = "phone"
)

// IncludesStore reports whether the scope covers the store platform.
func (s PlatformScope) IncludesStore() bool {
	return s == ScopeStore || s == ScopeBoth
}

// IncludesPhone reports whether the scope covers the phone platform.
func (s PlatformScope) IncludesPhone() bool {
	return s == ScopePhone || s == ScopeBoth
}

// BuildOptions holds the raw flag values before validation.
type BuildOptions struct {
	Debug   bool
	Release bool
	Phone   bool
	Store   bool
	Archs   string
}

// BuildRequest is a validated build intent.
type BuildRequest struct {
	Mode          BuildMode
	Scope         PlatformScope
	Architectures []string

	archsDefaulted bool
}

// NewBuildRequest validates the options and applies defaults.
// Mutually exclusive flags are rejected here, before any build work starts.
func NewBuildRequest(opts BuildOptions) (BuildRequest, error) {
	if opts.Debug && opts.Release {
		return BuildRequest{}, zerr.With(
			zerr.Wrap(ErrConflictingOptions, `only one of "debug"/"release" options should be specified`),
			"options", "debug,release")
	}
	if opts.Phone && opts.Store {
		return BuildRequest{}, zerr.With(
			zerr.Wrap(ErrConflictingOptions, `only one of "phone"/"store" options should be specified`),
			"options", "phone,store")
	}

	req := BuildRequest{
		Mode:           ModeDebug,
		Scope:          ScopeBoth,
		Architectures:  []string{DefaultArchitecture},
		archsDefaulted: true,
	}
	if opts.Release {
		req.Mode = ModeRelease
	}
	switch {
	case opts.Phone:
		req.Scope = ScopePhone
	case opts.Store:
		req.Scope = ScopeStore
	}
	if archs := ParseArchitectures(opts.Archs); len(archs) > 0 {
		req.Architectures = archs
		req.archsDefaulted = false
	}
	return req, nil
}

// WithSettings applies the project settings to the request.
// Settings architectures only replace the built-in default, never an explicit --archs.
func (r BuildRequest) WithSettings(s *Settings) BuildRequest {
	if s == nil || !r.archsDefaulted || len(s.Architectures) == 0 {
		return r
	}
	r.Architectures = append([]string(nil), s.Architectures...)
	r.archsDefaulted = false
	return r
}

// ParseArchitectures splits a space separated architecture list.
// Tokens are not validated; unknown architectures are left for MSBuild to reject.
// Duplicates are kept and built once per occurrence.
func ParseArchitectures(s string) []string {
	return strings.Fields(s)
}
