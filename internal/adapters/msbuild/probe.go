// Package msbuild locates the MSBuild tools and drives native project builds.
package msbuild

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/winbuild/internal/core/domain"
	"go.trai.ch/winbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

const toolsVersionsKey = `HKLM\SOFTWARE\Microsoft\MSBuild\ToolsVersions\`

var toolsPathPattern = regexp.MustCompile(`(?i)MSBuildToolsPath\s+REG_SZ\s+(.*)`)

// Probe implements ports.ToolchainProbe by querying the Windows registry.
type Probe struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewProbe creates a new Probe.
func NewProbe(runner ports.CommandRunner, logger ports.Logger) *Probe {
	return &Probe{runner: runner, logger: logger}
}

// Detect returns the newest installed MSBuild tools version from the candidates in settings.
// A version and path pinned in settings are returned without querying the registry.
func (p *Probe) Detect(ctx context.Context, settings *domain.Settings) (domain.ToolchainCapability, error) {
	if settings == nil {
		settings = domain.DefaultSettings()
	}

	if settings.ToolchainVersion != "" && settings.ToolchainPath != "" {
		return domain.NewToolchainCapability(settings.ToolchainVersion, settings.ToolchainPath)
	}

	candidates := settings.ToolchainVersions
	if settings.ToolchainVersion != "" {
		candidates = []string{settings.ToolchainVersion}
	}

	versions, err := newestFirst(candidates)
	if err != nil {
		return domain.ToolchainCapability{}, err
	}

	for _, version := range versions {
		path, ok := p.query(ctx, version)
		if !ok {
			continue
		}
		return domain.NewToolchainCapability(version, path)
	}

	return domain.ToolchainCapability{}, zerr.With(
		zerr.Wrap(domain.ErrToolchainNotFound, "no MSBuild tools version is installed"),
		"versions", strings.Join(versions, ","),
	)
}

func (p *Probe) query(ctx context.Context, version string) (string, bool) {
	out, err := p.runner.Output(ctx, domain.Command{
		Name: "reg",
		Args: []string{"query", toolsVersionsKey + version, "/v", "MSBuildToolsPath"},
	})
	if err != nil {
		p.logger.Debug("MSBuild tools " + version + " not found")
		return "", false
	}

	match := toolsPathPattern.FindStringSubmatch(out)
	if match == nil {
		return "", false
	}
	path := strings.TrimSpace(match[1])
	return path, path != ""
}

// newestFirst orders MSBuild tools versions by their numeric value, newest first.
func newestFirst(versions []string) ([]string, error) {
	parsed := make([]*semver.Version, 0, len(versions))
	raw := make(map[*semver.Version]string, len(versions))
	for _, v := range versions {
		sv, err := semver.NewVersion(v)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidToolchainVersion, err.Error()), "version", v)
		}
		parsed = append(parsed, sv)
		raw[sv] = v
	}

	sort.Sort(sort.Reverse(semver.Collection(parsed)))

	ordered := make([]string, len(parsed))
	for i, sv := range parsed {
		ordered[i] = raw[sv]
	}
	return ordered, nil
}
