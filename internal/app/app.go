// Package app implements the application layer for winbuild.
package app

import (
	"context"

	"go.trai.ch/winbuild/internal/core/domain"
	"go.trai.ch/winbuild/internal/core/ports"
	"go.trai.ch/winbuild/internal/engine/executor"
	"go.trai.ch/winbuild/internal/engine/planner"
	"go.trai.ch/winbuild/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	inspector    ports.ProjectInspector
	configLoader ports.ConfigLoader
	probe        ports.ToolchainProbe
	runner       ports.CommandRunner
	preferences  ports.PreferenceLoader
	resolver     *resolver.Resolver
	planner      *planner.Planner
	executor     *executor.Executor
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	inspector ports.ProjectInspector,
	configLoader ports.ConfigLoader,
	probe ports.ToolchainProbe,
	runner ports.CommandRunner,
	preferences ports.PreferenceLoader,
	res *resolver.Resolver,
	plan *planner.Planner,
	exec *executor.Executor,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		inspector:    inspector,
		configLoader: configLoader,
		probe:        probe,
		runner:       runner,
		preferences:  preferences,
		resolver:     res,
		planner:      plan,
		executor:     exec,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// SetVerbosity adjusts the minimum level of log output.
func (a *App) SetVerbosity(level domain.LogLevel) {
	a.logger.SetLevel(level)
}

// Build builds the project at root for the given request.
func (a *App) Build(ctx context.Context, root string, req domain.BuildRequest) (err error) {
	defer func() {
		if cerr := a.telemetry.Close(); cerr != nil && err == nil {
			err = zerr.Wrap(cerr, "failed to close telemetry")
		}
	}()

	// 1. Pre-flight
	ok, err := a.inspector.IsProject(root)
	if err != nil {
		return zerr.Wrap(err, "failed to inspect project")
	}
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrNotAProject, "no *.shproj file found"), "root", root)
	}

	// 2. Settings
	settings, err := a.configLoader.Load(root)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}
	req = req.WithSettings(settings)

	// 3. Toolchain, probed once for the whole build
	toolchain, err := a.probe.Detect(ctx, settings)
	if err != nil {
		return zerr.Wrap(err, "failed to detect MSBuild tools")
	}
	a.logger.Info("MSBuildToolsPath: " + toolchain.Path())

	// 4. Platform config
	err = a.applyPlatformConfig(ctx, root, settings.PlatformConfigScript)
	if err != nil {
		return err
	}

	// 5. Targets and jobs
	prefs, err := a.preferences.Load(root)
	if err != nil {
		return zerr.Wrap(err, "failed to read preferences")
	}

	cfg := domain.BuildConfig{Root: root, Request: req, Toolchain: toolchain}
	set, err := a.resolver.Resolve(cfg, prefs)
	if err != nil {
		return err
	}

	// 6. Execute
	return a.executor.Execute(ctx, cfg, a.planner.Plan(cfg, set.Targets))
}

func (a *App) applyPlatformConfig(ctx context.Context, root, override string) error {
	script, err := a.inspector.PlatformConfigScript(root, override)
	if err != nil {
		return err
	}

	a.logger.Info("Applying platform config...")
	err = a.runner.Run(ctx, domain.Command{
		Name: "Powershell",
		Args: []string{"-File", script, root},
		Dir:  root,
	})
	if err != nil {
		return zerr.Wrap(err, "failed to apply platform config")
	}
	return nil
}
