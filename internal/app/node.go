package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/winbuild/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/winbuild/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/winbuild/internal/adapters/msbuild"            //nolint:depguard // Wired in app layer
	"go.trai.ch/winbuild/internal/adapters/preferences"        //nolint:depguard // Wired in app layer
	"go.trai.ch/winbuild/internal/adapters/project"            //nolint:depguard // Wired in app layer
	"go.trai.ch/winbuild/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/winbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/winbuild/internal/core/ports"
	"go.trai.ch/winbuild/internal/engine/executor"
	"go.trai.ch/winbuild/internal/engine/planner"
	"go.trai.ch/winbuild/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			project.NodeID,
			config.NodeID,
			msbuild.ProbeNodeID,
			shell.NodeID,
			preferences.NodeID,
			resolver.NodeID,
			planner.NodeID,
			executor.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	inspector, err := graft.Dep[ports.ProjectInspector](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	probe, err := graft.Dep[ports.ToolchainProbe](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}

	prefs, err := graft.Dep[ports.PreferenceLoader](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	plan, err := graft.Dep[*planner.Planner](ctx)
	if err != nil {
		return nil, err
	}

	exec, err := graft.Dep[*executor.Executor](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(inspector, loader, probe, runner, prefs, res, plan, exec, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
