// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/winbuild/internal/adapters/config"
	_ "go.trai.ch/winbuild/internal/adapters/logger"
	_ "go.trai.ch/winbuild/internal/adapters/msbuild"
	_ "go.trai.ch/winbuild/internal/adapters/preferences"
	_ "go.trai.ch/winbuild/internal/adapters/project"
	_ "go.trai.ch/winbuild/internal/adapters/shell"
	_ "go.trai.ch/winbuild/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/winbuild/internal/app"
	_ "go.trai.ch/winbuild/internal/engine/executor"
	_ "go.trai.ch/winbuild/internal/engine/planner"
	_ "go.trai.ch/winbuild/internal/engine/resolver"
)
