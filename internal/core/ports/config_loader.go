package ports

import "go.trai.ch/winbuild/internal/core/domain"

// ConfigLoader defines the interface for loading the per-project tool settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings from the given project root.
	// A missing settings file yields the default settings.
	Load(root string) (*domain.Settings, error)
}
