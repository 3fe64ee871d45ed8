package ports

// ProjectInspector inspects a scaffolded platform project directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type ProjectInspector interface {
	// IsProject reports whether root contains the project marker file.
	IsProject(root string) (bool, error)

	// PlatformConfigScript returns the absolute path of the ApplyPlatformConfig script.
	// override, when non-empty, is a path relative to root.
	PlatformConfigScript(root, override string) (string, error)
}
