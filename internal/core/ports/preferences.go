package ports

// PreferenceSource exposes the preferences declared in the project's config.xml.
//
//go:generate go run go.uber.org/mock/mockgen -source=preferences.go -destination=mocks/mock_preferences.go -package=mocks
type PreferenceSource interface {
	// Get returns the declared value of the preference, or false if it is absent.
	Get(key string) (string, bool)
}

// PreferenceLoader opens the preference source of a project.
type PreferenceLoader interface {
	// Load reads the preferences of the project at root.
	Load(root string) (PreferenceSource, error)
}
