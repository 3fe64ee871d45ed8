// Package preferences reads project preferences from Cordova's config.xml.
package preferences

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/winbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Filename is the project configuration file in the project root.
const Filename = "config.xml"

// platformName selects the <platform> section whose preferences override the global ones.
const platformName = "windows"

type widget struct {
	Preferences []preference `xml:"preference"`
	Platforms   []platform   `xml:"platform"`
}

type platform struct {
	Name        string       `xml:"name,attr"`
	Preferences []preference `xml:"preference"`
}

type preference struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Preferences implements ports.PreferenceSource over a parsed config.xml.
// Names are matched case-insensitively.
type Preferences struct {
	values map[string]string
}

// Get returns the declared value of the preference.
func (p *Preferences) Get(key string) (string, bool) {
	v, ok := p.values[strings.ToLower(key)]
	return v, ok
}

// Parse reads preferences from config.xml content.
func Parse(data []byte) (*Preferences, error) {
	var w widget
	if err := xml.Unmarshal(data, &w); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config.xml")
	}

	prefs := &Preferences{values: make(map[string]string)}
	prefs.add(w.Preferences)
	for _, p := range w.Platforms {
		if strings.EqualFold(p.Name, platformName) {
			prefs.add(p.Preferences)
		}
	}
	return prefs, nil
}

func (p *Preferences) add(prefs []preference) {
	for _, pref := range prefs {
		if pref.Name == "" {
			continue
		}
		p.values[strings.ToLower(pref.Name)] = pref.Value
	}
}

// Loader implements ports.PreferenceLoader.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads <root>/config.xml.
func (l *Loader) Load(root string) (ports.PreferenceSource, error) {
	path := filepath.Join(root, Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config.xml"), "path", path)
	}
	prefs, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return prefs, nil
}
