package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is a small declarative run descriptor, grounded on
// davidkellis-able's pkg/driver/manifest.go (a package.yml parsed with
// gopkg.in/yaml.v3) — pared down to what a single-entry-point interpreter
// actually needs: which file to run and how, rather than a dependency
// graph. Used by `mython -manifest <file>` as an alternative to a bare
// positional source path.
type Manifest struct {
	Entry       string `yaml:"entry"`
	Trace       bool   `yaml:"trace"`
	IndentWidth int    `yaml:"indentWidth"`
}

// LoadManifest reads and parses a YAML run manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m := &Manifest{IndentWidth: indentStep}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if m.Entry == "" {
		return nil, fmt.Errorf("manifest %s: entry is required", path)
	}
	if m.IndentWidth != indentStep {
		return nil, fmt.Errorf("manifest %s: indentWidth must be %d, the language's only supported indent step", path, indentStep)
	}
	return m, nil
}
