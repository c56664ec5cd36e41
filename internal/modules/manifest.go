package modules

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/asdl-go/asdl/pkg/schema"
)

// Manifest is the asdl.yaml project file: the ordered list of schema
// sources making up one load. Order matters — a module may reference types
// from any other module of the load, and lookup scans in this order after
// the declaring module.
type Manifest struct {
	// Schemas lists schema files or directories, relative to the manifest.
	Schemas []string `yaml:"schemas"`
}

// ReadManifest parses an asdl.yaml file.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(m.Schemas) == 0 {
		return nil, fmt.Errorf("%s: manifest lists no schemas", path)
	}
	return &m, nil
}

// LoadManifest reads the manifest and loads the schemas it lists.
func LoadManifest(path string) (*schema.Model, error) {
	m, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(path)
	paths := make([]string, len(m.Schemas))
	for i, s := range m.Schemas {
		if filepath.IsAbs(s) {
			paths[i] = s
		} else {
			paths[i] = filepath.Join(base, s)
		}
	}
	return LoadFiles(paths...)
}
