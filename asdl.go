// Package asdl loads ASDL schema text into an immutable type model.
//
// Loading is the single entry point that turns source into a usable model:
// it either succeeds fully or fails with positioned diagnostics, never
// exposing a partially loaded schema. The resulting *schema.Model is
// immutable and safe for concurrent readers; pkg/value provides typed
// construction, field access, validation, and canonical printing against it.
package asdl

import (
	"github.com/asdl-go/asdl/internal/modules"
	"github.com/asdl-go/asdl/pkg/schema"
)

// Load parses and resolves a single in-memory schema source. The name only
// labels diagnostics.
func Load(name, source string) (*schema.Model, error) {
	return modules.LoadSources([]string{name}, []string{source})
}

// LoadSources parses and resolves several in-memory sources as one load, in
// order. A module may reference types declared in any other module of the
// load; its own declarations win on a name clash.
func LoadSources(names []string, sources []string) (*schema.Model, error) {
	return modules.LoadSources(names, sources)
}

// LoadFiles loads .asdl files and directories as one load, in the given
// order. Directories expand to their schema files sorted by name.
func LoadFiles(paths ...string) (*schema.Model, error) {
	return modules.LoadFiles(paths...)
}

// LoadManifest loads the schemas listed by an asdl.yaml manifest.
func LoadManifest(path string) (*schema.Model, error) {
	return modules.LoadManifest(path)
}
