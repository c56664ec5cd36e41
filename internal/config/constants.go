package config

const SourceFileExt = ".asdl"

// SourceFileExtensions are all recognized schema file extensions
var SourceFileExtensions = []string{".asdl"}

// ManifestFileName is the per-project schema manifest consumed by the loader.
const ManifestFileName = "asdl.yaml"

// MaxPrintDepth bounds printer recursion. Well-formed values cannot recurse
// past the schema's own depth, but foreign values that bypassed construction
// can, so the printer enforces a ceiling.
const MaxPrintDepth = 100

// Primitive type names
const (
	StringTypeName = "string"
	IntTypeName    = "int"
	BoolTypeName   = "bool"
)
