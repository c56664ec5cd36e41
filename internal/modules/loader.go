// Package modules loads schema source from files, directories, and the
// asdl.yaml manifest, running each file through the lex/parse pipeline and
// resolving everything of one load into a single model.
package modules

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/asdl-go/asdl/internal/ast"
	"github.com/asdl-go/asdl/internal/config"
	"github.com/asdl-go/asdl/internal/diagnostics"
	"github.com/asdl-go/asdl/internal/lexer"
	"github.com/asdl-go/asdl/internal/parser"
	"github.com/asdl-go/asdl/internal/pipeline"
	"github.com/asdl-go/asdl/internal/resolver"
	"github.com/asdl-go/asdl/pkg/schema"
)

// LoadError aggregates every diagnostic of one failed load.
type LoadError struct {
	Diags []*diagnostics.DiagnosticError
}

func (e *LoadError) Error() string {
	if len(e.Diags) == 1 {
		return e.Diags[0].Error()
	}
	msgs := make([]string, len(e.Diags))
	for i, d := range e.Diags {
		msgs[i] = d.Error()
	}
	return fmt.Sprintf("%d errors:\n%s", len(e.Diags), strings.Join(msgs, "\n"))
}

// ParseSource runs one in-memory schema source through the pipeline.
func ParseSource(filePath, source string) (*ast.Module, []*diagnostics.DiagnosticError) {
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = filePath

	p := pipeline.New(&lexer.LexerProcessor{}, &parser.ParserProcessor{})
	ctx = p.Run(ctx)
	return ctx.Module, ctx.Errors
}

// LoadSources parses and resolves in-memory sources, keyed by a display
// name used in diagnostics. Order is the load order.
func LoadSources(names []string, sources []string) (*schema.Model, error) {
	var mods []*ast.Module
	var diags []*diagnostics.DiagnosticError

	for i, src := range sources {
		mod, errs := ParseSource(names[i], src)
		diags = append(diags, errs...)
		if mod != nil {
			mods = append(mods, mod)
		}
	}
	if len(diags) > 0 {
		return nil, &LoadError{Diags: diags}
	}

	model, errs := resolver.Resolve(mods)
	if len(errs) > 0 {
		return nil, &LoadError{Diags: errs}
	}
	return model, nil
}

// LoadFiles reads and loads schema files in the given order. A directory
// argument expands to its schema files in sorted name order, so a load is
// deterministic regardless of readdir order.
func LoadFiles(paths ...string) (*schema.Model, error) {
	files, err := expandPaths(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found", strings.Join(config.SourceFileExtensions, "/"))
	}

	names := make([]string, 0, len(files))
	sources := make([]string, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		names = append(names, file)
		sources = append(sources, string(content))
	}
	return LoadSources(names, sources)
}

func expandPaths(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		var dirFiles []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if isSourceFile(e.Name()) {
				dirFiles = append(dirFiles, filepath.Join(path, e.Name()))
			}
		}
		// Sort for deterministic processing order
		sort.Strings(dirFiles)
		files = append(files, dirFiles...)
	}
	return files, nil
}

// isSourceFile checks if a file has a recognized schema extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
