// Package cli implements the asdl command: schema checking and model
// inspection tooling around the loading pipeline.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/asdl-go/asdl/internal/config"
	"github.com/asdl-go/asdl/internal/modules"
	"github.com/asdl-go/asdl/pkg/schema"
)

const usage = `asdl — ASDL schema checker

Usage:
  asdl check [files...]   load schemas and report diagnostics
  asdl print [files...]   load schemas and dump the resolved model
  asdl version

With no files, both commands load the ` + config.ManifestFileName + ` manifest
in the current directory.`

const version = "0.3.0"

// Run executes the CLI and returns the process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		return 2
	}

	switch args[0] {
	case "-v", "-version", "--version", "version":
		fmt.Println("asdl " + version)
		return 0
	case "-h", "-help", "--help", "help":
		fmt.Println(usage)
		return 0
	case "check":
		model, ok := load(args[1:])
		if !ok {
			return 1
		}
		n := 0
		for _, mod := range model.Modules() {
			n += len(mod.Decls)
		}
		fmt.Printf("ok: %d module(s), %d type(s)\n", len(model.Modules()), n)
		return 0
	case "print":
		model, ok := load(args[1:])
		if !ok {
			return 1
		}
		dumpModel(model)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", args[0], usage)
		return 2
	}
}

func load(paths []string) (*schema.Model, bool) {
	var model *schema.Model
	var err error
	if len(paths) == 0 {
		model, err = modules.LoadManifest(config.ManifestFileName)
	} else {
		model, err = modules.LoadFiles(paths...)
	}
	if err != nil {
		if le, ok := err.(*modules.LoadError); ok {
			for _, d := range le.Diags {
				fmt.Fprintln(os.Stderr, colorize(d.Error()))
			}
		} else {
			fmt.Fprintln(os.Stderr, colorize(err.Error()))
		}
		return nil, false
	}
	return model, true
}

// colorize wraps a diagnostic line in red when stderr is a terminal.
// NO_COLOR convention: https://no-color.org/
func colorize(s string) string {
	if os.Getenv("NO_COLOR") != "" {
		return s
	}
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return s
	}
	return "\033[31m" + s + "\033[39m"
}

// dumpModel prints the resolved registry: modules in load order, each type
// with its constructors, tags, and fields with cardinality.
func dumpModel(model *schema.Model) {
	for _, mod := range model.Modules() {
		fmt.Printf("module %s\n", mod.Name)
		for _, decl := range mod.Decls {
			switch {
			case decl.Product:
				fmt.Printf("  %s = %s\n", decl.Name, fieldList(decl.Ctors[0]))
			case decl.Simple():
				names := make([]string, len(decl.Ctors))
				for i, c := range decl.Ctors {
					names[i] = c.Name
				}
				fmt.Printf("  %s = %s\n", decl.Name, strings.Join(names, " | "))
			default:
				fmt.Printf("  %s =\n", decl.Name)
				for _, c := range decl.Ctors {
					if len(c.Fields) == 0 {
						fmt.Printf("    [%d] %s\n", c.Tag, c.Name)
						continue
					}
					fmt.Printf("    [%d] %s%s\n", c.Tag, c.Name, fieldList(c))
				}
			}
		}
	}
}

func fieldList(c *schema.Constructor) string {
	parts := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		mark := ""
		switch f.Card {
		case schema.Repeated:
			mark = "*"
		case schema.Optional:
			mark = "?"
		}
		parts[i] = fmt.Sprintf("%s%s %s", f.Ref.Name(), mark, f.Name)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
