// Package codegen runs SwiftGen against a finished asset catalog to emit a
// Swift accessor file next to it.
package codegen

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"

	"github.com/backmassage/svg2asset/internal/assetcatalog"
)

// Generator invokes the swiftgen binary at Path with the named template.
type Generator struct {
	Path     string
	Template string
}

// Result is the outcome of one generator run. Err carries the exit status,
// which callers report but never treat as fatal.
type Result struct {
	OutputPath string
	Output     string
	Err        error
}

// OutputPath returns "<catalog dir>/<Name>.swift" for "<Name>.xcassets".
func OutputPath(catalog string) string {
	return filepath.Join(filepath.Dir(catalog), assetcatalog.BaseName(catalog)+".swift")
}

// EnumName returns "<Name>Assets", the generated enum's identifier.
func EnumName(catalog string) string {
	return assetcatalog.BaseName(catalog) + "Assets"
}

// Args returns the swiftgen arguments for catalog.
func (g Generator) Args(catalog string) []string {
	return []string{
		"xcassets",
		"--templateName", g.Template,
		"--output", OutputPath(catalog),
		"--param", "enumName=" + EnumName(catalog),
		catalog,
	}
}

// Run invokes the generator once and waits for it to exit.
func (g Generator) Run(ctx context.Context, catalog string) Result {
	cmd := exec.CommandContext(ctx, g.Path, g.Args(catalog)...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return Result{OutputPath: OutputPath(catalog), Output: out.String(), Err: err}
}
