// Package generate runs one builder-generation pass over a Java class or a
// Go package, per the configured options.
package generate

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vabshroo/builgen/internal/gen"
	"github.com/vabshroo/builgen/internal/gogen"
	"github.com/vabshroo/builgen/internal/goparse"
	"github.com/vabshroo/builgen/internal/javasrc"
	"github.com/vabshroo/builgen/pkg/builder"
)

// Run executes a generation pass and returns the path of the written file.
// Dry runs print the result to stdout and return an empty path.
func Run(opts *builder.Options) (string, error) {
	if err := opts.Normalize(); err != nil {
		return "", err
	}
	switch opts.Lang {
	case builder.LangJava:
		return runJava(opts)
	case builder.LangGo:
		return runGo(opts)
	}
	return "", fmt.Errorf("unsupported language %q", opts.Lang)
}

func runJava(opts *builder.Options) (string, error) {
	src, err := os.ReadFile(opts.Input)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", opts.Input, err)
	}

	cls, err := javasrc.Parse(string(src))
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", opts.Input, err)
	}
	if opts.Class != "" && cls.Name() != opts.Class {
		return "", fmt.Errorf("%s declares %s, not %s", opts.Input, cls.Name(), opts.Class)
	}

	if _, err := gen.NewOrchestrator().Run(cls); err != nil {
		return "", err
	}

	out := opts.Output
	if out == "" {
		out = opts.Input
	}
	return emit(opts, out, []byte(cls.Render()))
}

func runGo(opts *builder.Options) (string, error) {
	pkg, err := goparse.Load(opts.Input)
	if err != nil {
		return "", err
	}

	structs := pkg.Structs
	if opts.Class != "" {
		s := pkg.Find(opts.Class)
		if s == nil {
			return "", fmt.Errorf("no struct %s in %s", opts.Class, opts.Input)
		}
		structs = []goparse.Struct{*s}
	}
	if len(structs) == 0 {
		return "", fmt.Errorf("no structs found in %s", opts.Input)
	}

	f := gogen.GenerateFile(pkg, structs)
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	out := opts.Output
	if out == "" {
		out = filepath.Join(opts.Input, builder.DefaultGoOutFile)
	}
	return emit(opts, out, buf.Bytes())
}

func emit(opts *builder.Options, out string, content []byte) (string, error) {
	if opts.DryRun {
		_, _ = os.Stdout.Write(content)
		return "", nil
	}
	if err := os.WriteFile(out, content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	slog.Default().Info("generated", "lang", opts.Lang, "file", out)
	return out, nil
}
