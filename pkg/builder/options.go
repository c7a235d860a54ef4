package builder

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Options control one generation run.
//
// Input    – Java source file (lang=java) or package directory (lang=go)
// Lang     – target language, "java" or "go"
// Class    – type to generate for; empty means the primary type (java) or
//            every struct in the package (go)
// Output   – destination file; empty rewrites Input in place (java) or
//            writes builder_gen.go next to the sources (go)
// DryRun   – print the result instead of writing it
// Manifest – manifest file recording generation snapshots
type Options struct {
	Input    string `json:"input,omitempty" yaml:"input,omitempty" toml:"input,omitempty" mapstructure:"input,omitempty"`
	Lang     string `json:"lang,omitempty" yaml:"lang,omitempty" toml:"lang,omitempty" mapstructure:"lang,omitempty"`
	Class    string `json:"class,omitempty" yaml:"class,omitempty" toml:"class,omitempty" mapstructure:"class,omitempty"`
	Output   string `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty" mapstructure:"output,omitempty"`
	DryRun   bool   `json:"dry_run,omitempty" yaml:"dry_run,omitempty" toml:"dry_run,omitempty" mapstructure:"dry_run,omitempty"`
	Manifest string `json:"manifest,omitempty" yaml:"manifest,omitempty" toml:"manifest,omitempty" mapstructure:"manifest,omitempty"`
}

const (
	LangJava = "java"
	LangGo   = "go"

	// DefaultGoOutFile is the per-package output file of the Go backend.
	DefaultGoOutFile = "builder_gen.go"
)

func NewOptions() *Options {
	return &Options{
		Lang: LangJava,
	}
}

// Normalize fills defaults and rejects inconsistent settings.
func (o *Options) Normalize() error {
	if o.Input == "" {
		return fmt.Errorf("no input given")
	}
	if o.Lang == "" {
		o.Lang = LangJava
		if strings.EqualFold(filepath.Ext(o.Input), ".go") || filepath.Ext(o.Input) == "" {
			o.Lang = LangGo
		}
	}
	switch o.Lang {
	case LangJava, LangGo:
	default:
		return fmt.Errorf("unsupported language %q", o.Lang)
	}
	o.Input, _ = filepath.Abs(o.Input)
	if o.Output != "" {
		o.Output, _ = filepath.Abs(o.Output)
	}
	return nil
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInput(f string) Option    { return func(o *Options) { o.Input = f } }
func WithLang(l string) Option     { return func(o *Options) { o.Lang = l } }
func WithClass(c string) Option    { return func(o *Options) { o.Class = c } }
func WithOutput(f string) Option   { return func(o *Options) { o.Output = f } }
func WithDryRun() Option           { return func(o *Options) { o.DryRun = true } }
func WithManifest(f string) Option { return func(o *Options) { o.Manifest = f } }
