package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/netcore/netcore"
)

// ErrInvalid marks a configuration that decoded but failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// File is the decoded form of a configuration file. Unset optional
// attributes stay nil so that callers can tell them from zero values.
type File struct {
	Threshold *float64   `hcl:"threshold,optional"`
	LogLevel  *string    `hcl:"log_level,optional"`
	LogFormat *string    `hcl:"log_format,optional"`
	Output    *string    `hcl:"output,optional"`
	Datasets  []*Dataset `hcl:"dataset,block"`
}

// Dataset is one `dataset "name" { ... }` block.
type Dataset struct {
	Name      string   `hcl:"name,label"`
	Path      string   `hcl:"path"`
	Threshold *float64 `hcl:"threshold,optional"`
	Heatmap   *string  `hcl:"heatmap,optional"`
}

// Load parses and decodes the HCL file at path.
func Load(path string) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(abs)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	return decode(file.Body, filepath.Dir(abs), path)
}

// Parse decodes HCL source held in memory; dir plays the role of config_dir.
func Parse(src []byte, filename, dir string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return decode(file.Body, dir, filename)
}

func decode(body hcl.Body, dir, name string) (*File, error) {
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir": cty.StringVal(dir),
		},
	}
	var f File
	if diags := gohcl.DecodeBody(body, evalCtx, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}
	for _, d := range f.Datasets {
		d.Path = resolve(dir, d.Path)
		if d.Heatmap != nil {
			h := resolve(dir, *d.Heatmap)
			d.Heatmap = &h
		}
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &f, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) || dir == "" {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate checks value ranges and dataset uniqueness.
func (f *File) Validate() error {
	if f.Threshold != nil {
		if err := netcore.ValidateThreshold(*f.Threshold); err != nil {
			return fmt.Errorf("threshold: %w: %w", err, ErrInvalid)
		}
	}
	if f.LogLevel != nil && !ValidLogLevel(*f.LogLevel) {
		return fmt.Errorf("log_level %q: must be 'debug', 'info', 'warn', or 'error': %w", *f.LogLevel, ErrInvalid)
	}
	if f.LogFormat != nil && !ValidLogFormat(*f.LogFormat) {
		return fmt.Errorf("log_format %q: must be 'text' or 'json': %w", *f.LogFormat, ErrInvalid)
	}
	if f.Output != nil && !ValidOutput(*f.Output) {
		return fmt.Errorf("output %q: must be 'text' or 'json': %w", *f.Output, ErrInvalid)
	}
	seen := make(map[string]struct{}, len(f.Datasets))
	for _, d := range f.Datasets {
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("duplicate dataset %q: %w", d.Name, ErrInvalid)
		}
		seen[d.Name] = struct{}{}
		if strings.TrimSpace(d.Path) == "" {
			return fmt.Errorf("dataset %q: empty path: %w", d.Name, ErrInvalid)
		}
		if d.Threshold != nil {
			if err := netcore.ValidateThreshold(*d.Threshold); err != nil {
				return fmt.Errorf("dataset %q: threshold: %w: %w", d.Name, err, ErrInvalid)
			}
		}
	}

	return nil
}

// ValidLogLevel reports whether s names a supported slog level.
func ValidLogLevel(s string) bool {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// ValidLogFormat reports whether s is "text" or "json".
func ValidLogFormat(s string) bool {
	s = strings.ToLower(s)
	return s == "text" || s == "json"
}

// ValidOutput reports whether s is a supported report format.
func ValidOutput(s string) bool { return ValidLogFormat(s) }
