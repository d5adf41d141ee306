package app

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netcore/netcore"
)

// DefaultThreshold is the correlation threshold used when none is configured.
const DefaultThreshold = 0.6

// Dataset is one unit of work.
type Dataset struct {
	Name      string  // label used in reports and logs
	Path      string  // CSV/TSV file
	Threshold float64 // in [0, 1]
	Heatmap   string  // optional image path; empty disables
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Datasets []Dataset

	LogFormat string // text | json
	LogLevel  string // debug | info | warn | error
	Output    string // text | json
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Datasets) == 0 {
		return nil, errors.New("at least one dataset is required")
	}
	for _, d := range cfg.Datasets {
		if d.Path == "" {
			return nil, fmt.Errorf("dataset %q: path is required", d.Name)
		}
		if err := netcore.ValidateThreshold(d.Threshold); err != nil {
			return nil, fmt.Errorf("dataset %q: %w", d.Name, err)
		}
	}
	if cfg.Output == "" {
		cfg.Output = "text"
	}

	return &cfg, nil
}
