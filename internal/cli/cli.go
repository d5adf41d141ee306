package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/netcore/internal/app"
	"github.com/katalvlaran/netcore/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Precedence: explicit flags, then the config file, then flag defaults.
// Positional CSV paths are appended after the datasets of the config file.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("netcore", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
netcore - greedy correlation-graph feature reduction.

Usage:
  netcore [options] [DATASET.csv ...]

Arguments:
  DATASET.csv
    Rectangular table with a header row; numeric columns are features.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL run configuration file.")
	thresholdFlag := flagSet.Float64("threshold", app.DefaultThreshold, "Correlation threshold in [0, 1]; |corr| >= threshold links two features.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	outputFlag := flagSet.String("output", "text", "Report format. Options: 'text' or 'json'.")
	heatmapFlag := flagSet.String("heatmap", "", "Directory for <dataset>.png correlation heatmaps of positional datasets. Empty disables.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := app.Config{
		LogFormat: *logFormatFlag,
		LogLevel:  *logLevelFlag,
		Output:    *outputFlag,
	}
	threshold := *thresholdFlag

	if *configFlag != "" {
		file, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, usageError("%v", err)
		}
		if file.Threshold != nil && !set["threshold"] {
			threshold = *file.Threshold
		}
		if file.LogLevel != nil && !set["log-level"] {
			cfg.LogLevel = *file.LogLevel
		}
		if file.LogFormat != nil && !set["log-format"] {
			cfg.LogFormat = *file.LogFormat
		}
		if file.Output != nil && !set["output"] {
			cfg.Output = *file.Output
		}
		for _, d := range file.Datasets {
			ds := app.Dataset{Name: d.Name, Path: d.Path, Threshold: threshold}
			if d.Threshold != nil {
				ds.Threshold = *d.Threshold
			}
			if d.Heatmap != nil {
				ds.Heatmap = *d.Heatmap
			}
			cfg.Datasets = append(cfg.Datasets, ds)
		}
	}

	for _, p := range flagSet.Args() {
		ds := app.Dataset{Name: filepath.Base(p), Path: p, Threshold: threshold}
		if *heatmapFlag != "" {
			base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
			ds.Heatmap = filepath.Join(*heatmapFlag, base+".png")
		}
		cfg.Datasets = append(cfg.Datasets, ds)
	}
	slog.Debug("Datasets determined.", "count", len(cfg.Datasets))

	if len(cfg.Datasets) == 0 {
		slog.Debug("No dataset provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if !config.ValidLogFormat(cfg.LogFormat) {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if !config.ValidLogLevel(cfg.LogLevel) {
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	cfg.Output = strings.ToLower(cfg.Output)
	if !config.ValidOutput(cfg.Output) {
		return nil, false, usageError("invalid output: must be 'text' or 'json'")
	}
	slog.Debug("CLI parameter validation complete.")

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%v", err)
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}
