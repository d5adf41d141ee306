package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/netcore/dataset"
	"github.com/katalvlaran/netcore/internal/ctxlog"
	"github.com/katalvlaran/netcore/matrix"
	"github.com/katalvlaran/netcore/netcore"
	"github.com/katalvlaran/netcore/report"
)

// App runs the configured datasets and writes reports to outW.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp builds an App; logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	return &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, logW),
		config: cfg,
	}
}

// Run processes every dataset in order. A failing dataset does not stop the
// batch; all failures are returned joined.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Info("Starting run.", "datasets", len(a.config.Datasets), "output", a.config.Output)

	var errs []error
	for _, d := range a.config.Datasets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.runDataset(ctx, d); err != nil {
			logger.Error("Dataset failed.", "dataset", d.Name, "error", err)
			errs = append(errs, fmt.Errorf("dataset %s: %w", d.Name, err))
		}
	}
	logger.Info("Run finished.", "failed", len(errs))

	return errors.Join(errs...)
}

func (a *App) runDataset(ctx context.Context, d Dataset) error {
	logger := ctxlog.FromContext(ctx).With("dataset", d.Name)

	tbl, err := dataset.LoadCSV(d.Path, dataset.DefaultOptions())
	if err != nil {
		return err
	}
	logger.Debug("Dataset loaded.", "columns", len(tbl.Columns), "rows", len(tbl.Rows), "skipped", tbl.Skipped)

	raw, err := tbl.Correlation()
	if err != nil {
		return err
	}
	v, err := matrix.Build(raw)
	if err != nil {
		return err
	}
	if dropped := v.Dropped(); len(dropped) > 0 {
		logger.Info("Dropped features without a defined correlation.", "features", dropped)
	}

	res, err := netcore.ReduceValidated(v, d.Threshold,
		netcore.WithContext(ctx),
		netcore.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Info("Reduction complete.", "selected", len(res.Features), "initial", res.Initial)

	switch a.config.Output {
	case "json":
		err = report.JSON(a.outW, d.Name, res)
	default:
		err = report.Summary(a.outW, d.Name, res)
	}
	if err != nil {
		return err
	}

	if d.Heatmap != "" && v.Len() > 0 {
		if err = os.MkdirAll(filepath.Dir(d.Heatmap), 0o755); err != nil {
			return err
		}
		if err = report.SaveHeatmap(d.Heatmap, d.Name, v); err != nil {
			return err
		}
		logger.Info("Heatmap written.", "path", d.Heatmap)
	}

	return nil
}
