// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/netcore/matrix"
)

// ErrEmptyMatrix is returned when there is nothing to draw.
var ErrEmptyMatrix = errors.New("report: empty matrix")

// cellSize is the edge length of one heatmap cell.
const cellSize = 0.4 * vg.Centimeter

// corrGrid adapts a validated matrix to plotter.GridXYZ. Column c is feature c
// (left to right), row r is feature r (bottom to top). The diagonal reads as 1.
type corrGrid struct{ v *matrix.Validated }

func (g corrGrid) Dims() (c, r int) { return g.v.Len(), g.v.Len() }
func (g corrGrid) X(c int) float64  { return float64(c) }
func (g corrGrid) Y(r int) float64  { return float64(r) }
func (g corrGrid) Z(c, r int) float64 {
	if c == r {
		return 1
	}
	return g.v.Corr(r, c)
}

// HeatmapPlot builds the plot: coefficients on a fixed [-1, 1] heat scale,
// feature labels on both axes.
func HeatmapPlot(title string, v *matrix.Validated) (*plot.Plot, error) {
	if v == nil || v.Len() == 0 {
		return nil, ErrEmptyMatrix
	}
	h := plotter.NewHeatMap(corrGrid{v: v}, palette.Heat(16, 1))
	h.Min, h.Max = -1, 1

	p := plot.New()
	p.Title.Text = title
	p.Add(h)
	labels := v.Labels()
	p.NominalX(labels...)
	p.NominalY(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p, nil
}

// WriteHeatmap renders the heatmap to w in format ("png", "svg", "pdf", ...).
func WriteHeatmap(w io.Writer, format, title string, v *matrix.Validated) error {
	p, err := HeatmapPlot(title, v)
	if err != nil {
		return err
	}
	side := heatmapSide(v.Len())
	wt, err := p.WriterTo(side, side, format)
	if err != nil {
		return fmt.Errorf("report: heatmap: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}

// SaveHeatmap writes the heatmap to path; the format follows the extension.
func SaveHeatmap(path, title string, v *matrix.Validated) error {
	p, err := HeatmapPlot(title, v)
	if err != nil {
		return err
	}
	if strings.TrimPrefix(filepath.Ext(path), ".") == "" {
		return fmt.Errorf("report: heatmap %q: missing file extension", path)
	}
	side := heatmapSide(v.Len())

	return p.Save(side, side, path)
}

func heatmapSide(n int) vg.Length {
	side := vg.Length(n)*cellSize + 4*vg.Centimeter
	if side < 10*vg.Centimeter {
		side = 10 * vg.Centimeter
	}

	return side
}
