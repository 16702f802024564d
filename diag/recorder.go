package diag

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Recorder accumulates successive Reports. It is never touched by
// Core.Fuse itself; a caller opts in by calling Record after each tick.
type Recorder struct {
	reports []Report
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends r.
func (rec *Recorder) Record(r Report) {
	rec.reports = append(rec.reports, r)
}

// Reports returns a copy of the accumulated reports.
func (rec *Recorder) Reports() []Report {
	out := make([]Report, len(rec.reports))
	copy(out, rec.reports)
	return out
}

// Summary returns the min and max recorded height estimate, grounded on
// the teacher's matrix.RowSums use of gonum/floats for slice reduction.
func (rec *Recorder) Summary() (min, max float64) {
	if len(rec.reports) == 0 {
		return 0, 0
	}
	vals := make([]float64, len(rec.reports))
	for i, r := range rec.reports {
		vals[i] = r.EstimatedPosDown
	}
	return floats.Min(vals), floats.Max(vals)
}

// Plot renders the recorded height estimate against tick index as a
// single line, grounded on the teacher's sim/plot.go New2DPlot.
func (rec *Recorder) Plot() (*plot.Plot, error) {
	if len(rec.reports) == 0 {
		return nil, fmt.Errorf("diag: no reports recorded")
	}

	p := plot.New()
	p.Title.Text = "estimated height"
	p.X.Label.Text = "tick"
	p.Y.Label.Text = "pos_down (m)"

	pts := make(plotter.XYs, len(rec.reports))
	for i, r := range rec.reports {
		pts[i].X = float64(i)
		pts[i].Y = r.EstimatedPosDown
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{R: 0, G: 128, B: 255, A: 255}
	line.Width = vg.Points(1)

	p.Add(line)
	return p, nil
}
