// Package visualization renders comparison results as charts with
// gonum/plot: note distributions side by side, pitch contours over time,
// and per-note similarity with the headline scores.
package visualization

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/RyanBlaney/sonido-swara/algorithms/notes"
	"github.com/RyanBlaney/sonido-swara/comparison"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	chartWidth  = 15 * vg.Inch
	chartHeight = 4 * vg.Inch
	barWidth    = vg.Points(14)
)

// Labels names the two renditions in legends.
type Labels struct {
	Reference string
	Attempt   string
}

// DefaultLabels is used when no file names are known.
var DefaultLabels = Labels{Reference: "reference", Attempt: "attempt"}

// DistributionChart draws both note distributions as grouped bars over the
// union of their pitch classes.
func DistributionChart(result *comparison.Result, labels Labels) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Note Distribution Comparison"
	p.Y.Label.Text = "Share of notes"
	p.Y.Min, p.Y.Max = 0, 1

	names := notes.UnionKeys(result.Reference.Distribution, result.Attempt.Distribution)
	if len(names) == 0 {
		return p, nil
	}

	sides := []struct {
		name   string
		dist   notes.Distribution
		offset vg.Length
	}{
		{labels.Reference, result.Reference.Distribution, -barWidth / 2},
		{labels.Attempt, result.Attempt.Distribution, barWidth / 2},
	}

	for i, side := range sides {
		values := make(plotter.Values, len(names))
		for j, name := range names {
			values[j] = side.dist.Get(name)
		}

		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s bars: %w", side.name, err)
		}
		bars.Offset = side.offset
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = 0

		p.Add(bars)
		p.Legend.Add(side.name, bars)
	}

	p.Legend.Top = true
	p.NominalX(names...)
	return p, nil
}

// ContourChart scatters the retained pitch frames of both renditions.
func ContourChart(result *comparison.Result, labels Labels) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Pitch Contour Comparison"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Frequency (Hz)"

	sides := []struct {
		name    string
		contour []comparison.ContourPoint
	}{
		{labels.Reference, result.Reference.Contour},
		{labels.Attempt, result.Attempt.Contour},
	}

	for i, side := range sides {
		if len(side.contour) == 0 {
			continue
		}

		xys := make(plotter.XYs, len(side.contour))
		for j, point := range side.contour {
			xys[j].X = point.TimeSeconds
			xys[j].Y = point.FrequencyHz
		}

		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s contour: %w", side.name, err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Radius = vg.Points(1.5)

		p.Add(scatter)
		p.Legend.Add(side.name, scatter)
	}

	p.Legend.Top = true
	return p, nil
}

// NoteSimilarityChart draws the per-note similarity (1 - |difference|) and
// puts the three scores in the title.
func NoteSimilarityChart(result *comparison.Result) (*plot.Plot, error) {
	report := result.Report

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Note Similarity  |  note %.3f  pattern %.3f  swara %.3f",
		report.DistributionSimilarity, report.PatternSimilarity, report.SwaraSimilarity)
	p.Y.Label.Text = "Similarity Score"
	p.Y.Min, p.Y.Max = 0, 1

	names := notes.Distribution(report.PerNoteDifferenceScores).Keys()
	if len(names) == 0 {
		return p, nil
	}

	values := make(plotter.Values, len(names))
	for i, name := range names {
		values[i] = report.PerNoteDifferenceScores[name]
	}

	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, fmt.Errorf("failed to build similarity bars: %w", err)
	}
	bars.Color = plotutil.Color(2)
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// WriteChart encodes p to w. format is any gonum/plot format such as
// "png" or "svg".
func WriteChart(p *plot.Plot, w io.Writer, format string) error {
	wt, err := p.WriterTo(chartWidth, chartHeight, format)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

// RenderAll writes the three charts as PNG files into dir and returns
// their paths.
func RenderAll(result *comparison.Result, labels Labels, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	distribution, err := DistributionChart(result, labels)
	if err != nil {
		return nil, err
	}
	contour, err := ContourChart(result, labels)
	if err != nil {
		return nil, err
	}
	similarity, err := NoteSimilarityChart(result)
	if err != nil {
		return nil, err
	}

	charts := []struct {
		name string
		plot *plot.Plot
	}{
		{"distribution.png", distribution},
		{"contour.png", contour},
		{"note_similarity.png", similarity},
	}

	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		path := filepath.Join(dir, c.name)
		if err := c.plot.Save(chartWidth, chartHeight, path); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", c.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
