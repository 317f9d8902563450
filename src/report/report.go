// Package report writes the outcome of a lyrics count in human readable form.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"

	"github.com/ironsmile/lyricount/src/helpers"
	"github.com/ironsmile/lyricount/src/music"
	"github.com/ironsmile/lyricount/src/pipeline"
	"github.com/ironsmile/lyricount/src/plot"
	"github.com/ironsmile/lyricount/src/stats"
)

// histogramBarWidth is the width in characters of the longest histogram bar.
const histogramBarWidth = 40

// Options control what is written in addition to the summary.
type Options struct {
	// Histogram enables a text histogram after every summary.
	Histogram bool

	// Bins is the number of histogram bins.
	Bins int

	// PlotDir, when not empty, is a directory in which a PNG histogram is
	// written for every artist.
	PlotDir string
}

// Writer writes reports for pipeline outcomes.
type Writer struct {
	out  io.Writer
	fs   afero.Fs
	opts Options
}

// NewWriter returns a Writer which prints to out and stores plots in fs.
func NewWriter(out io.Writer, fs afero.Fs, opts Options) *Writer {
	if opts.Bins < 1 {
		opts.Bins = stats.DefaultBins
	}

	return &Writer{
		out:  out,
		fs:   fs,
		opts: opts,
	}
}

// Write prints the report for a single outcome. Errors in the outcome are
// reported as messages. The returned error is only about writing the report.
func (w *Writer) Write(outcome pipeline.Outcome) error {
	if outcome.Err != nil {
		return w.writeFailure(outcome)
	}

	s := outcome.Summary
	lines := []struct {
		label string
		value float64
	}{
		{"mean", s.Mean},
		{"standard deviation", s.StdDev},
		{"variance", s.Variance},
		{"min", s.Min},
		{"max", s.Max},
	}

	var buf strings.Builder
	fmt.Fprintln(&buf, outcome.Artist.Name)
	for _, line := range lines {
		fmt.Fprintf(&buf, "%s: %s\n", line.label, FormatValue(line.value))
	}
	fmt.Fprintf(&buf, "songs with lyrics: %d/%d\n", s.Count, len(outcome.Counts))
	writeTruncationNote(&buf, outcome.Catalog)

	if _, err := io.WriteString(w.out, buf.String()); err != nil {
		return err
	}

	if !w.opts.Histogram && w.opts.PlotDir == "" {
		return nil
	}

	hist, err := stats.NewHistogram(outcome.Values, w.opts.Bins)
	if err != nil {
		return fmt.Errorf("building histogram: %w", err)
	}

	if w.opts.Histogram {
		w.writeHistogram(hist)
	}

	if w.opts.PlotDir != "" {
		return w.writePlot(outcome.Artist.Name, hist)
	}

	return nil
}

func (w *Writer) writeFailure(outcome pipeline.Outcome) error {
	var msg string

	switch err := outcome.Err; {
	case errors.Is(err, stats.ErrNoData):
		name := outcome.Artist.Name
		if name == "" {
			name = outcome.Query
		}
		var buf strings.Builder
		fmt.Fprintf(&buf, "%s\nno data\n", name)
		writeTruncationNote(&buf, outcome.Catalog)
		msg = buf.String()
	case errors.Is(err, music.ErrNotFound):
		msg = fmt.Sprintf("%s: artist not found\n", outcome.Query)
	case errors.Is(err, context.Canceled):
		msg = fmt.Sprintf("%s: interrupted\n", outcome.Query)
	default:
		msg = fmt.Sprintf("%s: error: %s\n", outcome.Query, err)
	}

	_, err := io.WriteString(w.out, msg)
	return err
}

func writeTruncationNote(w io.Writer, catalog music.Catalog) {
	if !catalog.Truncated {
		return
	}
	fmt.Fprintf(w,
		"note: catalog truncated after %d pages, statistics are partial\n",
		catalog.Pages,
	)
}

func (w *Writer) writeHistogram(hist stats.Histogram) {
	tallest := 0
	for _, c := range hist.Counts {
		tallest = max(tallest, c)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"words", "songs", ""})

	for i, c := range hist.Counts {
		barLen := 0
		if tallest > 0 {
			barLen = c * histogramBarWidth / tallest
		}
		t.AppendRow(table.Row{
			fmt.Sprintf("%s - %s",
				FormatValue(hist.Edges[i]),
				FormatValue(hist.Edges[i+1]),
			),
			c,
			strings.Repeat("#", barLen),
		})
	}

	t.Render()
}

func (w *Writer) writePlot(artist string, hist stats.Histogram) error {
	if err := w.fs.MkdirAll(w.opts.PlotDir, 0o755); err != nil {
		return fmt.Errorf("creating plot directory: %w", err)
	}

	plotPath := filepath.Join(w.opts.PlotDir, helpers.SafeFileName(artist)+".png")
	fh, err := w.fs.Create(plotPath)
	if err != nil {
		return fmt.Errorf("creating plot file: %w", err)
	}

	if err := plot.Histogram(fh, artist, hist); err != nil {
		_ = fh.Close()
		return err
	}

	if err := fh.Close(); err != nil {
		return fmt.Errorf("writing plot file: %w", err)
	}

	fmt.Fprintf(w.out, "histogram: %s\n", plotPath)
	return nil
}

// FormatValue formats a statistic with as many digits as needed to represent it
// exactly and no exponent.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
