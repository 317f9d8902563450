package report_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/ironsmile/lyricount/src/assert"
	"github.com/ironsmile/lyricount/src/music"
	"github.com/ironsmile/lyricount/src/pipeline"
	"github.com/ironsmile/lyricount/src/report"
	"github.com/ironsmile/lyricount/src/stats"
)

var radiohead = music.Artist{
	ID:   "a74b1b7f-71a5-4011-9441-d0b5e4122711",
	Name: "Radiohead",
}

func radioheadOutcome(t *testing.T) pipeline.Outcome {
	t.Helper()

	counts := []music.WordCount{
		music.Found("Creep", 42),
		music.Absent("Karma Police", music.ErrNotFound),
	}
	values := stats.Present(counts)
	summary, err := stats.Summarize(values)
	assert.NilErr(t, err)

	return pipeline.Outcome{
		Result: pipeline.Result{
			Query:   "radiohead",
			Artist:  radiohead,
			Catalog: music.Catalog{Titles: []string{"Creep", "Karma Police"}, Pages: 1},
			Counts:  counts,
			Values:  values,
			Summary: summary,
		},
	}
}

// TestWriteSummary checks the exact output for a successful outcome.
func TestWriteSummary(t *testing.T) {
	var out bytes.Buffer
	w := report.NewWriter(&out, afero.NewMemMapFs(), report.Options{})

	assert.NilErr(t, w.Write(radioheadOutcome(t)))

	expected := strings.Join([]string{
		"Radiohead",
		"mean: 42",
		"standard deviation: 0",
		"variance: 0",
		"min: 42",
		"max: 42",
		"songs with lyrics: 1/2",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

// TestWriteFailures checks the messages for all kinds of failed outcomes.
func TestWriteFailures(t *testing.T) {
	tests := []struct {
		desc     string
		outcome  pipeline.Outcome
		expected string
	}{
		{
			desc: "no data",
			outcome: pipeline.Outcome{
				Result: pipeline.Result{Query: "radiohead", Artist: radiohead},
				Err:    stats.ErrNoData,
			},
			expected: "Radiohead\nno data\n",
		},
		{
			desc: "no data in a truncated catalog",
			outcome: pipeline.Outcome{
				Result: pipeline.Result{
					Query:   "radiohead",
					Artist:  radiohead,
					Catalog: music.Catalog{Pages: 50, Truncated: true},
				},
				Err: stats.ErrNoData,
			},
			expected: "Radiohead\nno data\n" +
				"note: catalog truncated after 50 pages, statistics are partial\n",
		},
		{
			desc: "artist not found",
			outcome: pipeline.Outcome{
				Result: pipeline.Result{Query: "No Such Band"},
				Err:    fmt.Errorf("artist: %w", music.ErrNotFound),
			},
			expected: "No Such Band: artist not found\n",
		},
		{
			desc: "interrupted",
			outcome: pipeline.Outcome{
				Result: pipeline.Result{Query: "radiohead", Artist: radiohead},
				Err:    context.Canceled,
			},
			expected: "radiohead: interrupted\n",
		},
		{
			desc: "upstream failure",
			outcome: pipeline.Outcome{
				Result: pipeline.Result{Query: "radiohead", Artist: radiohead},
				Err:    fmt.Errorf("listing works: %w", music.ErrUpstream),
			},
			expected: "radiohead: error: listing works: unexpected upstream response\n",
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			var out bytes.Buffer
			w := report.NewWriter(&out, afero.NewMemMapFs(), report.Options{
				Histogram: true,
				PlotDir:   "plots",
			})

			assert.NilErr(t, w.Write(test.outcome))
			assert.Equal(t, test.expected, out.String())
		})
	}
}

// TestWriteTruncated makes sure the user is told when statistics are computed
// over a partial catalog.
func TestWriteTruncated(t *testing.T) {
	outcome := radioheadOutcome(t)
	outcome.Catalog.Truncated = true
	outcome.Catalog.Pages = 50

	var out bytes.Buffer
	w := report.NewWriter(&out, afero.NewMemMapFs(), report.Options{})
	assert.NilErr(t, w.Write(outcome))

	if !strings.Contains(out.String(), "catalog truncated after 50 pages") {
		t.Errorf("expected a truncation note, got:\n%s", out.String())
	}
}

func TestWriteHistogram(t *testing.T) {
	outcome := radioheadOutcome(t)

	var out bytes.Buffer
	w := report.NewWriter(&out, afero.NewMemMapFs(), report.Options{
		Histogram: true,
		Bins:      4,
	})
	assert.NilErr(t, w.Write(outcome))

	printed := out.String()
	if !strings.HasPrefix(printed, "Radiohead\nmean: 42\n") {
		t.Errorf("summary must come before the histogram, got:\n%s", printed)
	}
	if !strings.Contains(printed, "42.25 - 42.5") {
		t.Errorf("expected the last bin range in the histogram, got:\n%s", printed)
	}
	if !strings.Contains(printed, strings.Repeat("#", 40)) {
		t.Errorf("expected a full width bar for the tallest bin, got:\n%s", printed)
	}
}

func TestWritePlot(t *testing.T) {
	fs := afero.NewMemMapFs()
	outcome := radioheadOutcome(t)
	outcome.Artist.Name = "AC/DC"

	var out bytes.Buffer
	w := report.NewWriter(&out, fs, report.Options{PlotDir: "plots"})
	assert.NilErr(t, w.Write(outcome))

	fh, err := fs.Open("plots/AC_DC.png")
	assert.NilErr(t, err, "opening plot file")
	defer fh.Close()

	if _, err := png.Decode(fh); err != nil {
		t.Errorf("plot is not a PNG: %s", err)
	}

	if !strings.Contains(out.String(), "histogram: plots/AC_DC.png") {
		t.Errorf("expected the plot path to be printed, got:\n%s", out.String())
	}
}

func TestWritePlotFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	var out bytes.Buffer
	w := report.NewWriter(&out, fs, report.Options{PlotDir: "plots"})
	err := w.Write(radioheadOutcome(t))
	if err == nil {
		t.Fatal("expected an error when plots cannot be written")
	}
	if errors.Is(err, stats.ErrNoData) {
		t.Errorf("unexpected no data error: %s", err)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{42, "42"},
		{0, "0"},
		{202.5, "202.5"},
		{1.0 / 3, "0.3333333333333333"},
		{1e21, "1000000000000000000000"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, report.FormatValue(test.value))
	}
}
