// Package stats reduces per-song word counts to descriptive statistics.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ironsmile/lyricount/src/music"
)

// DefaultBins is the number of bins used for histograms unless configured
// otherwise.
const DefaultBins = 36

// ErrNoData is returned when there are no present word counts to describe.
var ErrNoData = errors.New("no data")

// Summary describes a set of word counts. Variance and StdDev are the population
// (biased) estimators: the sum of squared deviations is divided by Count and
// not by Count-1.
type Summary struct {
	Count    int
	Mean     float64
	StdDev   float64
	Variance float64
	Min      float64
	Max      float64
}

// Present returns the word counts of all present results in their original
// order. Absent results are dropped.
func Present(counts []music.WordCount) []float64 {
	values := make([]float64, 0, len(counts))
	for _, count := range counts {
		if !count.Present {
			continue
		}
		values = append(values, float64(count.Words))
	}
	return values
}

// Summarize computes the Summary of values. It returns ErrNoData when values is
// empty.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoData
	}

	mean, variance := stat.PopMeanVariance(values, nil)

	return Summary{
		Count:    len(values),
		Mean:     mean,
		StdDev:   math.Sqrt(variance),
		Variance: variance,
		Min:      floats.Min(values),
		Max:      floats.Max(values),
	}, nil
}

// Histogram is a count of values in equal width bins. Bin i holds the values in
// [Edges[i], Edges[i+1]) except for the last bin which also includes its right
// edge.
type Histogram struct {
	Edges  []float64
	Counts []int
}

// NewHistogram puts values in `bins` equal width bins spanning from the smallest
// to the largest value. When all values are the same the bins span from half
// below to half above it. It returns ErrNoData when values is empty.
func NewHistogram(values []float64, bins int) (Histogram, error) {
	if len(values) == 0 {
		return Histogram{}, ErrNoData
	}
	if bins < 1 {
		return Histogram{}, fmt.Errorf("histogram needs at least one bin, not %d", bins)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	edges := floats.Span(make([]float64, bins+1), lo, hi)

	// The dividers are half-open on the right, so the last one has to be
	// nudged for the maximum to land in the last bin.
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	weights := stat.Histogram(nil, dividers, sorted, nil)

	counts := make([]int, bins)
	for i, w := range weights {
		counts[i] = int(w)
	}

	return Histogram{
		Edges:  edges,
		Counts: counts,
	}, nil
}
