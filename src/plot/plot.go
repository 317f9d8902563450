// Package plot draws histograms of word counts as PNG images.
package plot

import (
	"fmt"
	"image"
	"image/color"
	"io"

	xfont "golang.org/x/image/font"
	gonumplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ironsmile/lyricount/src/stats"
)

// Size of the produced images in pixels.
const (
	Width  = 800
	Height = 480
)

// dpi is the resolution used for converting the image size into plot lengths.
const dpi = 96

// Half transparent blue bars.
var barColor = color.NRGBA{R: 0x00, G: 0x00, B: 0xff, A: 0x80}

// Histogram draws hist as a bar chart with the given title and writes it as PNG
// into w.
func Histogram(w io.Writer, title string, hist stats.Histogram) error {
	canvas, err := render(title, hist)
	if err != nil {
		return err
	}

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("encoding histogram PNG: %w", err)
	}
	return nil
}

// Draw returns an image of hist as a bar chart with the given title.
func Draw(title string, hist stats.Histogram) (image.Image, error) {
	canvas, err := render(title, hist)
	if err != nil {
		return nil, err
	}
	return canvas.Image(), nil
}

func render(title string, hist stats.Histogram) (*vgimg.Canvas, error) {
	p, err := newPlot(title, hist)
	if err != nil {
		return nil, err
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(pixels(Width), pixels(Height)),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(canvas))

	return canvas, nil
}

// newPlot returns a plot with one histogram bar per bin of hist. The bins are
// used as they are so that the image matches the text histogram exactly.
func newPlot(title string, hist stats.Histogram) (*gonumplot.Plot, error) {
	bins := len(hist.Counts)
	if bins == 0 || len(hist.Edges) != bins+1 {
		return nil, fmt.Errorf("malformed histogram with %d bins and %d edges",
			bins, len(hist.Edges))
	}

	h := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, bins),
		Width:     hist.Edges[1] - hist.Edges[0],
		FillColor: barColor,
		LineStyle: plotter.DefaultLineStyle,
	}
	for i, c := range hist.Counts {
		h.Bins[i] = plotter.HistogramBin{
			Min:    hist.Edges[i],
			Max:    hist.Edges[i+1],
			Weight: float64(c),
		}
	}

	p := gonumplot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Weight = xfont.WeightBold
	p.X.Label.Text = "words per song"
	p.Y.Label.Text = "songs"
	p.Y.Min = 0
	p.Add(plotter.NewGrid(), h)

	return p, nil
}

func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / dpi
}
