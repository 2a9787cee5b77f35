// Package render draws a polygon and its pole of inaccessibility to an
// image, mainly as a visual sanity check of label placement.
package render

import (
	"errors"
	"image/color"

	"github.com/soypat/polylabel"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plot builds a plot of the polygon's rings with the pole marked on it.
func Plot(poly polylabel.Polygon, pole r2.Vec) (*plot.Plot, error) {
	if len(poly) == 0 {
		return nil, errors.New("render: polygon has no rings")
	}
	p := plot.New()
	p.Title.Text = "pole of inaccessibility"

	rings := make([]plotter.XYer, len(poly))
	for i, ring := range poly {
		xys := make(plotter.XYs, len(ring))
		for j, v := range ring {
			xys[j].X = v.X
			xys[j].Y = v.Y
		}
		rings[i] = xys
	}
	shape, err := plotter.NewPolygon(rings...)
	if err != nil {
		return nil, err
	}
	shape.Color = color.NRGBA{R: 116, G: 178, B: 222, A: 160}
	shape.LineStyle.Color = color.NRGBA{R: 26, G: 62, B: 92, A: 255}
	p.Add(shape)

	mark, err := plotter.NewScatter(plotter.XYs{{X: pole.X, Y: pole.Y}})
	if err != nil {
		return nil, err
	}
	mark.GlyphStyle.Shape = draw.CrossGlyph{}
	mark.GlyphStyle.Radius = vg.Points(5)
	mark.GlyphStyle.Color = color.NRGBA{R: 200, A: 255}
	p.Add(mark)

	return p, nil
}

// Save plots the polygon with its pole and writes the image to path. The
// format is taken from the path extension (png, svg, pdf...).
func Save(poly polylabel.Polygon, pole r2.Vec, path string) error {
	p, err := Plot(poly, pole)
	if err != nil {
		return err
	}
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, path)
}
