// Package orblabel adapts the pole of inaccessibility search to the
// geometry types of github.com/paulmach/orb, the representation GeoJSON
// label-placement pipelines typically already hold.
package orblabel

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/soypat/polylabel"
	"gonum.org/v1/gonum/spatial/r2"
)

// FromRing converts an orb ring to a polylabel ring.
func FromRing(ring orb.Ring) polylabel.Ring {
	out := make(polylabel.Ring, len(ring))
	for i, p := range ring {
		out[i] = r2.Vec{X: p[0], Y: p[1]}
	}
	return out
}

// FromPolygon converts an orb polygon, holes included.
func FromPolygon(poly orb.Polygon) polylabel.Polygon {
	out := make(polylabel.Polygon, len(poly))
	for i, ring := range poly {
		out[i] = FromRing(ring)
	}
	return out
}

// Polylabel returns the pole of inaccessibility of an orb polygon.
func Polylabel(poly orb.Polygon, precision float64) (orb.Point, error) {
	pole, err := polylabel.PoleOfInaccessibility(FromPolygon(poly), precision)
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{pole.X, pole.Y}, nil
}

// PolylabelMulti returns the pole of inaccessibility of the member polygon
// with the deepest interior, so the label lands on the multipolygon's most
// prominent part.
func PolylabelMulti(mp orb.MultiPolygon, precision float64) (orb.Point, error) {
	if len(mp) == 0 {
		return orb.Point{}, fmt.Errorf("%w: empty multipolygon", polylabel.ErrInvalidInput)
	}
	var best orb.Point
	bestDist := math.Inf(-1)
	for _, poly := range mp {
		pole, d, err := polylabel.PoleOfInaccessibilityWithDistance(FromPolygon(poly), precision)
		if err != nil {
			return orb.Point{}, err
		}
		if d > bestDist {
			bestDist = d
			best = orb.Point{pole.X, pole.Y}
		}
	}
	return best, nil
}
