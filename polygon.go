package polylabel

import (
	"math"

	"github.com/soypat/polylabel/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Ring is an ordered sequence of vertices forming a closed polygon boundary.
// The last vertex connects back to the first implicitly; an explicit closing
// duplicate is tolerated but not required.
type Ring []r2.Vec

// Polygon is an ordered sequence of rings. Ring 0 is the outer boundary and
// any subsequent rings are holes. Winding direction is not significant: the
// inside test uses ray-casting parity across all rings. The polygon is
// assumed non-self-intersecting.
type Polygon []Ring

// Evaluate returns the signed distance from p to the nearest polygon edge.
// The distance is positive if p is contained within the polygon and negative
// otherwise. A point inside a hole is outside the polygon, yet its distance
// is still measured to the nearest edge, hole boundary or outer boundary.
// The result is only meaningful for a polygon with at least one ring of 3
// or more vertices.
func (poly Polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to nearest edge (>0)
	inside := false

	for _, ring := range poly {
		for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
			a := ring[i]
			b := ring[j]

			// Horizontal-ray parity test. The strict comparisons keep an
			// edge collinear with the ray from registering a crossing.
			if (a.Y > p.Y) != (b.Y > p.Y) &&
				p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
				inside = !inside
			}

			dd = math.Min(dd, segDist2(p, a, b))
		}
	}

	d := math.Sqrt(dd)
	if inside {
		return d
	}
	return -d
}

// segDist2 returns the squared distance from p to the line segment ab.
func segDist2(p, a, b r2.Vec) float64 {
	ab := r2.Sub(b, a)
	nearest := a
	if ab.X != 0 || ab.Y != 0 {
		t := r2.Dot(r2.Sub(p, a), ab) / r2.Norm2(ab)
		if t > 1 {
			nearest = b
		} else if t > 0 {
			nearest = r2.Add(a, r2.Scale(t, ab))
		}
	}
	return r2.Norm2(r2.Sub(p, nearest))
}

// Bounds returns the axis-aligned envelope of the outer ring. Holes do not
// contribute: they can only carve the interior, never extend it.
// Panics if the polygon has no outer ring.
func (poly Polygon) Bounds() r2.Box {
	if len(poly) == 0 || len(poly[0]) == 0 {
		panic("polygon has no outer ring")
	}
	outer := poly[0]
	bb := d2.Box{Min: outer[0], Max: outer[0]}
	for _, v := range outer[1:] {
		bb = bb.Include(v)
	}
	return r2.Box(bb)
}

// Centroid returns the signed-area-weighted centroid of the outer ring.
// A zero-area ring falls back to the ring's first vertex.
// Panics if the polygon has no outer ring.
func (poly Polygon) Centroid() r2.Vec {
	if len(poly) == 0 || len(poly[0]) == 0 {
		panic("polygon has no outer ring")
	}
	outer := poly[0]
	var area float64
	var c r2.Vec

	for i, j := 0, len(outer)-1; i < len(outer); j, i = i, i+1 {
		a := outer[i]
		b := outer[j]
		f := r2.Cross(a, b)
		c = r2.Add(c, r2.Scale(f, r2.Add(a, b)))
		area += 3 * f
	}

	if area == 0 {
		return outer[0]
	}
	return r2.Scale(1/area, c)
}

func (poly Polygon) validate() error {
	if len(poly) == 0 {
		return errInvalid("polygon has no rings")
	}
	for _, ring := range poly {
		if len(ring) < 3 {
			return errInvalid("ring has fewer than 3 vertices")
		}
		for _, v := range ring {
			if !d2.Finite(v) {
				return errInvalid("non-finite vertex coordinate")
			}
		}
	}
	return nil
}
