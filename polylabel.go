// Package polylabel computes the pole of inaccessibility of a polygon: the
// interior point farthest from the polygon's boundary. It is the point where
// a label or marker sits most comfortably inside an irregular shape, unlike
// a centroid or bounding-box center which may land near an edge or outside a
// concave region entirely.
//
// The search is a best-first guided quadtree subdivision of the polygon's
// bounding envelope. Square probe cells carry a provable upper bound on the
// distance reachable within them, which prunes whole regions as soon as they
// cannot beat the best candidate by more than the requested precision.
package polylabel

import (
	"container/heap"
	"math"

	"github.com/soypat/polylabel/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultPrecision is a reasonable precision for coordinates on the scale of
// projected map geometry.
const DefaultPrecision = 1.0

// PoleOfInaccessibility returns the point of the polygon's interior farthest
// from its boundary, to within precision. The polygon needs at least one
// ring of at least 3 finite vertices and precision must be positive;
// anything else fails with ErrInvalidInput.
func PoleOfInaccessibility(poly Polygon, precision float64) (r2.Vec, error) {
	pole, _, err := PoleOfInaccessibilityWithDistance(poly, precision)
	return pole, err
}

// PoleOfInaccessibilityWithDistance is PoleOfInaccessibility returning also
// the pole's signed distance to the boundary.
func PoleOfInaccessibilityWithDistance(poly Polygon, precision float64) (r2.Vec, float64, error) {
	s, err := NewSearch(poly, precision)
	if err != nil {
		return r2.Vec{}, 0, err
	}
	for s.Step() {
	}
	pole, d := s.Best()
	return pole, d, nil
}

// MustPoleOfInaccessibility is like PoleOfInaccessibility but panics on
// invalid input.
func MustPoleOfInaccessibility(poly Polygon, precision float64) r2.Vec {
	pole, err := PoleOfInaccessibility(poly, precision)
	if err != nil {
		panic(err)
	}
	return pole
}

// Search is a stepwise pole of inaccessibility search. It lets a caller
// bound the work per call, poll a deadline between steps or inspect progress,
// none of which the one-shot entry points need. A Search owns all of its
// state; separate searches are independent and safe to run concurrently
// with one another.
type Search struct {
	poly      Polygon
	precision float64
	queue     cellQueue
	best      cell
	probes    int
}

// NewSearch validates the input and seeds a search. The returned Search has
// a valid Best immediately; Step refines it.
func NewSearch(poly Polygon, precision float64) (*Search, error) {
	if err := poly.validate(); err != nil {
		return nil, err
	}
	if precision <= 0 || math.IsNaN(precision) {
		return nil, errInvalid("precision must be > 0")
	}
	s := &Search{poly: poly, precision: precision}
	s.seed()
	return s, nil
}

func (s *Search) seed() {
	bb := d2.Box(s.poly.Bounds())
	cellSize := d2.Min(bb.Size())
	if cellSize == 0 {
		// Degenerate envelope with no interior to search. The minimum
		// corner is as good as any point of it.
		s.best = s.probe(bb.Min, 0)
		return
	}

	// Cover the envelope with a uniform grid of probe cells.
	h := cellSize / 2
	for x := bb.Min.X; x < bb.Max.X; x += cellSize {
		for y := bb.Min.Y; y < bb.Max.Y; y += cellSize {
			s.push(s.probe(r2.Vec{X: x + h, Y: y + h}, h))
		}
	}

	// Two cheap first guesses so pruning has something to beat early on.
	s.best = s.probe(s.poly.Centroid(), 0)
	if c := s.probe(bb.Center(), 0); c.d > s.best.d {
		s.best = c
	}
}

// Step runs a single pop/prune/subdivide iteration and reports whether
// pending cells remain. Once it returns false, Best is final.
func (s *Search) Step() bool {
	if len(s.queue) == 0 {
		return false
	}
	c := heap.Pop(&s.queue).(cell)

	if c.d > s.best.d {
		s.best = c
	}

	// No point within this cell can improve on the best candidate by more
	// than the precision, so it is not worth refining.
	if c.max-s.best.d <= s.precision {
		return len(s.queue) > 0
	}

	h := c.h / 2
	s.push(s.probe(r2.Vec{X: c.center.X - h, Y: c.center.Y - h}, h))
	s.push(s.probe(r2.Vec{X: c.center.X + h, Y: c.center.Y - h}, h))
	s.push(s.probe(r2.Vec{X: c.center.X - h, Y: c.center.Y + h}, h))
	s.push(s.probe(r2.Vec{X: c.center.X + h, Y: c.center.Y + h}, h))
	return true
}

// Best returns the best candidate found so far and its signed distance to
// the polygon boundary.
func (s *Search) Best() (r2.Vec, float64) {
	return s.best.center, s.best.d
}

// Probes returns the number of cells evaluated so far.
func (s *Search) Probes() int {
	return s.probes
}

func (s *Search) probe(center r2.Vec, h float64) cell {
	s.probes++
	return newCell(center, h, s.poly)
}

func (s *Search) push(c cell) {
	heap.Push(&s.queue, c)
}
