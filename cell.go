package polylabel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// cell is a square probe region of the plane. It is a value type: subdivision
// produces four new cells, a cell is never mutated after construction.
type cell struct {
	center r2.Vec
	h      float64 // half the square's side length
	d      float64 // signed distance from center to the polygon boundary
	max    float64 // upper bound on the distance any point in the square can reach
}

// newCell probes the polygon at center. The bound follows from the distance
// field being 1-Lipschitz: no point of the square is farther than h*sqrt(2)
// from its center.
func newCell(center r2.Vec, h float64, poly Polygon) cell {
	d := poly.Evaluate(center)
	return cell{
		center: center,
		h:      h,
		d:      d,
		max:    d + h*math.Sqrt2,
	}
}

// cellQueue implements heap.Interface as a max-heap keyed on the cells'
// upper bound, so the most promising region is always popped first.
type cellQueue []cell

func (q cellQueue) Len() int           { return len(q) }
func (q cellQueue) Less(i, j int) bool { return q[i].max > q[j].max }
func (q cellQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *cellQueue) Push(x interface{}) {
	*q = append(*q, x.(cell))
}

func (q *cellQueue) Pop() interface{} {
	old := *q
	n := len(old)
	c := old[n-1]
	*q = old[:n-1]
	return c
}
