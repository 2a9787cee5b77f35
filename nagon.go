package polylabel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Nagon returns the ring of a N sided regular polygon with the given
// circumradius, centered on the origin. Returns nil if n < 3.
func Nagon(n int, radius float64) Ring {
	if n < 3 {
		return nil
	}
	v := make(Ring, n)
	for i := range v {
		theta := 2 * math.Pi * float64(i) / float64(n)
		v[i] = r2.Vec{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	}
	return v
}
