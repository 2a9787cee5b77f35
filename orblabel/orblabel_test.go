package orblabel_test

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/soypat/polylabel"
	"github.com/soypat/polylabel/orblabel"
)

var squareWithHole = orb.Polygon{
	{{0, 0}, {10, 0}, {10, 10}, {0, 10}},
	{{4, 4}, {6, 4}, {6, 6}, {4, 6}},
}

func TestFromPolygon(t *testing.T) {
	poly := orblabel.FromPolygon(squareWithHole)
	if len(poly) != 2 {
		t.Fatalf("converted polygon has %d rings, want 2", len(poly))
	}
	if got := poly[0][1]; got.X != 10 || got.Y != 0 {
		t.Errorf("vertex converted to %v, want (10, 0)", got)
	}
	if got := poly[1][3]; got.X != 4 || got.Y != 6 {
		t.Errorf("hole vertex converted to %v, want (4, 6)", got)
	}
}

func TestPolylabelMatchesCore(t *testing.T) {
	const precision = 0.1
	pt, err := orblabel.Polylabel(squareWithHole, precision)
	if err != nil {
		t.Fatal(err)
	}
	want, err := polylabel.PoleOfInaccessibility(orblabel.FromPolygon(squareWithHole), precision)
	if err != nil {
		t.Fatal(err)
	}
	if pt[0] != want.X || pt[1] != want.Y {
		t.Errorf("orb pole %v, core pole %v", pt, want)
	}
}

func TestPolylabelMulti(t *testing.T) {
	mp := orb.MultiPolygon{
		{{{20, 0}, {24, 0}, {24, 4}, {20, 4}}}, // small square
		{{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}, // large square
	}
	pt, err := orblabel.PolylabelMulti(mp, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	// The label belongs on the larger member.
	if math.Abs(pt[0]-5) > 0.2 || math.Abs(pt[1]-5) > 0.2 {
		t.Errorf("multipolygon pole %v, want near (5, 5)", pt)
	}
}

func TestPolylabelMultiEmpty(t *testing.T) {
	_, err := orblabel.PolylabelMulti(orb.MultiPolygon{}, 0.1)
	if !errors.Is(err, polylabel.ErrInvalidInput) {
		t.Errorf("error %v, want ErrInvalidInput", err)
	}
}

func TestPolylabelInvalid(t *testing.T) {
	_, err := orblabel.Polylabel(orb.Polygon{}, 0.1)
	if !errors.Is(err, polylabel.ErrInvalidInput) {
		t.Errorf("error %v, want ErrInvalidInput", err)
	}
}
