package idc

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// eps is the relative tolerance below which two extents count as touching
// rather than overlapping. It is scaled by the largest coordinate involved,
// with a floor of 1 mm.
const eps = 1e-9

// tolerance returns eps scaled to the largest magnitude in vals.
func tolerance(vals ...float64) float64 {
	m := 1.0
	for _, v := range vals {
		m = math.Max(m, math.Abs(v))
	}
	return eps * m
}

// Net identifies one of the two capacitor plates.
type Net int

const (
	NetA Net = iota + 1
	NetB
)

// String returns "A" or "B".
func (n Net) String() string {
	switch n {
	case NetA:
		return "A"
	case NetB:
		return "B"
	default:
		return "?"
	}
}

// Other returns the opposite net.
func (n Net) Other() Net {
	if n == NetA {
		return NetB
	}
	return NetA
}

// netForIndex assigns nets by finger parity.
func netForIndex(i int) Net {
	if i%2 == 0 {
		return NetA
	}
	return NetB
}

// Kind distinguishes fingers from bus bars.
type Kind int

const (
	KindFinger Kind = iota
	KindBar
)

func (k Kind) String() string {
	if k == KindBar {
		return "bar"
	}
	return "finger"
}

// Segment is a single axis-aligned copper rectangle. X and Y give its
// centre. Segments are values; nothing in this package mutates one after
// it has been placed in a Layout.
type Segment struct {
	Net    Net
	Kind   Kind
	Index  int // finger index, -1 for bus bars
	X, Y   float64
	Width  float64
	Height float64
}

// Left returns the smallest x covered by the segment.
func (s Segment) Left() float64 { return s.X - s.Width/2 }

// Right returns the largest x covered by the segment.
func (s Segment) Right() float64 { return s.X + s.Width/2 }

// Bottom returns the smallest y covered by the segment.
func (s Segment) Bottom() float64 { return s.Y - s.Height/2 }

// Top returns the largest y covered by the segment.
func (s Segment) Top() float64 { return s.Y + s.Height/2 }

// Rect returns the segment's extent.
func (s Segment) Rect() rect.Rect {
	return rect.Rect{LLx: s.Left(), LLy: s.Bottom(), URx: s.Right(), URy: s.Top()}
}

// magnitude returns the largest absolute edge coordinate of s.
func (s Segment) magnitude() float64 {
	return math.Max(math.Max(math.Abs(s.Left()), math.Abs(s.Right())),
		math.Max(math.Abs(s.Bottom()), math.Abs(s.Top())))
}

// Overlaps reports whether the interiors of s and o intersect. Segments
// that merely share an edge do not overlap.
func (s Segment) Overlaps(o Segment) bool {
	tol := tolerance(s.magnitude(), o.magnitude())
	dx := math.Min(s.Right(), o.Right()) - math.Max(s.Left(), o.Left())
	dy := math.Min(s.Top(), o.Top()) - math.Max(s.Bottom(), o.Bottom())
	return dx > tol && dy > tol
}

// Touches reports whether s and o share part of an edge without
// overlapping.
func (s Segment) Touches(o Segment) bool {
	tol := tolerance(s.magnitude(), o.magnitude())
	dx := math.Min(s.Right(), o.Right()) - math.Max(s.Left(), o.Left())
	dy := math.Min(s.Top(), o.Top()) - math.Max(s.Bottom(), o.Bottom())
	return (math.Abs(dx) <= tol && dy > tol) || (math.Abs(dy) <= tol && dx > tol)
}

// fromEdges builds a segment from its edges.
func fromEdges(net Net, kind Kind, index int, left, bottom, right, top float64) Segment {
	return Segment{
		Net:    net,
		Kind:   kind,
		Index:  index,
		X:      (left + right) / 2,
		Y:      (bottom + top) / 2,
		Width:  right - left,
		Height: top - bottom,
	}
}
