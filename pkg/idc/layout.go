package idc

import (
	"seehuhn.de/go/geom/rect"
)

// Layout is the synthesized geometry of one capacitor.
type Layout struct {
	// Params holds the resolved parameters the layout was built from.
	Params Parameters

	Pitch        float64
	FingerLength float64

	// Fingers are ordered by index; finger i sits at x = i*Pitch.
	Fingers []Segment

	BarA Segment
	BarB Segment

	// Bounds spans x in [0, span] and y in [0, TotalWidth].
	Bounds rect.Rect
}

// Segments returns every segment in emission order: bar A, bar B, then the
// fingers by index. The returned slice is a fresh copy.
func (l Layout) Segments() []Segment {
	out := make([]Segment, 0, len(l.Fingers)+2)
	out = append(out, l.BarA, l.BarB)
	out = append(out, l.Fingers...)
	return out
}

// Bar returns the bus bar of net n.
func (l Layout) Bar(n Net) Segment {
	if n == NetB {
		return l.BarB
	}
	return l.BarA
}

// Count returns the number of fingers on net n.
func (l Layout) Count(n Net) int {
	var c int
	for _, f := range l.Fingers {
		if f.Net == n {
			c++
		}
	}
	return c
}

// Width returns the extent of the footprint across the fingers.
func (l Layout) Width() float64 { return l.Bounds.URx - l.Bounds.LLx }

// Height returns the extent of the footprint along the fingers.
func (l Layout) Height() float64 { return l.Bounds.URy - l.Bounds.LLy }
