package idc

import (
	"seehuhn.de/go/geom/rect"
)

// Synthesize computes the capacitor geometry for p.
//
// All validation happens before any geometry is computed. On failure the
// returned error is an *errors.InvalidParameterError and the Layout is the
// zero value; a partial layout is never returned.
//
// The finger count of the result always equals p.NumFingers: finger i is on
// NetA when i is even and on NetB when i is odd, so with an odd count net A
// carries one finger more than net B.
func Synthesize(p Parameters) (Layout, error) {
	if err := p.Validate(); err != nil {
		return Layout{}, err
	}
	r := p.Resolve()

	var (
		pitch  = r.Pitch()
		span   = r.Span()
		bar    = r.ConnectingTrackWidth
		total  = r.TotalWidth
		length = fingerLength(r)
	)

	fingers := make([]Segment, r.NumFingers)
	for i := range fingers {
		net := netForIndex(i)
		left := float64(i) * pitch

		// Net A grows up from bar A; net B hangs down from bar B. Either
		// way the tip stops one gap short of the opposing bar.
		bottom := bar
		if net == NetB {
			bottom = bar + r.Gap
		}
		fingers[i] = fromEdges(net, KindFinger, i, left, bottom, left+r.TrackWidth, bottom+length)
	}

	return Layout{
		Params:       r,
		Pitch:        pitch,
		FingerLength: length,
		Fingers:      fingers,
		BarA:         fromEdges(NetA, KindBar, -1, 0, 0, span, bar),
		BarB:         fromEdges(NetB, KindBar, -1, 0, total-bar, span, total),
		Bounds:       rect.Rect{LLx: 0, LLy: 0, URx: span, URy: total},
	}, nil
}
