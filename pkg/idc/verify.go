package idc

import (
	"cmp"
	"slices"

	"seehuhn.de/go/geom/rect"

	"github.com/combcap/idcgen/pkg/errors"
)

// Verify checks the structural guarantees of a layout: the finger count
// matches the parameters, nets alternate with finger parity, every finger
// touches its own bus bar, no two segments overlap and everything lies
// within Bounds. Layouts returned by Synthesize always verify; Verify
// exists for layouts read back from serialized form.
func (l Layout) Verify() error {
	if got, want := len(l.Fingers), l.Params.NumFingers; got != want {
		return errors.New(errors.ErrCodeInvalidLayout, "layout has %d fingers, parameters ask for %d", got, want)
	}
	if l.BarA.Net != NetA || l.BarA.Kind != KindBar {
		return errors.New(errors.ErrCodeInvalidLayout, "bar A is not a net A bus bar")
	}
	if l.BarB.Net != NetB || l.BarB.Kind != KindBar {
		return errors.New(errors.ErrCodeInvalidLayout, "bar B is not a net B bus bar")
	}

	for i, f := range l.Fingers {
		if f.Kind != KindFinger || f.Index != i {
			return errors.New(errors.ErrCodeInvalidLayout, "segment %d is not finger %d", i, i)
		}
		if want := netForIndex(i); f.Net != want {
			return errors.New(errors.ErrCodeInvalidLayout, "finger %d is on net %s, want %s", i, f.Net, want)
		}
		if !f.Touches(l.Bar(f.Net)) {
			return errors.New(errors.ErrCodeInvalidLayout, "finger %d is not connected to bar %s", i, f.Net)
		}
	}

	segs := l.Segments()
	for _, s := range segs {
		if !within(s, l.Bounds) {
			return errors.New(errors.ErrCodeInvalidLayout, "%s %s (index %d) lies outside the footprint bounds", s.Kind, s.Net, s.Index)
		}
	}
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			if segs[i].Overlaps(segs[j]) {
				return errors.New(errors.ErrCodeInvalidLayout, "%s %s (index %d) overlaps %s %s (index %d)",
					segs[i].Kind, segs[i].Net, segs[i].Index, segs[j].Kind, segs[j].Net, segs[j].Index)
			}
		}
	}
	return nil
}

func within(s Segment, b rect.Rect) bool {
	tol := tolerance(s.magnitude(), b.LLx, b.LLy, b.URx, b.URy)
	return s.Left() >= b.LLx-tol && s.Right() <= b.URx+tol &&
		s.Bottom() >= b.LLy-tol && s.Top() <= b.URy+tol
}

// Assemble rebuilds a Layout from parameters and a flat list of segments in
// any order, then verifies it. Derived values (pitch, finger length and
// bounds) are recomputed from p rather than trusted.
func Assemble(p Parameters, segs []Segment) (Layout, error) {
	if err := p.Validate(); err != nil {
		return Layout{}, err
	}
	r := p.Resolve()

	l := Layout{
		Params:       r,
		Pitch:        r.Pitch(),
		FingerLength: fingerLength(r),
		Bounds:       rect.Rect{URx: r.Span(), URy: r.TotalWidth},
	}

	var bars int
	for _, s := range segs {
		switch s.Kind {
		case KindBar:
			bars++
			if s.Net == NetB {
				l.BarB = s
			} else {
				l.BarA = s
			}
		case KindFinger:
			l.Fingers = append(l.Fingers, s)
		default:
			return Layout{}, errors.New(errors.ErrCodeInvalidLayout, "unknown segment kind %d", s.Kind)
		}
	}
	if bars != 2 {
		return Layout{}, errors.New(errors.ErrCodeInvalidLayout, "layout has %d bus bars, want 2", bars)
	}
	slices.SortFunc(l.Fingers, func(a, b Segment) int { return cmp.Compare(a.Index, b.Index) })

	if err := l.Verify(); err != nil {
		return Layout{}, err
	}
	return l, nil
}
