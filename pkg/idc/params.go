package idc

import (
	"github.com/combcap/idcgen/pkg/errors"
)

const (
	// MinFingers is the smallest finger count that still forms two combs.
	MinFingers = 2

	// DefaultMaxAspectRatio bounds the comb span relative to the total
	// width when Parameters.MaxAspectRatio is unset. It is a policy limit
	// against runaway finger counts; the comb is expected to be wider than
	// TotalWidth.
	DefaultMaxAspectRatio = 10.0
)

// Parameters describes an interdigitated capacitor. All lengths are in
// millimetres.
type Parameters struct {
	TrackWidth float64 `json:"track_width"` // width of each finger
	Gap        float64 `json:"gap"`         // spacing between fingers and at finger tips
	TotalWidth float64 `json:"total_width"` // extent along the finger axis, bars included
	NumFingers int     `json:"num_fingers"`

	// FingerLength, when positive, takes precedence over TotalWidth, which
	// is then derived from it.
	FingerLength float64 `json:"finger_length,omitempty"`

	// ConnectingTrackWidth is the bus bar thickness. Zero means TrackWidth.
	ConnectingTrackWidth float64 `json:"connecting_track_width,omitempty"`

	// MaxAspectRatio limits span/TotalWidth. Zero means DefaultMaxAspectRatio.
	MaxAspectRatio float64 `json:"max_aspect_ratio,omitempty"`
}

// Pitch returns the centre-to-centre finger spacing.
func (p Parameters) Pitch() float64 { return p.TrackWidth + p.Gap }

// Span returns the extent of the comb across the fingers.
func (p Parameters) Span() float64 {
	return float64(p.NumFingers)*p.Pitch() - p.Gap
}

// UsesFingerLength reports whether the finger length drives the geometry.
func (p Parameters) UsesFingerLength() bool { return p.FingerLength > 0 }

// Resolve returns a copy of p with defaults applied and derived values
// filled in: ConnectingTrackWidth falls back to TrackWidth, MaxAspectRatio
// to DefaultMaxAspectRatio, and in finger-length mode TotalWidth is derived
// from FingerLength. Resolve does not validate.
func (p Parameters) Resolve() Parameters {
	if p.ConnectingTrackWidth == 0 {
		p.ConnectingTrackWidth = p.TrackWidth
	}
	if p.MaxAspectRatio == 0 {
		p.MaxAspectRatio = DefaultMaxAspectRatio
	}
	if p.UsesFingerLength() {
		p.TotalWidth = p.FingerLength + 2*p.ConnectingTrackWidth + p.Gap
	}
	return p
}

// Validate checks p, with defaults applied, against every constraint the
// synthesizer relies on. It returns an *errors.InvalidParameterError
// naming the first violated constraint.
//
// The span check is a policy threshold, not a geometric constraint: the
// fingers are not required to fit within TotalWidth, only within
// MaxAspectRatio times it. Raise MaxAspectRatio to allow longer combs.
func (p Parameters) Validate() error {
	if err := errors.ValidatePositive("track_width", p.TrackWidth); err != nil {
		return err
	}
	if err := errors.ValidatePositive("gap", p.Gap); err != nil {
		return err
	}
	if err := errors.ValidateMinInt("num_fingers", p.NumFingers, MinFingers); err != nil {
		return err
	}
	if p.ConnectingTrackWidth != 0 {
		if err := errors.ValidatePositive("connecting_track_width", p.ConnectingTrackWidth); err != nil {
			return err
		}
	}
	if p.MaxAspectRatio != 0 {
		if err := errors.ValidatePositive("max_aspect_ratio", p.MaxAspectRatio); err != nil {
			return err
		}
	}

	switch {
	case p.FingerLength != 0:
		if err := errors.ValidatePositive("finger_length", p.FingerLength); err != nil {
			return err
		}
	case p.TotalWidth == 0:
		return errors.InvalidParameter("total_width", nil, "either total width or finger length must be provided")
	default:
		if err := errors.ValidatePositive("total_width", p.TotalWidth); err != nil {
			return err
		}
	}

	r := p.Resolve()
	if l := fingerLength(r); l <= 0 {
		return errors.InvalidParameter("total_width", r.TotalWidth,
			"leaves no room for fingers: 2 x %g (bus bars) + %g (gap) >= total width",
			r.ConnectingTrackWidth, r.Gap)
	}
	if limit := r.MaxAspectRatio * r.TotalWidth; r.Span() > limit {
		return errors.InvalidParameter("num_fingers", r.NumFingers,
			"comb span %g exceeds %g x total width (%g)", r.Span(), r.MaxAspectRatio, limit)
	}
	return nil
}

func fingerLength(r Parameters) float64 {
	return r.TotalWidth - 2*r.ConnectingTrackWidth - r.Gap
}
