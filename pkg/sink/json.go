package sink

import (
	"encoding/json"

	"github.com/combcap/idcgen/pkg/errors"
	"github.com/combcap/idcgen/pkg/idc"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	name  string
	layer string
}

// WithJSONName records the footprint name so a later render reuses it.
func WithJSONName(name string) JSONOption { return func(r *jsonRenderer) { r.name = name } }

// WithJSONLayer records the copper layer so a later render reuses it.
func WithJSONLayer(layer string) JSONOption { return func(r *jsonRenderer) { r.layer = layer } }

type jsonOutput struct {
	Name         string         `json:"name,omitempty"`
	Layer        string         `json:"layer,omitempty"`
	Params       idc.Parameters `json:"params"`
	Pitch        float64        `json:"pitch"`
	FingerLength float64        `json:"finger_length"`
	Width        float64        `json:"width"`
	Height       float64        `json:"height"`
	Segments     []jsonSegment  `json:"segments"`
}

type jsonSegment struct {
	Net    string  `json:"net"`  // "A" or "B"
	Kind   string  `json:"kind"` // "finger" or "bar"
	Index  int     `json:"index"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Document is a layout read back from JSON together with the render
// settings stored alongside it.
type Document struct {
	Name   string
	Layer  string
	Layout idc.Layout
}

// RenderJSON exports the layout as a pretty-printed JSON document. The
// document carries the resolved parameters, the derived dimensions and every
// segment in emission order.
//
// RenderJSON returns an error only if JSON marshaling fails (should not
// happen with well-formed layouts).
func RenderJSON(l idc.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	segs := l.Segments()
	out := jsonOutput{
		Name:         r.name,
		Layer:        r.layer,
		Params:       l.Params,
		Pitch:        l.Pitch,
		FingerLength: l.FingerLength,
		Width:        l.Width(),
		Height:       l.Height(),
		Segments:     make([]jsonSegment, len(segs)),
	}
	for i, s := range segs {
		out.Segments[i] = jsonSegment{
			Net:    s.Net.String(),
			Kind:   s.Kind.String(),
			Index:  s.Index,
			X:      s.X,
			Y:      s.Y,
			Width:  s.Width,
			Height: s.Height,
		}
	}

	return json.MarshalIndent(out, "", "  ")
}

// ReadJSON parses a document produced by [RenderJSON]. The segments are
// re-assembled with [idc.Assemble], so the result satisfies every layout
// invariant or an error is returned.
func ReadJSON(data []byte) (Document, error) {
	var in jsonOutput
	if err := json.Unmarshal(data, &in); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode layout JSON")
	}

	segs := make([]idc.Segment, len(in.Segments))
	for i, js := range in.Segments {
		s, err := js.segment()
		if err != nil {
			return Document{}, err
		}
		segs[i] = s
	}

	l, err := idc.Assemble(in.Params, segs)
	if err != nil {
		return Document{}, err
	}
	return Document{Name: in.Name, Layer: in.Layer, Layout: l}, nil
}

func (js jsonSegment) segment() (idc.Segment, error) {
	s := idc.Segment{
		Index:  js.Index,
		X:      js.X,
		Y:      js.Y,
		Width:  js.Width,
		Height: js.Height,
	}

	switch js.Net {
	case "A":
		s.Net = idc.NetA
	case "B":
		s.Net = idc.NetB
	default:
		return idc.Segment{}, errors.New(errors.ErrCodeInvalidLayout, "unknown net %q", js.Net)
	}

	switch js.Kind {
	case "finger":
		s.Kind = idc.KindFinger
	case "bar":
		s.Kind = idc.KindBar
	default:
		return idc.Segment{}, errors.New(errors.ErrCodeInvalidLayout, "unknown segment kind %q", js.Kind)
	}
	return s, nil
}
