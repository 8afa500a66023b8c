package sink

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/combcap/idcgen/pkg/buildinfo"
	"github.com/combcap/idcgen/pkg/idc"
)

const (
	// DefaultName is the footprint name used when none is given.
	DefaultName = "IDC"

	// DefaultLayer is the copper layer used when none is given.
	DefaultLayer = "F.Cu"

	// KiCadExt is the file extension of a KiCad footprint.
	KiCadExt = ".kicad_mod"

	headerRule = "# ----------------------------------------------------"
)

// padNamespace seeds the name-based pad UUIDs.
var padNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/combcap/idcgen/pad"))

// KiCadOption configures KiCad rendering via [RenderKiCad].
type KiCadOption func(*kicadRenderer)

type kicadRenderer struct {
	name      string
	layer     string
	padA      string
	padB      string
	timestamp time.Time
	header    bool
	centered  bool
	tstamps   bool
}

// WithName sets the footprint name.
func WithName(name string) KiCadOption { return func(r *kicadRenderer) { r.name = name } }

// WithLayer sets the copper layer of the footprint and all pads.
func WithLayer(layer string) KiCadOption { return func(r *kicadRenderer) { r.layer = layer } }

// WithPadNames overrides the pad names of net A and net B (default "1" and "2").
func WithPadNames(a, b string) KiCadOption {
	return func(r *kicadRenderer) { r.padA, r.padB = a, b }
}

// WithTimestamp pins the tedit timestamp and header date. Without it the
// current time is used.
func WithTimestamp(t time.Time) KiCadOption { return func(r *kicadRenderer) { r.timestamp = t } }

// WithHeader prepends a "#" comment block describing the generator, the
// parameters and the resulting dimensions.
func WithHeader() KiCadOption { return func(r *kicadRenderer) { r.header = true } }

// WithCentered moves the footprint origin to the centre of the bounds.
// By default the origin is the corner of bar A.
func WithCentered() KiCadOption { return func(r *kicadRenderer) { r.centered = true } }

// WithoutTstamps omits the per-pad (tstamp ...) attribute.
func WithoutTstamps() KiCadOption { return func(r *kicadRenderer) { r.tstamps = false } }

// RenderKiCad renders the layout as a KiCad footprint (.kicad_mod).
//
// Segments become rectangular SMD pads in [idc.Layout.Segments] order. KiCad's
// y axis points down, so the layout is mirrored vertically: bar A ends up at
// the bottom of the footprint as in the preview.
func RenderKiCad(l idc.Layout, opts ...KiCadOption) []byte {
	r := kicadRenderer{
		name:    DefaultName,
		layer:   DefaultLayer,
		padA:    "1",
		padB:    "2",
		tstamps: true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.timestamp.IsZero() {
		r.timestamp = time.Now()
	}

	var buf bytes.Buffer
	if r.header {
		r.writeHeader(&buf, l)
	}

	fmt.Fprintf(&buf, "(footprint %s (layer %s) (tedit %X)\n", r.name, r.layer, r.timestamp.Unix())

	dx, dy := 0.0, l.Bounds.URy
	if r.centered {
		dx = -(l.Bounds.LLx + l.Bounds.URx) / 2
		dy = (l.Bounds.LLy + l.Bounds.URy) / 2
	}

	for i, s := range l.Segments() {
		fmt.Fprintf(&buf, "  (pad %s smd rect (at %f %f) (size %f %f) (layers %s)",
			r.padName(s.Net), s.X+dx, dy-s.Y, s.Width, s.Height, r.layer)
		if r.tstamps {
			fmt.Fprintf(&buf, " (tstamp %s)", padUUID(r.name, i))
		}
		buf.WriteString(")\n")
	}
	buf.WriteString(")\n")
	return buf.Bytes()
}

func (r *kicadRenderer) padName(n idc.Net) string {
	if n == idc.NetB {
		return r.padB
	}
	return r.padA
}

func (r *kicadRenderer) writeHeader(buf *bytes.Buffer, l idc.Layout) {
	p := l.Params
	fmt.Fprintln(buf, headerRule)
	fmt.Fprintf(buf, "# Autogenerated by %s.\n", buildinfo.Generator())
	fmt.Fprintln(buf, headerRule)
	fmt.Fprintf(buf, "# Date: %s\n", r.timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(buf, "# Parameters: track_width=%s gap=%s total_width=%s finger_length=%s num_fingers=%d connecting_track_width=%s\n",
		mm(p.TrackWidth), mm(p.Gap), mm(p.TotalWidth), mm(l.FingerLength), p.NumFingers, mm(p.ConnectingTrackWidth))
	fmt.Fprintf(buf, "# Total Width: %smm, Span: %smm, Pitch: %smm\n", mm(l.Height()), mm(l.Width()), mm(l.Pitch))
	fmt.Fprintln(buf, headerRule)
}

// padUUID derives a stable pad identifier from the footprint name and the
// pad's position in emission order.
func padUUID(name string, i int) uuid.UUID {
	return uuid.NewSHA1(padNamespace, []byte(name+"/"+strconv.Itoa(i)))
}

// mm formats a length with at most six decimals and no trailing zeros.
func mm(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Filename returns the conventional footprint file name for a parameter
// set, e.g. "IDC_tw0.8_ctw0.8_g0.5_w15_n40.kicad_mod". In finger-length
// mode the width field is replaced by the finger length ("_fl15").
func Filename(name string, p idc.Parameters) string {
	r := p.Resolve()
	size := "w" + mm(r.TotalWidth)
	if p.UsesFingerLength() {
		size = "fl" + mm(p.FingerLength)
	}
	return fmt.Sprintf("%s_tw%s_ctw%s_g%s_%s_n%d%s",
		name, mm(r.TrackWidth), mm(r.ConnectingTrackWidth), mm(r.Gap), size, r.NumFingers, KiCadExt)
}
