package sink

import (
	"bytes"
	"fmt"

	"github.com/combcap/idcgen/pkg/idc"
)

const (
	// DefaultPixelsPerMM is the preview resolution used when none is given.
	DefaultPixelsPerMM = 20.0

	defaultColorA = "#c0392b"
	defaultColorB = "#2471a3"
	svgMargin     = 1.0 // mm around the copper
)

// SVGOption configures SVG preview rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	pxPerMM    float64
	colorA     string
	colorB     string
	dimensions bool
}

// WithPixelsPerMM sets the preview scale. Non-positive values are ignored.
func WithPixelsPerMM(px float64) SVGOption {
	return func(r *svgRenderer) {
		if px > 0 {
			r.pxPerMM = px
		}
	}
}

// WithNetColors sets the fill colours of net A and net B.
func WithNetColors(a, b string) SVGOption {
	return func(r *svgRenderer) { r.colorA, r.colorB = a, b }
}

// WithDimensions annotates the preview with the span and total width.
func WithDimensions() SVGOption { return func(r *svgRenderer) { r.dimensions = true } }

// RenderSVG renders a top view of the copper. Coordinates are in
// millimetres inside the viewBox; width and height are scaled to pixels.
// The y axis is flipped so bar A is drawn at the bottom.
func RenderSVG(l idc.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{pxPerMM: DefaultPixelsPerMM, colorA: defaultColorA, colorB: defaultColorB}
	for _, opt := range opts {
		opt(&r)
	}

	margin := svgMargin
	if r.dimensions {
		margin *= 3
	}
	w := l.Width() + 2*margin
	h := l.Height() + 2*margin
	top := l.Bounds.URy + margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%.0f" height="%.0f">`+"\n",
		mm(l.Bounds.LLx-margin), mm(-top), mm(w), mm(h), w*r.pxPerMM, h*r.pxPerMM)
	fmt.Fprintf(&buf, `  <rect class="board" x="%s" y="%s" width="%s" height="%s" fill="#f4f1e8"/>`+"\n",
		mm(l.Bounds.LLx-margin), mm(-top), mm(w), mm(h))

	for _, s := range l.Segments() {
		fmt.Fprintf(&buf, `  <rect class="%s net-%s" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			s.Kind, s.Net, mm(s.Left()), mm(-s.Top()), mm(s.Width), mm(s.Height), r.color(s.Net))
	}

	if r.dimensions {
		renderDimensions(&buf, l, margin)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) color(n idc.Net) string {
	if n == idc.NetB {
		return r.colorB
	}
	return r.colorA
}

func renderDimensions(buf *bytes.Buffer, l idc.Layout, margin float64) {
	font := margin / 2
	below := -l.Bounds.LLy + margin/2
	left := l.Bounds.LLx - margin/2

	fmt.Fprintf(buf, `  <g class="dimensions" stroke="#555" stroke-width="%s" fill="#555" font-family="sans-serif" font-size="%s">`+"\n",
		mm(font/10), mm(font))
	fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
		mm(l.Bounds.LLx), mm(below), mm(l.Bounds.URx), mm(below))
	fmt.Fprintf(buf, `    <text x="%s" y="%s" text-anchor="middle" stroke="none">%s mm</text>`+"\n",
		mm((l.Bounds.LLx+l.Bounds.URx)/2), mm(below+font), mm(l.Width()))
	fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n",
		mm(left), mm(-l.Bounds.URy), mm(left), mm(-l.Bounds.LLy))
	fmt.Fprintf(buf, `    <text x="%s" y="%s" text-anchor="end" stroke="none">%s mm</text>`+"\n",
		mm(left-font/4), mm(-(l.Bounds.LLy+l.Bounds.URy)/2), mm(l.Height()))
	buf.WriteString("  </g>\n")
}
