// Package sink provides output format renderers for capacitor layouts.
//
// # Overview
//
// A "sink" transforms a computed [idc.Layout] into a final output format.
// This package provides renderers for:
//
//   - KiCad: a .kicad_mod footprint with one SMD pad per segment
//   - JSON: layout data export, and import via [ReadJSON]
//   - SVG: a scaled preview of the copper
//   - PDF/PNG: the SVG preview converted with rsvg-convert
//   - DOT: a net connectivity diagram, rendered to SVG with Graphviz
//
// # KiCad Output
//
// [RenderKiCad] writes the footprint header, then the two bus bars, then
// the fingers in index order. Each net maps to one pad name ("1" for net A
// and "2" for net B unless overridden with [WithPadNames]), so KiCad treats
// all copper of a net as a single multi-shape pad.
//
//	mod := sink.RenderKiCad(l,
//	    sink.WithName("IDC"),
//	    sink.WithLayer("F.Cu"),
//	    sink.WithHeader(),
//	)
//
// Pad timestamps are name-based UUIDs, so output only varies with the
// footprint timestamp, which [WithTimestamp] pins for reproducible files.
//
// # JSON Output
//
// [RenderJSON] exports the parameters and every segment. [ReadJSON] reads the
// document back and re-verifies the geometry, so a hand-edited layout that
// breaks the comb invariants is rejected before it reaches another sink.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the SVG preview and convert it via
// [ToPDF] and [ToPNG]. These require librsvg to be installed:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [idc.Layout]: github.com/combcap/idcgen/pkg/idc.Layout
package sink
