package sink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/combcap/idcgen/pkg/errors"
	"github.com/combcap/idcgen/pkg/idc"
)

// ToDOT converts a layout to an undirected Graphviz graph of its nets.
//
// Each bus bar and finger is a node. Solid edges join a finger to its own
// bar; dashed edges join adjacent fingers, which always sit on opposite
// nets and form the capacitive coupling of the comb.
func ToDOT(l idc.Layout) string {
	var buf bytes.Buffer
	buf.WriteString("graph IDC {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=14];\n")
	buf.WriteString("\n")

	for _, n := range []idc.Net{idc.NetA, idc.NetB} {
		b := l.Bar(n)
		fmt.Fprintf(&buf, "  %q [label=%q, shape=box3d, fillcolor=%q];\n",
			barID(n), fmt.Sprintf("bar %s\n%s x %s mm", n, mm(b.Width), mm(b.Height)), netFill(n))
	}
	for _, f := range l.Fingers {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n",
			fingerID(f.Index), fmt.Sprintf("%d", f.Index), netFill(f.Net))
	}

	buf.WriteString("\n")
	for _, f := range l.Fingers {
		fmt.Fprintf(&buf, "  %q -- %q;\n", barID(f.Net), fingerID(f.Index))
	}
	for i := 1; i < len(l.Fingers); i++ {
		fmt.Fprintf(&buf, "  %q -- %q [style=dashed, label=%q];\n",
			fingerID(i-1), fingerID(i), mm(l.Params.Gap))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func barID(n idc.Net) string { return "bar_" + n.String() }
func fingerID(i int) string  { return "f" + strconv.Itoa(i) }

func netFill(n idc.Net) string {
	if n == idc.NetB {
		return "#aed6f1"
	}
	return "#f5b7b1"
}

// RenderNetSVG renders a DOT graph to SVG using Graphviz.
func RenderNetSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based root element with a plain
// one whose viewBox starts at the origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
