package sink

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/combcap/idcgen/pkg/idc"
)

func TestRenderSVG(t *testing.T) {
	l := mustLayout(t, idc.Parameters{TrackWidth: 0.8, Gap: 0.5, TotalWidth: 15, NumFingers: 7})
	svg := string(RenderSVG(l))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("RenderSVG() prefix = %q", svg[:40])
	}
	if got := strings.Count(svg, `class="finger `); got != 7 {
		t.Errorf("finger rects = %d, want 7", got)
	}
	if got := strings.Count(svg, `class="bar `); got != 2 {
		t.Errorf("bar rects = %d, want 2", got)
	}
	if got := strings.Count(svg, "net-A"); got != 5 {
		t.Errorf("net A rects = %d, want 5 (bar + 4 fingers)", got)
	}
	if err := xml.Unmarshal([]byte(svg), new(struct{})); err != nil {
		t.Errorf("RenderSVG() is not well-formed XML: %v", err)
	}
}

func TestRenderSVGOptions(t *testing.T) {
	l := mustLayout(t, smallParams)

	tests := []struct {
		name string
		opts []SVGOption
		want []string
	}{
		{
			name: "default scale",
			want: []string{`width="90" height="140"`, defaultColorA, defaultColorB},
		},
		{
			name: "custom scale",
			opts: []SVGOption{WithPixelsPerMM(10)},
			want: []string{`width="45" height="70"`},
		},
		{
			name: "ignores non-positive scale",
			opts: []SVGOption{WithPixelsPerMM(0)},
			want: []string{`width="90" height="140"`},
		},
		{
			name: "net colours",
			opts: []SVGOption{WithNetColors("red", "blue")},
			want: []string{`fill="red"`, `fill="blue"`},
		},
		{
			name: "dimensions",
			opts: []SVGOption{WithDimensions()},
			want: []string{`class="dimensions"`, ">2.5 mm</text>", ">5 mm</text>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := string(RenderSVG(l, tt.opts...))
			for _, w := range tt.want {
				if !strings.Contains(svg, w) {
					t.Errorf("RenderSVG() missing %q", w)
				}
			}
		})
	}
}

func TestRenderSVGFlipsY(t *testing.T) {
	l := mustLayout(t, smallParams)
	svg := string(RenderSVG(l))

	// Bar A spans y in [0, 1], drawn from -1 downwards.
	if !strings.Contains(svg, `class="bar net-A" x="0" y="-1" width="2.5" height="1"`) {
		t.Errorf("bar A not mirrored:\n%s", svg)
	}
	if !strings.Contains(svg, `class="bar net-B" x="0" y="-5" width="2.5" height="1"`) {
		t.Errorf("bar B not mirrored:\n%s", svg)
	}
}
