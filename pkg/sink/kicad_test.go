package sink

import (
	"strings"
	"testing"
	"time"

	"github.com/combcap/idcgen/pkg/idc"
)

var fixedTime = time.Unix(0x5F5E1000, 0).UTC()

// smallParams yields two fingers with exactly representable coordinates.
var smallParams = idc.Parameters{TrackWidth: 1, Gap: 0.5, TotalWidth: 5, NumFingers: 2}

func mustLayout(t *testing.T, p idc.Parameters) idc.Layout {
	t.Helper()
	l, err := idc.Synthesize(p)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	return l
}

func TestRenderKiCad(t *testing.T) {
	l := mustLayout(t, smallParams)

	got := string(RenderKiCad(l, WithTimestamp(fixedTime), WithoutTstamps()))
	want := `(footprint IDC (layer F.Cu) (tedit 5F5E1000)
  (pad 1 smd rect (at 1.250000 4.500000) (size 2.500000 1.000000) (layers F.Cu))
  (pad 2 smd rect (at 1.250000 0.500000) (size 2.500000 1.000000) (layers F.Cu))
  (pad 1 smd rect (at 0.500000 2.750000) (size 1.000000 2.500000) (layers F.Cu))
  (pad 2 smd rect (at 2.000000 2.250000) (size 1.000000 2.500000) (layers F.Cu))
)
`
	if got != want {
		t.Errorf("RenderKiCad() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderKiCadOptions(t *testing.T) {
	l := mustLayout(t, smallParams)

	got := string(RenderKiCad(l,
		WithName("C_comb"),
		WithLayer("B.Cu"),
		WithPadNames("A", "B"),
		WithTimestamp(fixedTime),
		WithCentered(),
		WithoutTstamps(),
	))

	for _, want := range []string{
		"(footprint C_comb (layer B.Cu)",
		"(pad A smd rect (at 0.000000 2.000000) (size 2.500000 1.000000) (layers B.Cu))",
		"(pad B smd rect (at 0.000000 -2.000000) (size 2.500000 1.000000) (layers B.Cu))",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderKiCad() missing %q in\n%s", want, got)
		}
	}
	if strings.Contains(got, "F.Cu") {
		t.Error("RenderKiCad() still mentions F.Cu after WithLayer(B.Cu)")
	}
}

func TestRenderKiCadTstamps(t *testing.T) {
	l := mustLayout(t, idc.Parameters{TrackWidth: 0.8, Gap: 0.5, TotalWidth: 15, NumFingers: 40})

	first := RenderKiCad(l, WithTimestamp(fixedTime))
	second := RenderKiCad(l, WithTimestamp(fixedTime))
	if string(first) != string(second) {
		t.Error("RenderKiCad() is not deterministic with a pinned timestamp")
	}

	if got := strings.Count(string(first), "(pad "); got != 42 {
		t.Errorf("pad count = %d, want 42", got)
	}

	seen := make(map[string]bool)
	for i := range 42 {
		id := padUUID(DefaultName, i).String()
		if seen[id] {
			t.Fatalf("padUUID(%d) = %s repeats an earlier pad", i, id)
		}
		seen[id] = true
		if !strings.Contains(string(first), "(tstamp "+id+")") {
			t.Errorf("output missing tstamp of pad %d", i)
		}
	}
}

func TestRenderKiCadHeader(t *testing.T) {
	l := mustLayout(t, smallParams)
	got := string(RenderKiCad(l, WithTimestamp(fixedTime), WithHeader()))

	if !strings.HasPrefix(got, headerRule+"\n# Autogenerated by idcgen") {
		t.Errorf("header prefix = %q", got[:80])
	}
	for _, want := range []string{
		"# Date: " + fixedTime.Format("2006-01-02 15:04:05"),
		"num_fingers=2",
		"# Total Width: 5mm, Span: 2.5mm, Pitch: 1.5mm",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("header missing %q", want)
		}
	}

	body := got[strings.Index(got, "(footprint"):]
	if strings.Contains(body, "#") {
		t.Error("comment lines found after the footprint opened")
	}
}

func TestMM(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{15, "15"},
		{100, "100"},
		{0.8, "0.8"},
		{0.25, "0.25"},
		{0.1 + 0.2, "0.3"},
		{1.0000004, "1"},
		{-2.5, "-2.5"},
	}
	for _, tt := range tests {
		if got := mm(tt.in); got != tt.want {
			t.Errorf("mm(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name   string
		params idc.Parameters
		want   string
	}{
		{
			name:   "total width",
			params: idc.Parameters{TrackWidth: 0.8, Gap: 0.5, TotalWidth: 15, NumFingers: 40},
			want:   "IDC_tw0.8_ctw0.8_g0.5_w15_n40.kicad_mod",
		},
		{
			name:   "finger length",
			params: idc.Parameters{TrackWidth: 0.5, Gap: 0.25, FingerLength: 4, NumFingers: 4},
			want:   "IDC_tw0.5_ctw0.5_g0.25_fl4_n4.kicad_mod",
		},
		{
			name:   "explicit bar width",
			params: idc.Parameters{TrackWidth: 0.3, Gap: 0.2, TotalWidth: 8, NumFingers: 9, ConnectingTrackWidth: 1},
			want:   "IDC_tw0.3_ctw1_g0.2_w8_n9.kicad_mod",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(DefaultName, tt.params); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}
