// Package pipeline provides the generation pipeline for idcgen.
//
// This package implements the complete synthesize → verify → render
// pipeline used by every CLI command. Centralizing it keeps defaults,
// validation and format handling identical no matter which entry point
// produced the footprint.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Synthesize: Validate the parameters and compute the comb geometry
//  2. Render: Generate output in each requested format (KiCad, JSON, SVG, ...)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Params: idc.Parameters{
//	        TrackWidth: 0.8,
//	        Gap:        0.5,
//	        TotalWidth: 15,
//	        NumFingers: 40,
//	    },
//	    Formats: []string{"kicad_mod", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mod := result.Artifacts["kicad_mod"]
//
// Render an existing layout, for example one read back with [sink.ReadJSON]:
//
//	artifacts, err := runner.Render(ctx, layout, renderOpts)
//
// [sink.ReadJSON]: github.com/combcap/idcgen/pkg/sink.ReadJSON
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/combcap/idcgen/pkg/cache"
	"github.com/combcap/idcgen/pkg/errors"
	"github.com/combcap/idcgen/pkg/idc"
	"github.com/combcap/idcgen/pkg/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for every command
// =============================================================================

const (
	// DefaultName is the default footprint name.
	DefaultName = sink.DefaultName

	// DefaultLayer is the default copper layer.
	DefaultLayer = sink.DefaultLayer

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0

	// DefaultPixelsPerMM is the default preview resolution.
	DefaultPixelsPerMM = sink.DefaultPixelsPerMM
)

// Format constants for output formats.
const (
	FormatKiCad  = "kicad_mod"
	FormatJSON   = "json"
	FormatSVG    = "svg"
	FormatPDF    = "pdf"
	FormatPNG    = "png"
	FormatDOT    = "dot"
	FormatNetSVG = "netsvg"
)

// DefaultFormats are rendered when no format is requested.
var DefaultFormats = []string{FormatKiCad}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatKiCad:  true,
	FormatJSON:   true,
	FormatSVG:    true,
	FormatPDF:    true,
	FormatPNG:    true,
	FormatDOT:    true,
	FormatNetSVG: true,
}

var extensions = map[string]string{
	FormatKiCad:  sink.KiCadExt,
	FormatJSON:   ".json",
	FormatSVG:    ".svg",
	FormatPDF:    ".pdf",
	FormatPNG:    ".png",
	FormatDOT:    ".dot",
	FormatNetSVG: ".nets.svg",
}

// Extension returns the file extension, including the leading dot, of an
// output format. Unknown formats map to "." + format.
func Extension(format string) string {
	if ext, ok := extensions[format]; ok {
		return ext
	}
	return "." + format
}

// FormatNames returns the supported formats in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the generation pipeline.
type Options struct {
	// Synthesis options
	Params idc.Parameters `json:"params"`

	// Footprint options
	Name     string `json:"name,omitempty"`
	Layer    string `json:"layer,omitempty"`
	Header   bool   `json:"header,omitempty"`   // Prepend the "#" comment block to KiCad output
	Centered bool   `json:"centered,omitempty"` // Place the footprint origin at the centre

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Scale       float64  `json:"scale,omitempty"`         // PNG scale factor
	PixelsPerMM float64  `json:"pixels_per_mm,omitempty"` // SVG preview resolution
	Dimensions  bool     `json:"dimensions,omitempty"`    // Annotate previews with dimensions

	// Runtime options (not serialized)
	Logger    *log.Logger `json:"-"`
	Timestamp time.Time   `json:"-"` // Pins the KiCad tedit stamp; zero means now
	Cache     cache.Cache `json:"-"` // Reuses converted PDF, PNG and net SVG output; nil disables

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the synthesized geometry.
	Layout idc.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Fingers       int
	FingersA      int
	FingersB      int
	Segments      int
	SynthesisTime time.Duration
	RenderTime    time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates while keeping the first occurrence order.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the footprint and render options and applies
// defaults. Geometry parameters are validated by the synthesizer itself.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Layer == "" {
		o.Layer = DefaultLayer
	}
	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.PixelsPerMM == 0 {
		o.PixelsPerMM = DefaultPixelsPerMM
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := errors.ValidateFootprintName(o.Name); err != nil {
		return err
	}
	if err := errors.ValidateLayer(o.Layer); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidatePositive("scale", o.Scale); err != nil {
		return err
	}
	return errors.ValidatePositive("pixels_per_mm", o.PixelsPerMM)
}

// HasFormat reports whether format is requested.
func (o *Options) HasFormat(format string) bool {
	return slices.Contains(o.Formats, format)
}
