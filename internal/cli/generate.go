package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/combcap/idcgen/pkg/config"
	"github.com/combcap/idcgen/pkg/pipeline"
	"github.com/combcap/idcgen/pkg/sink"
)

// paramFlags holds the geometry and footprint flags shared by generate and
// layout. Only flags the user actually set override preset values.
type paramFlags struct {
	preset string

	name  string
	layer string

	trackWidth           float64
	gap                  float64
	totalWidth           float64
	fingerLength         float64
	numFingers           int
	connectingTrackWidth float64
	maxAspectRatio       float64
}

func (f *paramFlags) register(c *CLI, cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "start from a named preset (see 'idcgen presets list')")
	cmd.Flags().StringVarP(&f.name, "name", "m", "", "footprint name (default IDC)")
	cmd.Flags().StringVar(&f.layer, "layer", "", "copper layer: F.Cu (default), B.Cu or InN.Cu")
	cmd.Flags().Float64VarP(&f.trackWidth, "track-width", "t", 0, "width of each finger in mm")
	cmd.Flags().Float64VarP(&f.gap, "gap", "g", 0, "gap between fingers in mm")
	cmd.Flags().Float64VarP(&f.totalWidth, "total-width", "w", 0, "total width of the capacitor in mm, bus bars included")
	cmd.Flags().Float64VarP(&f.fingerLength, "finger-length", "f", 0, "length of each finger in mm (overrides --total-width)")
	cmd.Flags().IntVarP(&f.numFingers, "num-fingers", "n", 0, "number of fingers")
	cmd.Flags().Float64VarP(&f.connectingTrackWidth, "connecting-track-width", "c", 0, "bus bar width in mm (default: track width)")
	cmd.Flags().Float64Var(&f.maxAspectRatio, "max-aspect-ratio", 0, "largest allowed span / total width ratio (default 10)")

	_ = cmd.RegisterFlagCompletionFunc("preset", c.completePresets)
	_ = cmd.RegisterFlagCompletionFunc("layer", completeLayers)
}

// onto returns base with every flag the user set applied. Explicit values
// replace the preset's even when they are zero or negative, so validation
// sees exactly what was typed.
func (f *paramFlags) onto(cmd *cobra.Command, base config.Preset) config.Preset {
	p := base
	changed := cmd.Flags().Changed
	if changed("name") && f.name != "" {
		p.Name = f.name
	}
	if changed("layer") && f.layer != "" {
		p.Layer = f.layer
	}
	if changed("track-width") {
		p.TrackWidth = f.trackWidth
	}
	if changed("gap") {
		p.Gap = f.gap
	}
	if changed("total-width") {
		p.TotalWidth = f.totalWidth
		if !changed("finger-length") {
			p.FingerLength = 0
		}
	}
	if changed("finger-length") {
		p.FingerLength = f.fingerLength
		if !changed("total-width") {
			p.TotalWidth = 0
		}
	}
	if changed("num-fingers") {
		p.NumFingers = f.numFingers
	}
	if changed("connecting-track-width") {
		p.ConnectingTrackWidth = f.connectingTrackWidth
	}
	if changed("max-aspect-ratio") {
		p.MaxAspectRatio = f.maxAspectRatio
	}
	return p
}

// resolve applies the set flags over the selected preset and the defaults.
func (f *paramFlags) resolve(cmd *cobra.Command, cfg *config.Config) (config.Preset, error) {
	base, err := cfg.Resolve(f.preset)
	if err != nil {
		return config.Preset{}, err
	}
	return f.onto(cmd, base), nil
}

// renderFlags holds the output flags shared by generate and render.
type renderFlags struct {
	formats    string
	outDir     string
	output     string
	noHeader   bool
	centered   bool
	dimensions bool
	scale      float64
	noCache    bool
}

func (f *renderFlags) register(cmd *cobra.Command, defaultDir string) {
	cmd.Flags().StringVar(&f.formats, "format", pipeline.FormatKiCad,
		"output format(s): "+strings.Join(pipeline.FormatNames(), ", ")+" (comma-separated)")
	cmd.Flags().StringVarP(&f.outDir, "out-dir", "d", defaultDir, "output directory")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&f.noHeader, "no-header", false, "omit the comment header in KiCad output")
	cmd.Flags().BoolVar(&f.centered, "centered", false, "place the footprint origin at its centre")
	cmd.Flags().BoolVar(&f.dimensions, "dimensions", false, "annotate previews with dimensions")
	cmd.Flags().Float64Var(&f.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "always re-run PDF, PNG and net diagram conversion")

	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
}

func (f *renderFlags) apply(c *CLI, opts *pipeline.Options) {
	opts.Formats = pipeline.ParseFormats(f.formats)
	opts.Header = !f.noHeader
	opts.Centered = f.centered
	opts.Dimensions = f.dimensions
	opts.Scale = f.scale
	if needsConversion(opts.Formats) {
		opts.Cache = c.openCache(f.noCache)
	}
}

// needsConversion reports whether any format goes through an external or
// WebAssembly converter.
func needsConversion(formats []string) bool {
	for _, f := range formats {
		switch f {
		case pipeline.FormatPDF, pipeline.FormatPNG, pipeline.FormatNetSVG:
			return true
		}
	}
	return false
}

// generateCommand creates the generate command, the main entry point for
// producing footprints.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		params paramFlags
		render renderFlags
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate an interdigitated capacitor footprint",
		Long: `Generate an interdigitated capacitor footprint.

The capacitor is two interleaved combs: fingers of net A grow from the bottom
bus bar, fingers of net B hang from the top one. Geometry comes from a preset
(--preset), explicit flags, or both; explicit flags win.

Files are written to ./idc.pretty by default, named after the parameters,
e.g. IDC_tw0.8_ctw0.8_g0.5_w15_n40.kicad_mod. Nothing is written if any
parameter is invalid.`,
		Example: `  idcgen generate -m C1 -t 0.8 -g 0.5 -w 15 -n 40
  idcgen generate -t 0.3 -g 0.2 -f 6 -n 12 --format kicad_mod,svg
  idcgen generate --preset reference -n 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadPresets()
			if err != nil {
				return err
			}
			preset, err := params.resolve(cmd, cfg)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), preset, &render)
		},
	}

	params.register(c, cmd)
	render.register(cmd, defaultOutDir)

	return cmd
}

// runGenerate synthesizes the preset, renders every format in memory and
// only then writes the files.
func (c *CLI) runGenerate(ctx context.Context, preset config.Preset, render *renderFlags) error {
	logger := loggerFromContext(ctx)

	opts := pipeline.Options{
		Params: preset.Parameters(),
		Name:   preset.Name,
		Layer:  preset.Layer,
		Logger: logger,
	}
	render.apply(c, &opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	prog := newProgress(logger)
	spinner := newSpinner(ctx, c.status, fmt.Sprintf("Generating %s...", opts.Name))
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return fmt.Errorf("generate %s: %w", opts.Name, err)
	}

	base := strings.TrimSuffix(sink.Filename(opts.Name, result.Layout.Params), sink.KiCadExt)
	paths := outputPaths(render.outDir, base, render.output, opts.Formats)

	spinner.SetMessage(fmt.Sprintf("Writing %d file(s)...", len(paths)))
	written, err := writeArtifacts(ctx, result.Artifacts, paths, opts.Formats)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(written)))

	printSuccess("Generated %s", opts.Name)
	for _, path := range written {
		printFile(path)
	}
	printSummary(result.Layout)
	if p, ok := paths[pipeline.FormatJSON]; ok {
		printNextStep("Re-render", "idcgen render "+p+" --format svg")
	}
	return nil
}
