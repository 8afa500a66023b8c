package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/combcap/idcgen/pkg/config"
	"github.com/combcap/idcgen/pkg/pipeline"
	"github.com/combcap/idcgen/pkg/sink"
)

// layoutExt is the extension of layout files written by the layout command.
const layoutExt = ".layout.json"

// layoutCommand creates the layout command for exporting synthesized geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		params paramFlags
		outDir string
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute a capacitor layout and write it as JSON",
		Long: `Compute a capacitor layout and write it as JSON.

The layout file lists every bus bar and finger with its net and rectangle.
It can be inspected, version-controlled, and turned into footprints or
previews later with the 'render' command, which re-verifies the geometry.`,
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
			return c.runLayout(cmd.Context(), preset, outDir, output)
		},
	}

	params.register(c, cmd)
	cmd.Flags().StringVarP(&outDir, "out-dir", "d", ".", "output directory")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <name>_<parameters>.layout.json)")

	return cmd
}

// runLayout synthesizes the preset and writes the JSON layout.
func (c *CLI) runLayout(ctx context.Context, preset config.Preset, outDir, output string) error {
	opts := pipeline.Options{
		Params:  preset.Parameters(),
		Name:    preset.Name,
		Layer:   preset.Layer,
		Formats: []string{pipeline.FormatJSON},
		Logger:  loggerFromContext(ctx),
	}

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		name := opts.Name
		if name == "" {
			name = pipeline.DefaultName
		}
		base := strings.TrimSuffix(sink.Filename(name, result.Layout.Params), sink.KiCadExt)
		outputPath = filepath.Join(outDir, base+layoutExt)
	}

	paths := map[string]string{pipeline.FormatJSON: outputPath}
	if _, err := writeArtifacts(ctx, result.Artifacts, paths, opts.Formats); err != nil {
		return err
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printSummary(result.Layout)
	printNextStep("Render", "idcgen render "+outputPath)

	return nil
}
