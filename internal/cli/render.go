package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/combcap/idcgen/pkg/errors"
	"github.com/combcap/idcgen/pkg/pipeline"
	"github.com/combcap/idcgen/pkg/sink"
)

// renderCommand creates the render command for turning a JSON layout into
// footprints and previews.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		render renderFlags
		name   string
		layer  string
	)

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a JSON layout to footprints and previews",
		Long: `Render a JSON layout to footprints and previews.

The layout (produced by 'layout' or 'generate --format json') is verified
before rendering: nets must alternate, fingers must touch their own bus bar
and no two copper segments may overlap. Output files are written next to the
input unless --out-dir or --output is given.`,
		Example: `  idcgen render IDC_tw0.8_ctw0.8_g0.5_w15_n40.layout.json --format svg,png
  idcgen render cap.layout.json --format kicad_mod --layer B.Cu`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], name, layer, &render)
		},
	}

	render.register(cmd, "")
	cmd.Flags().StringVarP(&name, "name", "m", "", "footprint name (default: from the layout)")
	cmd.Flags().StringVar(&layer, "layer", "", "copper layer (default: from the layout)")
	_ = cmd.RegisterFlagCompletionFunc("layer", completeLayers)

	return cmd
}

// runRender loads and verifies the layout, renders every format and writes
// the files.
func (c *CLI) runRender(ctx context.Context, input, name, layer string, render *renderFlags) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	if err := errors.ValidatePath(input); err != nil {
		return err
	}
	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "layout %s", input)
		}
		return fmt.Errorf("read layout %s: %w", input, err)
	}

	doc, err := sink.ReadJSON(data)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	logger.Debugf("Loaded layout: %d fingers, %d segments", len(doc.Layout.Fingers), len(doc.Layout.Segments()))

	opts := pipeline.Options{
		Name:   firstNonEmpty(name, doc.Name),
		Layer:  firstNonEmpty(layer, doc.Layer),
		Logger: logger,
	}
	render.apply(c, &opts)

	artifacts, err := c.newRunner().Render(ctx, doc.Layout, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	dir := render.outDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	paths := outputPaths(dir, layoutBase(input), render.output, opts.Formats)
	written, err := writeArtifacts(ctx, artifacts, paths, opts.Formats)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", filepath.Base(input))
	for _, path := range written {
		printFile(path)
	}
	return nil
}

// layoutBase strips the directory and the layout or JSON extension.
func layoutBase(input string) string {
	base := filepath.Base(input)
	for _, ext := range []string{layoutExt, ".json"} {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
