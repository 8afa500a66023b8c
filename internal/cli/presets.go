package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/combcap/idcgen/pkg/config"
)

// presetsCommand creates the presets command with its subcommands.
func (c *CLI) presetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List and use named parameter presets",
		Long: `List and use named parameter presets.

Presets are read from the built-in set and the preset file
($XDG_CONFIG_HOME/idcgen/presets.toml, or --config). A preset file may be
TOML or YAML; presets in the file replace built-in ones of the same name.`,
	}

	cmd.AddCommand(c.presetsListCommand())
	cmd.AddCommand(c.presetsPickCommand())
	cmd.AddCommand(c.presetsPathCommand())

	return cmd
}

func (c *CLI) presetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available presets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadPresets()
			if err != nil {
				return err
			}
			return printPresets(cfg)
		},
	}
}

func (c *CLI) presetsPickCommand() *cobra.Command {
	var render renderFlags

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a preset interactively and generate its footprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadPresets()
			if err != nil {
				return err
			}
			model, err := NewPresetListModel(cfg)
			if err != nil {
				return err
			}
			if len(model.Items) == 0 {
				printWarning("No presets defined")
				return nil
			}

			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return fmt.Errorf("preset picker: %w", err)
			}
			selected := final.(PresetListModel).Selected
			if selected == nil {
				printInfo("Cancelled")
				return nil
			}

			c.Logger.Debug("preset selected", "name", selected.Name)
			return c.runGenerate(cmd.Context(), selected.Preset, &render)
		},
	}

	render.register(cmd, defaultOutDir)

	return cmd
}

func (c *CLI) presetsPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the preset file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// printPresets prints the resolved presets as a table.
func printPresets(cfg *config.Config) error {
	names := cfg.Names()
	if len(names) == 0 {
		printWarning("No presets defined")
		return nil
	}

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		p, err := cfg.Resolve(name)
		if err != nil {
			return err
		}
		rows = append(rows, presetRow(PresetItem{Name: name, Preset: p}))
	}

	t := presetTable(presetHeaders, rows).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return presetHeaderStyle
			case col == 0:
				return StyleNumber
			case col == len(presetHeaders)-1:
				return StyleDim
			}
			return StyleValue
		})

	fmt.Println(StyleTitle.Render("Presets"))
	fmt.Println(t.Render())
	if path := cfg.Path(); path != "" {
		printKeyValue("Preset file", path)
	}
	return nil
}
