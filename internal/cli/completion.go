package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/combcap/idcgen/pkg/pipeline"
)

// copperLayers are the layers offered for --layer completion. Inner layers
// (In1.Cu, In2.Cu, ...) are accepted but depend on the board stack-up.
var copperLayers = []string{"F.Cu", "B.Cu"}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for idcgen.

Besides commands and flags, the scripts complete:

  --preset   names from the built-in presets and the preset file
  --layer    the outer copper layers (F.Cu, B.Cu)
  --format   the output formats (kicad_mod, json, svg, ...)

Preset names are read at completion time, so presets added to
presets.toml show up without regenerating the script.

Examples:
  $ source <(idcgen completion bash)
  $ idcgen completion zsh > "${fpath[1]}/_idcgen"
  $ idcgen completion fish > ~/.config/fish/completions/idcgen.fish
  PS> idcgen completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}

	return cmd
}

// completePresets completes --preset with the resolved preset names.
func (c *CLI) completePresets(_ *cobra.Command, _ []string, prefix string) ([]string, cobra.ShellCompDirective) {
	cfg, err := c.loadPresets()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, name := range cfg.Names() {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func completeLayers(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return copperLayers, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats completes the last entry of a comma-separated --format
// list.
func completeFormats(_ *cobra.Command, _ []string, prefix string) ([]string, cobra.ShellCompDirective) {
	done, last := "", prefix
	if i := strings.LastIndex(prefix, ","); i >= 0 {
		done, last = prefix[:i+1], prefix[i+1:]
	}
	var out []string
	for _, f := range pipeline.FormatNames() {
		if strings.HasPrefix(f, last) && !strings.Contains(","+done, ","+f+",") {
			out = append(out, done+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
