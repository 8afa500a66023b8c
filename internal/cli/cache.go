package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/combcap/idcgen/pkg/cache"
)

// openCache returns the preview conversion cache, or nil when disabled or
// unavailable. A cache that cannot be opened only costs speed, so the
// failure is logged rather than returned.
func (c *CLI) openCache(disabled bool) cache.Cache {
	if disabled {
		return nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "error", err)
		return nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("cache disabled", "dir", dir, "error", err)
		return nil
	}
	return fc
}

// cacheCommand creates the cache command for managing converted previews.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the preview conversion cache",
		Long: `Manage the preview conversion cache.

PDF, PNG and net diagram output is cached under $XDG_CACHE_HOME/idcgen
(default ~/.cache/idcgen), keyed by the document it was converted from.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all cached previews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cache.DefaultDir()
			if err != nil {
				return err
			}
			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			n, err := fc.Clear()
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			printSuccess("Removed %d cached preview(s)", n)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cache.DefaultDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	})

	return cmd
}
