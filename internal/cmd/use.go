package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gravitrone/drinkmenu/internal/config"
	"github.com/gravitrone/drinkmenu/internal/menu"
)

// UseCmd returns the `drinkmenu use` command, which validates a menu file
// and stores it as the default in the config file.
func UseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use PATH",
		Short: "Set the default menu file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			drinks, err := menu.Load(path)
			if err != nil {
				return fmt.Errorf("load menu: %w", err)
			}

			cfg, err := config.Load()
			if err != nil {
				if !errors.Is(err, os.ErrNotExist) {
					return err
				}
				cfg = &config.Config{}
			}
			cfg.MenuPath = path
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save config: %w", err)
			}

			out := c.OutOrStdout()
			fmt.Fprintf(out, "using %s (%d drinks)\n", path, len(drinks))
			fmt.Fprintf(out, "config saved to %s\n", config.Path())
			return nil
		},
	}
}
