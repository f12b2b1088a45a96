package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitrone/drinkmenu/internal/menu"
)

// CategoriesCmd returns the `drinkmenu categories` command.
func CategoriesCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print every category in first-seen order",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			sess, err := opts.Open()
			if err != nil {
				return err
			}
			defer sess.Close()

			cats := menu.Categories(sess.Drinks)
			if len(cats) == 0 {
				fmt.Fprintln(c.OutOrStdout(), "no categories")
				return nil
			}
			for _, cat := range cats {
				fmt.Fprintln(c.OutOrStdout(), cat)
			}
			return nil
		},
	}
}
