package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/drinkmenu/internal/menu"
)

// ListCmd returns the `drinkmenu list` command.
func ListCmd(opts *Options) *cobra.Command {
	var query string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the drinks matching a query",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			sess, err := opts.Open()
			if err != nil {
				return err
			}
			defer sess.Close()

			m := menu.New(sess.Drinks, menu.WithLanguage(sess.Tag))
			m.SetQuery(query)
			sess.Logger.Debug("list", "query", query, "matches", m.Count())

			out := c.OutOrStdout()
			if asJSON {
				return writeJSON(out, m.View())
			}
			writeList(out, m)
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive text to match in name, category or description")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the matching drinks as JSON")
	return cmd
}

func writeJSON(out io.Writer, drinks []menu.Drink) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(drinks); err != nil {
		return fmt.Errorf("encode drinks: %w", err)
	}
	return nil
}

func writeList(out io.Writer, m *menu.Menu) {
	if m.ShowCount() {
		fmt.Fprintln(out, menu.CountLabel(m.Count()))
	}
	if m.Empty() {
		fmt.Fprintln(out, menu.EmptyMessage(m.Query()))
		return
	}
	for _, d := range m.View() {
		line := d.Name
		if len(d.Categories) > 0 {
			line += "  [" + strings.Join(d.Categories, ", ") + "]"
		}
		if d.HasPrice() {
			line += "  " + menu.FormatPrice(*d.Price)
		}
		fmt.Fprintln(out, line)
		if d.HasDescription() {
			fmt.Fprintln(out, "    "+d.Description)
		}
	}
}
