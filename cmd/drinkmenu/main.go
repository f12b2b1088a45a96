package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/drinkmenu/internal/cmd"
	"github.com/gravitrone/drinkmenu/internal/menu"
	"github.com/gravitrone/drinkmenu/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	opts := &cmd.Options{}
	root := &cobra.Command{
		Use:   "drinkmenu",
		Short: "Drink menu - search and filter drinks",
		Long:  "drinkmenu: browse a drink menu, search by name, category or description, and filter by category.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.Bind(root.PersistentFlags())

	root.AddCommand(cmd.ListCmd(opts))
	root.AddCommand(cmd.CategoriesCmd(opts))
	root.AddCommand(cmd.UseCmd())
	return root
}

func runTUI(opts *cmd.Options) error {
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return fmt.Errorf("not a terminal; use 'drinkmenu list' instead")
	}

	sess, err := opts.Open()
	if err != nil {
		return err
	}
	defer sess.Close()

	m := menu.New(sess.Drinks, menu.WithLanguage(sess.Tag))
	model := ui.NewMenuModel(m, sess.Logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
