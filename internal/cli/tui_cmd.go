package cli

import (
	"fmt"

	"github.com/alexanderramin/plannerhub/internal/routes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the planner interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive {
				return fmt.Errorf("tui requires an interactive terminal")
			}
			m := newPlannerModel(cmd.Context(), app, path)
			_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", routes.Root, "Path to open first")

	return cmd
}
