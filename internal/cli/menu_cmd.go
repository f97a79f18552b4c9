package cli

import (
	"fmt"

	"github.com/alexanderramin/plannerhub/internal/cli/formatter"
	"github.com/alexanderramin/plannerhub/internal/routes"
	"github.com/spf13/cobra"
)

func newMenuCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "List the planner's navigation menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := app.State.Current()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMenu(doc, routes.Menu(doc), ""))
			return nil
		},
	}
}

func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open PATH",
		Short: "Open a planner view by path, e.g. /pro-todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route := routes.Resolve(app.State.Current(), args[0], app.State.IsAuthenticated())
			out, err := renderRoute(app, route)
			if err != nil {
				return err
			}
			if route.Redirected {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("→ "+route.Path))
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's tasks, the latest note and upcoming appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}
}

func runDashboard(cmd *cobra.Command, app *App) error {
	out, err := renderRoute(app, routes.Resolve(app.State.Current(), routes.Root, app.State.IsAuthenticated()))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
