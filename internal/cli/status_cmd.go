package cli

import (
	"fmt"

	"github.com/alexanderramin/plannerhub/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var history int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show save status, signed-in user and store revision",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Status.GetStatus(cmd.Context(), history)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(report, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&history, "history", 0, "Show the last N store writes")

	return cmd
}
