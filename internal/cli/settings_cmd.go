package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/plannerhub/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change application settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := app.Settings.Get()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(settings))
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:       "dark-mode on|off",
			Short:     "Switch dark mode",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"on", "off"},
			RunE: func(cmd *cobra.Command, args []string) error {
				on, err := parseOnOff(args[0])
				if err != nil {
					return err
				}
				if err := app.Settings.SetDarkMode(cmd.Context(), on); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Dark mode %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "backup-name NAME",
			Short: "Set the base name of exported backups",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Settings.SetBackupName(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Backup name set to %s\n", strings.TrimSpace(args[0]))
				return nil
			},
		},
	)

	return cmd
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}
