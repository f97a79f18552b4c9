package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Mark the planner as saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.State.SaveExplicit(cmd.Context())
			if err != nil {
				return err
			}
			if !saved {
				return fmt.Errorf("nothing to save: planner is not loaded")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved.")
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save and write a timestamped JSON backup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = app.BackupDir
			}
			res, err := app.Backup.Export(cmd.Context(), dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s (%d bytes)\n", res.Path, len(res.Data))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to write the backup into")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the planner with a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Backup.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %q: %d menu items, %d users\n",
				doc.Menu.Title, len(doc.Menu.Items), len(doc.Users))
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the stored planner and reload the default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.IsInteractive {
					return fmt.Errorf("reset discards all planner data; pass --yes to confirm")
				}
				ok, err := confirm("Reset the planner?", "All lists, notes and users are replaced by the default document.")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if err := app.State.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Planner reset to the default document.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
