package cli

import (
	"fmt"

	"github.com/alexanderramin/plannerhub/internal/cli/formatter"
	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login [USERNAME]",
		Short: "Identify as a planner user",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var username string
			switch {
			case len(args) == 1:
				username = args[0]
			case app.IsInteractive:
				var err error
				if username, err = promptUsername(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("username is required")
			}

			u, err := app.Users.Identify(cmd.Context(), username)
			if err != nil {
				return fmt.Errorf("%w: %q", err, username)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", u.Username, u.Permission)
			return nil
		},
	}
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out the active user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Users.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List and manage planner users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUsers(users))
			return nil
		},
	}

	cmd.AddCommand(newUsersAddCmd(app), newUsersRemoveCmd(app))

	return cmd
}

func newUsersAddCmd(app *App) *cobra.Command {
	var name, permission string

	cmd := &cobra.Command{
		Use:   "add USERNAME",
		Short: "Add a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Users.Add(cmd.Context(), name, args[0], domain.Permission(permission))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added user %s (%s) %s\n", u.Username, u.Permission, formatter.TruncID(u.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the username)")
	cmd.Flags().StringVar(&permission, "permission", string(domain.PermissionRead), "Permission: full or read")

	return cmd
}

func newUsersRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm USERNAME",
		Aliases: []string{"remove"},
		Short:   "Remove a user",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && app.IsInteractive {
				ok, err := confirm(fmt.Sprintf("Remove user %s?", args[0]), "They will no longer be able to sign in.")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if err := app.Users.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed user %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
