package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/plannerhub/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all services used by CLI commands.
type App struct {
	State     service.StateManager
	Todos     service.TodoService
	Notes     service.NoteService
	Schedule  service.ScheduleService
	Users     service.UserService
	Settings  service.SettingsService
	Dashboard service.DashboardService
	Backup    service.BackupService
	Status    service.StatusService

	// BackupDir is where `export` writes when --dir is not given.
	BackupDir string
	// IsInteractive enables prompts. Without a terminal, commands that would
	// prompt require their flags instead.
	IsInteractive bool
	Now           func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// ensureLoaded loads the planner document once per process.
func (a *App) ensureLoaded(ctx context.Context) error {
	if a.State.Current() != nil {
		return nil
	}
	return a.State.Load(ctx)
}

// NewRootCmd creates the top-level "plannerhub" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "plannerhub",
		Short:         "Personal planner: to-do lists, notes and an agenda",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.ensureLoaded(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app)
		},
	}

	root.AddCommand(
		newStatusCmd(app),
		newSaveCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newResetCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newUsersCmd(app),
		newMenuCmd(app),
		newOpenCmd(app),
		newDashboardCmd(app),
		newTodoCmd(app),
		newNoteCmd(app),
		newScheduleCmd(app),
		newSettingsCmd(app),
		newTUICmd(app),
	)

	return root
}
