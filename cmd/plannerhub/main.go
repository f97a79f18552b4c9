package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/plannerhub/internal/cli"
	"github.com/alexanderramin/plannerhub/internal/config"
	"github.com/alexanderramin/plannerhub/internal/db"
	"github.com/alexanderramin/plannerhub/internal/defaults"
	"github.com/alexanderramin/plannerhub/internal/repository"
	"github.com/alexanderramin/plannerhub/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	store := repository.NewJournaledDocumentStore(database, uow)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire services
	loader := service.NewLoader(store, defaults.FromPath(cfg.DefaultDocument), nil, observers...)
	state := service.NewStateManager(store, loader, nil, observers...)
	ids := service.NewIDGenerator(nil)

	app := &cli.App{
		State:     state,
		Todos:     service.NewTodoService(state, ids, observers...),
		Notes:     service.NewNoteService(state, ids, observers...),
		Schedule:  service.NewScheduleService(state, ids, observers...),
		Users:     service.NewUserService(state, observers...),
		Settings:  service.NewSettingsService(state, observers...),
		Dashboard: service.NewDashboardService(state),
		Backup:    service.NewBackupService(state, nil, observers...),
		Status:    service.NewStatusService(state, store, observers...),

		BackupDir:     cfg.BackupDir,
		IsInteractive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
