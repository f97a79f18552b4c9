package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
)

type settingsService struct {
	state    StateManager
	observer UseCaseObserver
}

func NewSettingsService(state StateManager, observers ...UseCaseObserver) SettingsService {
	return &settingsService{
		state:    state,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *settingsService) Get() (domain.AppConfig, error) {
	doc := s.state.Current()
	if doc == nil {
		return domain.AppConfig{}, ErrNotLoaded
	}
	return doc.App, nil
}

func (s *settingsService) SetDarkMode(ctx context.Context, on bool) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "settings-dark-mode", startedAt, map[string]any{"enabled": on}, err)
	}()

	return s.updateApp(ctx, func(app *domain.AppConfig) bool {
		if app.DarkModeEnabled == on {
			return false
		}
		app.DarkModeEnabled = on
		return true
	})
}

func (s *settingsService) SetBackupName(ctx context.Context, name string) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "settings-backup-name", startedAt, map[string]any{"name": name}, err)
	}()

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyText
	}
	return s.updateApp(ctx, func(app *domain.AppConfig) bool {
		if app.BackupFileName == name {
			return false
		}
		app.BackupFileName = name
		return true
	})
}

func (s *settingsService) updateApp(ctx context.Context, fn func(app *domain.AppConfig) bool) error {
	return s.state.Mutate(ctx, func(doc *domain.Document) (*domain.Patch, error) {
		app := doc.App
		if !fn(&app) {
			return nil, nil
		}
		p := domain.AppPatch(app)
		return &p, nil
	})
}
