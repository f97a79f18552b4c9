package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/repository"
)

// StatusReport summarizes the loaded document and, when the store can tell,
// its persisted revision and recent writes.
type StatusReport struct {
	MenuTitle   string
	SaveStatus  domain.SaveStatus
	LastSave    time.Time
	HasLastSave bool
	ActiveUser  *domain.User
	Items       int
	Sections    int
	Entries     int
	BackupName  string
	DarkMode    bool

	Revision  int
	UpdatedAt time.Time
	History   []*repository.StoreWrite
}

type statusService struct {
	state     StateManager
	inspector DocumentInspector
	observer  UseCaseObserver
}

// NewStatusService reports on state. inspector may be nil.
func NewStatusService(state StateManager, inspector DocumentInspector, observers ...UseCaseObserver) StatusService {
	return &statusService{
		state:     state,
		inspector: inspector,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *statusService) GetStatus(ctx context.Context, historyLimit int) (report *StatusReport, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "status", startedAt, nil, err)
	}()

	doc := s.state.Current()
	if doc == nil {
		return nil, ErrNotLoaded
	}

	report = &StatusReport{
		MenuTitle:  doc.Menu.Title,
		SaveStatus: doc.App.SaveStatus,
		Items:      len(doc.Menu.Items),
		BackupName: domain.CoalesceStr(doc.App.BackupFileName, domain.DefaultBackupFileName),
		DarkMode:   doc.App.DarkModeEnabled,
	}
	report.LastSave, report.HasLastSave = doc.App.LastSave()
	if u, ok := doc.ActiveUser(); ok {
		report.ActiveUser = &u
	}
	for _, item := range doc.Menu.Items {
		report.Sections += len(item.Content)
		for _, sec := range item.Content {
			report.Entries += len(sec.Entries)
		}
	}

	if s.inspector == nil {
		return report, nil
	}
	stored, err := s.inspector.Stat(ctx, repository.DocumentKey)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("reading store metadata: %w", err)
	default:
		report.Revision = stored.Revision
		report.UpdatedAt = stored.UpdatedAt
	}
	if historyLimit > 0 {
		report.History, err = s.inspector.History(ctx, repository.DocumentKey, historyLimit)
		if err != nil {
			return nil, fmt.Errorf("reading store history: %w", err)
		}
	}
	return report, nil
}
