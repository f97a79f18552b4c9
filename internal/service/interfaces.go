package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/repository"
)

// StateManager owns the in-memory planner document. Every change goes
// through Update (or Mutate) and is persisted before it becomes visible.
type StateManager interface {
	Load(ctx context.Context) error
	Current() *domain.Document
	IsLoading() bool
	IsAuthenticated() bool
	Update(ctx context.Context, p domain.Patch) error
	// Mutate builds a patch from the current document under the manager's
	// lock. A nil patch means nothing changed and nothing is written.
	Mutate(ctx context.Context, fn func(doc *domain.Document) (*domain.Patch, error)) error
	SaveExplicit(ctx context.Context) (bool, error)
	Export(ctx context.Context, now time.Time) (*ExportResult, error)
	Reset(ctx context.Context) error
	// Replace stores body verbatim and reloads from it.
	Replace(ctx context.Context, body string) error
}

// ExportResult is a serialized backup ready to be written out.
type ExportResult struct {
	FileName string
	Path     string
	Data     []byte
	Document *domain.Document
}

type TodoService interface {
	Sections(itemID string) ([]domain.Section, error)
	Add(ctx context.Context, itemID, section, text string) (domain.TodoEntry, error)
	Edit(ctx context.Context, itemID, section, id, text string) error
	Toggle(ctx context.Context, itemID, section, id string) error
	Delete(ctx context.Context, itemID, section, id string) error
}

type NoteService interface {
	Sections(itemID string) ([]domain.Section, error)
	Add(ctx context.Context, itemID, section, title, description string) (domain.NoteEntry, error)
	Edit(ctx context.Context, itemID, section, id, title, description string) error
	Delete(ctx context.Context, itemID, section, id string) error
}

type ScheduleService interface {
	List() ([]domain.ScheduleEntry, error)
	Add(ctx context.Context, at time.Time, text string, priority *int) (domain.ScheduleEntry, error)
	Edit(ctx context.Context, id string, at time.Time, text string, priority *int) error
	Delete(ctx context.Context, id string) error
}

type UserService interface {
	Identify(ctx context.Context, username string) (domain.User, error)
	Logout(ctx context.Context) error
	ActiveUser() (domain.User, bool)
	List() ([]domain.User, error)
	Add(ctx context.Context, name, username string, perm domain.Permission) (domain.User, error)
	Remove(ctx context.Context, username string) error
}

type SettingsService interface {
	Get() (domain.AppConfig, error)
	SetDarkMode(ctx context.Context, on bool) error
	SetBackupName(ctx context.Context, name string) error
}

type DashboardService interface {
	Build(now time.Time) ([]Card, error)
}

type BackupService interface {
	Export(ctx context.Context, dir string) (*ExportResult, error)
	Import(ctx context.Context, r io.Reader) (*domain.Document, error)
	ImportFile(ctx context.Context, path string) (*domain.Document, error)
}

type StatusService interface {
	GetStatus(ctx context.Context, historyLimit int) (*StatusReport, error)
}

// DocumentInspector exposes store metadata. The SQLite store implements it;
// in-memory stores usually do not.
type DocumentInspector interface {
	Stat(ctx context.Context, key string) (*repository.StoredDocument, error)
	History(ctx context.Context, key string, limit int) ([]*repository.StoreWrite, error)
}
