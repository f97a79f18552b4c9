package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/repository"
)

// BackupTimeLayout is the timestamp suffix of export file names.
const BackupTimeLayout = "20060102_150405"

type stateManager struct {
	mu       sync.Mutex
	store    repository.DocumentStore
	loader   *Loader
	now      func() time.Time
	observer UseCaseObserver

	doc     atomic.Pointer[domain.Document]
	loading atomic.Bool
}

// NewStateManager returns a manager with no document. Call Load before use.
func NewStateManager(
	store repository.DocumentStore,
	loader *Loader,
	now func() time.Time,
	observers ...UseCaseObserver,
) StateManager {
	if now == nil {
		now = time.Now
	}
	s := &stateManager{
		store:    store,
		loader:   loader,
		now:      now,
		observer: useCaseObserverOrNoop(observers),
	}
	s.loading.Store(true)
	return s
}

// Current returns the installed document. Callers must treat it as read-only;
// later updates install a new document rather than changing this one.
func (s *stateManager) Current() *domain.Document {
	return s.doc.Load()
}

func (s *stateManager) IsLoading() bool {
	return s.loading.Load()
}

func (s *stateManager) IsAuthenticated() bool {
	doc := s.doc.Load()
	if doc == nil {
		return false
	}
	_, ok := doc.ActiveUser()
	return ok
}

func (s *stateManager) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked(ctx)
}

func (s *stateManager) reloadLocked(ctx context.Context) error {
	s.loading.Store(true)
	defer s.loading.Store(false)

	doc, err := s.loader.Load(ctx)
	if err != nil {
		return err
	}
	s.doc.Store(doc)
	return nil
}

func (s *stateManager) Update(ctx context.Context, p domain.Patch) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "update", startedAt, patchFields(p), err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked(ctx, p)
}

func (s *stateManager) Mutate(ctx context.Context, fn func(doc *domain.Document) (*domain.Patch, error)) (err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		observe(ctx, s.observer, "mutate", startedAt, fields, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.doc.Load()
	if cur == nil {
		return ErrNotLoaded
	}
	p, err := fn(cur)
	if err != nil {
		return err
	}
	if p == nil {
		fields["changed"] = false
		return nil
	}
	fields["changed"] = true
	return s.updateLocked(ctx, *p)
}

func (s *stateManager) updateLocked(ctx context.Context, p domain.Patch) error {
	cur := s.doc.Load()
	if cur == nil {
		return ErrNotLoaded
	}
	next := cur.Apply(p)
	next.App.SaveStatus = domain.StatusNotSaved
	if err := s.persist(ctx, &next); err != nil {
		return err
	}
	s.doc.Store(&next)
	return nil
}

func (s *stateManager) SaveExplicit(ctx context.Context) (saved bool, err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "save", startedAt, map[string]any{"saved": saved}, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.Load() == nil {
		return false, nil
	}
	if _, err := s.saveLocked(ctx, s.now()); err != nil {
		return false, err
	}
	return true, nil
}

func (s *stateManager) saveLocked(ctx context.Context, now time.Time) (*domain.Document, error) {
	next := *s.doc.Load()
	next.App.MarkSaved(now)
	if err := s.persist(ctx, &next); err != nil {
		return nil, err
	}
	s.doc.Store(&next)
	return &next, nil
}

func (s *stateManager) Export(ctx context.Context, now time.Time) (res *ExportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		observe(ctx, s.observer, "export", startedAt, fields, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.Load() == nil {
		return nil, ErrNotLoaded
	}
	doc, err := s.saveLocked(ctx, now)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding backup: %w", err)
	}
	name := BackupFileName(doc.App.BackupFileName, now)
	fields["file"] = name
	fields["bytes"] = len(data)
	return &ExportResult{FileName: name, Data: data, Document: doc}, nil
}

// BackupFileName builds {base}_BKP_{YYYYMMDD}_{HHMMSS}.json from now's wall clock.
func BackupFileName(base string, now time.Time) string {
	base = domain.CoalesceStr(base, domain.DefaultBackupFileName)
	return fmt.Sprintf("%s_BKP_%s.json", base, now.Format(BackupTimeLayout))
}

func (s *stateManager) Reset(ctx context.Context) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "reset", startedAt, nil, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(ctx, repository.DocumentKey); err != nil {
		return fmt.Errorf("removing stored document: %w", err)
	}
	return s.reloadLocked(ctx)
}

func (s *stateManager) Replace(ctx context.Context, body string) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "replace", startedAt, map[string]any{"bytes": len(body)}, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Write(ctx, repository.DocumentKey, body); err != nil {
		return fmt.Errorf("persisting planner document: %w", err)
	}
	return s.reloadLocked(ctx)
}

func (s *stateManager) persist(ctx context.Context, doc *domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding planner document: %w", err)
	}
	if err := s.store.Write(ctx, repository.DocumentKey, string(data)); err != nil {
		return fmt.Errorf("persisting planner document: %w", err)
	}
	return nil
}

func patchFields(p domain.Patch) map[string]any {
	return map[string]any{
		"menu":  p.Menu != nil,
		"users": p.Users != nil,
		"app":   p.App != nil,
	}
}
