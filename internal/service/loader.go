package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/plannerhub/internal/defaults"
	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/repository"
)

// FallbackMenuTitle titles the document used when no default can be loaded.
const FallbackMenuTitle = "Error"

// Loader produces the initial document: the stored one, else the default
// (seeded into the store), else the fallback.
type Loader struct {
	store    repository.DocumentStore
	source   defaults.Source
	now      func() time.Time
	observer UseCaseObserver
}

func NewLoader(
	store repository.DocumentStore,
	source defaults.Source,
	now func() time.Time,
	observers ...UseCaseObserver,
) *Loader {
	if source == nil {
		source = defaults.Embedded{}
	}
	if now == nil {
		now = time.Now
	}
	return &Loader{
		store:    store,
		source:   source,
		now:      now,
		observer: useCaseObserverOrNoop(observers),
	}
}

// FallbackDocument is an empty planner that still renders.
func FallbackDocument() *domain.Document {
	return &domain.Document{
		Menu:  domain.MenuConfig{Title: FallbackMenuTitle, Items: []domain.MenuItem{}},
		Users: []domain.User{},
		App: domain.AppConfig{
			BackupFileName: domain.DefaultBackupFileName,
			SaveStatus:     domain.StatusNotSaved,
		},
	}
}

func (l *Loader) Load(ctx context.Context) (doc *domain.Document, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		observe(ctx, l.observer, "load-document", startedAt, fields, err)
	}()

	body, found, err := l.store.Read(ctx, repository.DocumentKey)
	if err != nil {
		return nil, fmt.Errorf("reading stored document: %w", err)
	}
	if found {
		fields["source"] = "stored"
		doc, err = domain.Decode([]byte(body))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptDocument, err)
		}
		return doc, nil
	}

	doc, fetchErr := l.fetchDefault(ctx)
	if fetchErr != nil {
		fields["source"] = "fallback"
		l.warn(ctx, "load-default", fetchErr)
		return FallbackDocument(), nil
	}
	fields["source"] = "default"

	doc.App.MarkSaved(l.now())
	data, err := json.Marshal(doc)
	if err == nil {
		err = l.store.Write(ctx, repository.DocumentKey, string(data))
	}
	fields["persisted"] = err == nil
	if err != nil {
		l.warn(ctx, "seed-default", err)
	}
	return doc, nil
}

func (l *Loader) fetchDefault(ctx context.Context) (*domain.Document, error) {
	data, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Decode(data)
}

// warn reports a recovered failure without failing the load.
func (l *Loader) warn(ctx context.Context, name string, err error) {
	l.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: time.Now(),
		Success:   false,
		Err:       err,
		Fields:    map[string]any{"recovered": true},
	})
}
