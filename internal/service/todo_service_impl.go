package service

import (
	"context"
	"time"

	"github.com/alexanderramin/plannerhub/internal/collection"
	"github.com/alexanderramin/plannerhub/internal/domain"
)

type todoService struct {
	editor   sectionEditor
	observer UseCaseObserver
}

func NewTodoService(state StateManager, ids *IDGenerator, observers ...UseCaseObserver) TodoService {
	return &todoService{
		editor:   sectionEditor{state: state, ids: ids},
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *todoService) Sections(itemID string) ([]domain.Section, error) {
	return sections(s.editor.state, itemID)
}

func (s *todoService) Add(ctx context.Context, itemID, section, text string) (entry domain.TodoEntry, err error) {
	startedAt := time.Now()
	fields := map[string]any{"item_id": itemID, "section": section}
	defer func() {
		observe(ctx, s.observer, "todo-add", startedAt, fields, err)
	}()

	if blank(text) {
		return domain.TodoEntry{}, ErrEmptyText
	}
	err = s.editor.edit(ctx, itemID, section, true, func(entries []domain.Entry) ([]domain.Entry, bool, error) {
		entry = domain.TodoEntry{ID: s.editor.ids.Next(entries), Text: text}
		return collection.Append(entries, domain.Entry(entry)), true, nil
	})
	if err != nil {
		return domain.TodoEntry{}, err
	}
	fields["entry_id"] = entry.ID
	return entry, nil
}

func (s *todoService) Edit(ctx context.Context, itemID, section, id, text string) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "todo-edit", startedAt, map[string]any{"item_id": itemID, "entry_id": id}, err)
	}()

	if blank(text) {
		return ErrEmptyText
	}
	return s.editor.edit(ctx, itemID, section, true, func(entries []domain.Entry) ([]domain.Entry, bool, error) {
		cur, _, ok := collection.FindByID(entries, id)
		todo, isTodo := cur.(domain.TodoEntry)
		if !ok || !isTodo {
			return nil, false, ErrEntryNotFound
		}
		if todo.Text == text {
			return nil, false, nil
		}
		todo.Text = text
		next, _ := collection.MapByID(entries, id, func(domain.Entry) domain.Entry { return todo })
		return next, true, nil
	})
}

// Toggle flips the completed flag. A missing entry is ignored.
func (s *todoService) Toggle(ctx context.Context, itemID, section, id string) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "todo-toggle", startedAt, map[string]any{"item_id": itemID, "entry_id": id}, err)
	}()

	return s.editor.edit(ctx, itemID, section, false, func(entries []domain.Entry) ([]domain.Entry, bool, error) {
		next, found := collection.MapByID(entries, id, func(e domain.Entry) domain.Entry {
			if todo, ok := e.(domain.TodoEntry); ok {
				todo.Completed = !todo.Completed
				return todo
			}
			return e
		})
		return next, found, nil
	})
}

func (s *todoService) Delete(ctx context.Context, itemID, section, id string) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "todo-delete", startedAt, map[string]any{"item_id": itemID, "entry_id": id}, err)
	}()
	return s.editor.remove(ctx, itemID, section, id)
}
