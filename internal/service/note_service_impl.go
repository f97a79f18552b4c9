package service

import (
	"context"
	"time"

	"github.com/alexanderramin/plannerhub/internal/collection"
	"github.com/alexanderramin/plannerhub/internal/domain"
)

type noteService struct {
	editor   sectionEditor
	observer UseCaseObserver
}

func NewNoteService(state StateManager, ids *IDGenerator, observers ...UseCaseObserver) NoteService {
	return &noteService{
		editor:   sectionEditor{state: state, ids: ids},
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *noteService) Sections(itemID string) ([]domain.Section, error) {
	return sections(s.editor.state, itemID)
}

// Add appends a note. An empty section name targets the item's first section.
func (s *noteService) Add(ctx context.Context, itemID, section, title, description string) (entry domain.NoteEntry, err error) {
	startedAt := time.Now()
	fields := map[string]any{"item_id": itemID}
	defer func() {
		observe(ctx, s.observer, "note-add", startedAt, fields, err)
	}()

	if blank(title) {
		return domain.NoteEntry{}, ErrEmptyText
	}
	if section == "" {
		section, err = s.firstSection(itemID)
		if err != nil {
			return domain.NoteEntry{}, err
		}
	}
	fields["section"] = section

	err = s.editor.edit(ctx, itemID, section, true, func(entries []domain.Entry) ([]domain.Entry, bool, error) {
		entry = domain.NoteEntry{ID: s.editor.ids.Next(entries), Title: title, Description: description}
		return collection.Append(entries, domain.Entry(entry)), true, nil
	})
	if err != nil {
		return domain.NoteEntry{}, err
	}
	fields["entry_id"] = entry.ID
	return entry, nil
}

func (s *noteService) firstSection(itemID string) (string, error) {
	content, err := sections(s.editor.state, itemID)
	if err != nil {
		return "", err
	}
	if len(content) == 0 {
		return "", ErrSectionNotFound
	}
	return content[0].Title, nil
}

func (s *noteService) Edit(ctx context.Context, itemID, section, id, title, description string) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "note-edit", startedAt, map[string]any{"item_id": itemID, "entry_id": id}, err)
	}()

	if blank(title) {
		return ErrEmptyText
	}
	return s.editor.edit(ctx, itemID, section, true, func(entries []domain.Entry) ([]domain.Entry, bool, error) {
		cur, _, ok := collection.FindByID(entries, id)
		note, isNote := cur.(domain.NoteEntry)
		if !ok || !isNote {
			return nil, false, ErrEntryNotFound
		}
		if note.Title == title && note.Description == description {
			return nil, false, nil
		}
		note.Title, note.Description = title, description
		next, _ := collection.MapByID(entries, id, func(domain.Entry) domain.Entry { return note })
		return next, true, nil
	})
}

func (s *noteService) Delete(ctx context.Context, itemID, section, id string) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "note-delete", startedAt, map[string]any{"item_id": itemID, "entry_id": id}, err)
	}()
	return s.editor.remove(ctx, itemID, section, id)
}
