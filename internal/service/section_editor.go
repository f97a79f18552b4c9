package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/plannerhub/internal/collection"
	"github.com/alexanderramin/plannerhub/internal/domain"
)

// entriesFunc computes a section's new entry list. changed=false skips the write.
type entriesFunc func(entries []domain.Entry) (next []domain.Entry, changed bool, err error)

// sectionEditor funnels entry CRUD through StateManager.Mutate. Strict edits
// report a missing item or section; lenient ones treat it as nothing to do.
type sectionEditor struct {
	state StateManager
	ids   *IDGenerator
}

func (e sectionEditor) edit(ctx context.Context, itemID, title string, strict bool, fn entriesFunc) error {
	return e.state.Mutate(ctx, func(doc *domain.Document) (*domain.Patch, error) {
		ii := collection.ItemIndex(doc.Menu.Items, itemID)
		if ii < 0 {
			if strict {
				return nil, ErrItemNotFound
			}
			return nil, nil
		}
		sec, ok := collection.FindSection(doc.Menu.Items[ii], title)
		if !ok {
			if strict {
				return nil, ErrSectionNotFound
			}
			return nil, nil
		}

		next, changed, err := fn(sec.Entries)
		if err != nil || !changed {
			return nil, err
		}
		menu := doc.Menu
		menu.Items = collection.ReplaceSectionEntries(doc.Menu.Items, itemID, title, next)
		p := domain.MenuPatch(menu)
		return &p, nil
	})
}

// remove deletes the entry with id. Misses are silent.
func (e sectionEditor) remove(ctx context.Context, itemID, title, id string) error {
	return e.edit(ctx, itemID, title, false, func(entries []domain.Entry) ([]domain.Entry, bool, error) {
		next, removed := collection.FilterByID(entries, id)
		return next, removed, nil
	})
}

func sections(state StateManager, itemID string) ([]domain.Section, error) {
	doc := state.Current()
	if doc == nil {
		return nil, ErrNotLoaded
	}
	item, ok := doc.FindItem(itemID)
	if !ok {
		return nil, ErrItemNotFound
	}
	return item.Content, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
