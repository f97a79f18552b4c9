package service

import (
	"context"
	"time"

	"github.com/alexanderramin/plannerhub/internal/collection"
	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/scheduler"
)

type scheduleService struct {
	editor   sectionEditor
	observer UseCaseObserver
}

func NewScheduleService(state StateManager, ids *IDGenerator, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		editor:   sectionEditor{state: state, ids: ids},
		observer: useCaseObserverOrNoop(observers),
	}
}

// List returns the agenda in display order.
func (s *scheduleService) List() ([]domain.ScheduleEntry, error) {
	doc := s.editor.state.Current()
	if doc == nil {
		return nil, ErrNotLoaded
	}
	item, ok := doc.FindItem(domain.ScheduleItemID)
	if !ok {
		return nil, ErrItemNotFound
	}
	sec, ok := collection.FindSection(item, domain.AgendaSection)
	if !ok {
		return nil, ErrSectionNotFound
	}
	var out []domain.ScheduleEntry
	for _, e := range sec.Entries {
		if se, ok := e.(domain.ScheduleEntry); ok {
			out = append(out, se)
		}
	}
	scheduler.SortSchedule(out)
	return out, nil
}

func (s *scheduleService) Add(ctx context.Context, at time.Time, text string, priority *int) (entry domain.ScheduleEntry, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		observe(ctx, s.observer, "schedule-add", startedAt, fields, err)
	}()

	if at.IsZero() {
		return domain.ScheduleEntry{}, ErrMissingWhen
	}
	if blank(text) {
		return domain.ScheduleEntry{}, ErrEmptyText
	}
	err = s.editor.edit(ctx, domain.ScheduleItemID, domain.AgendaSection, true, func(entries []domain.Entry) ([]domain.Entry, bool, error) {
		entry = domain.NewScheduleEntry(s.editor.ids.Next(entries), at, text, priority)
		return collection.Append(entries, domain.Entry(entry)), true, nil
	})
	if err != nil {
		return domain.ScheduleEntry{}, err
	}
	fields["entry_id"] = entry.ID
	return entry, nil
}

func (s *scheduleService) Edit(ctx context.Context, id string, at time.Time, text string, priority *int) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "schedule-edit", startedAt, map[string]any{"entry_id": id}, err)
	}()

	if at.IsZero() {
		return ErrMissingWhen
	}
	if blank(text) {
		return ErrEmptyText
	}
	return s.editor.edit(ctx, domain.ScheduleItemID, domain.AgendaSection, true, func(entries []domain.Entry) ([]domain.Entry, bool, error) {
		cur, _, ok := collection.FindByID(entries, id)
		old, isSchedule := cur.(domain.ScheduleEntry)
		if !ok || !isSchedule {
			return nil, false, ErrEntryNotFound
		}
		updated := domain.NewScheduleEntry(id, at, text, priority)
		if sameSchedule(old, updated) {
			return nil, false, nil
		}
		next, _ := collection.MapByID(entries, id, func(domain.Entry) domain.Entry { return updated })
		return next, true, nil
	})
}

func (s *scheduleService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "schedule-delete", startedAt, map[string]any{"entry_id": id}, err)
	}()
	return s.editor.remove(ctx, domain.ScheduleItemID, domain.AgendaSection, id)
}

func sameSchedule(a, b domain.ScheduleEntry) bool {
	if a.DateAndTime != b.DateAndTime || a.Text != b.Text {
		return false
	}
	if (a.Priority == nil) != (b.Priority == nil) {
		return false
	}
	return a.Priority == nil || *a.Priority == *b.Priority
}
