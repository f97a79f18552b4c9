package scheduler

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
)

// PreviewLimit is how many entries a dashboard card shows.
const PreviewLimit = 3

// WeekdayTitle is the todo section title for t's day, e.g. "MONDAY".
func WeekdayTitle(t time.Time) string {
	return strings.ToUpper(t.Weekday().String())
}

// TodoPreview returns the first limit incomplete tasks of the section named
// after now's weekday.
func TodoPreview(item domain.MenuItem, now time.Time, limit int) []domain.TodoEntry {
	title := WeekdayTitle(now)
	var out []domain.TodoEntry
	for _, s := range item.Content {
		if s.Title != title {
			continue
		}
		for _, e := range s.Entries {
			te, ok := e.(domain.TodoEntry)
			if !ok || te.Completed {
				continue
			}
			out = append(out, te)
			if len(out) == limit {
				return out
			}
		}
		return out
	}
	return out
}

// LatestNote returns the most recently added note: the highest numeric id,
// with non-numeric or equal ids resolved in favour of the later position.
func LatestNote(item domain.MenuItem) (domain.NoteEntry, bool) {
	var (
		best    domain.NoteEntry
		bestID  int64
		bestNum bool
		found   bool
	)
	for _, s := range item.Content {
		for _, e := range s.Entries {
			ne, ok := e.(domain.NoteEntry)
			if !ok {
				continue
			}
			id, err := strconv.ParseInt(ne.ID, 10, 64)
			num := err == nil
			switch {
			case !found:
			case num && bestNum && id < bestID:
				continue
			case !num && bestNum:
				// A numeric id always outranks a non-numeric one.
				continue
			}
			best, bestID, bestNum, found = ne, id, num, true
		}
	}
	return best, found
}

// SchedulePreview returns today's entries at or after now in time order. When
// none remain today it returns the single nearest future entry. Entries whose
// date does not parse are never shown.
func SchedulePreview(entries []domain.ScheduleEntry, now time.Time) []domain.ScheduleEntry {
	var today, future []domain.ScheduleEntry
	for _, e := range entries {
		if !e.HasTime() || e.At.Before(now) {
			continue
		}
		if domain.SameDay(now, e.At) {
			today = append(today, e)
		} else {
			future = append(future, e)
		}
	}
	if len(today) > 0 {
		SortSchedule(today)
		return today
	}
	if len(future) == 0 {
		return nil
	}
	SortSchedule(future)
	return future[:1]
}

// GenericPreview returns the first limit entries across the item's sections.
func GenericPreview(item domain.MenuItem, limit int) []domain.Entry {
	var out []domain.Entry
	for _, s := range item.Content {
		for _, e := range s.Entries {
			if len(out) == limit {
				return out
			}
			out = append(out, e)
		}
	}
	return out
}
