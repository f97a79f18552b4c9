package scheduler

import (
	"math"
	"sort"

	"github.com/alexanderramin/plannerhub/internal/domain"
)

// PriorityRank returns a sort rank for an optional priority (lower = sooner).
// Entries without a priority sort after every ranked one.
func PriorityRank(p *int) int {
	return domain.IntFromPtrWithDefault(math.MaxInt, p)
}

// SortSchedule orders schedule entries by the canonical rules:
// 1. Parsed time: entries with a time first, earliest first
// 2. Unparseable entries: display string, lexical ascending
// 3. Priority: ascending, missing last
// 4. Entry ID: lexical ascending
func SortSchedule(entries []domain.ScheduleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		// 1. Timed before untimed
		if a.HasTime() != b.HasTime() {
			return a.HasTime()
		}
		if a.HasTime() && !a.At.Equal(b.At) {
			return a.At.Before(b.At)
		}

		// 2. Untimed by display string
		if !a.HasTime() && a.DateAndTime != b.DateAndTime {
			return a.DateAndTime < b.DateAndTime
		}

		// 3. Priority
		if pa, pb := PriorityRank(a.Priority), PriorityRank(b.Priority); pa != pb {
			return pa < pb
		}

		// 4. ID
		return a.ID < b.ID
	})
}

// Sorted returns a sorted copy of entries.
func Sorted(entries []domain.ScheduleEntry) []domain.ScheduleEntry {
	out := make([]domain.ScheduleEntry, len(entries))
	copy(out, entries)
	SortSchedule(out)
	return out
}

// ScheduleEntries collects every schedule entry across the item's sections.
func ScheduleEntries(item domain.MenuItem) []domain.ScheduleEntry {
	var out []domain.ScheduleEntry
	for _, s := range item.Content {
		for _, e := range s.Entries {
			if se, ok := e.(domain.ScheduleEntry); ok {
				out = append(out, se)
			}
		}
	}
	return out
}
