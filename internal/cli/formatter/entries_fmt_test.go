package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestFormatTodoSections(t *testing.T) {
	sections := []domain.Section{
		{Title: "MONDAY", Entries: []domain.Entry{
			domain.TodoEntry{ID: "1", Text: "Standup", Completed: true},
			domain.TodoEntry{ID: "2", Text: "Review"},
		}},
		{Title: "TUESDAY"},
	}

	out := FormatTodoSections(sections, "")
	assert.Contains(t, out, "MONDAY")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, "✔ Standup #1")
	assert.Contains(t, out, "○ Review #2")
	assert.Contains(t, out, "Nothing planned.")

	only := FormatTodoSections(sections, "TUESDAY")
	assert.NotContains(t, only, "MONDAY")
}

func TestFormatNotes(t *testing.T) {
	out := FormatNotes([]domain.Section{{Title: "MY NOTES", Entries: []domain.Entry{
		domain.NoteEntry{ID: "3", Title: "Idea", Description: "first line\nsecond line"},
	}}})
	assert.Contains(t, out, "Idea #3")
	assert.Contains(t, out, "first line")
	assert.NotContains(t, out, "second line")
}

func TestFormatSchedule(t *testing.T) {
	now := time.Date(2025, 10, 5, 9, 0, 0, 0, time.Local)
	out := FormatSchedule([]domain.ScheduleEntry{
		domain.NewScheduleEntry("1", time.Date(2025, 10, 5, 11, 0, 0, 0, time.Local), "Dentist", nil),
		domain.ScheduleEntry{ID: "2", Text: "Someday"}.WithDateAndTime("eventually"),
	}, now)
	assert.Contains(t, out, "05/10/2025 11:00am")
	assert.Contains(t, out, "Dentist")
	assert.Contains(t, out, "eventually")
	assert.Contains(t, FormatSchedule(nil, now), "empty")
}

func TestFormatDashboard(t *testing.T) {
	now := time.Date(2025, 10, 6, 9, 0, 0, 0, time.Local)
	cards := []service.Card{
		{Title: "Work", Path: "/pro-todo", Feature: domain.FeatureTodo, Todos: []domain.TodoEntry{{ID: "1", Text: "Ship"}}},
		{Title: "Notes", Path: "/annotations", Feature: domain.FeatureNotes, Note: &domain.NoteEntry{ID: "2", Title: "Idea"}},
		{Title: "Schedule", Path: "/schedule", Feature: domain.FeatureSchedule, Schedule: []domain.ScheduleEntry{
			domain.NewScheduleEntry("3", time.Date(2025, 10, 6, 15, 30, 0, 0, time.Local), "Call", nil),
			domain.NewScheduleEntry("4", time.Date(2025, 10, 7, 8, 0, 0, 0, time.Local), "Run", nil),
		}},
	}

	out := FormatDashboard(cards, now)
	assert.Contains(t, out, "WORK")
	assert.Contains(t, out, "MONDAY")
	assert.Contains(t, out, "Ship")
	assert.Contains(t, out, "Idea")
	assert.Contains(t, out, "03:30pm Call")
	assert.Contains(t, out, "07/10/2025 08:00am Run")
	assert.Contains(t, FormatDashboard(nil, now), "Nothing on the dashboard")
}

func TestRenderMarkdown_FallsBackOnEmpty(t *testing.T) {
	assert.Equal(t, "", RenderMarkdown("   ", 80, true))
	out := RenderMarkdown("# Title\n\nSome **bold** text", 60, false)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
}
