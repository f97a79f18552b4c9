package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/scheduler"
	"github.com/alexanderramin/plannerhub/internal/service"
)

// FormatDashboard renders one box per card.
func FormatDashboard(cards []service.Card, now time.Time) string {
	if len(cards) == 0 {
		return Dim("Nothing on the dashboard.") + "\n"
	}
	boxes := make([]string, 0, len(cards))
	for _, c := range cards {
		boxes = append(boxes, RenderBox(c.Title, CardBody(c, now)))
	}
	return strings.Join(boxes, "\n") + "\n"
}

// CardBody renders the preview lines of a dashboard card.
func CardBody(c service.Card, now time.Time) string {
	var lines []string
	switch c.Feature {
	case domain.FeatureTodo:
		lines = append(lines, Dim(scheduler.WeekdayTitle(now)))
		for _, t := range c.Todos {
			lines = append(lines, TodoLine(t))
		}
		if len(c.Todos) == 0 {
			lines = append(lines, Dim("All clear for today."))
		}
	case domain.FeatureNotes:
		if c.Note == nil {
			lines = append(lines, Dim("No notes yet."))
			break
		}
		lines = append(lines, Bold(c.Note.Title))
		if excerpt := firstLine(c.Note.Description); excerpt != "" {
			lines = append(lines, Dim(Truncate(excerpt, 48)))
		}
	case domain.FeatureSchedule:
		if len(c.Schedule) == 0 {
			lines = append(lines, Dim("Nothing coming up."))
		}
		for _, e := range c.Schedule {
			when := e.At.Format("03:04pm")
			if !domain.SameDay(now, e.At) {
				when = e.DateAndTime
			}
			lines = append(lines, StyleBlue.Render(when)+" "+e.Text)
		}
	default:
		for _, e := range c.Entries {
			lines = append(lines, EntryLine(e))
		}
		if len(c.Entries) == 0 {
			lines = append(lines, Dim("Empty."))
		}
	}
	lines = append(lines, "", Dim(c.Path))
	return strings.Join(lines, "\n")
}
