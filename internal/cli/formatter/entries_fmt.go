package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
)

const progressWidth = 10

// TodoLine renders one task with its checkbox and id.
func TodoLine(e domain.TodoEntry) string {
	if e.Completed {
		return fmt.Sprintf("%s %s %s", StyleGreen.Render("✔"), Dim(e.Text), Dim("#"+e.ID))
	}
	return fmt.Sprintf("%s %s %s", StyleBlue.Render("○"), e.Text, Dim("#"+e.ID))
}

// FormatTodoSections renders each section with a completion bar. When only
// is set, other sections are skipped.
func FormatTodoSections(sections []domain.Section, only string) string {
	var b strings.Builder
	for _, s := range sections {
		if only != "" && s.Title != only {
			continue
		}
		done, total := 0, 0
		var lines []string
		for _, e := range s.Entries {
			todo, ok := e.(domain.TodoEntry)
			if !ok {
				continue
			}
			total++
			if todo.Completed {
				done++
			}
			lines = append(lines, "  "+TodoLine(todo))
		}
		fmt.Fprintf(&b, "%s  %s\n", StyleHeader.Render(s.Title), RenderProgress(done, total, progressWidth))
		if len(lines) == 0 {
			b.WriteString("  " + Dim("Nothing planned.") + "\n")
		}
		for _, l := range lines {
			b.WriteString(l + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// FormatNotes lists notes per section with a one-line description excerpt.
func FormatNotes(sections []domain.Section) string {
	var b strings.Builder
	for _, s := range sections {
		b.WriteString(Header(s.Title) + "\n")
		count := 0
		for _, e := range s.Entries {
			note, ok := e.(domain.NoteEntry)
			if !ok {
				continue
			}
			count++
			fmt.Fprintf(&b, "  %s %s\n", Bold(note.Title), Dim("#"+note.ID))
			if excerpt := firstLine(note.Description); excerpt != "" {
				fmt.Fprintf(&b, "    %s\n", Dim(Truncate(excerpt, 60)))
			}
		}
		if count == 0 {
			b.WriteString("  " + Dim("No notes yet.") + "\n")
		}
	}
	return b.String()
}

// FormatNote renders a single note. body is the already rendered description.
func FormatNote(note domain.NoteEntry, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render(note.Title), Dim("#"+note.ID))
	if body != "" {
		b.WriteString("\n" + body + "\n")
	}
	return b.String()
}

// FormatSchedule renders the agenda as a table. Entries happening on now's
// day are highlighted; unparseable dates are shown as written.
func FormatSchedule(entries []domain.ScheduleEntry, now time.Time) string {
	if len(entries) == 0 {
		return Dim("Agenda is empty.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		when := e.DateAndTime
		switch {
		case !e.HasTime():
			when = StyleYellow.Render(when)
		case domain.SameDay(now, e.At) && !e.At.Before(now):
			when = StyleGreen.Render(when)
		case e.At.Before(now):
			when = Dim(when)
		}
		rows = append(rows, []string{when, PriorityBadge(e.Priority), e.Text, Dim(e.ID)})
	}
	return RenderTable([]string{"WHEN", "PRI", "TEXT", "ID"}, rows)
}

// FormatEntries renders entries of any kind, one per line.
func FormatEntries(entries []domain.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString("  " + EntryLine(e) + "\n")
	}
	return b.String()
}

// EntryLine renders a single entry by kind.
func EntryLine(e domain.Entry) string {
	switch v := e.(type) {
	case domain.TodoEntry:
		return TodoLine(v)
	case domain.NoteEntry:
		return fmt.Sprintf("%s %s", Bold(v.Title), Dim("#"+v.ID))
	case domain.ScheduleEntry:
		return fmt.Sprintf("%s %s %s", StyleBlue.Render(v.DateAndTime), v.Text, Dim("#"+v.ID))
	}
	return Dim("#" + e.EntryID())
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
