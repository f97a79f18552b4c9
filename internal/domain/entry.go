package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrUnknownEntry is returned when a descriptionList element matches none of
// the entry shapes.
var ErrUnknownEntry = errors.New("unrecognized entry shape")

// Entry is one record inside a Section. The concrete type is fixed when the
// document is decoded; callers switch on Kind or use a type switch.
type Entry interface {
	EntryID() string
	Kind() EntryKind
}

type TodoEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func (e TodoEntry) EntryID() string { return e.ID }
func (e TodoEntry) Kind() EntryKind { return KindTodo }

type NoteEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (e NoteEntry) EntryID() string { return e.ID }
func (e NoteEntry) Kind() EntryKind { return KindNote }

// ScheduleEntry keeps the display string as written and the time parsed from it.
// At is zero when DateAndTime does not match the DD/MM/YYYY HH:MMam|pm layout.
type ScheduleEntry struct {
	ID          string    `json:"id"`
	DateAndTime string    `json:"dateAndTime"`
	Text        string    `json:"text"`
	Priority    *int      `json:"priority,omitempty"`
	At          time.Time `json:"-"`
}

func (e ScheduleEntry) EntryID() string { return e.ID }
func (e ScheduleEntry) Kind() EntryKind { return KindSchedule }

// HasTime reports whether DateAndTime parsed to a structured time.
func (e ScheduleEntry) HasTime() bool { return !e.At.IsZero() }

// NewScheduleEntry builds an entry from a structured time, formatting the
// display string at the edge.
func NewScheduleEntry(id string, at time.Time, text string, priority *int) ScheduleEntry {
	return ScheduleEntry{
		ID:          id,
		DateAndTime: FormatWhen(at),
		Text:        text,
		Priority:    priority,
		At:          at,
	}
}

// WithDateAndTime returns a copy with the display string replaced and At re-derived.
func (e ScheduleEntry) WithDateAndTime(s string) ScheduleEntry {
	e.DateAndTime = s
	e.At, _ = ParseWhen(s, time.Local)
	return e
}

func (e *ScheduleEntry) UnmarshalJSON(data []byte) error {
	type plain ScheduleEntry
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = ScheduleEntry(p)
	e.At, _ = ParseWhen(e.DateAndTime, time.Local)
	return nil
}

// DecodeEntry resolves the entry variant by attribute presence:
// dateAndTime → schedule, text → todo, title → note.
func DecodeEntry(raw json.RawMessage) (Entry, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	switch {
	case has(fields, "dateAndTime"):
		var e ScheduleEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		return e, nil
	case has(fields, "text"):
		var e TodoEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		return e, nil
	case has(fields, "title"):
		var e NoteEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, ErrUnknownEntry
}

func has(fields map[string]json.RawMessage, name string) bool {
	_, ok := fields[name]
	return ok
}
