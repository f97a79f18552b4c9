package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the layout of AppConfig.LastSaveTimestamp (UTC, millisecond precision).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Document is the root planner tree. The wire format matches the bundled
// PlannerHub.json: appConfig is encoded as a one-element array.
type Document struct {
	Menu  MenuConfig
	Users []User
	App   AppConfig
}

type MenuConfig struct {
	Title string     `json:"menuTitle"`
	Icon  string     `json:"menuIcon"`
	Items []MenuItem `json:"menuItems"`
}

type MenuItem struct {
	ID              string  `json:"id"`
	Order           Order   `json:"order"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Link            string  `json:"link"`
	Visible         bool    `json:"isVisible"`
	ShowOnDashboard Flag    `json:"showOnDashboard"`
	Content         Content `json:"itemsContent"`
}

type Section struct {
	Title   string
	Entries []Entry
}

type AppConfig struct {
	DarkModeEnabled   bool       `json:"darkModeEnabled"`
	BackupFileName    string     `json:"backupFileName"`
	SaveStatus        SaveStatus `json:"saveStatus,omitempty"`
	LastSaveTimestamp string     `json:"lastSaveTimestamp,omitempty"`
}

// LastSave parses LastSaveTimestamp. ok is false when it is absent or malformed.
func (a AppConfig) LastSave() (time.Time, bool) {
	if a.LastSaveTimestamp == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, a.LastSaveTimestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MarkSaved stamps the config as explicitly saved at now.
func (a *AppConfig) MarkSaved(now time.Time) {
	a.SaveStatus = StatusSaved
	a.LastSaveTimestamp = now.UTC().Format(TimestampLayout)
}

// Patch carries the top-level fields of a shallow merge. Nil fields are left untouched.
type Patch struct {
	Menu  *MenuConfig
	Users *[]User
	App   *AppConfig
}

func MenuPatch(m MenuConfig) Patch { return Patch{Menu: &m} }
func UsersPatch(u []User) Patch    { return Patch{Users: &u} }
func AppPatch(a AppConfig) Patch   { return Patch{App: &a} }

// Apply returns a copy of d with the patch's fields replaced.
// Sub-trees not named by the patch are shared with d.
func (d Document) Apply(p Patch) Document {
	out := d
	if p.Menu != nil {
		out.Menu = *p.Menu
	}
	if p.Users != nil {
		out.Users = *p.Users
	}
	if p.App != nil {
		out.App = *p.App
	}
	return out
}

// ActiveUser returns the first user flagged active.
func (d *Document) ActiveUser() (User, bool) {
	for _, u := range d.Users {
		if u.Active {
			return u, true
		}
	}
	return User{}, false
}

// FindItem returns the menu item with the given id.
func (d *Document) FindItem(id string) (MenuItem, bool) {
	for _, item := range d.Menu.Items {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}

// Feature resolves which view owns the item. Known ids win; otherwise the
// kind of the first entry decides.
func (m MenuItem) Feature() Feature {
	switch {
	case m.ID == IndexItemID || m.ID == "dashboard":
		return FeatureDashboard
	case m.ID == NotesItemID || m.ID == "notes":
		return FeatureNotes
	case m.ID == ScheduleItemID:
		return FeatureSchedule
	case strings.HasSuffix(m.ID, "todo"):
		return FeatureTodo
	}
	for _, s := range m.Content {
		if len(s.Entries) == 0 {
			continue
		}
		switch s.Entries[0].Kind() {
		case KindTodo:
			return FeatureTodo
		case KindNote:
			return FeatureNotes
		case KindSchedule:
			return FeatureSchedule
		}
	}
	return FeatureGeneric
}

// HasContent reports whether the item carries a section list (possibly empty).
func (m MenuItem) HasContent() bool {
	return m.Content != nil
}

type documentWire struct {
	Menu  MenuConfig  `json:"menuConfig"`
	Users []User      `json:"userConfig"`
	App   []AppConfig `json:"appConfig"`
}

func (d Document) MarshalJSON() ([]byte, error) {
	users := d.Users
	if users == nil {
		users = []User{}
	}
	return json.Marshal(documentWire{Menu: d.Menu, Users: users, App: []AppConfig{d.App}})
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var w documentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	d.Menu = w.Menu
	d.Users = w.Users
	d.App = AppConfig{}
	if len(w.App) > 0 {
		d.App = w.App[0]
	}
	return nil
}

// Decode parses a serialized document.
func Decode(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decoding planner document: %w", err)
	}
	return &d, nil
}

// Order is the numeric sort position of a menu item. It is written as a
// string and read from either a string or a number.
type Order int

func (o Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.Itoa(int(o)))
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		if v, err := strconv.Atoi(n.String()); err == nil {
			*o = Order(v)
			return nil
		}
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("order: expected string or number, got %s", data)
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		*o = 0
		return nil
	}
	*o = Order(v)
	return nil
}

// Flag is set only by a JSON true. Strings such as "true" are accepted so
// older documents still decode, but they leave the flag unset.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flag: expected bool or string, got %s", data)
	}
	*f = false
	return nil
}

// Content is a menu item's section list. A nil Content is written as "".
type Content []Section

func (c Content) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte(`""`), nil
	}
	return json.Marshal([]Section(c))
}

func (c *Content) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		// "", null and any other scalar mean "no content".
		*c = nil
		return nil
	}
	var sections []Section
	if err := json.Unmarshal(trimmed, &sections); err != nil {
		return err
	}
	if sections == nil {
		sections = []Section{}
	}
	*c = sections
	return nil
}

type sectionWire struct {
	Title   string            `json:"title"`
	Entries []json.RawMessage `json:"descriptionList"`
}

func (s Section) MarshalJSON() ([]byte, error) {
	entries := s.Entries
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(struct {
		Title   string  `json:"title"`
		Entries []Entry `json:"descriptionList"`
	}{s.Title, entries})
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var w sectionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.Title = w.Title
	s.Entries = nil
	for i, raw := range w.Entries {
		e, err := DecodeEntry(raw)
		if err != nil {
			return fmt.Errorf("section %q entry %d: %w", w.Title, i, err)
		}
		s.Entries = append(s.Entries, e)
	}
	return nil
}
