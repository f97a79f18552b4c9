package testutil

import (
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/google/uuid"
)

// DocumentOption customizes a document built by NewTestDocument.
type DocumentOption func(*domain.Document)

func WithUsers(users ...domain.User) DocumentOption {
	return func(d *domain.Document) {
		d.Users = users
	}
}

// WithActiveUser marks the user with the given login as active.
func WithActiveUser(username string) DocumentOption {
	return func(d *domain.Document) {
		d.Users = domain.ActivateAt(d.Users, domain.IndexOfUsername(d.Users, username))
	}
}

func WithBackupName(name string) DocumentOption {
	return func(d *domain.Document) {
		d.App.BackupFileName = name
	}
}

func WithSaveStatus(s domain.SaveStatus) DocumentOption {
	return func(d *domain.Document) {
		d.App.SaveStatus = s
	}
}

// WithItem appends a menu item, replacing any existing item with the same id.
func WithItem(item domain.MenuItem) DocumentOption {
	return func(d *domain.Document) {
		items := make([]domain.MenuItem, 0, len(d.Menu.Items)+1)
		for _, it := range d.Menu.Items {
			if it.ID != item.ID {
				items = append(items, it)
			}
		}
		d.Menu.Items = append(items, item)
	}
}

// WithSection replaces the entries of a section, adding the section if the
// item lacks it.
func WithSection(itemID, title string, entries ...domain.Entry) DocumentOption {
	return func(d *domain.Document) {
		items := make([]domain.MenuItem, len(d.Menu.Items))
		copy(items, d.Menu.Items)
		for i, it := range items {
			if it.ID != itemID {
				continue
			}
			content := make(domain.Content, 0, len(it.Content)+1)
			found := false
			for _, s := range it.Content {
				if s.Title == title {
					s = domain.Section{Title: title, Entries: entries}
					found = true
				}
				content = append(content, s)
			}
			if !found {
				content = append(content, domain.Section{Title: title, Entries: entries})
			}
			items[i].Content = content
		}
		d.Menu.Items = items
	}
}

func NewTestUser(username string, perm domain.Permission) domain.User {
	return domain.User{
		ID:         uuid.New().String(),
		Name:       username,
		Username:   username,
		Permission: perm,
	}
}

// Weekdays are the upper-case section titles of the todo lists.
var Weekdays = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

func weekdaySections() domain.Content {
	content := make(domain.Content, len(Weekdays))
	for i, day := range Weekdays {
		content[i] = domain.Section{Title: day}
	}
	return content
}

// NewTestDocument returns a small planner with the standard menu items:
// index, pro-todo and per-todo (one empty section per weekday), annotations
// and schedule. Two users exist, none active.
func NewTestDocument(opts ...DocumentOption) *domain.Document {
	d := &domain.Document{
		Menu: domain.MenuConfig{
			Title: "Planner HUB",
			Icon:  "menu",
			Items: []domain.MenuItem{
				{ID: domain.IndexItemID, Order: 0, Title: "Home", Link: "/", Visible: true},
				{ID: domain.ProTodoItemID, Order: 1, Title: "Professional", Link: "/pro-todo", Visible: true, ShowOnDashboard: true, Content: weekdaySections()},
				{ID: domain.PerTodoItemID, Order: 2, Title: "Personal", Link: "/per-todo", Visible: true, ShowOnDashboard: true, Content: weekdaySections()},
				{ID: domain.NotesItemID, Order: 3, Title: "Annotations", Link: "/annotations", Visible: true, ShowOnDashboard: true,
					Content: domain.Content{{Title: "MY NOTES"}}},
				{ID: domain.ScheduleItemID, Order: 4, Title: "Schedule", Link: "/schedule", Visible: true, ShowOnDashboard: true,
					Content: domain.Content{{Title: domain.AgendaSection}}},
			},
		},
		Users: []domain.User{
			{ID: "1", Name: "Administrator", Username: "admin-full", Permission: domain.PermissionFull},
			{ID: "2", Name: "Guest", Username: "user-01", Permission: domain.PermissionRead},
		},
		App: domain.AppConfig{
			BackupFileName: domain.DefaultBackupFileName,
			SaveStatus:     domain.StatusSaved,
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
