package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/plannerhub/internal/defaults"
	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/repository"
	"github.com/alexanderramin/plannerhub/internal/service"
	"github.com/alexanderramin/plannerhub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday10am is a Monday, so the todo commands default to the MONDAY section.
var monday10am = time.Date(2025, time.January, 6, 10, 0, 0, 0, time.Local)

// testApp wires a full App over an in-memory SQLite store seeded with doc.
func testApp(t *testing.T, doc *domain.Document) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := repository.NewJournaledDocumentStore(database, testutil.NewTestUoW(database))

	if doc != nil {
		data, err := json.Marshal(doc)
		require.NoError(t, err)
		require.NoError(t, store.Write(context.Background(), repository.DocumentKey, string(data)))
	}

	clock := testutil.FixedClock(monday10am)
	state := service.NewStateManager(store, service.NewLoader(store, defaults.Embedded{}, clock), clock)
	ids := service.NewIDGenerator(clock)

	return &App{
		State:     state,
		Todos:     service.NewTodoService(state, ids),
		Notes:     service.NewNoteService(state, ids),
		Schedule:  service.NewScheduleService(state, ids),
		Users:     service.NewUserService(state),
		Settings:  service.NewSettingsService(state),
		Dashboard: service.NewDashboardService(state),
		Backup:    service.NewBackupService(state, clock),
		Status:    service.NewStatusService(state, store),
		BackupDir: t.TempDir(),
		Now:       clock,
	}
}

// signedInApp is testApp over the test document with admin-full active.
func signedInApp(t *testing.T, opts ...testutil.DocumentOption) *App {
	t.Helper()
	opts = append(opts, testutil.WithActiveUser("admin-full"))
	return testApp(t, testutil.NewTestDocument(opts...))
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func todoEntries(t *testing.T, app *App, itemID, day string) []domain.TodoEntry {
	t.Helper()
	sections, err := app.Todos.Sections(itemID)
	require.NoError(t, err)
	var out []domain.TodoEntry
	for _, s := range sections {
		if s.Title != day {
			continue
		}
		for _, e := range s.Entries {
			if todo, ok := e.(domain.TodoEntry); ok {
				out = append(out, todo)
			}
		}
	}
	return out
}

// --- Root and navigation ---

func TestRootCmd_ShowsDashboardWhenSignedIn(t *testing.T) {
	app := signedInApp(t, testutil.WithSection(domain.ProTodoItemID, "MONDAY",
		domain.TodoEntry{ID: "1", Text: "Write report"}))

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "PROFESSIONAL")
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "ANNOTATIONS")
}

func TestRootCmd_RedirectsToIdentification(t *testing.T) {
	app := testApp(t, testutil.NewTestDocument())

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "IDENTIFICATION")
	assert.Contains(t, out, "plannerhub login")
}

func TestRootCmd_SeedsDefaultOnFirstRun(t *testing.T) {
	app := testApp(t, nil)

	_, err := executeCmd(t, app, "menu")
	require.NoError(t, err)
	assert.Equal(t, "Planner HUB", app.State.Current().Menu.Title)
	assert.False(t, app.State.IsAuthenticated())
}

func TestMenuCmd_ListsVisibleItems(t *testing.T) {
	app := signedInApp(t)

	out, err := executeCmd(t, app, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Professional")
	assert.Contains(t, out, "/pro-todo")
	assert.Contains(t, out, "/schedule")
	assert.Less(t, strings.Index(out, "Professional"), strings.Index(out, "Personal"))
}

func TestOpenCmd_UnauthenticatedGoesToIdentification(t *testing.T) {
	app := testApp(t, testutil.NewTestDocument())

	out, err := executeCmd(t, app, "open", "/pro-todo")
	require.NoError(t, err)
	assert.Contains(t, out, "/identification")
	assert.Contains(t, out, "IDENTIFICATION")
}

func TestOpenCmd_UnknownPathFallsBackToDashboard(t *testing.T) {
	app := signedInApp(t)

	out, err := executeCmd(t, app, "open", "nowhere")
	require.NoError(t, err)
	assert.Contains(t, out, "→ /")
	assert.Contains(t, out, "PROFESSIONAL")
}

func TestOpenCmd_RendersItemByFeature(t *testing.T) {
	app := signedInApp(t,
		testutil.WithSection(domain.ProTodoItemID, "MONDAY", domain.TodoEntry{ID: "1", Text: "Standup", Completed: true}),
		testutil.WithSection(domain.NotesItemID, "MY NOTES", domain.NoteEntry{ID: "2", Title: "Groceries", Description: "eggs\nflour"}),
	)

	out, err := executeCmd(t, app, "open", "pro-todo")
	require.NoError(t, err)
	assert.Contains(t, out, "MONDAY")
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "1/1")

	out, err = executeCmd(t, app, "open", "/annotations/")
	require.NoError(t, err)
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "eggs")
	assert.NotContains(t, out, "flour")

	out, err = executeCmd(t, app, "open", "/schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "Agenda is empty.")
}

// --- Users ---

func TestLoginCmd_IdentifiesUser(t *testing.T) {
	app := testApp(t, testutil.NewTestDocument())

	out, err := executeCmd(t, app, "login", "admin-full")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as admin-full (full)")
	assert.True(t, app.State.IsAuthenticated())

	out, err = executeCmd(t, app, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed out.")
	assert.False(t, app.State.IsAuthenticated())
}

func TestLoginCmd_UnknownUser(t *testing.T) {
	app := testApp(t, testutil.NewTestDocument())

	_, err := executeCmd(t, app, "login", "mallory")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
	assert.Contains(t, err.Error(), `"mallory"`)
	assert.False(t, app.State.IsAuthenticated())
}

func TestLoginCmd_RequiresUsernameWithoutTerminal(t *testing.T) {
	app := testApp(t, testutil.NewTestDocument())

	_, err := executeCmd(t, app, "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username is required")
}

func TestUsersCmd_AddListRemove(t *testing.T) {
	app := signedInApp(t)

	out, err := executeCmd(t, app, "users", "add", "bob", "--name", "Bob", "--permission", "full")
	require.NoError(t, err)
	assert.Contains(t, out, "Added user bob (full)")

	out, err = executeCmd(t, app, "users")
	require.NoError(t, err)
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "user-01")

	_, err = executeCmd(t, app, "users", "add", "bob")
	assert.ErrorIs(t, err, service.ErrDuplicateUsername)

	_, err = executeCmd(t, app, "users", "add", "eve", "--permission", "root")
	assert.ErrorIs(t, err, service.ErrInvalidPermission)

	_, err = executeCmd(t, app, "users", "rm", "bob")
	require.NoError(t, err)
	users, err := app.Users.List()
	require.NoError(t, err)
	assert.Equal(t, -1, domain.IndexOfUsername(users, "bob"))
}

// --- Todo ---

func TestTodoCmd_AddDefaultsToToday(t *testing.T) {
	app := signedInApp(t)

	out, err := executeCmd(t, app, "todo", "add", "Buy", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, "Added to MONDAY")

	todos := todoEntries(t, app, domain.ProTodoItemID, "MONDAY")
	require.Len(t, todos, 1)
	assert.Equal(t, "Buy milk", todos[0].Text)
	assert.Equal(t, strconv.FormatInt(monday10am.UnixMilli(), 10), todos[0].ID)
	assert.Equal(t, domain.StatusNotSaved, app.State.Current().App.SaveStatus)

	out, err = executeCmd(t, app, "todo", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
	assert.NotContains(t, out, "TUESDAY")
}

func TestTodoCmd_DayAndItemFlags(t *testing.T) {
	app := signedInApp(t)

	_, err := executeCmd(t, app, "todo", "add", "--day", "tuesday", "--item", domain.PerTodoItemID, "Gym")
	require.NoError(t, err)

	assert.Len(t, todoEntries(t, app, domain.PerTodoItemID, "TUESDAY"), 1)
	assert.Empty(t, todoEntries(t, app, domain.ProTodoItemID, "TUESDAY"))

	out, err := executeCmd(t, app, "todo", "list", "--all", "--item", domain.PerTodoItemID)
	require.NoError(t, err)
	assert.Contains(t, out, "TUESDAY")
	assert.Contains(t, out, "SUNDAY")
}

func TestTodoCmd_EditToggleDeleteLocateSection(t *testing.T) {
	app := signedInApp(t, testutil.WithSection(domain.ProTodoItemID, "FRIDAY",
		domain.TodoEntry{ID: "7", Text: "Deploy"}))

	_, err := executeCmd(t, app, "todo", "edit", "7", "Deploy", "v2")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "todo", "done", "7")
	require.NoError(t, err)

	todos := todoEntries(t, app, domain.ProTodoItemID, "FRIDAY")
	require.Len(t, todos, 1)
	assert.Equal(t, domain.TodoEntry{ID: "7", Text: "Deploy v2", Completed: true}, todos[0])

	_, err = executeCmd(t, app, "todo", "rm", "7")
	require.NoError(t, err)
	assert.Empty(t, todoEntries(t, app, domain.ProTodoItemID, "FRIDAY"))
}

func TestTodoCmd_UnknownID(t *testing.T) {
	app := signedInApp(t)

	_, err := executeCmd(t, app, "todo", "done", "404")
	assert.ErrorIs(t, err, service.ErrEntryNotFound)
}

func TestRemoveCmds_UnknownIDDeletesNothing(t *testing.T) {
	app := signedInApp(t, testutil.WithSection(domain.ProTodoItemID, "FRIDAY",
		domain.TodoEntry{ID: "7", Text: "Deploy"}))
	require.NoError(t, app.ensureLoaded(context.Background()))
	before := app.State.Current()

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"todo", "rm", "404"}, "Nothing to delete: no task 404"},
		{[]string{"todo", "rm", "7", "--day", "monday"}, "Nothing to delete: no task 7"},
		{[]string{"note", "rm", "404"}, "Nothing to delete: no note 404"},
		{[]string{"schedule", "rm", "404"}, "Nothing to delete: no appointment 404"},
	}
	for _, tc := range cases {
		out, err := executeCmd(t, app, tc.args...)
		require.NoError(t, err, "args %v", tc.args)
		assert.Contains(t, out, tc.want)
		assert.NotContains(t, out, "Deleted")
	}

	assert.Same(t, before, app.State.Current(), "nothing was written")
	assert.Len(t, todoEntries(t, app, domain.ProTodoItemID, "FRIDAY"), 1)
}

func TestTodoCmd_RejectsBlankText(t *testing.T) {
	app := signedInApp(t)

	_, err := executeCmd(t, app, "todo", "add", "  ")
	assert.ErrorIs(t, err, service.ErrEmptyText)
}

// --- Notes ---

func TestNoteCmd_AddShowEditRemove(t *testing.T) {
	app := signedInApp(t)

	out, err := executeCmd(t, app, "note", "add", "Idea", "--body", "Some **bold** text")
	require.NoError(t, err)
	assert.Contains(t, out, "Added note")

	sections, err := app.Notes.Sections(domain.NotesItemID)
	require.NoError(t, err)
	require.Len(t, sections[0].Entries, 1)
	id := sections[0].Entries[0].EntryID()

	out, err = executeCmd(t, app, "note", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Idea")
	assert.Contains(t, out, "Some **bold** text", "non-interactive output is not rendered")

	_, err = executeCmd(t, app, "note", "edit", id, "--title", "Better idea")
	require.NoError(t, err)
	sections, err = app.Notes.Sections(domain.NotesItemID)
	require.NoError(t, err)
	assert.Equal(t, domain.NoteEntry{ID: id, Title: "Better idea", Description: "Some **bold** text"}, sections[0].Entries[0])

	_, err = executeCmd(t, app, "note", "rm", id)
	require.NoError(t, err)
	sections, err = app.Notes.Sections(domain.NotesItemID)
	require.NoError(t, err)
	assert.Empty(t, sections[0].Entries)
}

func TestNoteCmd_ShowUnknown(t *testing.T) {
	app := signedInApp(t)

	_, err := executeCmd(t, app, "note", "show", "nope")
	assert.ErrorIs(t, err, service.ErrEntryNotFound)
}

// --- Schedule ---

func TestScheduleCmd_AddAndListInTimeOrder(t *testing.T) {
	app := signedInApp(t)

	_, err := executeCmd(t, app, "schedule", "add", "--when", "07/01/2025 09:00am", "Dentist")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "schedule", "add", "--when", "06/01/2025 03:30pm", "--priority", "1", "Call", "mum")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "06/01/2025 03:30pm")
	assert.Less(t, strings.Index(out, "Call mum"), strings.Index(out, "Dentist"))

	entries, err := app.Schedule.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.NotNil(t, entries[0].Priority)
	assert.Equal(t, 1, *entries[0].Priority)
	assert.Nil(t, entries[1].Priority)
}

func TestScheduleCmd_AddValidatesWhen(t *testing.T) {
	app := signedInApp(t)

	_, err := executeCmd(t, app, "schedule", "add", "Dentist")
	assert.ErrorIs(t, err, service.ErrMissingWhen)

	_, err = executeCmd(t, app, "schedule", "add", "--when", "2025-01-07 09:00", "Dentist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --when")
}

func TestScheduleCmd_EditKeepsUnchangedFields(t *testing.T) {
	at := time.Date(2025, time.January, 8, 11, 0, 0, 0, time.Local)
	app := signedInApp(t, testutil.WithSection(domain.ScheduleItemID, domain.AgendaSection,
		domain.NewScheduleEntry("5", at, "Haircut", nil)))

	_, err := executeCmd(t, app, "schedule", "edit", "5", "--priority", "2")
	require.NoError(t, err)

	entries, err := app.Schedule.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Haircut", entries[0].Text)
	assert.True(t, entries[0].At.Equal(at))
	require.NotNil(t, entries[0].Priority)
	assert.Equal(t, 2, *entries[0].Priority)

	_, err = executeCmd(t, app, "schedule", "edit", "5", "--no-priority", "--text", "Barber")
	require.NoError(t, err)
	entries, err = app.Schedule.List()
	require.NoError(t, err)
	assert.Equal(t, "Barber", entries[0].Text)
	assert.Nil(t, entries[0].Priority)

	_, err = executeCmd(t, app, "schedule", "rm", "5")
	require.NoError(t, err)
	entries, err = app.Schedule.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// --- Settings, save, backups ---

func TestSettingsCmd(t *testing.T) {
	app := signedInApp(t)

	_, err := executeCmd(t, app, "settings", "dark-mode", "on")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "settings", "backup-name", "  Mine ")
	require.NoError(t, err)

	settings, err := app.Settings.Get()
	require.NoError(t, err)
	assert.True(t, settings.DarkModeEnabled)
	assert.Equal(t, "Mine", settings.BackupFileName)

	out, err := executeCmd(t, app, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Mine")

	_, err = executeCmd(t, app, "settings", "dark-mode", "maybe")
	assert.Error(t, err)
}

func TestSaveCmd_MarksSaved(t *testing.T) {
	app := signedInApp(t)

	_, err := executeCmd(t, app, "todo", "add", "Something")
	require.NoError(t, err)
	require.Equal(t, domain.StatusNotSaved, app.State.Current().App.SaveStatus)

	out, err := executeCmd(t, app, "save")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved.")
	assert.Equal(t, domain.StatusSaved, app.State.Current().App.SaveStatus)
}

func TestExportCmd_WritesTimestampedBackup(t *testing.T) {
	app := signedInApp(t)
	dir := t.TempDir()

	out, err := executeCmd(t, app, "export", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "PlannerHub_BKP_20250106_100000.json")

	data, err := os.ReadFile(filepath.Join(dir, "PlannerHub_BKP_20250106_100000.json"))
	require.NoError(t, err)
	doc, err := domain.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSaved, doc.App.SaveStatus)
}

func TestImportCmd(t *testing.T) {
	app := signedInApp(t)
	dir := t.TempDir()

	data, err := json.Marshal(testutil.NewTestDocument(testutil.WithBackupName("Imported")))
	require.NoError(t, err)
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, data, 0o644))

	out, err := executeCmd(t, app, "import", good)
	require.NoError(t, err)
	assert.Contains(t, out, `Imported "Planner HUB"`)
	assert.Equal(t, "Imported", app.State.Current().App.BackupFileName)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"userConfig": []}`), 0o644))
	_, err = executeCmd(t, app, "import", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
	assert.Equal(t, "Imported", app.State.Current().App.BackupFileName, "failed import leaves the planner alone")
}

func TestResetCmd(t *testing.T) {
	app := signedInApp(t, testutil.WithBackupName("Custom"))

	_, err := executeCmd(t, app, "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
	assert.Equal(t, "Custom", app.State.Current().App.BackupFileName)

	_, err = executeCmd(t, app, "reset", "--yes")
	require.NoError(t, err)
	assert.Equal(t, "Professional To-Do", app.State.Current().Menu.Items[1].Title)
	assert.False(t, app.State.IsAuthenticated())
}

func TestStatusCmd(t *testing.T) {
	app := signedInApp(t)

	out, err := executeCmd(t, app, "status", "--history", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "admin-full")
	assert.Contains(t, out, "Revision")
	assert.Contains(t, out, "RECENT WRITES")
}
