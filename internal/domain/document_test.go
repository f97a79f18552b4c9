package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "menuConfig": {
    "menuTitle": "Planner HUB",
    "menuIcon": "menu",
    "menuItems": [
      {"id": "index", "order": "0", "title": "Home", "description": "", "link": "/", "isVisible": true, "showOnDashboard": false, "itemsContent": ""},
      {"id": "pro-todo", "order": 1, "title": "Work", "description": "Work tasks", "link": "/pro-todo", "isVisible": true, "showOnDashboard": "true",
       "itemsContent": [{"title": "MONDAY", "descriptionList": [{"id": "1", "text": "Standup", "completed": true}, {"id": "2", "text": "Review"}]}]},
      {"id": "annotations", "order": "2", "title": "Notes", "description": "", "link": "/annotations", "isVisible": true, "showOnDashboard": true,
       "itemsContent": [{"title": "MY NOTES", "descriptionList": [{"id": "3", "title": "Idea", "description": "Write it down"}]}]},
      {"id": "schedule", "order": "3", "title": "Schedule", "description": "", "link": "/schedule", "isVisible": false, "showOnDashboard": true,
       "itemsContent": [{"title": "MY AGENDA", "descriptionList": [{"id": "4", "dateAndTime": "05/10/2025 11:00am", "text": "Dentist", "priority": 2}]}]}
    ]
  },
  "userConfig": [{"id": "u1", "name": "Admin", "username": "admin-full", "permission": "full", "active": false}],
  "appConfig": [{"darkModeEnabled": true, "backupFileName": "MyPlanner", "saveStatus": "Saved"}]
}`

func TestDecode_ResolvesEntryVariants(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	require.NoError(t, err)

	require.Len(t, doc.Menu.Items, 4)
	todo := doc.Menu.Items[1].Content[0].Entries
	require.Len(t, todo, 2)
	assert.Equal(t, KindTodo, todo[0].Kind())
	assert.Equal(t, TodoEntry{ID: "1", Text: "Standup", Completed: true}, todo[0])
	assert.Equal(t, TodoEntry{ID: "2", Text: "Review"}, todo[1])

	note := doc.Menu.Items[2].Content[0].Entries[0]
	assert.Equal(t, NoteEntry{ID: "3", Title: "Idea", Description: "Write it down"}, note)

	sched, ok := doc.Menu.Items[3].Content[0].Entries[0].(ScheduleEntry)
	require.True(t, ok)
	assert.Equal(t, "Dentist", sched.Text)
	require.NotNil(t, sched.Priority)
	assert.Equal(t, 2, *sched.Priority)
	assert.True(t, sched.HasTime())
	assert.Equal(t, time.October, sched.At.Month())
	assert.Equal(t, 5, sched.At.Day())
	assert.Equal(t, 11, sched.At.Hour())
}

func TestDecode_TolerantScalars(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	require.NoError(t, err)

	items := doc.Menu.Items
	assert.Equal(t, Order(0), items[0].Order)
	assert.Equal(t, Order(1), items[1].Order)
	assert.False(t, bool(items[0].ShowOnDashboard))
	assert.False(t, bool(items[1].ShowOnDashboard), "only a JSON true sets the flag")
	assert.True(t, bool(items[2].ShowOnDashboard))
	assert.Nil(t, items[0].Content)
	assert.False(t, items[0].HasContent())
	assert.True(t, items[1].HasContent())
}

func TestDecode_AppConfigArray(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	require.NoError(t, err)
	assert.True(t, doc.App.DarkModeEnabled)
	assert.Equal(t, "MyPlanner", doc.App.BackupFileName)
	assert.Equal(t, StatusSaved, doc.App.SaveStatus)

	doc, err = Decode([]byte(`{"menuConfig": {"menuItems": []}}`))
	require.NoError(t, err)
	assert.Equal(t, AppConfig{}, doc.App)
}

func TestDecode_UnknownEntryShape(t *testing.T) {
	_, err := Decode([]byte(`{"menuConfig": {"menuItems": [{"id": "x", "itemsContent": [{"title": "S", "descriptionList": [{"id": "9"}]}]}]}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEntry)
}

func TestEncode_WireShape(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	assert.Contains(t, generic, "menuConfig")
	assert.Contains(t, generic, "userConfig")
	app, ok := generic["appConfig"].([]any)
	require.True(t, ok, "appConfig should be an array")
	assert.Len(t, app, 1)

	items := generic["menuConfig"].(map[string]any)["menuItems"].([]any)
	first := items[0].(map[string]any)
	assert.Equal(t, "", first["itemsContent"])
	assert.Equal(t, "0", first["order"])

	sched := items[3].(map[string]any)["itemsContent"].([]any)[0].(map[string]any)["descriptionList"].([]any)[0].(map[string]any)
	assert.Equal(t, "05/10/2025 11:00am", sched["dateAndTime"])
	assert.NotContains(t, sched, "At")
}

func TestEncodeDecode_Stable(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	again, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}

func TestApply_ShallowMerge(t *testing.T) {
	doc, err := Decode([]byte(sampleDocument))
	require.NoError(t, err)

	users := []User{{ID: "u2", Username: "other"}}
	merged := doc.Apply(UsersPatch(users))

	assert.Equal(t, users, merged.Users)
	assert.Equal(t, doc.App, merged.App)
	require.NotEmpty(t, merged.Menu.Items)
	assert.Same(t, &doc.Menu.Items[0], &merged.Menu.Items[0], "untouched menu should share its backing array")
	assert.Equal(t, "u1", doc.Users[0].ID, "original must not change")
}

func TestMenuItemFeature(t *testing.T) {
	cases := []struct {
		item MenuItem
		want Feature
	}{
		{MenuItem{ID: "index"}, FeatureDashboard},
		{MenuItem{ID: "pro-todo"}, FeatureTodo},
		{MenuItem{ID: "per-todo"}, FeatureTodo},
		{MenuItem{ID: "annotations"}, FeatureNotes},
		{MenuItem{ID: "schedule"}, FeatureSchedule},
		{MenuItem{ID: "reading", Content: Content{{Title: "A", Entries: []Entry{NoteEntry{ID: "1", Title: "x"}}}}}, FeatureNotes},
		{MenuItem{ID: "misc"}, FeatureGeneric},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.item.Feature(), "id=%s", tc.item.ID)
	}
}

func TestAppConfig_MarkSaved(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 8_000_000, time.UTC)
	var a AppConfig
	a.MarkSaved(now)

	assert.Equal(t, StatusSaved, a.SaveStatus)
	assert.Equal(t, "2025-03-04T05:06:07.008Z", a.LastSaveTimestamp)
	got, ok := a.LastSave()
	require.True(t, ok)
	assert.True(t, got.Equal(now))
}

func TestActivateAt(t *testing.T) {
	users := []User{{Username: "a", Active: true}, {Username: "b"}, {Username: "c"}}

	out := ActivateAt(users, IndexOfUsername(users, "b"))
	assert.False(t, out[0].Active)
	assert.True(t, out[1].Active)
	assert.False(t, out[2].Active)
	assert.True(t, users[0].Active, "input must not be modified")

	none := ActivateAt(users, IndexOfUsername(users, "zzz"))
	for _, u := range none {
		assert.False(t, u.Active)
	}
}
