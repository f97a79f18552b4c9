package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteFixture(t *testing.T, opts ...testutil.DocumentOption) (NoteService, StateManager, *testutil.MemoryStore) {
	t.Helper()
	state, store := newTestState(t, testutil.NewTestDocument(opts...))
	return NewNoteService(state, NewIDGenerator(testutil.FixedClock(testNow))), state, store
}

func TestNoteAdd_DefaultsToFirstSection(t *testing.T) {
	notes, state, _ := newNoteFixture(t,
		testutil.WithSection(domain.NotesItemID, "ARCHIVE"))

	entry, err := notes.Add(context.Background(), domain.NotesItemID, "", "Idea", "Write **it** down")
	require.NoError(t, err)
	assert.Equal(t, domain.NoteEntry{ID: "1700000000000", Title: "Idea", Description: "Write **it** down"}, entry)

	assert.Equal(t, []domain.Entry{entry}, sectionEntries(t, state.Current(), domain.NotesItemID, "MY NOTES"))
	assert.Empty(t, sectionEntries(t, state.Current(), domain.NotesItemID, "ARCHIVE"))
}

func TestNoteAdd_NamedSection(t *testing.T) {
	notes, state, _ := newNoteFixture(t,
		testutil.WithSection(domain.NotesItemID, "ARCHIVE"))

	entry, err := notes.Add(context.Background(), domain.NotesItemID, "ARCHIVE", "Old", "")
	require.NoError(t, err)
	assert.Equal(t, []domain.Entry{entry}, sectionEntries(t, state.Current(), domain.NotesItemID, "ARCHIVE"))
}

func TestNoteAdd_Rejects(t *testing.T) {
	notes, _, store := newNoteFixture(t,
		testutil.WithItem(domain.MenuItem{ID: "empty-notes", Content: domain.Content{}}))
	ctx := context.Background()

	_, err := notes.Add(ctx, domain.NotesItemID, "", "", "body")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = notes.Add(ctx, "empty-notes", "", "t", "")
	assert.ErrorIs(t, err, ErrSectionNotFound)

	_, err = notes.Add(ctx, "nope", "", "t", "")
	assert.ErrorIs(t, err, ErrItemNotFound)

	assert.Equal(t, 0, store.Writes())
}

func TestNoteEditAndDelete(t *testing.T) {
	notes, state, store := newNoteFixture(t,
		testutil.WithSection(domain.NotesItemID, "MY NOTES",
			domain.NoteEntry{ID: "1", Title: "A", Description: "a"},
			domain.NoteEntry{ID: "2", Title: "B", Description: "b"},
		))
	ctx := context.Background()

	require.NoError(t, notes.Edit(ctx, domain.NotesItemID, "MY NOTES", "2", "B2", "b2"))
	got := sectionEntries(t, state.Current(), domain.NotesItemID, "MY NOTES")
	assert.Equal(t, domain.NoteEntry{ID: "2", Title: "B2", Description: "b2"}, got[1])
	assert.Equal(t, domain.NoteEntry{ID: "1", Title: "A", Description: "a"}, got[0])

	require.NoError(t, notes.Edit(ctx, domain.NotesItemID, "MY NOTES", "2", "B2", "b2"))
	assert.Equal(t, 1, store.Writes())

	assert.ErrorIs(t, notes.Edit(ctx, domain.NotesItemID, "MY NOTES", "9", "x", ""), ErrEntryNotFound)
	assert.ErrorIs(t, notes.Edit(ctx, domain.NotesItemID, "OTHER", "1", "x", ""), ErrSectionNotFound)

	require.NoError(t, notes.Delete(ctx, domain.NotesItemID, "MY NOTES", "1"))
	require.NoError(t, notes.Delete(ctx, domain.NotesItemID, "MY NOTES", "1"))
	assert.Len(t, sectionEntries(t, state.Current(), domain.NotesItemID, "MY NOTES"), 1)
	assert.Equal(t, 2, store.Writes())
}
