package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/repository"
	"github.com/alexanderramin/plannerhub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_WithoutInspector(t *testing.T) {
	state, _ := newTestState(t, testutil.NewTestDocument(
		testutil.WithActiveUser("admin-full"),
		testutil.WithSection(domain.ProTodoItemID, "MONDAY", domain.TodoEntry{ID: "1", Text: "x"}),
	))

	report, err := NewStatusService(state, nil).GetStatus(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Planner HUB", report.MenuTitle)
	assert.Equal(t, domain.StatusSaved, report.SaveStatus)
	require.NotNil(t, report.ActiveUser)
	assert.Equal(t, "admin-full", report.ActiveUser.Username)
	assert.Equal(t, 5, report.Items)
	assert.Equal(t, 16, report.Sections)
	assert.Equal(t, 1, report.Entries)
	assert.Zero(t, report.Revision)
	assert.Nil(t, report.History)
}

func TestStatus_SQLiteStoreReportsRevisionAndHistory(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := repository.NewJournaledDocumentStore(database, testutil.NewTestUoW(database))
	clock := testutil.FixedClock(testNow)
	state := NewStateManager(store, NewLoader(store, nil, clock), clock)
	ctx := context.Background()

	require.NoError(t, state.Load(ctx))
	_, err := NewUserService(state).Identify(ctx, "admin-full")
	require.NoError(t, err)
	_, err = state.SaveExplicit(ctx)
	require.NoError(t, err)

	report, err := NewStatusService(state, store).GetStatus(ctx, 10)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Revision, "seed, identify, save")
	assert.False(t, report.UpdatedAt.IsZero())
	require.Len(t, report.History, 3)
	for _, w := range report.History {
		assert.Equal(t, repository.OpWrite, w.Op)
	}
	assert.True(t, report.HasLastSave)
	assert.True(t, report.LastSave.Equal(testNow))
}

func TestStatus_NotLoaded(t *testing.T) {
	store := testutil.NewMemoryStore()
	state := NewStateManager(store, NewLoader(store, nil, nil), nil)
	_, err := NewStatusService(state, nil).GetStatus(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNotLoaded)
}
