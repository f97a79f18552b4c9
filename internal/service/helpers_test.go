package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/plannerhub/internal/defaults"
	"github.com/alexanderramin/plannerhub/internal/domain"
	"github.com/alexanderramin/plannerhub/internal/repository"
	"github.com/alexanderramin/plannerhub/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testNow is 2023-11-14T22:13:20Z, Unix milliseconds 1700000000000.
var testNow = time.UnixMilli(1700000000000).UTC()

// seed stores doc as the persisted document without counting a write.
func seed(t *testing.T, store *testutil.MemoryStore, doc *domain.Document) {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	store.Put(repository.DocumentKey, string(data))
}

// newLoadedState loads doc (or the bundled default when doc is nil) into a
// state manager over store.
func newLoadedState(t *testing.T, store repository.DocumentStore, mem *testutil.MemoryStore, doc *domain.Document) StateManager {
	t.Helper()
	if doc != nil {
		seed(t, mem, doc)
	}
	clock := testutil.FixedClock(testNow)
	state := NewStateManager(store, NewLoader(store, defaults.Embedded{}, clock), clock)
	require.NoError(t, state.Load(context.Background()))
	return state
}

// newTestState returns a state manager over a fresh in-memory store holding doc.
func newTestState(t *testing.T, doc *domain.Document) (StateManager, *testutil.MemoryStore) {
	t.Helper()
	store := testutil.NewMemoryStore()
	return newLoadedState(t, store, store, doc), store
}

// storedDocument decodes whatever the store currently holds.
func storedDocument(t *testing.T, store repository.DocumentStore) *domain.Document {
	t.Helper()
	body, found, err := store.Read(context.Background(), repository.DocumentKey)
	require.NoError(t, err)
	require.True(t, found, "document should be persisted")
	doc, err := domain.Decode([]byte(body))
	require.NoError(t, err)
	return doc
}

func findItem(t *testing.T, doc *domain.Document, id string) domain.MenuItem {
	t.Helper()
	item, ok := doc.FindItem(id)
	require.True(t, ok, "item %s", id)
	return item
}

func sectionEntries(t *testing.T, doc *domain.Document, itemID, title string) []domain.Entry {
	t.Helper()
	for _, s := range findItem(t, doc, itemID).Content {
		if s.Title == title {
			return s.Entries
		}
	}
	t.Fatalf("section %s/%s not found", itemID, title)
	return nil
}

func ptrInt(i int) *int { return &i }
