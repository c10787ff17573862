package store

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devesh-1988-Wan/z10triage/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "z10triage.db"))
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutThenGetAll(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put(model.TriageItem{ID: "a", Title: "Fix login", Status: model.StatusNew}))

	items, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Fix login", items[0].Title)
	assert.False(t, items[0].CreatedAt.IsZero())
	assert.False(t, items[0].UpdatedAt.IsZero())
}

func TestPutIsUpsertById(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put(model.TriageItem{ID: "a", Title: "before", Status: model.StatusNew}))
	items, err := s.GetAll()
	require.NoError(t, err)
	countBefore := len(items)

	require.NoError(t, s.Put(model.TriageItem{ID: "a", Title: "after", Status: model.StatusBlocked}))

	items, err = s.GetAll()
	require.NoError(t, err)
	// Update-only put never duplicates the record.
	assert.Len(t, items, countBefore)
	assert.Equal(t, "after", items[0].Title)
	assert.Equal(t, model.StatusBlocked, items[0].Status)
}

func TestDeleteMissingIdIsNoError(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put(model.TriageItem{ID: "a", Title: "keep"}))
	assert.NoError(t, s.Delete("never-existed"))

	items, err := s.GetAll()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDeleteRemovesRecord(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put(model.TriageItem{ID: "a", Title: "gone"}))
	require.NoError(t, s.Delete("a"))

	items, err := s.GetAll()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBulkPutUpsertsWholeBatch(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Put(model.TriageItem{ID: "a", Title: "old"}))

	err := s.BulkPut([]model.TriageItem{
		{ID: "a", Title: "overwritten"},
		{ID: "b", Title: "fresh"},
	})
	require.NoError(t, err)

	items, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, items, 2)

	byID := map[string]model.TriageItem{}
	for _, it := range items {
		byID[it.ID] = it
	}
	assert.Equal(t, "overwritten", byID["a"].Title)
	assert.Equal(t, "fresh", byID["b"].Title)
}

func TestLayoutKVRoundTrip(t *testing.T) {
	s := newTestStore(t)

	raw, err := s.GetLayout()
	require.NoError(t, err)
	assert.Nil(t, raw)

	require.NoError(t, s.SetLayout([]byte(`{"cols":4}`)))
	raw, err = s.GetLayout()
	require.NoError(t, err)
	assert.JSONEq(t, `{"cols":4}`, string(raw))
}

func TestConcurrentFirstUseSharesOneOpen(t *testing.T) {
	s := newTestStore(t)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := 0; i < len(errs); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.GetAll()
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestEmptyStoreGetAll(t *testing.T) {
	s := newTestStore(t)

	items, err := s.GetAll()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
