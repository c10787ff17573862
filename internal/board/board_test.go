package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Devesh-1988-Wan/z10triage/internal/model"
)

func TestVisibleItemsQueryFilter(t *testing.T) {
	items := []model.TriageItem{
		{ID: "1", Title: "Fix login", Status: model.StatusNew, Priority: model.PriorityHigh},
		{ID: "2", Title: "Update docs", Status: model.StatusInProgress, Priority: model.PriorityHigh},
	}

	buckets := VisibleItems(items, Filters{Query: "login"})

	assert.Len(t, buckets[model.StatusNew], 1)
	assert.Equal(t, "Fix login", buckets[model.StatusNew][0].Title)
	// The non-matching item is excluded from every column.
	for _, st := range model.Statuses {
		for _, it := range buckets[st] {
			assert.NotEqual(t, "2", it.ID)
		}
	}
}

func TestQueryMatchesTagsAndAssignee(t *testing.T) {
	it := model.TriageItem{
		Title:    "Ship release",
		Tags:     []string{"infra", "deploy"},
		Assignee: "Dana",
	}
	assert.True(t, Matches(it, Filters{Query: "DEPLOY"}))
	assert.True(t, Matches(it, Filters{Query: "dana"}))
	assert.False(t, Matches(it, Filters{Query: "frontend"}))
}

func TestFiltersAreANDed(t *testing.T) {
	it := model.TriageItem{Title: "Fix login", Priority: model.PriorityHigh, Assignee: "sam"}

	assert.True(t, Matches(it, Filters{Query: "login", Priority: model.PriorityHigh, Assignee: "SAM"}))
	assert.False(t, Matches(it, Filters{Query: "login", Priority: model.PriorityLow}))
	assert.False(t, Matches(it, Filters{Query: "login", Assignee: "alex"}))
}

func TestSortOrderPriorityThenDue(t *testing.T) {
	items := []model.TriageItem{
		{ID: "low-undated", Priority: model.PriorityLow, Status: model.StatusNew},
		{ID: "crit-2025", Priority: model.PriorityCritical, Due: "2025-01-01", Status: model.StatusNew},
		{ID: "crit-2024", Priority: model.PriorityCritical, Due: "2024-06-01", Status: model.StatusNew},
	}

	bucket := VisibleItems(items, Filters{})[model.StatusNew]

	ids := []string{bucket[0].ID, bucket[1].ID, bucket[2].ID}
	assert.Equal(t, []string{"crit-2024", "crit-2025", "low-undated"}, ids)
}

func TestUndatedSortsAfterDatedWithinPriority(t *testing.T) {
	items := []model.TriageItem{
		{ID: "undated", Priority: model.PriorityHigh, Status: model.StatusNew},
		{ID: "dated", Priority: model.PriorityHigh, Due: "2030-12-31", Status: model.StatusNew},
	}

	bucket := VisibleItems(items, Filters{})[model.StatusNew]
	assert.Equal(t, "dated", bucket[0].ID)
	assert.Equal(t, "undated", bucket[1].ID)
}

func TestStableSortKeepsFetchOrderOnTies(t *testing.T) {
	items := []model.TriageItem{
		{ID: "first", Priority: model.PriorityMedium, Status: model.StatusNew},
		{ID: "second", Priority: model.PriorityMedium, Status: model.StatusNew},
	}

	bucket := VisibleItems(items, Filters{})[model.StatusNew]
	assert.Equal(t, "first", bucket[0].ID)
	assert.Equal(t, "second", bucket[1].ID)
}

func TestUnknownStatusDisplaysInNewColumn(t *testing.T) {
	items := []model.TriageItem{
		{ID: "1", Title: "orphan", Status: "archived", Priority: model.PriorityLow},
	}

	buckets := VisibleItems(items, Filters{})
	assert.Len(t, buckets[model.StatusNew], 1)
	// Display-only: the item itself keeps its stored status.
	assert.Equal(t, model.Status("archived"), buckets[model.StatusNew][0].Status)
}

func TestShiftColumnClampsAtEdges(t *testing.T) {
	assert.Equal(t, model.StatusNew, ShiftColumn(model.StatusNew, -1))
	assert.Equal(t, model.StatusDone, ShiftColumn(model.StatusDone, +1))
	assert.Equal(t, model.StatusInProgress, ShiftColumn(model.StatusNew, +1))
	assert.Equal(t, model.StatusBlocked, ShiftColumn(model.StatusDone, -1))
	assert.Equal(t, model.StatusDone, ShiftColumn(model.StatusNew, 99))
}
