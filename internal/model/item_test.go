package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayStatus(t *testing.T) {
	assert.Equal(t, StatusBlocked, DisplayStatus(StatusBlocked))
	assert.Equal(t, StatusNew, DisplayStatus(""))
	assert.Equal(t, StatusNew, DisplayStatus("archived"))
}

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 0, PriorityCritical.Rank())
	assert.Equal(t, 1, PriorityHigh.Rank())
	assert.Equal(t, 2, PriorityMedium.Rank())
	assert.Equal(t, 3, PriorityLow.Rank())
	// Unknown priorities sink below Low.
	assert.Equal(t, 4, Priority("Urgent").Rank())
}

func TestParsePriorityDefaultsToHigh(t *testing.T) {
	assert.Equal(t, PriorityHigh, ParsePriority(""))
	assert.Equal(t, PriorityHigh, ParsePriority("whatever"))
	assert.Equal(t, PriorityCritical, ParsePriority(" critical "))
	assert.Equal(t, PriorityLow, ParsePriority("LOW"))
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"ui", "backend", "auth"}, SplitTags(" ui, backend ,auth,, ui "))
	assert.Nil(t, SplitTags("  ,  , "))
	assert.Nil(t, SplitTags(""))
}

func TestDueTime(t *testing.T) {
	it := TriageItem{Due: "2025-01-02"}
	d, ok := it.DueTime()
	assert.True(t, ok)
	assert.Equal(t, "2025-01-02", d.Format("2006-01-02"))

	_, ok = TriageItem{}.DueTime()
	assert.False(t, ok)

	_, ok = TriageItem{Due: "tomorrow"}.DueTime()
	assert.False(t, ok)
}

func TestNewIDIsUnique(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
