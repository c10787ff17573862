package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devesh-1988-Wan/z10triage/internal/model"
)

func TestFormBuildItemTrimsAndSplitsTags(t *testing.T) {
	f := newForm(nil)
	f.inputs[fieldTitle].SetValue("  Fix login  ")
	f.inputs[fieldDescription].SetValue(" cookie bug ")
	f.inputs[fieldAssignee].SetValue(" dana ")
	f.inputs[fieldTags].SetValue("auth, web, auth,")
	f.inputs[fieldDue].SetValue(" 2025-03-01 ")

	it, ok := f.buildItem()
	require.True(t, ok)
	assert.Equal(t, "Fix login", it.Title)
	assert.Equal(t, "cookie bug", it.Description)
	assert.Equal(t, "dana", it.Assignee)
	assert.Equal(t, []string{"auth", "web"}, it.Tags)
	assert.Equal(t, "2025-03-01", it.Due)
	assert.Equal(t, model.StatusNew, it.Status)
}

func TestFormDefaultsPriorityHigh(t *testing.T) {
	f := newForm(nil)
	f.inputs[fieldTitle].SetValue("anything")

	it, ok := f.buildItem()
	require.True(t, ok)
	assert.Equal(t, model.PriorityHigh, it.Priority)
	assert.Equal(t, model.SeverityS3, it.Severity)
}

func TestFormRejectsEmptyTitle(t *testing.T) {
	f := newForm(nil)
	f.inputs[fieldTitle].SetValue("   ")

	_, ok := f.buildItem()
	assert.False(t, ok)
	assert.Equal(t, "Title cannot be empty", f.errMsg)
}

func TestFormEditingKeepsIdAndStatus(t *testing.T) {
	original := model.TriageItem{
		ID:       "keep",
		Title:    "old title",
		Status:   model.StatusBlocked,
		Priority: model.PriorityLow,
		Severity: model.SeverityS2,
		Tags:     []string{"a", "b"},
	}
	f := newForm(&original)
	assert.True(t, f.editing)

	it, ok := f.buildItem()
	require.True(t, ok)
	assert.Equal(t, "keep", it.ID)
	assert.Equal(t, model.StatusBlocked, it.Status)
	assert.Equal(t, model.PriorityLow, it.Priority)
	assert.Equal(t, model.SeverityS2, it.Severity)
	assert.Equal(t, []string{"a", "b"}, it.Tags)
}
