package ui

import (
	"strings"
	"time"

	"github.com/Devesh-1988-Wan/z10triage/internal/model"
)

// Description truncation: anything longer than descMax runes is cut to
// descKeep runes plus an ellipsis.
const (
	descMax  = 160
	descKeep = 157
)

// TruncateDescription applies the card's description limit.
func TruncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= descMax {
		return s
	}
	return string(runes[:descKeep]) + "..."
}

// FormatDue renders a YYYY-MM-DD due date for display; unparseable
// values pass through as typed.
func FormatDue(due string) string {
	t, err := time.Parse("2006-01-02", due)
	if err != nil {
		return due
	}
	return t.Format("02 Jan 2006")
}

// CardLines builds the display lines for one item: title, optional
// truncated description, and a meta line with the priority pill,
// severity, @assignee, #tags and the due date.
func CardLines(it model.TriageItem) []string {
	lines := []string{TitleStyle.Render(it.Title)}

	if it.Description != "" {
		lines = append(lines, MutedStyle.Render(TruncateDescription(it.Description)))
	}

	meta := []string{PriorityPill(it.Priority)}
	if it.Severity != "" {
		meta = append(meta, MutedStyle.Render(string(it.Severity)))
	}
	if it.Assignee != "" {
		meta = append(meta, AccentStyle.Render("@"+it.Assignee))
	}
	if len(it.Tags) > 0 {
		tags := make([]string, 0, len(it.Tags))
		for _, tag := range it.Tags {
			tags = append(tags, "#"+tag)
		}
		meta = append(meta, MutedStyle.Render(strings.Join(tags, " ")))
	}
	if it.Due != "" {
		meta = append(meta, MutedStyle.Render("due "+FormatDue(it.Due)))
	}
	lines = append(lines, strings.Join(meta, " "))

	return lines
}

// Card renders one item as a block, reverse-video when selected.
func Card(it model.TriageItem, selected bool) string {
	s := strings.Join(CardLines(it), "\n")
	if selected {
		return SelectedStyle.Render(s)
	}
	return s
}
