package model

import (
	"strings"
	"time"

	"github.com/gofrs/uuid"
)

// Status is the board column an item lives in.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusDone       Status = "done"
)

// Statuses lists the columns in board order.
var Statuses = []Status{StatusNew, StatusInProgress, StatusBlocked, StatusDone}

// Label returns the human title shown on the column header.
func (s Status) Label() string {
	switch s {
	case StatusNew:
		return "New"
	case StatusInProgress:
		return "In Progress"
	case StatusBlocked:
		return "Blocked"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// DisplayStatus maps unknown or absent statuses to StatusNew for column
// placement. The stored value is left alone; this is display-only.
func DisplayStatus(s Status) Status {
	for _, known := range Statuses {
		if s == known {
			return s
		}
	}
	return StatusNew
}

// Priority orders items within a column.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Priorities in rank order, most urgent first.
var Priorities = []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

// Rank returns the sort rank, Critical(0) through Low(3). Unknown values
// rank after Low so malformed records sink instead of jumping the queue.
func (p Priority) Rank() int {
	for i, known := range Priorities {
		if p == known {
			return i
		}
	}
	return len(Priorities)
}

// ParsePriority normalizes user input; empty or unrecognized input falls
// back to High, the creation-form default.
func ParsePriority(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return PriorityCritical
	case "high":
		return PriorityHigh
	case "medium":
		return PriorityMedium
	case "low":
		return PriorityLow
	}
	return PriorityHigh
}

// Severity is an informational tag; it never affects sorting.
type Severity string

const (
	SeverityS1 Severity = "S1"
	SeverityS2 Severity = "S2"
	SeverityS3 Severity = "S3"
	SeverityS4 Severity = "S4"
)

var Severities = []Severity{SeverityS1, SeverityS2, SeverityS3, SeverityS4}

// A TriageItem is one unit of trackable work on the board.
type TriageItem struct {
	ID          string   `json:"id"                    storm:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    Priority `json:"priority"`
	Severity    Severity `json:"severity,omitempty"`
	Assignee    string   `json:"assignee,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Due         string   `json:"due,omitempty"` // YYYY-MM-DD, empty when unset
	Status      Status   `json:"status"                storm:"index"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// DueTime parses the due date. ok is false when the date is absent or
// unparseable; such items sort after every dated one.
func (it TriageItem) DueTime() (time.Time, bool) {
	if it.Due == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", it.Due)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NewID generates a fresh item identifier.
func NewID() string {
	return uuid.Must(uuid.NewV4()).String()
}

// SplitTags turns the comma-separated tag field of the edit form into a
// list of trimmed, non-empty tags, keeping the first occurrence of each.
func SplitTags(s string) []string {
	var tags []string
	seen := map[string]bool{}
	for _, raw := range strings.Split(s, ",") {
		tag := strings.TrimSpace(raw)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
