// Package board holds the pure filter/sort logic between the store and
// any renderer (TUI columns or the ls command). No I/O in here.
package board

import (
	"sort"
	"strings"

	"github.com/Devesh-1988-Wan/z10triage/internal/model"
)

// Filters narrows the visible board. Empty fields apply no constraint;
// set fields are ANDed together.
type Filters struct {
	Query    string         // case-insensitive substring over title, description, tags, assignee
	Priority model.Priority // exact match
	Assignee string         // case-insensitive exact match
}

// IsZero reports whether no filter is active.
func (f Filters) IsZero() bool {
	return f.Query == "" && f.Priority == "" && f.Assignee == ""
}

// Matches reports whether the item passes every active filter.
func Matches(it model.TriageItem, f Filters) bool {
	if f.Query != "" {
		haystack := strings.ToLower(strings.Join([]string{
			it.Title,
			it.Description,
			strings.Join(it.Tags, ","),
			it.Assignee,
		}, " "))
		if !strings.Contains(haystack, strings.ToLower(f.Query)) {
			return false
		}
	}
	if f.Priority != "" && it.Priority != f.Priority {
		return false
	}
	if f.Assignee != "" && !strings.EqualFold(it.Assignee, f.Assignee) {
		return false
	}
	return true
}

// VisibleItems buckets the filtered collection by display status and
// sorts each bucket: priority rank first, then due date ascending with
// undated items last. The sort is stable, so fetch order breaks ties.
func VisibleItems(items []model.TriageItem, f Filters) map[model.Status][]model.TriageItem {
	buckets := make(map[model.Status][]model.TriageItem, len(model.Statuses))
	for _, st := range model.Statuses {
		buckets[st] = []model.TriageItem{}
	}
	for _, it := range items {
		if !Matches(it, f) {
			continue
		}
		st := model.DisplayStatus(it.Status)
		buckets[st] = append(buckets[st], it)
	}
	for st := range buckets {
		bucket := buckets[st]
		sort.SliceStable(bucket, func(i, j int) bool {
			return less(bucket[i], bucket[j])
		})
	}
	return buckets
}

func less(a, b model.TriageItem) bool {
	if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
		return ra < rb
	}
	da, aok := a.DueTime()
	db, bok := b.DueTime()
	switch {
	case aok && bok:
		return da.Before(db)
	case aok:
		return true // dated before undated
	default:
		return false
	}
}

// ColumnIndex returns the position of the status in board order; unknown
// statuses resolve to the first column, matching DisplayStatus.
func ColumnIndex(s model.Status) int {
	for i, st := range model.Statuses {
		if model.DisplayStatus(s) == st {
			return i
		}
	}
	return 0
}

// ShiftColumn moves a status delta columns left (negative) or right
// (positive), clamped at the board edges.
func ShiftColumn(s model.Status, delta int) model.Status {
	idx := ColumnIndex(s) + delta
	if idx < 0 {
		idx = 0
	}
	if idx > len(model.Statuses)-1 {
		idx = len(model.Statuses) - 1
	}
	return model.Statuses[idx]
}
