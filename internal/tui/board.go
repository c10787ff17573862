// Package tui is the interactive board. Every mutation follows the same
// cycle: persist to the store, reload the full collection, repaint all
// four columns. There is no optimistic update ahead of the store.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/Devesh-1988-Wan/z10triage/internal/board"
	"github.com/Devesh-1988-Wan/z10triage/internal/model"
	"github.com/Devesh-1988-Wan/z10triage/internal/store"
	"github.com/Devesh-1988-Wan/z10triage/internal/ui"
)

// Model is the board's bubbletea model.
type Model struct {
	store *store.Store
	log   *logrus.Logger
	keys  keymap

	items   []model.TriageItem
	filters board.Filters
	buckets map[model.Status][]model.TriageItem

	col, row int // selected column / card

	// Grab-and-drop: grabbedID carries the picked-up item's id (the drag
	// payload); dropCol is the column the drop would land in.
	grabbedID string
	dropCol   int

	filtering   bool
	filterInput textinput.Model

	form *form // non-nil while the edit dialog is open

	status        string
	width, height int
}

// New builds the board model and loads the collection.
func New(st *store.Store, log *logrus.Logger) Model {
	fi := textinput.New()
	fi.Prompt = "/ "
	fi.Placeholder = "filter..."
	fi.CharLimit = 120

	m := Model{
		store:       st,
		log:         log,
		keys:        defaultKeymap(),
		filterInput: fi,
		width:       80,
		height:      24,
	}
	m.reload()
	return m
}

// Run starts the interactive board and blocks until it exits.
func Run(st *store.Store, log *logrus.Logger) error {
	p := tea.NewProgram(New(st, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

// reload refreshes the working set from the store and recomputes the
// visible buckets. This is the single consistency-recovery path: a
// failed persist never leaves the view ahead of storage.
func (m *Model) reload() {
	items, err := m.store.GetAll()
	if err != nil {
		m.fail("load items", err)
		return
	}
	m.items = items
	m.recompute()
}

func (m *Model) recompute() {
	m.buckets = board.VisibleItems(m.items, m.filters)
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if m.col < 0 {
		m.col = 0
	}
	if m.col > len(model.Statuses)-1 {
		m.col = len(model.Statuses) - 1
	}
	n := len(m.bucket(m.col))
	if m.row > n-1 {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m Model) bucket(col int) []model.TriageItem {
	return m.buckets[model.Statuses[col]]
}

func (m Model) selected() (model.TriageItem, bool) {
	b := m.bucket(m.col)
	if m.row < 0 || m.row >= len(b) {
		return model.TriageItem{}, false
	}
	return b[m.row], true
}

// fail records a store-layer error on the status line and in the log;
// the view keeps rendering the last reloaded state.
func (m *Model) fail(op string, err error) {
	m.status = op + ": " + err.Error()
	m.log.WithError(err).Error(op)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.filtering {
		return m.updateFilter(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case keyMsg.String() == "esc":
		switch {
		case m.grabbedID != "":
			m.grabbedID = ""
		case !m.filters.IsZero():
			m.filters = board.Filters{}
			m.filterInput.SetValue("")
			m.recompute()
		default:
			return m, tea.Quit
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.row < len(m.bucket(m.col))-1 {
			m.row++
		}

	case key.Matches(keyMsg, m.keys.Left):
		if m.grabbedID != "" {
			if m.dropCol > 0 {
				m.dropCol--
			}
		} else if m.col > 0 {
			m.col--
			m.clampSelection()
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.grabbedID != "" {
			if m.dropCol < len(model.Statuses)-1 {
				m.dropCol++
			}
		} else if m.col < len(model.Statuses)-1 {
			m.col++
			m.clampSelection()
		}

	case key.Matches(keyMsg, m.keys.MoveLeft):
		m.moveSelected(-1)

	case key.Matches(keyMsg, m.keys.MoveRight):
		m.moveSelected(+1)

	case key.Matches(keyMsg, m.keys.Grab):
		if m.grabbedID == "" {
			if it, ok := m.selected(); ok {
				m.grabbedID = it.ID
				m.dropCol = m.col
			}
		} else {
			m.drop()
		}

	case key.Matches(keyMsg, m.keys.Edit):
		if m.grabbedID != "" {
			m.drop()
			break
		}
		if it, ok := m.selected(); ok {
			m.form = newForm(&it)
		}

	case key.Matches(keyMsg, m.keys.New):
		m.form = newForm(nil)

	case key.Matches(keyMsg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			if err := m.store.Delete(it.ID); err != nil {
				m.fail("delete item", err)
				break
			}
			m.reload()
		}

	case key.Matches(keyMsg, m.keys.Filter):
		m.filtering = true
		m.filterInput.SetValue(m.filters.Query)
		m.filterInput.CursorEnd()
		return m, m.filterInput.Focus()

	case key.Matches(keyMsg, m.keys.CyclePriority):
		m.filters.Priority = nextPriorityFilter(m.filters.Priority)
		m.recompute()

	case key.Matches(keyMsg, m.keys.CycleAssignee):
		m.filters.Assignee = nextAssigneeFilter(m.items, m.filters.Assignee)
		m.recompute()
	}

	return m, nil
}

// moveSelected shifts the selected item one column, clamped at the
// edges. A clamped move is a no-op, not an error.
func (m *Model) moveSelected(delta int) {
	it, ok := m.selected()
	if !ok {
		return
	}
	target := board.ShiftColumn(model.DisplayStatus(it.Status), delta)
	if target == model.DisplayStatus(it.Status) {
		return
	}
	it.Status = target
	if err := m.store.Put(it); err != nil {
		m.fail("move item", err)
		return
	}
	m.col = board.ColumnIndex(target)
	m.reload()
}

// drop completes a grab-and-drop. A payload id that no longer resolves
// to a stored item is silently ignored.
func (m *Model) drop() {
	id := m.grabbedID
	m.grabbedID = ""

	var it model.TriageItem
	found := false
	for _, candidate := range m.items {
		if candidate.ID == id {
			it, found = candidate, true
			break
		}
	}
	if !found {
		return
	}

	target := model.Statuses[m.dropCol]
	if model.DisplayStatus(it.Status) == target {
		return
	}
	it.Status = target
	if err := m.store.Put(it); err != nil {
		m.fail("drop item", err)
		return
	}
	m.col = m.dropCol
	m.reload()
}

func (m Model) updateFilter(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc":
			m.filtering = false
			m.filterInput.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filters.Query = strings.TrimSpace(m.filterInput.Value())
	m.recompute()
	return m, cmd
}

func nextPriorityFilter(p model.Priority) model.Priority {
	if p == "" {
		return model.Priorities[0]
	}
	for i, known := range model.Priorities {
		if p == known {
			if i == len(model.Priorities)-1 {
				return ""
			}
			return model.Priorities[i+1]
		}
	}
	return ""
}

// nextAssigneeFilter cycles through the distinct assignees present in
// the collection, then back to no filter.
func nextAssigneeFilter(items []model.TriageItem, current string) string {
	var owners []string
	seen := map[string]bool{}
	for _, it := range items {
		owner := strings.ToLower(strings.TrimSpace(it.Assignee))
		if owner == "" || seen[owner] {
			continue
		}
		seen[owner] = true
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	if current == "" {
		if len(owners) == 0 {
			return ""
		}
		return owners[0]
	}
	for i, owner := range owners {
		if strings.EqualFold(owner, current) {
			if i == len(owners)-1 {
				return ""
			}
			return owners[i+1]
		}
	}
	return ""
}

func (m Model) View() string {
	colWidth := m.width/len(model.Statuses) - 2
	if colWidth < 24 {
		colWidth = 24
	}

	cols := make([]string, 0, len(model.Statuses))
	for i, st := range model.Statuses {
		cols = append(cols, m.viewColumn(i, st, colWidth))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	var footer []string
	if m.filtering {
		footer = append(footer, m.filterInput.View())
	} else if !m.filters.IsZero() {
		footer = append(footer, ui.MutedStyle.Render(filterSummary(m.filters)))
	}
	if m.status != "" {
		footer = append(footer, ui.ErrorStyle.Render(m.status))
	}
	footer = append(footer, ui.HelpStyle.Render(renderHelp(m.keys)))

	if m.form != nil {
		content += "\n" + m.form.view()
	}
	return content + "\n" + strings.Join(footer, "\n")
}

func (m Model) viewColumn(i int, st model.Status, width int) string {
	bucket := m.buckets[st]
	header := fmt.Sprintf("%s %s",
		ui.TitleStyle.Render(st.Label()),
		ui.BadgeStyle.Render(fmt.Sprintf("(%d)", len(bucket))),
	)

	lines := []string{header}
	if len(bucket) == 0 {
		lines = append(lines, ui.MutedStyle.Render("(empty)"))
	}
	for j, it := range bucket {
		selected := i == m.col && j == m.row && m.grabbedID == ""
		card := ui.Card(it, selected)
		if m.grabbedID == it.ID {
			card = ui.AccentStyle.Render("* ") + card
		}
		lines = append(lines, card)
	}

	style := ui.ColumnStyle
	if m.grabbedID != "" && i == m.dropCol {
		style = ui.DropTargetStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n\n"))
}

func filterSummary(f board.Filters) string {
	var parts []string
	if f.Query != "" {
		parts = append(parts, "q="+f.Query)
	}
	if f.Priority != "" {
		parts = append(parts, "priority="+string(f.Priority))
	}
	if f.Assignee != "" {
		parts = append(parts, "assignee="+f.Assignee)
	}
	return "filter: " + strings.Join(parts, " ")
}

func renderHelp(k keymap) string {
	var parts []string
	for _, b := range k.helpLine() {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, " · ")
}
