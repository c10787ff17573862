package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Devesh-1988-Wan/z10triage/internal/model"
	"github.com/Devesh-1988-Wan/z10triage/internal/ui"
)

// Field order inside the dialog. The two selector rows come after the
// free-text inputs.
const (
	fieldTitle = iota
	fieldDescription
	fieldAssignee
	fieldTags
	fieldDue
	fieldPriority
	fieldSeverity
	fieldCount
)

var fieldLabels = [...]string{"Title", "Description", "Assignee", "Tags", "Due", "Priority", "Severity"}

// form is the modal new/edit dialog. A nil original means "create".
type form struct {
	id        string // empty while creating
	status    model.Status
	createdAt time.Time // preserved from the edited item

	inputs   []textinput.Model
	focus    int
	priority int // index into model.Priorities
	severity int // index into model.Severities
	editing  bool
	errMsg   string
}

func newForm(original *model.TriageItem) *form {
	f := &form{
		status:   model.StatusNew,
		priority: 1, // High, the creation default
		severity: 2, // S3
	}

	placeholders := [...]string{
		"short summary...", "details...", "owner", "comma,separated,tags", "YYYY-MM-DD",
	}
	f.inputs = make([]textinput.Model, fieldDue+1)
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 500
		f.inputs[i] = ti
	}
	f.inputs[fieldTitle].CharLimit = 200
	f.inputs[fieldDue].CharLimit = 10

	if original != nil {
		f.editing = true
		f.id = original.ID
		f.status = original.Status
		f.createdAt = original.CreatedAt
		f.inputs[fieldTitle].SetValue(original.Title)
		f.inputs[fieldDescription].SetValue(original.Description)
		f.inputs[fieldAssignee].SetValue(original.Assignee)
		f.inputs[fieldTags].SetValue(strings.Join(original.Tags, ", "))
		f.inputs[fieldDue].SetValue(original.Due)
		f.priority = selectorIndex(len(model.Priorities), original.Priority.Rank())
		for i, s := range model.Severities {
			if original.Severity == s {
				f.severity = i
			}
		}
	}

	f.inputs[fieldTitle].Focus()
	return f
}

func selectorIndex(n, idx int) int {
	if idx < 0 || idx >= n {
		return 1
	}
	return idx
}

// buildItem assembles the item from the dialog fields. Text fields are
// trimmed; the tag string is split and deduplicated. The id is assigned
// by the caller when creating.
func (f *form) buildItem() (model.TriageItem, bool) {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	if title == "" {
		f.errMsg = "Title cannot be empty"
		return model.TriageItem{}, false
	}

	it := model.TriageItem{
		ID:          f.id,
		Title:       title,
		Description: strings.TrimSpace(f.inputs[fieldDescription].Value()),
		Priority:    model.Priorities[f.priority],
		Severity:    model.Severities[f.severity],
		Assignee:    strings.TrimSpace(f.inputs[fieldAssignee].Value()),
		Tags:        model.SplitTags(f.inputs[fieldTags].Value()),
		Due:         strings.TrimSpace(f.inputs[fieldDue].Value()),
		Status:      f.status,
	}
	if f.editing {
		it.CreatedAt = f.createdAt
	}
	return it, true
}

// updateForm handles all input while the dialog is open.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := m.form

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.form = nil
			return m, nil

		case "tab", "down":
			return m, m.focusField((f.focus + 1) % fieldCount)

		case "shift+tab", "up":
			return m, m.focusField((f.focus + fieldCount - 1) % fieldCount)

		case "left", "right":
			delta := 1
			if keyMsg.String() == "left" {
				delta = -1
			}
			switch f.focus {
			case fieldPriority:
				f.priority = cycle(f.priority, len(model.Priorities), delta)
				return m, nil
			case fieldSeverity:
				f.severity = cycle(f.severity, len(model.Severities), delta)
				return m, nil
			}

		case "enter":
			it, ok := f.buildItem()
			if !ok {
				return m, nil
			}
			if it.ID == "" {
				it.ID = model.NewID()
			}
			if err := m.store.Put(it); err != nil {
				m.fail("save item", err)
				m.form = nil
				return m, nil
			}
			m.form = nil
			m.reload()
			return m, nil

		case "ctrl+d":
			// Delete is only offered while editing an existing item.
			if f.editing {
				if err := m.store.Delete(f.id); err != nil {
					m.fail("delete item", err)
				} else {
					m.reload()
				}
				m.form = nil
				return m, nil
			}
		}
	}

	if f.focus <= fieldDue {
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) focusField(next int) tea.Cmd {
	f := m.form
	if f.focus <= fieldDue {
		f.inputs[f.focus].Blur()
	}
	f.focus = next
	if next <= fieldDue {
		return f.inputs[next].Focus()
	}
	return nil
}

func cycle(i, n, delta int) int {
	return (i + n + delta) % n
}

func (f *form) view() string {
	title := "New item"
	if f.editing {
		title = "Edit item"
	}
	if f.errMsg != "" {
		title += " — " + ui.ErrorStyle.Render(f.errMsg)
	}

	lines := []string{ui.TitleStyle.Render(title)}
	for i := 0; i < fieldCount; i++ {
		label := fieldLabels[i]
		if i == f.focus {
			label = ui.AccentStyle.Render(label)
		} else {
			label = ui.MutedStyle.Render(label)
		}
		var value string
		switch i {
		case fieldPriority:
			value = selectorView(string(model.Priorities[f.priority]), i == f.focus)
		case fieldSeverity:
			value = selectorView(string(model.Severities[f.severity]), i == f.focus)
		default:
			value = f.inputs[i].View()
		}
		lines = append(lines, label+"  "+value)
	}

	hint := "enter save · tab next field · esc cancel"
	if f.editing {
		hint += " · ctrl+d delete"
	}
	lines = append(lines, ui.HelpStyle.Render(hint))

	return ui.DialogStyle.Render(strings.Join(lines, "\n"))
}

func selectorView(value string, focused bool) string {
	if focused {
		return ui.SelectedStyle.Render("< " + value + " >")
	}
	return value
}
