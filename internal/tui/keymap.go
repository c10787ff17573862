package tui

import "github.com/charmbracelet/bubbles/key"

// keymap groups every binding the board reacts to. Help text is built
// from the same definitions so it can never drift from the handlers.
type keymap struct {
	Up, Down, Left, Right key.Binding
	MoveLeft, MoveRight   key.Binding
	Grab                  key.Binding
	Edit                  key.Binding
	New                   key.Binding
	Delete                key.Binding
	Filter                key.Binding
	CyclePriority         key.Binding
	CycleAssignee         key.Binding
	Quit                  key.Binding
}

func defaultKeymap() keymap {
	return keymap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		MoveLeft:  key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("ctrl+←", "move item left")),
		MoveRight: key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("ctrl+→", "move item right")),
		Grab:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "grab/drop")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Delete:    key.NewBinding(key.WithKeys("delete", "d"), key.WithHelp("del/d", "delete")),
		Filter:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		CyclePriority: key.NewBinding(
			key.WithKeys("p"), key.WithHelp("p", "priority filter")),
		CycleAssignee: key.NewBinding(
			key.WithKeys("a"), key.WithHelp("a", "assignee filter")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpLine renders the short help shown under the board.
func (k keymap) helpLine() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Left, k.Right,
		k.Grab, k.MoveLeft, k.MoveRight,
		k.New, k.Edit, k.Delete, k.Filter, k.CyclePriority, k.CycleAssignee, k.Quit,
	}
}
