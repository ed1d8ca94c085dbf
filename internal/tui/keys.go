package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Move     key.Binding
	Drop     key.Binding
	Done     key.Binding
	AddAct   key.Binding
	EditAct  key.Binding
	DelAct   key.Binding
	AddDay   key.Binding
	DelDay   key.Binding
	NewTrip  key.Binding
	EditTrip key.Binding
	DelTrip  key.Binding
	Example  key.Binding
	SortDays key.Binding
	Export   key.Binding
	Sidebar  key.Binding
	Theme    key.Binding
	Help     key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Move:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move activity")),
		Drop:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "place")),
		Done:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle done")),
		AddAct:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add activity")),
		EditAct:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit activity")),
		DelAct:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete activity")),
		AddDay:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add day")),
		DelDay:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "remove day")),
		NewTrip:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new trip")),
		EditTrip: key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "edit trip")),
		DelTrip:  key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "delete trip")),
		Example:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "load example trip")),
		SortDays: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "sort days by date")),
		Export:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "export itinerary")),
		Sidebar:  key.NewBinding(key.WithKeys("tab", "s"), key.WithHelp("tab", "trips")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.AddAct, k.Done, k.Sidebar, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Sidebar},
		{k.Move, k.Drop, k.Done, k.AddAct, k.EditAct, k.DelAct},
		{k.AddDay, k.DelDay, k.SortDays, k.NewTrip, k.EditTrip, k.DelTrip},
		{k.Example, k.Export, k.Theme, k.Help, k.Quit},
	}
}
