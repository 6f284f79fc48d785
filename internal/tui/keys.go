package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Toggle    key.Binding
	TabNOM    key.Binding
	TabLEAN   key.Binding
	TabWell   key.Binding
	Form      key.Binding
	PDF       key.Binding
	Excel     key.Binding
	Email     key.Binding
	Help      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "salir")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "siguiente panel")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "panel anterior")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "subir")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "bajar")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "anterior")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "siguiente")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("espacio", "marcar")),
		TabNOM:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "NOM-035")),
		TabLEAN:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "LEAN 2.0")),
		TabWell:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "Bienestar")),
		Form:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "plan de acción")),
		PDF:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "Generar PDF")),
		Excel:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Exportar Excel")),
		Email:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Enviar Reporte")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ayuda")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.TabNOM, k.TabLEAN, k.TabWell, k.Form, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Up, k.Down, k.Left, k.Right, k.Toggle},
		{k.TabNOM, k.TabLEAN, k.TabWell, k.Form},
		{k.PDF, k.Excel, k.Email, k.Help, k.Quit},
	}
}
