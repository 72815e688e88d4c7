package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the simulator
type KeyMap struct {
	// Global
	ForceQuit key.Binding
	Quit      key.Binding

	// Form
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding

	// Results
	Export key.Binding
	Edit   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "sair"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "sair"),
		),

		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "próximo"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "anterior"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "simular"),
		),

		Export: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "gerar PDF"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "editar"),
		),
	}
}

// FormHelp returns the bindings shown while editing inputs
func (k KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.ForceQuit}
}

// ResultsHelp returns the bindings shown next to the results
func (k KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Export, k.Edit, k.Quit}
}
