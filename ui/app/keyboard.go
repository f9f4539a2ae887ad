package app

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	SignalUp       key.Binding
	SignalDown     key.Binding
	FineSignalUp   key.Binding
	FineSignalDown key.Binding
	RateUp         key.Binding
	RateDown       key.Binding
	FineRateUp     key.Binding
	FineRateDown   key.Binding
	Reset          key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		SignalUp:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "f +")),
		SignalDown:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "f -")),
		FineSignalUp:   key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("⇧→/L", "f + fine")),
		FineSignalDown: key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("⇧←/H", "f - fine")),
		RateUp:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "fs +")),
		RateDown:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "fs -")),
		FineRateUp:     key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("⇧↑/K", "fs + fine")),
		FineRateDown:   key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("⇧↓/J", "fs - fine")),
		Reset:          key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SignalDown, k.SignalUp, k.RateDown, k.RateUp, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SignalDown, k.SignalUp, k.FineSignalDown, k.FineSignalUp},
		{k.RateDown, k.RateUp, k.FineRateDown, k.FineRateUp},
		{k.Reset, k.Help, k.Quit},
	}
}

type keyboard []struct {
	binding key.Binding
	action  func()
}

func (m *model) connectKeyboard() {
	m.keyboard = keyboard{
		{m.keys.SignalUp, m.controller.SignalFrequencyUp},
		{m.keys.SignalDown, m.controller.SignalFrequencyDown},
		{m.keys.FineSignalUp, m.controller.FineSignalFrequencyUp},
		{m.keys.FineSignalDown, m.controller.FineSignalFrequencyDown},
		{m.keys.RateUp, m.controller.SampleRateUp},
		{m.keys.RateDown, m.controller.SampleRateDown},
		{m.keys.FineRateUp, m.controller.FineSampleRateUp},
		{m.keys.FineRateDown, m.controller.FineSampleRateDown},
		{m.keys.Reset, m.controller.Reset},
	}
}
