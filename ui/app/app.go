package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/ftl/aliascope/core"
	coreapp "github.com/ftl/aliascope/core/app"
	"github.com/ftl/aliascope/ui/scope"
)

// Controller for the interactive application.
type Controller interface {
	AddView(coreapp.View)
	Startup()
	Parameters() core.Parameters
	Configuration() core.Configuration

	SignalFrequencyUp()
	SignalFrequencyDown()
	FineSignalFrequencyUp()
	FineSignalFrequencyDown()
	SampleRateUp()
	SampleRateDown()
	FineSampleRateUp()
	FineSampleRateDown()
	Reset()
}

// Run the interactive application until the user quits.
func Run(controller Controller) error {
	p := tea.NewProgram(newModel(controller), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "cannot run the user interface")
	}
	return nil
}

const (
	defaultWidth  = 100
	defaultHeight = 40
	sliderWidth   = 40
	// title, two sliders, two plot titles, spacing, help
	chromeHeight = 10
)

var styles = struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	aliased lipgloss.Style
	panel   lipgloss.Style
}{
	title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
	label:   lipgloss.NewStyle().Width(24),
	value:   lipgloss.NewStyle().Bold(true),
	aliased: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	panel:   lipgloss.NewStyle().Padding(0, 1),
}

type model struct {
	controller Controller
	scope      *scope.View
	keys       keyMap
	keyboard   keyboard
	help       help.Model

	width, height int
}

func newModel(controller Controller) model {
	result := model{
		controller: controller,
		scope:      scope.New(),
		keys:       newKeyMap(),
		help:       help.New(),
		width:      defaultWidth,
		height:     defaultHeight,
	}
	result.connectKeyboard()
	controller.AddView(result.scope)
	controller.Startup()
	return result
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		for _, k := range m.keyboard {
			if key.Matches(msg, k.binding) {
				k.action()
				break
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	parameters := m.controller.Parameters()
	configuration := m.controller.Configuration()

	var b strings.Builder
	b.WriteString(styles.title.Render("Aliasing Demonstration (Time + FFT)"))
	if parameters.Aliased() {
		b.WriteString("  ")
		b.WriteString(styles.aliased.Render("aliased"))
	}
	b.WriteString("\n")
	b.WriteString(slider("Signal frequency (Hz)", parameters.SignalFrequency, configuration.SignalFrequencyRange))
	b.WriteString("\n")
	b.WriteString(slider("Sampling rate (Hz)", parameters.SampleRate, configuration.SampleRateRange))
	b.WriteString("\n\n")
	b.WriteString(m.scope.Render(m.plotSize()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return styles.panel.Render(b.String())
}

func (m model) plotSize() (int, int) {
	width := m.width - 2
	if width < 20 {
		width = 20
	}
	height := (m.height - chromeHeight) / 2
	if height < 3 {
		height = 3
	}
	return width, height
}

func slider(label string, value core.Frequency, r core.FrequencyRange) string {
	position := 0
	if r.Width() > 0 {
		position = int(float64(value-r.From) / float64(r.Width()) * float64(sliderWidth-1))
	}
	bar := strings.Repeat("━", position) + "●" + strings.Repeat("─", sliderWidth-1-position)
	return styles.label.Render(label) + bar + " " + styles.value.Render(fmt.Sprintf("%.0f", float64(value)))
}
