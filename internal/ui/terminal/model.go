package terminal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wordgym/internal/core/view"
)

// Controller receives user input from the terminal.
type Controller interface {
	Select(id string)
	Press(control view.Control)
}

type modelMsg view.Model

type closedMsg struct{}

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	wordsStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")).Padding(1, 0)
	instructionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	timerStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")).Padding(1, 0)
	messageStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("213"))
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	hintStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	menuStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))
	frameStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
)

// Model is the bubbletea model for the terminal trainer.
type Model struct {
	controller Controller
	events     <-chan view.Model
	current    view.Model
	width      int
}

// New creates a terminal model fed by a session subscription.
func New(controller Controller, events <-chan view.Model) Model {
	return Model{
		controller: controller,
		events:     events,
		current:    view.RenderMenu(),
	}
}

func (m Model) Init() tea.Cmd {
	return waitForModel(m.events)
}

func waitForModel(events <-chan view.Model) tea.Cmd {
	return func() tea.Msg {
		model, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return modelMsg(model)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case modelMsg:
		m.current = view.Model(msg)
		return m, waitForModel(m.events)
	case closedMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "1", "2", "3":
		m.controller.Select(key)
	case "enter", " ", "space":
		if button, ok := m.primary(); ok {
			m.controller.Press(button.Control)
		}
	case "n":
		if m.has(view.ControlNewTopic) {
			m.controller.Press(view.ControlNewTopic)
		}
	}
	return m, nil
}

func (m Model) primary() (view.Button, bool) {
	for _, button := range m.current.Buttons {
		if button.Primary {
			return button, true
		}
	}
	return view.Button{}, false
}

func (m Model) has(control view.Control) bool {
	for _, button := range m.current.Buttons {
		if button.Control == control {
			return true
		}
	}
	return false
}

func (m Model) View() string {
	var b strings.Builder

	menu := make([]string, 0, len(view.Menu()))
	for _, entry := range view.Menu() {
		menu = append(menu, entry.Label)
	}
	b.WriteString(menuStyle.Render(strings.Join(menu, "   ")))
	b.WriteString("\n\n")

	model := m.current
	if model.Failed {
		b.WriteString(errorStyle.Render(model.Title))
	} else {
		b.WriteString(titleStyle.Render(model.Title))
	}
	b.WriteString("\n")
	if model.Words != "" {
		b.WriteString(wordsStyle.Render(model.Words))
		b.WriteString("\n")
	}
	if model.Instruction != "" {
		b.WriteString(instructionStyle.Render(model.Instruction))
		b.WriteString("\n")
	}
	if model.Timer != "" {
		b.WriteString(timerStyle.Render(model.Timer))
		b.WriteString("\n")
	}
	if model.Message != "" {
		b.WriteString(messageStyle.Render(model.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.hints()))

	frame := frameStyle
	if m.width > 4 {
		frame = frame.Width(m.width - 4)
	}
	return frame.Render(b.String())
}

func (m Model) hints() string {
	hints := []string{}
	if !m.current.Failed {
		hints = append(hints, "1/2/3 choose exercise")
	}
	for _, button := range m.current.Buttons {
		switch {
		case button.Primary:
			hints = append(hints, "enter "+strings.ToLower(button.Label))
		case button.Control == view.ControlNewTopic:
			hints = append(hints, "n "+strings.ToLower(button.Label))
		}
	}
	hints = append(hints, "q quit")
	return strings.Join(hints, " • ")
}
