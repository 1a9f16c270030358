package detection

import (
	"fmt"
	"strings"

	"stackscout/pkg/detector"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().Background(lipgloss.Color("#7D56F4")).Foreground(lipgloss.Color("#FAFAFA")).Bold(true).Padding(0, 1, 0)
	focusedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type model struct {
	result    detector.Result
	confirmed bool
	quitting  bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "y", "Y", "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case "n", "N", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Stack Detection Results"))
	s.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(1, 2).
		Width(60)

	var content strings.Builder
	content.WriteString(focusedStyle.Render("Primary: "))
	content.WriteString(selectedItemStyle.Render(m.result.Primary))
	content.WriteString("\n\n")

	writeSet(&content, "Languages", m.result.Languages)
	writeSet(&content, "Frameworks", m.result.Frameworks)
	writeSet(&content, "Tools", m.result.Tools)
	writeSet(&content, "Test frameworks", m.result.TestFrameworks)
	writeSet(&content, "Bundlers", m.result.Bundlers)

	s.WriteString(box.Render(strings.TrimRight(content.String(), "\n")))
	s.WriteString("\n\n")

	s.WriteString(focusedStyle.Render("Generate tool configuration for this project?"))
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press "))
	s.WriteString(focusedStyle.Render("y"))
	s.WriteString(helpStyle.Render(" to continue, "))
	s.WriteString(focusedStyle.Render("n"))
	s.WriteString(helpStyle.Render(" to skip, or "))
	s.WriteString(focusedStyle.Render("q"))
	s.WriteString(helpStyle.Render(" to quit"))

	return s.String()
}

func writeSet(content *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	content.WriteString(focusedStyle.Render(label + ": "))
	content.WriteString(descriptionStyle.Render(strings.Join(values, ", ")))
	content.WriteString("\n")
}

// ShowResult displays the detection result and asks whether to generate
// configuration.
func ShowResult(result detector.Result) (bool, error) {
	p := tea.NewProgram(model{result: result}, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error showing detection results: %w", err)
	}

	final := finalModel.(model)
	return final.confirmed, nil
}
