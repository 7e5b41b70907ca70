package repl

import (
	"strings"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Title = "DevHelper Agent (with Calculator & Notes Tools)"
	Hint  = "Type 'quit', 'exit' or 'q' to end the session."

	rule = 60
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
	userStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	agentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Banner returns the startup banner, with lines appended after the hint.
// When styled, the title and hint are coloured for a terminal.
func Banner(styled bool, lines ...string) string {
	line := strings.Repeat("=", rule)
	title, hint := Title, Hint
	if styled {
		title, hint = titleStyle.Render(title), dimStyle.Render(hint)
	}
	result := []string{line, title, line, hint}
	result = append(result, lines...)
	return strings.Join(result, "\n") + "\n"
}

// StyledLabels returns the prompt and reply labels coloured for a terminal
func StyledLabels() Opt {
	return WithLabels(userStyle.Render(strings.TrimSpace(Prompt))+" ", agentStyle.Render(strings.TrimSpace(Reply))+" ")
}
