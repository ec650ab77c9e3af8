package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates the key reference shown in the pager
func (r *HelpRenderer) RenderHelpContent(people int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(keys, desc string) string {
		return fmt.Sprintf("  %-14s %s\n", keyStyle.Render(keys), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("peoplefinder Help"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("Searching %d people by name.\n", people))

	help.WriteString(sectionStyle.Render("While typing"))
	help.WriteString("\n")
	help.WriteString(line("↑/↓, ^P/^N", "Highlight previous/next suggestion"))
	help.WriteString(line("Enter", "Select highlighted suggestion"))
	help.WriteString(line("Esc", "Leave the search field"))
	help.WriteString(line("Ctrl+C", "Quit"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Outside the field"))
	help.WriteString("\n")
	help.WriteString(line("/, i, Tab", "Back to the search field"))
	help.WriteString(line("?", "This help"))
	help.WriteString(line("q, Esc", "Quit"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(line("Click field", "Focus the search field"))
	help.WriteString(line("Click name", "Select that person"))
	help.WriteString("\n")

	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Matching ignores case and surrounding spaces; suggestions update after a short pause."))
	help.WriteString("\n")

	return help.String()
}

// pagerCommand shows text in ov. It satisfies tea.ExecCommand so Bubble Tea
// releases the terminal while the pager runs.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// Run blocks until the pager is closed
func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Don't write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showHelpInPager hands the terminal to ov until it exits
func showHelpInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
