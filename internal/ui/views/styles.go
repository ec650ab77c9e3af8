package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	TitleEmpty   lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Prompt       lipgloss.Style
	Dropdown     lipgloss.Style
	Item         lipgloss.Style
	ItemFemale   lipgloss.Style
	ItemCursor   lipgloss.Style
	Notice       lipgloss.Style
	Count        lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
}

// Main padding, used by hit-testing to map screen cells to content lines
const (
	mainPadTop  = 1
	mainPadLeft = 2
)

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		TitleEmpty: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("241")),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		Item:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // blue, like a link
		ItemFemale: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		ItemCursor: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("203")).
			PaddingLeft(1),
		Count: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:  lipgloss.NewStyle().Faint(true),
		Main:  lipgloss.NewStyle().Padding(mainPadTop, mainPadLeft),
	}
}
