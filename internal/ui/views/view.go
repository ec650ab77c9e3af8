package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"peoplefinder/internal/domain"
)

// RegionID names an addressable part of the screen
type RegionID string

const (
	RegionTitle           RegionID = "title"
	RegionSearchInput     RegionID = "search-input"
	RegionSuggestionsList RegionID = "suggestions-list"
	RegionSuggestionItem  RegionID = "suggestion-item"
	RegionNoSuggestions   RegionID = "no-suggestions-message"
)

// NoSuggestionsText is the body of the no-suggestions notice
const NoSuggestionsText = "No matching suggestions"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Title           string
	HasSelection    bool
	InputView       string
	InputFocused    bool
	DropdownVisible bool
	Suggestions     []domain.Person
	MatchCount      int // matches before truncation to Suggestions
	Cursor          int
	ShowNoMatches   bool
	HelpView        string
}

// Target is what a screen cell belongs to
type Target int

const (
	TargetNone Target = iota
	TargetInput
	TargetSuggestion
)

// Frame is one rendered screen. Each region is kept separately so tests
// and the mouse handler can address it.
type Frame struct {
	Items []Item // visible suggestion-item rows, top to bottom

	regions     map[RegionID]string
	view        string
	inputTop    int // first content line of the input box
	inputBottom int // one past the last content line of the input box
	itemsTop    int // content line of the first visible item, -1 when hidden
	itemOffset  int // index into the suggestions of the first visible item
	inputWidth  int // columns covered by the input box
	itemsWidth  int // columns covered by the dropdown box
}

// Region returns the rendered text of a region and whether it is on screen.
// For RegionSuggestionItem the rows are joined with newlines.
func (f Frame) Region(id RegionID) (string, bool) {
	s, ok := f.regions[id]
	return s, ok
}

// String returns the complete screen
func (f Frame) String() string {
	return f.view
}

// HitTest maps a screen cell to the element drawn there. For
// TargetSuggestion the returned index is into ViewState.Suggestions.
func (f Frame) HitTest(x, y int) (Target, int) {
	line := y - mainPadTop
	col := x - mainPadLeft
	if col < 0 || line < 0 {
		return TargetNone, -1
	}
	if line >= f.inputTop && line < f.inputBottom && col < f.inputWidth {
		return TargetInput, -1
	}
	if f.itemsTop >= 0 && line >= f.itemsTop && line < f.itemsTop+len(f.Items) && col < f.itemsWidth {
		return TargetSuggestion, f.itemOffset + line - f.itemsTop
	}
	return TargetNone, -1
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// FieldWidth returns the inner width of the input box for a terminal width
func FieldWidth(termWidth int) int {
	if termWidth <= 0 {
		return 40
	}
	w := termWidth - 2*mainPadLeft - 4 // border and padding of the box
	if w > 60 {
		w = 60
	}
	if w < 12 {
		w = 12
	}
	return w
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) Frame {
	f := Frame{
		regions:  make(map[RegionID]string),
		itemsTop: -1,
	}
	var lines []string
	add := func(block string) {
		lines = append(lines, strings.Split(block, "\n")...)
	}

	titleStyle := r.styles.TitleEmpty
	if state.HasSelection {
		titleStyle = r.styles.Title
	}
	title := titleStyle.Render(state.Title)
	f.regions[RegionTitle] = title
	add(title)
	add("")

	width := FieldWidth(state.Width)
	boxStyle := r.styles.Input
	if state.InputFocused {
		boxStyle = r.styles.InputFocused
	}
	input := boxStyle.Width(width + 2).Render(r.styles.Prompt.Render("> ") + state.InputView)
	f.regions[RegionSearchInput] = input
	f.inputWidth = lipgloss.Width(input)
	f.inputTop = len(lines)
	add(input)
	f.inputBottom = len(lines)

	if state.DropdownVisible {
		f.regions[RegionSuggestionsList] = ""
		if len(state.Suggestions) > 0 {
			dropdown := r.renderDropdown(&f, state, width, len(lines))
			f.regions[RegionSuggestionsList] = dropdown
			f.itemsWidth = lipgloss.Width(dropdown)
			add(dropdown)
		}
	}

	if state.ShowNoMatches {
		notice := r.styles.Notice.Render(NoSuggestionsText)
		f.regions[RegionNoSuggestions] = notice
		add("")
		add(notice)
	}

	if state.HelpView != "" {
		add("")
		add(state.HelpView)
	}

	f.view = r.styles.Main.Render(strings.Join(lines, "\n"))
	return f
}

func (r *Renderer) renderDropdown(f *Frame, state ViewState, width, top int) string {
	cursor := state.Cursor
	if cursor < -1 || cursor >= len(state.Suggestions) {
		cursor = -1
	}

	rows := visibleRows(state, top)
	offset := 0
	if cursor >= rows {
		offset = cursor - rows + 1
	}
	end := offset + rows
	if end > len(state.Suggestions) {
		end = len(state.Suggestions)
	}

	list := SuggestionList{
		Records: state.Suggestions[offset:end],
		Cursor:  cursor - offset,
		Width:   width,
	}
	f.Items = list.Items(r.styles)
	f.itemOffset = offset
	f.itemsTop = top + 1 // below the top border

	itemLines := make([]string, len(f.Items))
	for i, item := range f.Items {
		itemLines[i] = item.Line
	}
	f.regions[RegionSuggestionItem] = strings.Join(itemLines, "\n")

	body := strings.Join(itemLines, "\n")
	if hidden := state.MatchCount - (end - offset); hidden > 0 {
		body += "\n" + r.styles.Count.Render(fmt.Sprintf("%d more", hidden))
	}
	return r.styles.Dropdown.Width(width + 2).Render(body)
}

// visibleRows returns how many suggestion rows fit below line top
func visibleRows(state ViewState, top int) int {
	if state.Height <= 0 {
		return len(state.Suggestions)
	}
	// Padding, dropdown borders, the "more" line, notice and help.
	reserved := 2*mainPadTop + 2 + 1
	if state.ShowNoMatches {
		reserved += 2
	}
	if state.HelpView != "" {
		reserved += 1 + lipgloss.Height(state.HelpView)
	}
	rows := state.Height - top - reserved
	if rows < 3 {
		rows = 3
	}
	if rows > len(state.Suggestions) {
		rows = len(state.Suggestions)
	}
	return rows
}
