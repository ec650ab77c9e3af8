package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	// ModeEditing routes keys to the search field
	ModeEditing Mode = iota
	// ModeBrowsing is active while the search field is blurred
	ModeBrowsing
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeBrowsing:
		return "browsing"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	DropdownVisible() bool
	SuggestionCount() int
	Cursor() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
