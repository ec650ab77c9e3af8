package types

// Navigation actions
type MoveCursorAction struct {
	Delta int
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

// Selection actions
type SelectAction struct {
	Index int // index into the visible suggestions
}

func (a SelectAction) Type() string { return "select" }

// Focus actions
type FocusInputAction struct{}

func (a FocusInputAction) Type() string { return "focus_input" }

type BlurInputAction struct{}

func (a BlurInputAction) Type() string { return "blur_input" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Other actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
