package input

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"peoplefinder/internal/ui/input/modes"
	"peoplefinder/internal/ui/input/types"
)

// Handler routes key presses to the active mode and owns the search field
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model
	keys        types.KeyMap
}

// New creates a handler in browsing mode with an empty, blurred field
func New(placeholder string) *Handler {
	ti := textinput.New()
	ti.Prompt = "" // drawn by the view
	ti.Placeholder = placeholder
	ti.Cursor.SetMode(cursor.CursorStatic)

	keys := types.DefaultKeyMap()
	h := &Handler{
		currentMode: types.ModeBrowsing,
		textInput:   &ti,
		keys:        keys,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeEditing] = modes.NewEditingMode(keys)
	h.modes[types.ModeBrowsing] = modes.NewBrowsingMode(keys)

	return h
}

// HandleKey runs msg through the current mode. In editing mode, keys the
// mode does not consume go to the text field; an UpdateTextAction is
// emitted only when the field's value actually changed.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed || h.currentMode != types.ModeEditing {
		return actions, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		actions = append(actions, types.UpdateTextAction{Text: after})
	}
	return actions, cmd
}

// Focus switches to editing mode and focuses the field
func (h *Handler) Focus() tea.Cmd {
	h.currentMode = types.ModeEditing
	return h.textInput.Focus()
}

// Blur switches to browsing mode and blurs the field
func (h *Handler) Blur() {
	h.currentMode = types.ModeBrowsing
	h.textInput.Blur()
}

// SetValue replaces the field's text without emitting an update
func (h *Handler) SetValue(s string) {
	h.textInput.SetValue(s)
	h.textInput.CursorEnd()
}

// Value returns the field's text
func (h *Handler) Value() string {
	return h.textInput.Value()
}

// SetWidth sets the visible width of the field
func (h *Handler) SetWidth(w int) {
	h.textInput.Width = w
}

// View renders the field
func (h *Handler) View() string {
	return h.textInput.View()
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// Keys returns the key map in use
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}
