package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"peoplefinder/internal/ui/input/types"
)

// EditingMode handles keys while the search field has focus. Keys it
// does not consume are edited into the field by the handler.
type EditingMode struct {
	keys types.KeyMap
}

func NewEditingMode(keys types.KeyMap) *EditingMode {
	return &EditingMode{keys: keys}
}

func (m *EditingMode) Name() string {
	return "editing"
}

func (m *EditingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Blur):
		return []types.Action{types.BlurInputAction{}}, true

	case key.Matches(msg, m.keys.Up):
		if !ctx.DropdownVisible() || ctx.SuggestionCount() == 0 {
			return nil, true
		}
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Down):
		if !ctx.DropdownVisible() || ctx.SuggestionCount() == 0 {
			return nil, true
		}
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.Select):
		cursor := ctx.Cursor()
		if !ctx.DropdownVisible() || cursor < 0 || cursor >= ctx.SuggestionCount() {
			return nil, true
		}
		return []types.Action{types.SelectAction{Index: cursor}}, true
	}

	return nil, false
}
