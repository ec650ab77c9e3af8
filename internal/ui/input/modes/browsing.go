package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"peoplefinder/internal/ui/input/types"
)

// BrowsingMode handles keys while the search field is blurred
type BrowsingMode struct {
	keys types.KeyMap
}

func NewBrowsingMode(keys types.KeyMap) *BrowsingMode {
	return &BrowsingMode{keys: keys}
}

func (m *BrowsingMode) Name() string {
	return "browsing"
}

func (m *BrowsingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit, m.keys.Exit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Focus):
		return []types.Action{types.FocusInputAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	}
	return nil, true
}
