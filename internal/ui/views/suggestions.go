package views

import (
	"github.com/charmbracelet/x/ansi"

	"peoplefinder/internal/domain"
)

// SuggestionList renders candidate people, one row per record, in the
// order given. It keeps no state of its own.
type SuggestionList struct {
	Records  []domain.Person
	OnSelect func(domain.Person)
	Cursor   int // highlighted row, -1 for none
	Width    int // maximum visible width of a row, 0 for unlimited
}

// Item is one rendered suggestion-item row
type Item struct {
	Name        string
	Female      bool
	Highlighted bool
	Line        string
}

// Click invokes OnSelect with the record at index. It reports false and
// does nothing when index is out of range.
func (l SuggestionList) Click(index int) bool {
	if index < 0 || index >= len(l.Records) {
		return false
	}
	if l.OnSelect != nil {
		l.OnSelect(l.Records[index])
	}
	return true
}

// Items renders every row
func (l SuggestionList) Items(styles *Styles) []Item {
	items := make([]Item, len(l.Records))
	for i, p := range l.Records {
		name := p.Name
		if l.Width > 0 {
			name = ansi.Truncate(name, l.Width, "…")
		}

		style := styles.Item
		if p.IsFemale() {
			style = styles.ItemFemale
		}
		if i == l.Cursor {
			style = style.Inherit(styles.ItemCursor)
			if l.Width > 0 {
				style = style.Width(l.Width)
			}
		}

		items[i] = Item{
			Name:        p.Name,
			Female:      p.IsFemale(),
			Highlighted: i == l.Cursor,
			Line:        style.Render(name),
		}
	}
	return items
}
