// Package search holds the state machine behind the search widget: the
// typed text, the debounced query that drives filtering, the selected
// person and whether the input has focus.
package search

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"peoplefinder/internal/domain"
	"peoplefinder/internal/eventbus"
	"peoplefinder/internal/people"
	"peoplefinder/internal/ui/timer"
)

// NoSelectionTitle is shown while no person is selected
const NoSelectionTitle = "No selected person"

// Settings holds the timing and size knobs of a Container
type Settings struct {
	Debounce       time.Duration // quiescence window before a query is committed
	BlurGrace      time.Duration // delay before the dropdown closes on blur
	MaxSuggestions int           // 0 means no limit
}

// DefaultSettings returns the standard 300ms debounce and 100ms blur grace
func DefaultSettings() Settings {
	return Settings{
		Debounce:  300 * time.Millisecond,
		BlurGrace: 100 * time.Millisecond,
	}
}

// Option configures a Container
type Option func(*Container)

// WithBus publishes widget events to bus
func WithBus(bus eventbus.EventBus) Option {
	return func(c *Container) {
		c.bus = bus
	}
}

// WithTimerOptions passes opts to both internal timers
func WithTimerOptions(opts ...timer.Option) Option {
	return func(c *Container) {
		c.timerOpts = append(c.timerOpts, opts...)
	}
}

// Container owns the search state. It is not safe for concurrent use; all
// calls come from the Bubble Tea update loop.
type Container struct {
	dataset  *people.Dataset
	settings Settings
	bus      eventbus.EventBus

	rawText       string
	committedText string
	selected      *domain.Person
	inputFocused  bool

	debounce  *timer.Timer
	blurGrace *timer.Timer
	timerOpts []timer.Option

	// filtered caches FilteredList for filteredFor
	filtered    []domain.Person
	filteredFor string
	cacheValid  bool
}

// New creates a Container over dataset
func New(dataset *people.Dataset, settings Settings, opts ...Option) *Container {
	c := &Container{
		dataset:  dataset,
		settings: settings,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.debounce = timer.New(c.timerOpts...)
	c.blurGrace = timer.New(c.timerOpts...)
	return c
}

// OnTextChange records a keystroke. The selection is cleared and the
// commit of newText is (re)scheduled after the debounce window.
func (c *Container) OnTextChange(newText string) tea.Cmd {
	c.rawText = newText
	if c.selected != nil {
		previous := *c.selected
		c.selected = nil
		c.publish(eventbus.SelectionClearedEvent{Previous: previous})
	}

	return c.debounce.Schedule(c.settings.Debounce, func() {
		c.commit(newText)
	})
}

// OnSuggestionSelected selects person and replaces the typed text with the
// person's name. The committed query is left as it was.
func (c *Container) OnSuggestionSelected(person domain.Person) {
	c.selected = &person
	c.rawText = person.Name
	c.publish(eventbus.PersonSelectedEvent{Person: person})
}

// OnInputFocus cancels a pending close and shows the dropdown
func (c *Container) OnInputFocus() {
	c.blurGrace.Cancel()
	c.setFocused(true)
}

// OnInputBlur hides the dropdown once the blur grace delay has passed,
// unless focus comes back first.
func (c *Container) OnInputBlur() tea.Cmd {
	return c.blurGrace.Schedule(c.settings.BlurGrace, func() {
		c.setFocused(false)
	})
}

// Handle routes a timer tick to the timer that scheduled it. It reports
// whether the tick changed any state.
func (c *Container) Handle(msg timer.FiredMsg) bool {
	switch {
	case c.debounce.Owns(msg):
		return c.debounce.Handle(msg)
	case c.blurGrace.Owns(msg):
		return c.blurGrace.Handle(msg)
	default:
		return false
	}
}

// Owns reports whether msg belongs to one of the container's timers
func (c *Container) Owns(msg timer.FiredMsg) bool {
	return c.debounce.Owns(msg) || c.blurGrace.Owns(msg)
}

// Dispose cancels both timers. Ticks arriving later are ignored.
func (c *Container) Dispose() {
	c.debounce.Dispose()
	c.blurGrace.Dispose()
}

// FilteredList returns the people matching the committed query in dataset
// order, capped at MaxSuggestions. The returned slice must not be modified.
func (c *Container) FilteredList() []domain.Person {
	matches := c.matches()
	if limit := c.settings.MaxSuggestions; limit > 0 && len(matches) > limit {
		return matches[:limit]
	}
	return matches
}

// MatchCount returns the number of matches before MaxSuggestions applies
func (c *Container) MatchCount() int {
	return len(c.matches())
}

// Title returns the heading text
func (c *Container) Title() string {
	if c.selected == nil {
		return NoSelectionTitle
	}
	return c.selected.Lifespan()
}

// ShowNoMatches reports whether the no-suggestions notice is shown
func (c *Container) ShowNoMatches() bool {
	return c.rawText != "" && len(c.matches()) == 0
}

// DropdownVisible reports whether the suggestion panel is shown
func (c *Container) DropdownVisible() bool {
	return c.inputFocused
}

func (c *Container) RawText() string       { return c.rawText }
func (c *Container) CommittedText() string { return c.committedText }
func (c *Container) Focused() bool         { return c.inputFocused }
func (c *Container) CommitPending() bool   { return c.debounce.Pending() }
func (c *Container) ClosePending() bool    { return c.blurGrace.Pending() }

// Selected returns the selected person, if any
func (c *Container) Selected() (domain.Person, bool) {
	if c.selected == nil {
		return domain.Person{}, false
	}
	return *c.selected, true
}

func (c *Container) commit(text string) {
	c.committedText = text
	c.publish(eventbus.QueryCommittedEvent{Query: text, Matches: len(c.matches())})
}

func (c *Container) matches() []domain.Person {
	if !c.cacheValid || c.filteredFor != c.committedText {
		c.filtered = c.dataset.Filter(c.committedText)
		c.filteredFor = c.committedText
		c.cacheValid = true
	}
	return c.filtered
}

func (c *Container) setFocused(focused bool) {
	if c.inputFocused == focused {
		return
	}
	c.inputFocused = focused
	if focused {
		c.publish(eventbus.DropdownShownEvent{})
	} else {
		c.publish(eventbus.DropdownHiddenEvent{})
	}
}

func (c *Container) publish(event eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}
