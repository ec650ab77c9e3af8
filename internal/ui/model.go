package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"peoplefinder/internal/config"
	"peoplefinder/internal/domain"
	"peoplefinder/internal/eventbus"
	"peoplefinder/internal/people"
	"peoplefinder/internal/ui/input"
	inputtypes "peoplefinder/internal/ui/input/types"
	"peoplefinder/internal/ui/search"
	"peoplefinder/internal/ui/timer"
	"peoplefinder/internal/ui/views"
)

// ReadyMarker is printed below the first frame when WithReadyMarker is set
const ReadyMarker = "__READY__"

// Option configures a Model
type Option func(*Model)

// WithTimerOptions passes opts to the search container's timers
func WithTimerOptions(opts ...timer.Option) Option {
	return func(m *Model) {
		m.timerOpts = append(m.timerOpts, opts...)
	}
}

// WithReadyMarker makes the view print ReadyMarker once sized, for e2e tests
func WithReadyMarker() Option {
	return func(m *Model) {
		m.readyMarker = true
	}
}

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	dataset *people.Dataset

	container    *search.Container
	inputHandler *input.Handler
	renderer     *views.Renderer
	help         help.Model

	width  int
	height int

	// cursor is the highlighted suggestion, -1 for none. It resets
	// whenever the committed query changes.
	cursor      int
	cursorQuery string

	// focusOnReturn is set when the terminal lost focus while the field
	// had it, so regaining terminal focus restores it.
	focusOnReturn bool

	frame       views.Frame
	ready       bool
	readyMarker bool
	quitting    bool
	timerOpts   []timer.Option
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, dataset *people.Dataset, opts ...Option) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		dataset:      dataset,
		inputHandler: input.New(cfg.Search.Placeholder),
		renderer:     views.NewRenderer(),
		help:         help.New(),
		cursor:       -1,
	}
	for _, opt := range opts {
		opt(m)
	}

	settings := search.Settings{
		Debounce:       cfg.Search.Debounce(),
		BlurGrace:      cfg.Search.BlurGrace(),
		MaxSuggestions: cfg.Search.MaxSuggestions,
	}
	m.container = search.New(dataset, settings,
		search.WithBus(bus),
		search.WithTimerOptions(m.timerOpts...),
	)

	return m
}

// Init focuses the search field so typing works right away
func (m *Model) Init() tea.Cmd {
	return m.focus()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.inputHandler.SetWidth(views.FieldWidth(msg.Width) - 3)
		if !m.ready {
			m.ready = true
			m.publish(eventbus.AppReadyEvent{People: m.dataset.Len()})
		}

	case timer.FiredMsg:
		if m.container.Handle(msg) {
			m.syncCursor()
		}

	case tea.FocusMsg:
		if !m.focusOnReturn {
			return m, nil
		}
		m.focusOnReturn = false
		return m, m.focus()

	case tea.BlurMsg:
		m.focusOnReturn = m.inputHandler.CurrentMode() == inputtypes.ModeEditing
		return m, m.blur()

	case ShutdownMsg:
		return m, m.processAction(inputtypes.QuitAction{})

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.frame = m.renderer.Render(m.viewState())
	if m.readyMarker {
		return m.frame.String() + "\n" + ReadyMarker
	}
	return m.frame.String()
}

// Frame returns the most recently rendered frame
func (m *Model) Frame() views.Frame {
	return m.frame
}

// Container exposes the search state, mainly for tests
func (m *Model) Container() *search.Container {
	return m.container
}

func (m *Model) viewState() views.ViewState {
	_, hasSelection := m.container.Selected()
	state := views.ViewState{
		Width:           m.width,
		Height:          m.height,
		Title:           m.container.Title(),
		HasSelection:    hasSelection,
		InputView:       m.inputHandler.View(),
		InputFocused:    m.inputHandler.CurrentMode() == inputtypes.ModeEditing,
		DropdownVisible: m.container.DropdownVisible(),
		Suggestions:     m.container.FilteredList(),
		MatchCount:      m.container.MatchCount(),
		Cursor:          m.cursor,
		ShowNoMatches:   m.container.ShowNoMatches(),
	}
	if m.config.UISettings.ShowHelp {
		keys := m.inputHandler.Keys()
		bindings := keys.BrowsingHelp()
		if state.InputFocused {
			bindings = keys.EditingHelp()
		}
		state.HelpView = m.help.ShortHelpView(bindings)
	}
	return state
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	actions, cmd := m.inputHandler.HandleKey(msg, m)

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		// A zero debounce commits inside OnTextChange, with no tick to
		// follow.
		cmd := m.container.OnTextChange(a.Text)
		m.syncCursor()
		return cmd

	case inputtypes.MoveCursorAction:
		m.moveCursor(a.Delta)

	case inputtypes.SelectAction:
		// Mirrors a click: the field loses focus, then the row is picked.
		cmd := m.blur()
		m.selectSuggestion(a.Index)
		return cmd

	case inputtypes.FocusInputAction:
		return m.focus()

	case inputtypes.BlurInputAction:
		return m.blur()

	case inputtypes.ShowHelpAction:
		return showHelpInPager(NewHelpRenderer().RenderHelpContent(m.dataset.Len()))

	case inputtypes.QuitAction:
		m.quitting = true
		m.container.Dispose()
		return tea.Quit
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.container.DropdownVisible() {
			m.moveCursor(-1)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if m.container.DropdownVisible() {
			m.moveCursor(1)
		}
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	target, index := m.frame.HitTest(msg.X, msg.Y)
	if target == views.TargetInput {
		return m.focus()
	}

	// Pressing anywhere else takes focus away from the field. The
	// dropdown stays up for the blur grace delay, so a press on a row
	// still lands on it.
	cmd := m.blur()
	if target == views.TargetSuggestion && m.container.DropdownVisible() {
		m.selectSuggestion(index)
	}
	return cmd
}

func (m *Model) selectSuggestion(index int) {
	list := views.SuggestionList{
		Records: m.container.FilteredList(),
		OnSelect: func(p domain.Person) {
			m.container.OnSuggestionSelected(p)
			m.inputHandler.SetValue(p.Name)
		},
	}
	list.Click(index)
}

func (m *Model) focus() tea.Cmd {
	cmd := m.inputHandler.Focus()
	m.container.OnInputFocus()
	return cmd
}

func (m *Model) blur() tea.Cmd {
	if m.inputHandler.CurrentMode() == inputtypes.ModeBrowsing {
		return nil
	}
	m.inputHandler.Blur()
	return m.container.OnInputBlur()
}

func (m *Model) moveCursor(delta int) {
	n := len(m.container.FilteredList())
	if n == 0 {
		m.cursor = -1
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = n - 1
	}
	if m.cursor >= n {
		m.cursor = 0
	}
}

// syncCursor drops the highlight when the committed query changed
func (m *Model) syncCursor() {
	if q := m.container.CommittedText(); q != m.cursorQuery {
		m.cursorQuery = q
		m.cursor = -1
	}
	if m.cursor >= len(m.container.FilteredList()) {
		m.cursor = -1
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// Context for the input handler

func (m *Model) DropdownVisible() bool { return m.container.DropdownVisible() }
func (m *Model) SuggestionCount() int  { return len(m.container.FilteredList()) }
func (m *Model) Cursor() int           { return m.cursor }
