package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryCommitted   EventType = "QueryCommitted"
	EventPersonSelected   EventType = "PersonSelected"
	EventSelectionCleared EventType = "SelectionCleared"
	EventDropdownShown    EventType = "DropdownShown"
	EventDropdownHidden   EventType = "DropdownHidden"
	EventAppReady         EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryCommittedEvent is emitted when the debounced query is committed
type QueryCommittedEvent struct {
	Query   string
	Matches int
}

func (e QueryCommittedEvent) Type() EventType { return EventQueryCommitted }

// PersonSelectedEvent is emitted when a suggestion is picked
type PersonSelectedEvent struct {
	Person Person
}

func (e PersonSelectedEvent) Type() EventType { return EventPersonSelected }

// SelectionClearedEvent is emitted when typing discards a selection
type SelectionClearedEvent struct {
	Previous Person
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// DropdownShownEvent is emitted when the suggestion panel opens
type DropdownShownEvent struct{}

func (e DropdownShownEvent) Type() EventType { return EventDropdownShown }

// DropdownHiddenEvent is emitted when the suggestion panel closes
type DropdownHiddenEvent struct{}

func (e DropdownHiddenEvent) Type() EventType { return EventDropdownHidden }

// AppReadyEvent is emitted once the program has rendered its first frame
type AppReadyEvent struct {
	People int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
