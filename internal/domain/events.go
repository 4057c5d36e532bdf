package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted    EventType = "SearchStarted"
	EventSearchCompleted  EventType = "SearchCompleted"
	EventSearchFailed     EventType = "SearchFailed"
	EventSearchCleared    EventType = "SearchCleared"
	EventHistoryAdded     EventType = "HistoryAdded"
	EventHistoryDuplicate EventType = "HistoryDuplicate"
	EventHistoryRemoved   EventType = "HistoryRemoved"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a query is handed to the provider
type SearchStartedEvent struct {
	Term string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when a query settles successfully.
// Results carries the formatted, already-truncated display strings.
type SearchCompletedEvent struct {
	Term    string
	Results []string
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when the provider reports an error.
// Subscribers must leave the displayed result set untouched.
type SearchFailedEvent struct {
	Term string
	Err  error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchClearedEvent is emitted when the term is too short to search
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// HistoryAddedEvent is emitted when a selection is recorded
type HistoryAddedEvent struct {
	Entry HistoryEntry
}

func (e HistoryAddedEvent) Type() EventType { return EventHistoryAdded }

// HistoryDuplicateEvent is emitted when a selection is rejected because
// an entry with the same title already exists
type HistoryDuplicateEvent struct {
	Title string
}

func (e HistoryDuplicateEvent) Type() EventType { return EventHistoryDuplicate }

// HistoryRemovedEvent is emitted when an entry is deleted from history
type HistoryRemovedEvent struct {
	Title string
}

func (e HistoryRemovedEvent) Type() EventType { return EventHistoryRemoved }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Country       string
	MinTermLength int
	MaxResults    int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when a non-fatal error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
