package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLoadRequested   EventType = "LoadRequested"
	EventLoadStarted     EventType = "LoadStarted"
	EventAdvocatesLoaded EventType = "AdvocatesLoaded"
	EventLoadFailed      EventType = "LoadFailed"
	EventFilterApplied   EventType = "FilterApplied"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LoadRequestedEvent asks the loader to (re)fetch the dataset
type LoadRequestedEvent struct{}

func (e LoadRequestedEvent) Type() EventType { return EventLoadRequested }

// LoadStartedEvent is emitted when a fetch begins.
// Seq orders load events, which the bus may deliver out of order.
type LoadStartedEvent struct {
	Seq    uint64
	Source string
}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// AdvocatesLoadedEvent carries a freshly fetched dataset
type AdvocatesLoadedEvent struct {
	Seq       uint64
	Source    string
	Advocates []Advocate
}

func (e AdvocatesLoadedEvent) Type() EventType { return EventAdvocatesLoaded }

// AdvocatesLoadFailedEvent is emitted when a fetch fails.
// The previously held dataset stays in place.
type AdvocatesLoadFailedEvent struct {
	Seq    uint64
	Source string
	Err    error
}

func (e AdvocatesLoadFailedEvent) Type() EventType { return EventLoadFailed }

// FilterAppliedEvent is emitted each time the visible subset is recomputed
type FilterAppliedEvent struct {
	Query      string
	Generation uint64
	Visible    int
	Total      int
}

func (e FilterAppliedEvent) Type() EventType { return EventFilterApplied }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
