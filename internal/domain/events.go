package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested EventType = "SearchRequested"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventUploadRejected  EventType = "UploadRejected"
	EventUploadStarted   EventType = "UploadStarted"
	EventUploadCompleted EventType = "UploadCompleted"
	EventUploadFailed    EventType = "UploadFailed"
	EventCountUpdated    EventType = "CountUpdated"
	EventClearRequested  EventType = "ClearRequested"
	EventCatalogCleared  EventType = "CatalogCleared"
	EventError           EventType = "Error"
)

// AllEventTypes lists every event type the application publishes
func AllEventTypes() []EventType {
	return []EventType{
		EventSearchRequested,
		EventSearchCompleted,
		EventSearchFailed,
		EventUploadRejected,
		EventUploadStarted,
		EventUploadCompleted,
		EventUploadFailed,
		EventCountUpdated,
		EventClearRequested,
		EventCatalogCleared,
		EventError,
	}
}

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted when a non-blank query is sent to the backend
type SearchRequestedEvent struct {
	Query string
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchCompletedEvent is emitted when a search response has been applied
type SearchCompletedEvent struct {
	Query   string
	Results int
	Total   int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a search request failed
type SearchFailedEvent struct {
	Query string
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// UploadRejectedEvent is emitted when a file fails client-side validation
type UploadRejectedEvent struct {
	FileName string
	Err      error
}

func (e UploadRejectedEvent) Type() EventType { return EventUploadRejected }

// UploadStartedEvent is emitted when a validated file is being sent
type UploadStartedEvent struct {
	FileName string
}

func (e UploadStartedEvent) Type() EventType { return EventUploadStarted }

// UploadCompletedEvent is emitted after the backend accepted a spreadsheet
type UploadCompletedEvent struct {
	FileName      string
	Message       string
	ProductsCount int
}

func (e UploadCompletedEvent) Type() EventType { return EventUploadCompleted }

// UploadFailedEvent is emitted when an upload could not be completed
type UploadFailedEvent struct {
	FileName string
	Err      error
}

func (e UploadFailedEvent) Type() EventType { return EventUploadFailed }

// CountUpdatedEvent is emitted whenever the product count changes
type CountUpdatedEvent struct {
	Count  int
	Source string // "fetch" or "upload"
}

func (e CountUpdatedEvent) Type() EventType { return EventCountUpdated }

// ClearRequestedEvent is emitted when the user confirmed wiping the catalog
type ClearRequestedEvent struct{}

func (e ClearRequestedEvent) Type() EventType { return EventClearRequested }

// CatalogClearedEvent is emitted after the backend removed all products
type CatalogClearedEvent struct {
	Message string
}

func (e CatalogClearedEvent) Type() EventType { return EventCatalogCleared }

// ErrorEvent is emitted for failures that are only logged
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
