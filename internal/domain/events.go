package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLanguageChanged EventType = "LanguageChanged"
	EventQueryChanged    EventType = "QueryChanged"
	EventSheetOpened     EventType = "SheetOpened"
	EventSheetNotFound   EventType = "SheetNotFound"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventAppReady        EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LanguageChangedEvent is emitted when the user switches locale
type LanguageChangedEvent struct {
	Language string
}

func (e LanguageChangedEvent) Type() EventType { return EventLanguageChanged }

// QueryChangedEvent is emitted after the query state is mutated
type QueryChangedEvent struct {
	SessionID    string
	SearchText   string
	Category     Category
	FeaturedOnly bool
	ResultCount  int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// OpenTarget says where a sheet was opened
type OpenTarget string

const (
	OpenInBrowser OpenTarget = "browser"
	OpenEmbedded  OpenTarget = "embedded"
	OpenDetail    OpenTarget = "detail"
)

// SheetOpenedEvent is emitted when a sheet is opened in any view
type SheetOpenedEvent struct {
	SessionID string
	SheetID   string
	Target    OpenTarget
}

func (e SheetOpenedEvent) Type() EventType { return EventSheetOpened }

// SheetNotFoundEvent is emitted when a deep link does not resolve
type SheetNotFoundEvent struct {
	Ref string
}

func (e SheetNotFoundEvent) Type() EventType { return EventSheetNotFound }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Language string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	SessionID   string
	Cheatsheets int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
