package client

// StateInterface defines the interface for client state persistence
// This allows for mocking in tests while the real State implements all these methods
type StateInterface interface {
	// Configuration
	GetConfig(key string) (string, error)
	SetConfig(key, value string) error

	// Session identity
	GetSession() (phone, name string)
	SetSession(phone, name string) error
	ClearSession() error

	// Display preferences
	GetTheme() string
	SetTheme(id string) error
	GetWallpaper() string
	SetWallpaper(id string) error

	// First run tracking
	GetFirstRun() bool
	SetFirstRunComplete() error

	// State directory
	GetStateDir() string

	// Close the state
	Close() error
}
