package client

import (
	"sync"
)

// MockState is an in-memory test implementation of StateInterface
type MockState struct {
	mu sync.RWMutex

	// In-memory storage
	config map[string]string
	dir    string

	// Error injection
	getConfigErr error
	setConfigErr error
}

// NewMockState creates a new mock state
func NewMockState() *MockState {
	return &MockState{
		config: make(map[string]string),
		dir:    "/tmp/mock-state",
	}
}

// GetConfig retrieves a configuration value
func (s *MockState) GetConfig(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.getConfigErr != nil {
		return "", s.getConfigErr
	}

	return s.config[key], nil
}

// SetConfig stores a configuration value
func (s *MockState) SetConfig(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.setConfigErr != nil {
		return s.setConfigErr
	}

	s.config[key] = value
	return nil
}

// GetSession returns the stored authenticated identity
func (s *MockState) GetSession() (phone, name string) {
	phone, _ = s.GetConfig("session_phone")
	name, _ = s.GetConfig("session_name")
	return phone, name
}

// SetSession stores the authenticated identity
func (s *MockState) SetSession(phone, name string) error {
	if err := s.SetConfig("session_phone", phone); err != nil {
		return err
	}
	return s.SetConfig("session_name", name)
}

// ClearSession removes the stored identity
func (s *MockState) ClearSession() error {
	return s.SetSession("", "")
}

// GetTheme returns the stored theme id
func (s *MockState) GetTheme() string {
	id, _ := s.GetConfig("theme")
	return id
}

// SetTheme stores the theme id
func (s *MockState) SetTheme(id string) error {
	return s.SetConfig("theme", id)
}

// GetWallpaper returns the stored wallpaper id
func (s *MockState) GetWallpaper() string {
	id, _ := s.GetConfig("wallpaper")
	return id
}

// SetWallpaper stores the wallpaper id
func (s *MockState) SetWallpaper(id string) error {
	return s.SetConfig("wallpaper", id)
}

// GetFirstRun checks if this is the first run
func (s *MockState) GetFirstRun() bool {
	val, _ := s.GetConfig("first_run_complete")
	return val != "true"
}

// SetFirstRun sets the first run flag (test helper)
func (s *MockState) SetFirstRun(firstRun bool) {
	if firstRun {
		s.SetConfig("first_run_complete", "")
	} else {
		s.SetConfig("first_run_complete", "true")
	}
}

// SetFirstRunComplete marks first run as complete
func (s *MockState) SetFirstRunComplete() error {
	return s.SetConfig("first_run_complete", "true")
}

// GetStateDir returns the mock state directory
func (s *MockState) GetStateDir() string {
	return s.dir
}

// Close is a no-op for the mock
func (s *MockState) Close() error {
	return nil
}

// SetGetConfigError injects an error into GetConfig (test helper)
func (s *MockState) SetGetConfigError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getConfigErr = err
}

// SetSetConfigError injects an error into SetConfig (test helper)
func (s *MockState) SetSetConfigError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setConfigErr = err
}
