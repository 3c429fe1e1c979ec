package client

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// State manages client-side persistent state
type State struct {
	db  *sql.DB
	dir string // Directory where state is stored
}

// OpenState opens or creates the client state database
func OpenState(path string) (*State, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	// Configure for better reliability
	db.SetMaxOpenConns(1) // Client only needs one connection
	db.SetMaxIdleConns(1)

	// Enable WAL mode
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Set busy timeout
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS Config (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &State{db: db, dir: dir}, nil
}

// Close closes the state database
func (s *State) Close() error {
	return s.db.Close()
}

// GetConfig retrieves a configuration value
func (s *State) GetConfig(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM Config WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// SetConfig stores a configuration value
func (s *State) SetConfig(key, value string) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO Config (key, value) VALUES (?, ?)
	`, key, value)
	return err
}

// GetSession returns the stored authenticated identity. An empty phone means
// no session exists and the sign-in flow runs on startup.
func (s *State) GetSession() (phone, name string) {
	phone, _ = s.GetConfig("session_phone")
	name, _ = s.GetConfig("session_name")
	return phone, name
}

// SetSession stores the authenticated identity
func (s *State) SetSession(phone, name string) error {
	if err := s.SetConfig("session_phone", phone); err != nil {
		return err
	}
	return s.SetConfig("session_name", name)
}

// ClearSession removes the stored identity, forcing sign-in on next start
func (s *State) ClearSession() error {
	return s.SetSession("", "")
}

// GetTheme returns the stored theme id, empty if never set
func (s *State) GetTheme() string {
	id, _ := s.GetConfig("theme")
	return id
}

// SetTheme stores the theme id
func (s *State) SetTheme(id string) error {
	return s.SetConfig("theme", id)
}

// GetWallpaper returns the stored wallpaper id, empty if never set
func (s *State) GetWallpaper() string {
	id, _ := s.GetConfig("wallpaper")
	return id
}

// SetWallpaper stores the wallpaper id
func (s *State) SetWallpaper(id string) error {
	return s.SetConfig("wallpaper", id)
}

// GetFirstRun checks if this is the first time running the client
func (s *State) GetFirstRun() bool {
	val, _ := s.GetConfig("first_run_complete")
	return val != "true"
}

// SetFirstRunComplete marks first run as complete
func (s *State) SetFirstRunComplete() error {
	return s.SetConfig("first_run_complete", "true")
}

// GetStateDir returns the directory where state is stored
func (s *State) GetStateDir() string {
	return s.dir
}
