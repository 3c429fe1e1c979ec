package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLConfig represents the structure of the app config file
type TOMLConfig struct {
	Auth          AuthSection          `toml:"auth"`
	Call          CallSection          `toml:"call"`
	Notifications NotificationsSection `toml:"notifications"`
	UI            UISection            `toml:"ui"`
}

type AuthSection struct {
	AcceptedCode        string `toml:"accepted_code"`
	CodeDispatchDelayMs int    `toml:"code_dispatch_delay_ms"`
	VerifyDelayMs       int    `toml:"verify_delay_ms"`
}

type CallSection struct {
	ConnectDelayMs  int `toml:"connect_delay_ms"`
	TeardownDelayMs int `toml:"teardown_delay_ms"`
}

type NotificationsSection struct {
	DesktopAlerts bool `toml:"desktop_alerts"`
	ToastTTLSecs  int  `toml:"toast_ttl_seconds"`
	DemoFeed      bool `toml:"demo_feed"`
}

type UISection struct {
	Theme     string `toml:"theme"`
	Wallpaper string `toml:"wallpaper"`
}

// DefaultTOMLConfig returns the default TOML configuration
func DefaultTOMLConfig() TOMLConfig {
	return TOMLConfig{
		Auth: AuthSection{
			AcceptedCode:        "1234",
			CodeDispatchDelayMs: 1500,
			VerifyDelayMs:       1000,
		},
		Call: CallSection{
			ConnectDelayMs:  3000,
			TeardownDelayMs: 500,
		},
		Notifications: NotificationsSection{
			DesktopAlerts: true,
			ToastTTLSecs:  5,
			DemoFeed:      true,
		},
		UI: UISection{
			Theme:     "gradient",
			Wallpaper: "default",
		},
	}
}

// LoadConfig loads configuration from a TOML file, creates default if not found,
// and applies environment variable overrides
func LoadConfig(path string) (TOMLConfig, error) {
	// Expand ~ in path
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return TOMLConfig{}, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, create default config
		config := DefaultTOMLConfig()
		if err := writeDefaultConfig(path, config); err != nil {
			// If we can't write, just return defaults without error
			// (might be a permissions issue, but we can still run)
			return applyEnvOverrides(config), nil
		}
		return applyEnvOverrides(config), nil
	}

	// Load from file
	config := DefaultTOMLConfig()
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return TOMLConfig{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	return applyEnvOverrides(config), nil
}

// applyEnvOverrides applies environment variable overrides to the config
// Environment variables follow the pattern: RIKTIM_SECTION_KEY
// Example: RIKTIM_AUTH_ACCEPTED_CODE=0000
func applyEnvOverrides(config TOMLConfig) TOMLConfig {
	if val := os.Getenv("RIKTIM_AUTH_ACCEPTED_CODE"); val != "" {
		config.Auth.AcceptedCode = val
	}
	if val := os.Getenv("RIKTIM_AUTH_CODE_DISPATCH_DELAY_MS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Auth.CodeDispatchDelayMs = n
		}
	}
	if val := os.Getenv("RIKTIM_AUTH_VERIFY_DELAY_MS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Auth.VerifyDelayMs = n
		}
	}
	if val := os.Getenv("RIKTIM_CALL_CONNECT_DELAY_MS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Call.ConnectDelayMs = n
		}
	}
	if val := os.Getenv("RIKTIM_NOTIFICATIONS_DESKTOP_ALERTS"); val != "" {
		config.Notifications.DesktopAlerts = val == "true" || val == "1"
	}
	if val := os.Getenv("RIKTIM_NOTIFICATIONS_DEMO_FEED"); val != "" {
		config.Notifications.DemoFeed = val == "true" || val == "1"
	}
	return config
}

// writeDefaultConfig writes the default config file with comments
func writeDefaultConfig(path string, config TOMLConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString("# Riktim client configuration\n\n"); err != nil {
		return err
	}
	return toml.NewEncoder(f).Encode(config)
}
