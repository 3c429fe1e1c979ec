package client

import (
	"path/filepath"
	"testing"
)

func openTestState(t *testing.T) *State {
	t.Helper()
	state, err := OpenState(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("OpenState() error = %v", err)
	}
	t.Cleanup(func() { state.Close() })
	return state
}

func TestSessionRoundTrip(t *testing.T) {
	state := openTestState(t)

	phone, name := state.GetSession()
	if phone != "" || name != "" {
		t.Errorf("GetSession() on fresh state = %q, %q, want empty", phone, name)
	}

	if err := state.SetSession("+79991234567", "Alex"); err != nil {
		t.Fatalf("SetSession() error = %v", err)
	}
	phone, name = state.GetSession()
	if phone != "+79991234567" || name != "Alex" {
		t.Errorf("GetSession() = %q, %q, want +79991234567, Alex", phone, name)
	}

	if err := state.ClearSession(); err != nil {
		t.Fatalf("ClearSession() error = %v", err)
	}
	phone, name = state.GetSession()
	if phone != "" || name != "" {
		t.Errorf("GetSession() after clear = %q, %q, want empty", phone, name)
	}
}

func TestThemeAndWallpaperRoundTrip(t *testing.T) {
	state := openTestState(t)

	if got := state.GetTheme(); got != "" {
		t.Errorf("GetTheme() on fresh state = %q, want empty", got)
	}

	if err := state.SetTheme("ocean"); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	if err := state.SetWallpaper("dots"); err != nil {
		t.Fatalf("SetWallpaper() error = %v", err)
	}

	if got := state.GetTheme(); got != "ocean" {
		t.Errorf("GetTheme() = %q, want ocean", got)
	}
	if got := state.GetWallpaper(); got != "dots" {
		t.Errorf("GetWallpaper() = %q, want dots", got)
	}
}

func TestFirstRun(t *testing.T) {
	state := openTestState(t)

	if !state.GetFirstRun() {
		t.Error("GetFirstRun() on fresh state = false, want true")
	}
	if err := state.SetFirstRunComplete(); err != nil {
		t.Fatalf("SetFirstRunComplete() error = %v", err)
	}
	if state.GetFirstRun() {
		t.Error("GetFirstRun() after complete = true, want false")
	}
}

func TestConfigOverwrite(t *testing.T) {
	state := openTestState(t)

	if err := state.SetConfig("k", "v1"); err != nil {
		t.Fatalf("SetConfig() error = %v", err)
	}
	if err := state.SetConfig("k", "v2"); err != nil {
		t.Fatalf("SetConfig() overwrite error = %v", err)
	}
	got, err := state.GetConfig("k")
	if err != nil || got != "v2" {
		t.Errorf("GetConfig() = %q, %v, want v2, nil", got, err)
	}
}
