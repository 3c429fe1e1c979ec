package ui

import (
	"testing"

	"github.com/aeolun/riktim/pkg/auth"
	"github.com/aeolun/riktim/pkg/theme"
)

func TestNewModel(t *testing.T) {
	m := newTestModel()

	if m.view != ViewAuth {
		t.Errorf("NewModel() view = %v, want ViewAuth", m.view)
	}
	if m.session != nil {
		t.Error("NewModel() session should be nil before sign-in")
	}
	if m.flow.Step() != auth.StepPhone {
		t.Errorf("NewModel() flow step = %v, want StepPhone", m.flow.Step())
	}
	if m.store == nil || m.queue == nil {
		t.Fatal("NewModel() store or queue is nil")
	}
	if m.prefs.ThemeID() != theme.DefaultThemeID {
		t.Errorf("NewModel() theme = %q, want %q", m.prefs.ThemeID(), theme.DefaultThemeID)
	}
}

func TestNewModelWithStoredSession(t *testing.T) {
	m := newSignedInModel()

	if m.view != ViewChats {
		t.Errorf("stored session: view = %v, want ViewChats", m.view)
	}
	if m.session == nil {
		t.Fatal("stored session: session is nil")
	}
	if m.session.Name != "Test User" {
		t.Errorf("stored session: name = %q, want %q", m.session.Name, "Test User")
	}
}

func TestNewModelStoredThemeWinsOverConfig(t *testing.T) {
	m := newTestModel()
	if err := m.state.SetTheme("dark"); err != nil {
		t.Fatal(err)
	}

	m2 := NewModel(m.state, m.cfg, m.verifier, m.store, m.queue, m.logger)
	if m2.prefs.ThemeID() != "dark" {
		t.Errorf("theme = %q, want %q", m2.prefs.ThemeID(), "dark")
	}
}

func TestNewModelIgnoresUnknownStoredTheme(t *testing.T) {
	m := newTestModel()
	if err := m.state.SetConfig("theme", "holographic"); err != nil {
		t.Fatal(err)
	}

	m2 := NewModel(m.state, m.cfg, m.verifier, m.store, m.queue, m.logger)
	if m2.prefs.ThemeID() != theme.DefaultThemeID {
		t.Errorf("theme = %q, want default %q", m2.prefs.ThemeID(), theme.DefaultThemeID)
	}
}

func TestViewStateString(t *testing.T) {
	if ViewAuth.String() != "Auth" || ViewChats.String() != "Chats" || ViewProfile.String() != "Profile" {
		t.Error("ViewState.String() returned unexpected labels")
	}
}
