package ui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/aeolun/riktim/pkg/auth"
	"github.com/aeolun/riktim/pkg/chat"
	"github.com/aeolun/riktim/pkg/client"
	"github.com/aeolun/riktim/pkg/config"
	"github.com/aeolun/riktim/pkg/notify"
)

// newTestModel builds a model on mocks, sized, not signed in
func newTestModel() Model {
	cfg := config.DefaultTOMLConfig()
	cfg.Notifications.DemoFeed = false

	verifier := auth.StaticVerifier{AcceptedCode: cfg.Auth.AcceptedCode}
	queue := notify.NewQueue(5*time.Second, nil)
	logger := log.New(io.Discard)

	m := NewModel(client.NewMockState(), cfg, verifier, chat.SeedStore(), queue, logger)
	m.width = 120
	m.height = 40
	m.resizeChatPanes()
	return m
}

// newSignedInModel builds a model that already has a session
func newSignedInModel() Model {
	state := client.NewMockState()
	state.SetSession("+7 999 123-45-67", "Test User")

	cfg := config.DefaultTOMLConfig()
	cfg.Notifications.DemoFeed = false

	verifier := auth.StaticVerifier{AcceptedCode: cfg.Auth.AcceptedCode}
	queue := notify.NewQueue(5*time.Second, nil)
	logger := log.New(io.Discard)

	m := NewModel(state, cfg, verifier, chat.SeedStore(), queue, logger)
	m.width = 120
	m.height = 40
	m.resizeChatPanes()
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case "ctrl+j":
		return tea.KeyMsg{Type: tea.KeyCtrlJ}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press runs one key through Update and returns the resulting model
func press(m Model, key string) (Model, tea.Cmd) {
	updated, cmd := m.Update(keyMsg(key))
	return updated.(Model), cmd
}

// apply runs one message through Update and returns the resulting model
func apply(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// typeString feeds each rune to Update as keyboard input
func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = press(m, string(r))
	}
	return m
}
