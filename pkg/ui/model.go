package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/aeolun/riktim/pkg/auth"
	"github.com/aeolun/riktim/pkg/call"
	"github.com/aeolun/riktim/pkg/chat"
	"github.com/aeolun/riktim/pkg/client"
	"github.com/aeolun/riktim/pkg/config"
	"github.com/aeolun/riktim/pkg/notify"
	"github.com/aeolun/riktim/pkg/theme"
	"github.com/aeolun/riktim/pkg/ui/modal"
)

// ViewState represents the current top-level view
type ViewState int

const (
	ViewAuth ViewState = iota
	ViewChats
	ViewProfile
)

// String returns the string representation of the view
func (v ViewState) String() string {
	switch v {
	case ViewAuth:
		return "Auth"
	case ViewChats:
		return "Chats"
	case ViewProfile:
		return "Profile"
	default:
		return "Unknown"
	}
}

// Model represents the application state
type Model struct {
	state    client.StateInterface
	cfg      config.TOMLConfig
	logger   *log.Logger
	verifier auth.Verifier

	// Current view and modals
	view       ViewState
	modalStack modal.ModalStack

	// Session and sign-in flow
	session *auth.Session
	flow    *auth.Flow
	authErr string

	// Conversations
	store        *chat.Store
	selectedConv int64 // 0 = none
	chatCursor   int

	// Notifications
	queue *notify.Queue

	// Call overlay; at most one active call, nil otherwise
	activeCall *call.Session
	callGen    uint64

	// Display preferences
	prefs  *theme.Preference
	styles StyleSet

	// UI state
	width         int
	height        int
	searchInput   textinput.Model
	phoneInput    textinput.Model
	codeInput     textinput.Model
	nameInput     textinput.Model
	chatTextarea  textarea.Model
	chatViewport  viewport.Model
	spinner       spinner.Model
	statusMessage string
	feedStarted   bool
}

// NewModel creates a new application model
func NewModel(state client.StateInterface, cfg config.TOMLConfig, verifier auth.Verifier, store *chat.Store, queue *notify.Queue, logger *log.Logger) Model {
	prefs := theme.NewPreference(cfg.UI.Theme, cfg.UI.Wallpaper)
	// A stored preference wins over the config file default
	if stored := state.GetTheme(); stored != "" {
		prefs.SelectTheme(stored)
	}
	if stored := state.GetWallpaper(); stored != "" {
		prefs.SelectWallpaper(stored)
	}

	styles := NewStyles(prefs.Theme())

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	phone := textinput.New()
	phone.Placeholder = "+7 999 123-45-67"
	phone.CharLimit = 20
	phone.Width = 24
	phone.Focus()

	code := textinput.New()
	code.Placeholder = "1234"
	code.CharLimit = auth.CodeLength
	code.Width = 10

	name := textinput.New()
	name.Placeholder = "What's your name?"
	name.CharLimit = 40
	name.Width = 24

	search := textinput.New()
	search.Placeholder = "Search..."
	search.CharLimit = 40
	search.Width = 28

	ta := textarea.New()
	ta.Placeholder = "Message..."
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.SetWidth(60) // Will be resized dynamically
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false) // Enter sends the message
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()

	m := Model{
		state:        state,
		cfg:          cfg,
		logger:       logger,
		verifier:     verifier,
		view:         ViewAuth,
		flow:         auth.NewFlow(),
		store:        store,
		queue:        queue,
		prefs:        prefs,
		styles:       styles,
		spinner:      s,
		searchInput:  search,
		phoneInput:   phone,
		codeInput:    code,
		nameInput:    name,
		chatTextarea: ta,
	}

	// A persisted session skips the sign-in flow
	if phoneNum, displayName := state.GetSession(); phoneNum != "" {
		m.session = &auth.Session{Phone: phoneNum, Name: displayName, Authenticated: true}
		m.view = ViewChats
	}

	return m
}

// Init returns the initial commands
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, textinput.Blink}
	if m.session != nil {
		cmds = append(cmds, m.startFeedCmds()...)
	}
	return tea.Batch(cmds...)
}

// startFeedCmds schedules the simulated inbound feed once per process
func (m *Model) startFeedCmds() []tea.Cmd {
	if m.feedStarted || !m.cfg.Notifications.DemoFeed {
		return nil
	}
	m.feedStarted = true
	return demoFeedCmds(chat.DemoFeed())
}

// Session returns the authenticated session, nil before sign-in completes
func (m Model) Session() *auth.Session {
	return m.session
}

// connectDelay returns the simulated call connection latency
func (m Model) connectDelay() time.Duration {
	return time.Duration(m.cfg.Call.ConnectDelayMs) * time.Millisecond
}

// teardownDelay returns the pause between hang up and overlay unmount
func (m Model) teardownDelay() time.Duration {
	return time.Duration(m.cfg.Call.TeardownDelayMs) * time.Millisecond
}

// selectedConversation returns the open conversation, nil when the list is shown
func (m Model) selectedConversation() *chat.Conversation {
	if m.selectedConv == 0 {
		return nil
	}
	c, ok := m.store.Get(m.selectedConv)
	if !ok {
		return nil
	}
	return c
}

// openConversation selects a conversation and clears its unread count
func (m *Model) openConversation(id int64) {
	if _, ok := m.store.Get(id); !ok {
		return
	}
	m.selectedConv = id
	m.store.Open(id)
	m.chatTextarea.Reset()
	if c := m.selectedConversation(); c != nil {
		m.chatTextarea.SetValue(c.Draft())
	}
	m.chatTextarea.Focus()
	m.refreshChatViewport()
}

// closeConversation returns to the chat list, stashing the draft
func (m *Model) closeConversation() {
	if c := m.selectedConversation(); c != nil {
		m.store.SetDraft(c.ID, m.chatTextarea.Value())
	}
	m.selectedConv = 0
	m.chatTextarea.Blur()
}

// switchView changes the top-level view and clears the selected conversation
func (m *Model) switchView(v ViewState) {
	m.closeConversation()
	m.view = v
}

// applyTheme switches the active theme and rebuilds the styles
func (m *Model) applyTheme(id string) {
	if !m.prefs.SelectTheme(id) {
		return
	}
	m.styles = NewStyles(m.prefs.Theme())
	m.spinner.Style = m.styles.Spinner
	if err := m.state.SetTheme(id); err != nil && m.logger != nil {
		m.logger.Warn("failed to persist theme", "err", err)
	}
}

// applyWallpaper switches the chat wallpaper
func (m *Model) applyWallpaper(id string) {
	if !m.prefs.SelectWallpaper(id) {
		return
	}
	if err := m.state.SetWallpaper(id); err != nil && m.logger != nil {
		m.logger.Warn("failed to persist wallpaper", "err", err)
	}
	m.refreshChatViewport()
}
