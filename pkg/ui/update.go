package ui

import (
	"bytes"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aeolun/riktim/pkg/auth"
	"github.com/aeolun/riktim/pkg/call"
	"github.com/aeolun/riktim/pkg/chat"
	"github.com/aeolun/riktim/pkg/ui/modal"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeChatPanes()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case CodeSentMsg:
		return m.handleCodeSent(msg)

	case CodeCheckedMsg:
		return m.handleCodeChecked(msg)

	case CallConnectedMsg:
		if m.activeCall == nil || msg.Generation != m.activeCall.Generation {
			// A stale timer from an already destroyed call
			return m, nil
		}
		if err := m.activeCall.Connect(); err != nil {
			return m, nil
		}
		return m, callTickCmd(msg.Generation)

	case CallTickMsg:
		if m.activeCall == nil || msg.Generation != m.activeCall.Generation {
			return m, nil
		}
		m.activeCall.Tick()
		if m.activeCall.Status() != call.StatusConnected {
			return m, nil
		}
		return m, callTickCmd(msg.Generation)

	case CallClosedMsg:
		if m.activeCall != nil && msg.Generation == m.activeCall.Generation {
			m.activeCall = nil
		}
		return m, nil

	case ToastExpiredMsg:
		// No-op when the toast was already dismissed or activated
		m.queue.Dismiss(msg.ID)
		return m, nil

	case TypingMsg:
		if c, ok := m.store.Get(msg.ConversationID); ok {
			c.Typing = msg.Typing
			if m.selectedConv == c.ID {
				m.refreshChatViewport()
			}
		}
		return m, nil

	case InboundMessageMsg:
		return m.handleInboundMessage(msg)

	case AttachmentReadMsg:
		return m.handleAttachmentRead(msg)

	case ThemeSelectedMsg:
		m.applyTheme(msg.ID)
		return m, nil

	case WallpaperSelectedMsg:
		m.applyWallpaper(msg.ID)
		return m, nil
	}

	// Cursor blink and other component messages go to the focused widgets
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.phoneInput, cmd = m.phoneInput.Update(msg)
	cmds = append(cmds, cmd)
	m.codeInput, cmd = m.codeInput.Update(msg)
	cmds = append(cmds, cmd)
	m.nameInput, cmd = m.nameInput.Update(msg)
	cmds = append(cmds, cmd)
	m.searchInput, cmd = m.searchInput.Update(msg)
	cmds = append(cmds, cmd)
	m.chatTextarea, cmd = m.chatTextarea.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleKeyPress routes keyboard input: modals first, then the call overlay,
// then the current view
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Special case: ctrl+c always quits immediately
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Check if active modal handles this key
	if activeModal := m.modalStack.Top(); activeModal != nil {
		handled, newModal, cmd := activeModal.HandleKey(msg)

		if newModal == nil {
			m.modalStack.Pop()
		} else if newModal.Type() != activeModal.Type() {
			m.modalStack.Pop()
			m.modalStack.Push(newModal)
		}

		if handled {
			return m, cmd
		}
		if activeModal.IsBlockingInput() {
			return m, nil
		}
	}

	// The call overlay owns the keyboard while a call exists
	if m.activeCall != nil {
		return m.handleCallKeys(key)
	}

	// Toast shortcuts work from any authenticated view
	if m.session != nil {
		switch key {
		case "ctrl+j":
			return m.activateOldestToast()
		case "ctrl+k":
			if n, ok := m.queue.Oldest(); ok {
				m.queue.Dismiss(n.ID)
			}
			return m, nil
		}
	}

	switch m.view {
	case ViewAuth:
		return m.handleAuthKeys(msg)
	case ViewChats:
		return m.handleChatsKeys(msg)
	case ViewProfile:
		return m.handleProfileKeys(msg)
	}
	return m, nil
}

// handleAuthKeys drives the sign-in flow
func (m Model) handleAuthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// The loading guard: nothing is accepted while a request is in flight
	if m.flow.Loading() {
		return m, nil
	}

	switch m.flow.Step() {
	case auth.StepPhone:
		if key == "enter" {
			m.flow.SetPhone(m.phoneInput.Value())
			if err := m.flow.BeginPhoneSubmit(); err != nil {
				m.authErr = "Enter your phone number first"
				return m, nil
			}
			m.authErr = ""
			return m, sendCodeCmd(m.verifier, m.flow.Phone(), false)
		}
		var cmd tea.Cmd
		m.phoneInput, cmd = m.phoneInput.Update(msg)
		return m, cmd

	case auth.StepCode:
		switch key {
		case "enter":
			m.flow.SetCode(m.codeInput.Value())
			if err := m.flow.BeginCodeSubmit(); err != nil {
				m.authErr = "The code is 4 characters"
				return m, nil
			}
			m.authErr = ""
			return m, checkCodeCmd(m.verifier, m.flow.Phone(), m.flow.Code())
		case "esc":
			if m.flow.Back() == nil {
				m.codeInput.Reset()
				m.authErr = ""
				m.codeInput.Blur()
				m.phoneInput.Focus()
			}
			return m, nil
		case "ctrl+r":
			if m.flow.BeginResend() == nil {
				m.statusMessage = ""
				return m, sendCodeCmd(m.verifier, m.flow.Phone(), true)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.codeInput, cmd = m.codeInput.Update(msg)
		return m, cmd

	case auth.StepProfile:
		if key == "enter" {
			m.flow.SetName(m.nameInput.Value())
			sess, err := m.flow.SubmitProfile()
			if err != nil {
				m.authErr = "Tell us your name to finish"
				return m, nil
			}
			return m.completeAuth(sess)
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// completeAuth installs the finished session and enters the chats view
func (m Model) completeAuth(sess auth.Session) (tea.Model, tea.Cmd) {
	m.session = &sess
	m.authErr = ""
	if err := m.state.SetSession(sess.Phone, sess.Name); err != nil && m.logger != nil {
		m.logger.Warn("failed to persist session", "err", err)
	}
	if err := m.state.SetFirstRunComplete(); err != nil && m.logger != nil {
		m.logger.Warn("failed to mark first run", "err", err)
	}
	m.view = ViewChats
	if m.logger != nil {
		m.logger.Info("signed in", "phone", sess.Phone, "name", sess.Name)
	}
	return m, tea.Batch(m.startFeedCmds()...)
}

// handleCodeSent finishes the simulated code dispatch
func (m Model) handleCodeSent(msg CodeSentMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.flow.AbortSubmit()
		m.authErr = "Could not send the code, try again"
		return m, nil
	}
	if msg.Resend {
		m.flow.CompleteResend()
		m.statusMessage = "Code sent again"
		return m, nil
	}
	m.flow.CompletePhoneSubmit()
	m.phoneInput.Blur()
	m.codeInput.Focus()
	return m, nil
}

// handleCodeChecked finishes the simulated code verification
func (m Model) handleCodeChecked(msg CodeCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.flow.AbortSubmit()
		m.authErr = "Verification failed, try again"
		return m, nil
	}
	if err := m.flow.CompleteCodeSubmit(msg.OK); err != nil {
		if errors.Is(err, auth.ErrInvalidCode) {
			m.authErr = "Wrong code! For the demo, use " + m.cfg.Auth.AcceptedCode
		}
		return m, nil
	}
	m.codeInput.Blur()
	m.nameInput.Focus()
	return m, nil
}

// handleChatsKeys covers both the chat list and an open conversation
func (m Model) handleChatsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if conv := m.selectedConversation(); conv != nil {
		switch key {
		case "esc":
			m.closeConversation()
			return m, nil
		case "enter":
			return m.sendDraft(conv)
		case "ctrl+t":
			return m.openThemeModal()
		case "ctrl+f":
			return m.openAttachModal(conv.ID)
		case "ctrl+a":
			return m.startCall(conv, call.KindAudio)
		case "ctrl+g":
			return m.startCall(conv, call.KindVideo)
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.chatViewport, cmd = m.chatViewport.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.chatTextarea, cmd = m.chatTextarea.Update(msg)
		return m, cmd
	}

	// List mode; the search box swallows plain keys while focused
	if m.searchInput.Focused() {
		switch key {
		case "esc":
			m.searchInput.Reset()
			m.searchInput.Blur()
			return m, nil
		case "enter":
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.chatCursor = 0
		return m, cmd
	}

	visible := m.store.Filter(m.searchInput.Value())
	switch key {
	case "up", "k":
		if m.chatCursor > 0 {
			m.chatCursor--
		}
	case "down", "j":
		if m.chatCursor < len(visible)-1 {
			m.chatCursor++
		}
	case "enter":
		if m.chatCursor < len(visible) {
			m.openConversation(visible[m.chatCursor].ID)
		}
	case "/":
		return m, m.searchInput.Focus()
	case "p":
		m.switchView(ViewProfile)
	case "t":
		return m.openThemeModal()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// handleProfileKeys covers the profile view
func (m Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "c":
		m.switchView(ViewChats)
	case "t":
		return m.openThemeModal()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// handleCallKeys covers the call overlay
func (m Model) handleCallKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "m":
		m.activeCall.ToggleMute()
	case "v":
		m.activeCall.ToggleVideo()
	case "s":
		m.activeCall.ToggleSpeaker()
	case "e", "esc", "enter":
		if m.activeCall.Status() != call.StatusEnded {
			m.activeCall.HangUp()
			return m, callCloseCmd(m.teardownDelay(), m.activeCall.Generation)
		}
	}
	return m, nil
}

// sendDraft commits the composer content as an outbound message
func (m Model) sendDraft(conv *chat.Conversation) (tea.Model, tea.Cmd) {
	m.store.SetDraft(conv.ID, m.chatTextarea.Value())
	if _, err := m.store.SendText(conv.ID); err != nil {
		// An empty draft sends nothing and stays put
		return m, nil
	}
	m.chatTextarea.Reset()
	m.refreshChatViewport()
	m.chatViewport.GotoBottom()
	return m, nil
}

// startCall creates the single active call session in the calling state
func (m Model) startCall(conv *chat.Conversation, kind call.Kind) (tea.Model, tea.Cmd) {
	if m.activeCall != nil {
		return m, nil
	}
	m.callGen++
	m.activeCall = call.NewSession(conv.Name, kind, m.callGen)
	if m.logger != nil {
		m.logger.Info("call started", "contact", conv.Name, "kind", kind.String())
	}
	return m, callConnectCmd(m.connectDelay(), m.callGen)
}

// openThemeModal shows the theme/wallpaper picker
func (m Model) openThemeModal() (tea.Model, tea.Cmd) {
	m.modalStack.Push(modal.NewThemeSettingsModal(
		m.prefs.ThemeID(),
		m.prefs.WallpaperID(),
		func(id string) tea.Cmd {
			return func() tea.Msg { return ThemeSelectedMsg{ID: id} }
		},
		func(id string) tea.Cmd {
			return func() tea.Msg { return WallpaperSelectedMsg{ID: id} }
		},
	))
	return m, nil
}

// openAttachModal shows the attachment path prompt for the open conversation
func (m Model) openAttachModal(convID int64) (tea.Model, tea.Cmd) {
	m.modalStack.Push(modal.NewAttachFileModal(func(path string) tea.Cmd {
		return readAttachmentCmd(convID, path)
	}))
	return m, textinput.Blink
}

// activateOldestToast opens the conversation the front toast points at. The
// removal and the navigation happen in this one update step.
func (m Model) activateOldestToast() (tea.Model, tea.Cmd) {
	n, ok := m.queue.Oldest()
	if !ok {
		return m, nil
	}
	convID, ok := m.queue.Activate(n.ID)
	if !ok {
		return m, nil
	}
	m.switchView(ViewChats)
	m.openConversation(convID)
	return m, nil
}

// handleInboundMessage applies one event from the inbound feed: the message
// lands in its conversation and a toast is raised
func (m Model) handleInboundMessage(msg InboundMessageMsg) (tea.Model, tea.Cmd) {
	open := m.view == ViewChats && m.selectedConv == msg.ConversationID

	if c, ok := m.store.Get(msg.ConversationID); ok {
		c.Typing = false
	}
	if _, err := m.store.Receive(msg.ConversationID, msg.Text, open); err != nil {
		if m.logger != nil {
			m.logger.Warn("dropping inbound message", "conversation", msg.ConversationID, "err", err)
		}
		return m, nil
	}
	if open {
		m.refreshChatViewport()
		m.chatViewport.GotoBottom()
	}

	n := m.queue.Enqueue(msg.ContactName, msg.Text, msg.ConversationID)
	return m, toastExpiryCmd(m.queue.TTL(), n.ID)
}

// handleAttachmentRead commits a finished file read as an outbound message,
// or surfaces the failure without appending anything
func (m Model) handleAttachmentRead(msg AttachmentReadMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.modalStack.Push(modal.NewErrorModal("Attachment failed",
			"Could not read "+msg.Name+". Check the path and try again.", nil))
		return m, nil
	}
	if _, err := m.store.Attach(msg.ConversationID, msg.Name, msg.MediaType, bytes.NewReader(msg.Data)); err != nil {
		m.modalStack.Push(modal.NewErrorModal("Attachment failed",
			"Could not attach "+msg.Name+".", nil))
		return m, nil
	}
	if m.selectedConv == msg.ConversationID {
		m.refreshChatViewport()
		m.chatViewport.GotoBottom()
	}
	return m, nil
}
