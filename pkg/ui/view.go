package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/76creates/stickers/flexbox"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/aeolun/riktim/pkg/auth"
	"github.com/aeolun/riktim/pkg/call"
	"github.com/aeolun/riktim/pkg/chat"
)

const chatListWidth = 36

// View renders the current view
func (m Model) View() string {
	// Don't render until we have dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Modals sit on top of everything, including the call overlay
	if activeModal := m.modalStack.Top(); activeModal != nil {
		return activeModal.Render(m.width, m.height)
	}

	// The call overlay covers the whole screen while a call exists
	if m.activeCall != nil {
		return m.renderCallOverlay()
	}

	var base string
	switch m.view {
	case ViewAuth:
		base = m.renderAuth()
	case ViewChats:
		base = m.renderChats()
	case ViewProfile:
		base = m.renderProfile()
	default:
		base = "Unknown view"
	}

	// Pending toasts stack above the content
	if m.session != nil && m.queue.Len() > 0 {
		return lipgloss.JoinVertical(lipgloss.Left, m.renderToasts(), base)
	}
	return base
}

// renderHeader draws the app title and the view tabs
func (m Model) renderHeader() string {
	title := m.styles.HeaderTitle.Render("Riktim")

	chatsTab := m.styles.HeaderTab.Render("Chats")
	profileTab := m.styles.HeaderTab.Render("Profile")
	switch m.view {
	case ViewChats:
		chatsTab = m.styles.ActiveTab.Render("Chats")
	case ViewProfile:
		profileTab = m.styles.ActiveTab.Render("Profile")
	}

	left := title + "  " + chatsTab + profileTab
	gap := m.width - lipgloss.Width(left)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + "\n"
}

// renderAuth draws the current sign-in step
func (m Model) renderAuth() string {
	title := m.styles.HeaderTitle.Render("Riktim")
	subtitle := m.styles.Hint.Render("A modern messenger")

	var body string
	switch m.flow.Step() {
	case auth.StepPhone:
		body = m.styles.Label.Render("Phone number") + "\n\n" +
			m.phoneInput.View() + "\n\n" +
			m.styles.Hint.Render("We'll send you a confirmation code")
		if m.flow.Loading() {
			body += "\n\n" + m.spinner.View() + " Sending..."
		} else {
			body += "\n\n" + m.styles.Hint.Render("[Enter] get code")
		}

	case auth.StepCode:
		body = m.styles.Label.Render("Confirmation code") + "\n" +
			m.styles.Hint.Render("Sent to "+m.flow.Phone()) + "\n\n" +
			m.codeInput.View() + "\n\n" +
			m.styles.Hint.Render("For the demo, use "+m.cfg.Auth.AcceptedCode)
		if m.flow.Loading() {
			body += "\n\n" + m.spinner.View() + " Checking..."
		} else {
			body += "\n\n" + m.styles.Hint.Render("[Enter] confirm  [Esc] change number  [Ctrl+R] resend")
		}

	case auth.StepProfile:
		body = m.styles.Label.Render("One last step!") + "\n\n" +
			m.styles.Label.Render("Your name") + "\n\n" +
			m.nameInput.View() + "\n\n" +
			m.styles.Hint.Render("[Enter] start chatting")
	}

	if m.authErr != "" {
		body += "\n\n" + m.styles.ErrorText.Render(m.authErr)
	}
	if m.statusMessage != "" {
		body += "\n\n" + m.styles.Status.Render(m.statusMessage)
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.prefs.Theme().Primary).
		Padding(1, 3).
		Render(title + "\n" + subtitle + "\n\n" + body)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// renderChats draws the chat list and, when one is open, the conversation
// pane next to it
func (m Model) renderChats() string {
	header := m.renderHeader()
	bodyHeight := m.height - lipgloss.Height(header)
	if m.session != nil && m.queue.Len() > 0 {
		bodyHeight -= lipgloss.Height(m.renderToasts())
	}
	if bodyHeight < 4 {
		bodyHeight = 4
	}

	list := m.renderChatList(bodyHeight)
	conv := m.selectedConversation()

	var mainPane string
	if conv == nil {
		mainPane = lipgloss.Place(m.width-chatListWidth, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.styles.Hint.Render("Pick a chat to start messaging"))
	} else {
		mainPane = m.renderChatWindow(conv, bodyHeight)
	}

	layout := flexbox.NewHorizontal(m.width, bodyHeight)
	listCol := layout.NewColumn().AddCells(
		flexbox.NewCell(1, 1).
			SetStyle(lipgloss.NewStyle().Width(chatListWidth).Height(bodyHeight)).
			SetContent(list),
	)
	mainCol := layout.NewColumn().AddCells(
		flexbox.NewCell(3, 1).SetContent(mainPane),
	)
	layout.AddColumns([]*flexbox.Column{listCol, mainCol})

	return header + layout.Render()
}

// renderChatList draws the searchable conversation list
func (m Model) renderChatList(height int) string {
	var b strings.Builder
	b.WriteString(m.searchInput.View() + "\n\n")

	visible := m.store.Filter(m.searchInput.Value())
	for i, c := range visible {
		name := m.styles.ListName.Render(c.Name)
		if c.Online {
			name += " " + m.styles.OnlineDot.Render("●")
		}

		preview := truncate(c.LastPreview(), chatListWidth-8)
		line2 := m.styles.ListPreview.Render(preview)
		if c.Unread() > 0 {
			line2 += " " + m.styles.UnreadBadge.Render(fmt.Sprintf("%d", c.Unread()))
		}

		row := name + " " + m.styles.ListTime.Render(formatListTime(c.LastActivity())) + "\n" + line2
		if i == m.chatCursor {
			row = m.styles.ListSelected.Render(row)
		} else {
			row = m.styles.ListItem.Render(row)
		}
		b.WriteString(row + "\n")
	}
	if len(visible) == 0 {
		b.WriteString(m.styles.Hint.Render("No chats match"))
	}

	b.WriteString("\n" + m.styles.Hint.Render("[/] search  [p] profile  [t] themes  [q] quit"))

	return m.styles.ListBorder.Width(chatListWidth - 2).Height(height - 2).Render(b.String())
}

// renderChatWindow draws the open conversation: header, messages, composer
func (m Model) renderChatWindow(conv *chat.Conversation, height int) string {
	presence := m.styles.Hint.Render("last seen recently")
	if conv.Online {
		presence = m.styles.OnlineDot.Render("online")
	}
	head := m.styles.ListName.Render(conv.Name) + "  " + presence + "\n" +
		m.styles.Hint.Render("[Ctrl+A] call  [Ctrl+G] video  [Ctrl+F] attach  [Esc] back") + "\n"

	composer := m.chatTextarea.View()

	return head + m.chatViewport.View() + "\n" + composer
}

// buildChatMessages renders the message history of the open conversation
// onto the selected wallpaper
func (m Model) buildChatMessages() string {
	conv := m.selectedConversation()
	if conv == nil {
		return ""
	}

	width := m.chatViewport.Width
	if width <= 0 {
		width = 60
	}

	var b strings.Builder
	for _, msg := range conv.Messages() {
		b.WriteString(m.renderMessage(msg, width) + "\n")
	}
	if conv.Typing {
		b.WriteString(m.styles.BubbleTheirs.Render("• • •") + "\n")
	}

	content := b.String()
	if fill := m.prefs.Wallpaper().Fill; fill != "" {
		// Tile the wallpaper pattern on the lines messages don't cover
		pad := m.chatViewport.Height - lipgloss.Height(content)
		runes := []rune(strings.Repeat(fill, width))
		patternLine := string(runes[:width])
		for i := 0; i < pad; i++ {
			content += m.styles.Wallpaper.Render(patternLine) + "\n"
		}
	}
	return content
}

// renderMessage draws one bubble with its timestamp and delivery marks
func (m Model) renderMessage(msg chat.Message, width int) string {
	var body string
	switch msg.Kind {
	case chat.KindImage:
		body = fmt.Sprintf("\U0001F4F7 %s (%s)", msg.FileName, humanSize(len(msg.Payload)))
	case chat.KindFile:
		body = fmt.Sprintf("\U0001F4CE %s (%s)", msg.FileName, humanSize(len(msg.Payload)))
	default:
		body = msg.Text
	}

	meta := msg.SentAt.Format("15:04")
	if msg.Mine {
		if msg.Status == chat.StatusRead {
			meta += " ✓✓"
		} else {
			meta += " ✓"
		}
	}

	bubble := m.styles.BubbleTheirs
	if msg.Mine {
		bubble = m.styles.BubbleMine
	}
	rendered := bubble.MaxWidth(width*3/4).Render(body) + " " + m.styles.MessageMeta.Render(meta)

	if msg.Mine {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, rendered)
	}
	return rendered
}

// renderProfile draws the profile view
func (m Model) renderProfile() string {
	header := m.renderHeader()

	name, phone := "", ""
	if m.session != nil {
		name, phone = m.session.Name, m.session.Phone
	}

	initial := "?"
	if name != "" {
		initial = strings.ToUpper(string([]rune(name)[0]))
	}
	avatar := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.prefs.Theme().Accent).
		Padding(1, 3).
		Render(initial)

	identity := m.styles.HeaderTitle.Render(name) + "\n" +
		m.styles.Hint.Render("@"+strings.ToLower(strings.ReplaceAll(name, " ", ""))) + "\n" +
		m.styles.Hint.Render(phone)

	about := m.sectionBox("About", "Love travel and photography \U0001F4F8")

	statuses := m.sectionBox("Statuses (fade after 24h)",
		"\U0001F4BC At work          "+m.styles.Hint.Render("2 hours ago · 22h left")+"\n"+
			"\U0001F60A In a good mood    "+m.styles.Hint.Render("5 hours ago · 19h left"))

	settings := m.sectionBox("Settings",
		"[t] Themes & wallpapers\n"+
			m.styles.Hint.Render("    Notifications")+"\n"+
			m.styles.Hint.Render("    Contacts")+"\n"+
			m.styles.Hint.Render("    Calls"))

	body := lipgloss.JoinVertical(lipgloss.Center, avatar, "", identity, "", about, statuses, settings,
		"", m.styles.Hint.Render("[Esc] back to chats"))

	return header + lipgloss.Place(m.width, m.height-lipgloss.Height(header), lipgloss.Center, lipgloss.Top, body)
}

// sectionBox draws a titled profile card
func (m Model) sectionBox(title, content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.prefs.Theme().Muted).
		Padding(0, 2).
		Width(46).
		Render(m.styles.Label.Render(title) + "\n" + content)
}

// renderCallOverlay draws the full-screen call window
func (m Model) renderCallOverlay() string {
	c := m.activeCall

	kindIcon := "\U0001F4DE"
	if c.Kind == call.KindVideo {
		kindIcon = "\U0001F3A5"
	}

	var b strings.Builder
	b.WriteString(m.styles.CallName.Render(c.ContactName) + "\n\n")
	b.WriteString(kindIcon + " " + m.styles.CallStatus.Render(c.StatusLabel()) + "\n\n")

	if c.Kind == call.KindVideo && c.VideoEnabled() {
		videoPane := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(m.prefs.Theme().Muted).
			Padding(1, 8).
			Render("\U0001F464")
		b.WriteString(videoPane + "\n\n")
	}

	muteBtn := m.styles.CallButton.Render("[m] mute")
	if c.Muted() {
		muteBtn = m.styles.CallButton.Render("[m] muted \U0001F507")
	}
	buttons := []string{muteBtn}
	if c.Kind == call.KindVideo {
		videoBtn := m.styles.CallButton.Render("[v] video off")
		if c.VideoEnabled() {
			videoBtn = m.styles.CallButton.Render("[v] video on")
		}
		buttons = append(buttons, videoBtn)
	}
	speakerBtn := m.styles.CallButton.Render("[s] speaker")
	if c.SpeakerOn() {
		speakerBtn = m.styles.CallButton.Render("[s] speaker \U0001F50A")
	}
	buttons = append(buttons, speakerBtn, m.styles.CallHangUp.Render("[e] end call"))

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, buttons...))

	card := m.styles.CallOverlay.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// renderToasts draws the pending notifications, oldest first
func (m Model) renderToasts() string {
	var toasts []string
	for i, n := range m.queue.Entries() {
		text := truncate(n.Message, 48)
		body := m.styles.ToastContact.Render(n.ContactName) + "  " + text
		if i == 0 {
			body += "\n" + m.styles.Hint.Render("[Ctrl+J] open  [Ctrl+K] dismiss")
		}
		toasts = append(toasts, m.styles.Toast.Render(body))
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, toasts...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, stack)
}

// refreshChatViewport rebuilds the open conversation's message area
func (m *Model) refreshChatViewport() {
	if m.chatViewport.Width == 0 {
		m.resizeChatPanes()
	}
	m.chatViewport.SetContent(m.buildChatMessages())
	m.chatViewport.GotoBottom()
}

// resizeChatPanes fits the conversation viewport and composer to the window
func (m *Model) resizeChatPanes() {
	width := m.width - chatListWidth - 4
	if width < 20 {
		width = 20
	}
	height := m.height - 10 // header, chat header, composer, padding
	if height < 5 {
		height = 5
	}
	if m.chatViewport.Width == 0 || m.chatViewport.Height == 0 {
		m.chatViewport = viewport.New(width, height)
	} else {
		m.chatViewport.Width = width
		m.chatViewport.Height = height
	}
	m.chatTextarea.SetWidth(width)
	m.chatViewport.SetContent(m.buildChatMessages())
}

// formatListTime renders a chat list timestamp the way phones do: clock
// time today, "Yesterday", else the date
func formatListTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return t.Format("15:04")
	}
	if y1 == y2 && m1 == m2 && d1-d2 == 1 {
		return "Yesterday"
	}
	return t.Format("Jan 2")
}

// truncate shortens s to at most max runes, appending an ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// humanSize renders a payload size compactly
func humanSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
