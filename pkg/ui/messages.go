package ui

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aeolun/riktim/pkg/auth"
	"github.com/aeolun/riktim/pkg/chat"
)

// CodeSentMsg arrives when the simulated code dispatch finishes
type CodeSentMsg struct {
	Resend bool
	Err    error
}

// CodeCheckedMsg arrives when the simulated code verification finishes
type CodeCheckedMsg struct {
	OK  bool
	Err error
}

// CallConnectedMsg fires after the simulated connection latency
type CallConnectedMsg struct {
	Generation uint64
}

// CallTickMsg advances the connected call's elapsed counter once per second
type CallTickMsg struct {
	Generation uint64
}

// CallClosedMsg unmounts the call overlay after the teardown delay
type CallClosedMsg struct {
	Generation uint64
}

// ToastExpiredMsg removes a toast that outlived its TTL
type ToastExpiredMsg struct {
	ID string
}

// InboundMessageMsg is one event from the inbound feed
type InboundMessageMsg struct {
	ContactName    string
	Text           string
	ConversationID int64
}

// TypingMsg toggles a conversation's typing indicator
type TypingMsg struct {
	ConversationID int64
	Typing         bool
}

// ThemeSelectedMsg applies a theme picked in the settings modal
type ThemeSelectedMsg struct {
	ID string
}

// WallpaperSelectedMsg applies a wallpaper picked in the settings modal
type WallpaperSelectedMsg struct {
	ID string
}

// AttachmentReadMsg carries the result of the asynchronous file read
type AttachmentReadMsg struct {
	ConversationID int64
	Name           string
	MediaType      string
	Data           []byte
	Err            error
}

// sendCodeCmd runs the code dispatch as a background command
func sendCodeCmd(v auth.Verifier, phone string, resend bool) tea.Cmd {
	return func() tea.Msg {
		err := v.SendCode(context.Background(), phone)
		return CodeSentMsg{Resend: resend, Err: err}
	}
}

// checkCodeCmd runs the code verification as a background command
func checkCodeCmd(v auth.Verifier, phone, code string) tea.Cmd {
	return func() tea.Msg {
		ok, err := v.CheckCode(context.Background(), phone, code)
		return CodeCheckedMsg{OK: ok, Err: err}
	}
}

// callConnectCmd schedules the calling -> connected transition
func callConnectCmd(delay time.Duration, generation uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return CallConnectedMsg{Generation: generation}
	})
}

// callTickCmd schedules the next elapsed-time increment
func callTickCmd(generation uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return CallTickMsg{Generation: generation}
	})
}

// callCloseCmd schedules the overlay unmount after hang up
func callCloseCmd(delay time.Duration, generation uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return CallClosedMsg{Generation: generation}
	})
}

// toastExpiryCmd schedules a toast's automatic removal
func toastExpiryCmd(ttl time.Duration, id string) tea.Cmd {
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// demoFeedCmds schedules the simulated inbound events, with a short typing
// indicator ahead of each message
func demoFeedCmds(events []chat.DemoEvent) []tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range events {
		e := e
		if e.After > 1500*time.Millisecond {
			cmds = append(cmds, tea.Tick(e.After-1500*time.Millisecond, func(time.Time) tea.Msg {
				return TypingMsg{ConversationID: e.ConversationID, Typing: true}
			}))
		}
		cmds = append(cmds, tea.Tick(e.After, func(time.Time) tea.Msg {
			return InboundMessageMsg{
				ContactName:    e.ContactName,
				Text:           e.Message,
				ConversationID: e.ConversationID,
			}
		}))
	}
	return cmds
}

// readAttachmentCmd reads a user-selected file off the Update loop. The
// declared media type comes from the file extension, the closest a terminal
// client gets to a picker's MIME metadata.
func readAttachmentCmd(convID int64, path string) tea.Cmd {
	return func() tea.Msg {
		name := filepath.Base(path)
		data, err := os.ReadFile(path)
		return AttachmentReadMsg{
			ConversationID: convID,
			Name:           name,
			MediaType:      mime.TypeByExtension(filepath.Ext(path)),
			Data:           data,
			Err:            err,
		}
	}
}
