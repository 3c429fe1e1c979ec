package modal

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ModalType uniquely identifies each modal type
type ModalType int

const (
	ModalNone ModalType = iota // Special value: no modal active
	ModalError
	ModalThemeSettings
	ModalAttachFile
)

// String returns the string representation of the modal type
func (m ModalType) String() string {
	switch m {
	case ModalNone:
		return "None"
	case ModalError:
		return "Error"
	case ModalThemeSettings:
		return "ThemeSettings"
	case ModalAttachFile:
		return "AttachFile"
	default:
		return "Unknown"
	}
}

// Modal represents a modal dialog
type Modal interface {
	// Type returns the modal type identifier
	Type() ModalType

	// HandleKey processes keyboard input when this modal is active
	// Returns (handled, newModal, cmd)
	// - handled: true if the key was consumed by this modal
	// - newModal: nil to close modal, same modal to stay open, different modal to replace
	// - cmd: bubbletea command to execute
	HandleKey(msg tea.KeyMsg) (handled bool, newModal Modal, cmd tea.Cmd)

	// Render returns the modal content to be overlaid
	Render(width, height int) string

	// IsBlockingInput returns true if this modal blocks all input to underlying views
	// If false, unhandled keys fall through to the main view
	IsBlockingInput() bool
}

// ModalStack manages the stack of active modals
type ModalStack struct {
	stack []Modal
}

// Push adds a modal to the top of the stack
// If a modal of the same type already exists, it is removed first
func (ms *ModalStack) Push(m Modal) {
	// Remove any existing instance of the same modal type
	ms.stack = ms.removeByType(m.Type())
	ms.stack = append(ms.stack, m)
}

// Pop removes and returns the top modal
// Returns nil if stack is empty
func (ms *ModalStack) Pop() Modal {
	if len(ms.stack) == 0 {
		return nil
	}
	m := ms.stack[len(ms.stack)-1]
	ms.stack = ms.stack[:len(ms.stack)-1]
	return m
}

// Top returns the active (topmost) modal without removing it
// Returns nil if stack is empty
func (ms *ModalStack) Top() Modal {
	if len(ms.stack) == 0 {
		return nil
	}
	return ms.stack[len(ms.stack)-1]
}

// TopType returns the type of the active modal, or ModalNone if empty
func (ms *ModalStack) TopType() ModalType {
	if top := ms.Top(); top != nil {
		return top.Type()
	}
	return ModalNone
}

// IsEmpty returns true when no modal is active
func (ms *ModalStack) IsEmpty() bool {
	return len(ms.stack) == 0
}

// ReplaceTop swaps the active modal for another (or removes it when nil)
func (ms *ModalStack) ReplaceTop(m Modal) {
	if len(ms.stack) == 0 {
		if m != nil {
			ms.stack = append(ms.stack, m)
		}
		return
	}
	if m == nil {
		ms.stack = ms.stack[:len(ms.stack)-1]
		return
	}
	ms.stack[len(ms.stack)-1] = m
}

// removeByType returns the stack with every modal of the given type removed
func (ms *ModalStack) removeByType(t ModalType) []Modal {
	out := ms.stack[:0]
	for _, m := range ms.stack {
		if m.Type() != t {
			out = append(out, m)
		}
	}
	return out
}
