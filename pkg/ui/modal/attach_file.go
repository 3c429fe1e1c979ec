package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AttachFileModal prompts for the path of a file to attach to the open
// conversation. Enter hands the path to the onSubmit callback, which owns
// the actual read.
type AttachFileModal struct {
	input    textinput.Model
	onSubmit func(path string) tea.Cmd
}

// NewAttachFileModal creates the attach prompt
func NewAttachFileModal(onSubmit func(path string) tea.Cmd) *AttachFileModal {
	ti := textinput.New()
	ti.Placeholder = "/path/to/file"
	ti.CharLimit = 512
	ti.Width = 40
	ti.Focus()
	return &AttachFileModal{input: ti, onSubmit: onSubmit}
}

// Type returns the modal type
func (m *AttachFileModal) Type() ModalType {
	return ModalAttachFile
}

// HandleKey processes keyboard input
func (m *AttachFileModal) HandleKey(msg tea.KeyMsg) (bool, Modal, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return true, nil, nil
	case "enter":
		path := strings.TrimSpace(m.input.Value())
		if path == "" {
			return true, m, nil
		}
		var cmd tea.Cmd
		if m.onSubmit != nil {
			cmd = m.onSubmit(path)
		}
		return true, nil, cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return true, m, cmd
}

// Render returns the modal content
func (m *AttachFileModal) Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)

	var content string
	content += titleStyle.Render("Attach a file") + "\n\n"
	content += m.input.View() + "\n\n"
	content += hintStyle.Render("Images render inline, anything else as a file. [Enter] send  [Esc] cancel")

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(1, 2)

	modalWidth := 52
	if width < modalWidth+4 {
		modalWidth = width - 4
	}

	box := borderStyle.Width(modalWidth - 4).Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// IsBlockingInput returns whether this modal blocks input to the main view
func (m *AttachFileModal) IsBlockingInput() bool {
	return true
}
