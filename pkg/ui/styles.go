package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/aeolun/riktim/pkg/theme"
)

// StyleSet holds the lipgloss styles derived from the active theme. The set
// is rebuilt whenever the theme selection changes.
type StyleSet struct {
	HeaderTitle lipgloss.Style
	HeaderTab   lipgloss.Style
	ActiveTab   lipgloss.Style

	ListBorder   lipgloss.Style
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	ListName     lipgloss.Style
	ListPreview  lipgloss.Style
	ListTime     lipgloss.Style
	UnreadBadge  lipgloss.Style
	OnlineDot    lipgloss.Style

	BubbleMine   lipgloss.Style
	BubbleTheirs lipgloss.Style
	MessageMeta  lipgloss.Style
	Wallpaper    lipgloss.Style

	Toast        lipgloss.Style
	ToastContact lipgloss.Style

	CallOverlay lipgloss.Style
	CallName    lipgloss.Style
	CallStatus  lipgloss.Style
	CallButton  lipgloss.Style
	CallHangUp  lipgloss.Style

	Spinner   lipgloss.Style
	ErrorText lipgloss.Style
	Hint      lipgloss.Style
	Label     lipgloss.Style
	Status    lipgloss.Style
}

// NewStyles derives a style set from a theme
func NewStyles(t theme.Theme) StyleSet {
	return StyleSet{
		HeaderTitle: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		HeaderTab:   lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1),
		ActiveTab:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1).Underline(true),

		ListBorder:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Muted),
		ListItem:     lipgloss.NewStyle().Padding(0, 1),
		ListSelected: lipgloss.NewStyle().Padding(0, 1).Background(t.Bubble).Bold(true),
		ListName:     lipgloss.NewStyle().Bold(true),
		ListPreview:  lipgloss.NewStyle().Foreground(t.Muted),
		ListTime:     lipgloss.NewStyle().Foreground(t.Muted),
		UnreadBadge:  lipgloss.NewStyle().Background(t.Accent).Foreground(lipgloss.Color("231")).Padding(0, 1).Bold(true),
		OnlineDot:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),

		BubbleMine:   lipgloss.NewStyle().Background(t.Bubble).Foreground(lipgloss.Color("231")).Padding(0, 1),
		BubbleTheirs: lipgloss.NewStyle().Background(t.Incoming).Foreground(lipgloss.Color("252")).Padding(0, 1),
		MessageMeta:  lipgloss.NewStyle().Foreground(t.Muted),
		Wallpaper:    lipgloss.NewStyle().Foreground(t.Muted).Faint(true),

		Toast:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Accent).Padding(0, 1),
		ToastContact: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),

		CallOverlay: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(t.Primary).Padding(1, 4),
		CallName:    lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		CallStatus:  lipgloss.NewStyle().Foreground(t.Muted),
		CallButton:  lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(t.Muted),
		CallHangUp:  lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("196")).Foreground(lipgloss.Color("196")).Bold(true),

		Spinner:   lipgloss.NewStyle().Foreground(t.Accent),
		ErrorText: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Hint:      lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Label:     lipgloss.NewStyle().Bold(true),
		Status:    lipgloss.NewStyle().Foreground(t.Accent),
	}
}
