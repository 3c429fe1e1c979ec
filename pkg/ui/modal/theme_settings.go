package modal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aeolun/riktim/pkg/theme"
)

// ThemeSettingsModal lets the user pick a theme and a chat wallpaper from
// the fixed catalogs. Enter applies the highlighted entry through the
// callbacks; the modal stays open so both can be changed in one visit.
type ThemeSettingsModal struct {
	themeCursor     int
	wallpaperCursor int
	onWallpapers    bool // false = theme section active

	currentTheme     string
	currentWallpaper string

	onTheme     func(id string) tea.Cmd
	onWallpaper func(id string) tea.Cmd
}

// NewThemeSettingsModal creates the picker with the current selections highlighted
func NewThemeSettingsModal(currentTheme, currentWallpaper string, onTheme, onWallpaper func(id string) tea.Cmd) *ThemeSettingsModal {
	m := &ThemeSettingsModal{
		currentTheme:     currentTheme,
		currentWallpaper: currentWallpaper,
		onTheme:          onTheme,
		onWallpaper:      onWallpaper,
	}
	for i, t := range theme.Themes {
		if t.ID == currentTheme {
			m.themeCursor = i
		}
	}
	for i, w := range theme.Wallpapers {
		if w.ID == currentWallpaper {
			m.wallpaperCursor = i
		}
	}
	return m
}

// Type returns the modal type
func (m *ThemeSettingsModal) Type() ModalType {
	return ModalThemeSettings
}

// HandleKey processes keyboard input
func (m *ThemeSettingsModal) HandleKey(msg tea.KeyMsg) (bool, Modal, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return true, nil, nil
	case "tab":
		m.onWallpapers = !m.onWallpapers
		return true, m, nil
	case "up", "k":
		if m.onWallpapers {
			if m.wallpaperCursor > 0 {
				m.wallpaperCursor--
			}
		} else if m.themeCursor > 0 {
			m.themeCursor--
		}
		return true, m, nil
	case "down", "j":
		if m.onWallpapers {
			if m.wallpaperCursor < len(theme.Wallpapers)-1 {
				m.wallpaperCursor++
			}
		} else if m.themeCursor < len(theme.Themes)-1 {
			m.themeCursor++
		}
		return true, m, nil
	case "enter":
		var cmd tea.Cmd
		if m.onWallpapers {
			m.currentWallpaper = theme.Wallpapers[m.wallpaperCursor].ID
			if m.onWallpaper != nil {
				cmd = m.onWallpaper(m.currentWallpaper)
			}
		} else {
			m.currentTheme = theme.Themes[m.themeCursor].ID
			if m.onTheme != nil {
				cmd = m.onTheme(m.currentTheme)
			}
		}
		return true, m, cmd
	}
	return true, m, nil
}

// Render returns the modal content
func (m *ThemeSettingsModal) Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().Bold(true)
	activeSectionStyle := sectionStyle.Foreground(lipgloss.Color("205"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	currentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)

	var content string
	content += titleStyle.Render("Themes & Wallpapers") + "\n\n"

	themeHeader := sectionStyle.Render("App theme")
	if !m.onWallpapers {
		themeHeader = activeSectionStyle.Render("App theme")
	}
	content += themeHeader + "\n"
	for i, t := range theme.Themes {
		line := "  " + t.Name
		if t.ID == m.currentTheme {
			line = "  " + currentStyle.Render(t.Name+" ✓")
		}
		if !m.onWallpapers && i == m.themeCursor {
			line = cursorStyle.Render("> ") + lipgloss.NewStyle().Bold(true).Render(t.Name)
			if t.ID == m.currentTheme {
				line += currentStyle.Render(" ✓")
			}
		}
		content += line + "\n"
	}

	wallpaperHeader := sectionStyle.Render("Chat wallpaper")
	if m.onWallpapers {
		wallpaperHeader = activeSectionStyle.Render("Chat wallpaper")
	}
	content += "\n" + wallpaperHeader + "\n"
	for i, w := range theme.Wallpapers {
		line := "  " + w.Name
		if w.ID == m.currentWallpaper {
			line = "  " + currentStyle.Render(w.Name+" ✓")
		}
		if m.onWallpapers && i == m.wallpaperCursor {
			line = cursorStyle.Render("> ") + lipgloss.NewStyle().Bold(true).Render(w.Name)
			if w.ID == m.currentWallpaper {
				line += currentStyle.Render(" ✓")
			}
		}
		content += line + "\n"
	}

	content += "\n" + hintStyle.Render("[Tab] switch section  [Enter] apply  [Esc] close")

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(1, 2)

	modalWidth := 46
	if width < modalWidth+4 {
		modalWidth = width - 4
	}

	box := borderStyle.Width(modalWidth - 4).Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// IsBlockingInput returns whether this modal blocks input to the main view
func (m *ThemeSettingsModal) IsBlockingInput() bool {
	return true
}
