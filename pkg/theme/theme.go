package theme

import "github.com/charmbracelet/lipgloss"

// Theme is one entry of the fixed app theme catalog
type Theme struct {
	ID       string
	Name     string
	Primary  lipgloss.Color
	Accent   lipgloss.Color
	Muted    lipgloss.Color
	Bubble   lipgloss.Color // outbound message bubble
	Incoming lipgloss.Color // inbound message bubble
}

// Wallpaper is one entry of the fixed chat wallpaper catalog. Fill is the
// rune pattern tiled behind the message area; empty means no pattern.
type Wallpaper struct {
	ID   string
	Name string
	Fill string
}

// Themes is the selectable theme catalog, in display order
var Themes = []Theme{
	{
		ID:       "gradient",
		Name:     "Gradient",
		Primary:  lipgloss.Color("135"), // purple
		Accent:   lipgloss.Color("207"), // magenta
		Muted:    lipgloss.Color("243"),
		Bubble:   lipgloss.Color("99"),
		Incoming: lipgloss.Color("238"),
	},
	{
		ID:       "dark",
		Name:     "Dark",
		Primary:  lipgloss.Color("250"),
		Accent:   lipgloss.Color("245"),
		Muted:    lipgloss.Color("240"),
		Bubble:   lipgloss.Color("236"),
		Incoming: lipgloss.Color("234"),
	},
	{
		ID:       "ocean",
		Name:     "Ocean",
		Primary:  lipgloss.Color("33"), // blue
		Accent:   lipgloss.Color("45"), // cyan
		Muted:    lipgloss.Color("244"),
		Bubble:   lipgloss.Color("24"),
		Incoming: lipgloss.Color("237"),
	},
	{
		ID:       "sunset",
		Name:     "Sunset",
		Primary:  lipgloss.Color("208"), // orange
		Accent:   lipgloss.Color("205"), // pink
		Muted:    lipgloss.Color("243"),
		Bubble:   lipgloss.Color("167"),
		Incoming: lipgloss.Color("237"),
	},
	{
		ID:       "forest",
		Name:     "Forest",
		Primary:  lipgloss.Color("35"), // green
		Accent:   lipgloss.Color("42"), // emerald
		Muted:    lipgloss.Color("242"),
		Bubble:   lipgloss.Color("29"),
		Incoming: lipgloss.Color("236"),
	},
}

// Wallpapers is the selectable wallpaper catalog, in display order
var Wallpapers = []Wallpaper{
	{ID: "default", Name: "Default", Fill: ""},
	{ID: "dots", Name: "Dots", Fill: "· "},
	{ID: "lines", Name: "Lines", Fill: "╱ "},
	{ID: "grid", Name: "Grid", Fill: "┼ "},
	{ID: "waves", Name: "Waves", Fill: "~ "},
}

// DefaultThemeID is the selection used when nothing valid is stored
const DefaultThemeID = "gradient"

// DefaultWallpaperID is the selection used when nothing valid is stored
const DefaultWallpaperID = "default"

// ThemeByID looks a theme up by catalog id
func ThemeByID(id string) (Theme, bool) {
	for _, t := range Themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// WallpaperByID looks a wallpaper up by catalog id
func WallpaperByID(id string) (Wallpaper, bool) {
	for _, w := range Wallpapers {
		if w.ID == id {
			return w, true
		}
	}
	return Wallpaper{}, false
}

// Preference is the process-wide display selection. Unknown ids are rejected
// and the previous valid selection stays.
type Preference struct {
	themeID     string
	wallpaperID string
}

// NewPreference starts from the given ids, falling back to the defaults for
// anything unknown
func NewPreference(themeID, wallpaperID string) *Preference {
	p := &Preference{themeID: DefaultThemeID, wallpaperID: DefaultWallpaperID}
	p.SelectTheme(themeID)
	p.SelectWallpaper(wallpaperID)
	return p
}

// ThemeID returns the selected theme id
func (p *Preference) ThemeID() string { return p.themeID }

// WallpaperID returns the selected wallpaper id
func (p *Preference) WallpaperID() string { return p.wallpaperID }

// Theme returns the selected theme
func (p *Preference) Theme() Theme {
	t, _ := ThemeByID(p.themeID)
	return t
}

// Wallpaper returns the selected wallpaper
func (p *Preference) Wallpaper() Wallpaper {
	w, _ := WallpaperByID(p.wallpaperID)
	return w
}

// SelectTheme switches to the given theme id; unknown ids keep the current
// selection and report false
func (p *Preference) SelectTheme(id string) bool {
	if _, ok := ThemeByID(id); !ok {
		return false
	}
	p.themeID = id
	return true
}

// SelectWallpaper switches to the given wallpaper id; unknown ids keep the
// current selection and report false
func (p *Preference) SelectWallpaper(id string) bool {
	if _, ok := WallpaperByID(id); !ok {
		return false
	}
	p.wallpaperID = id
	return true
}
