package theme

import "testing"

func TestCatalogSizes(t *testing.T) {
	if len(Themes) != 5 {
		t.Errorf("len(Themes) = %d, want 5", len(Themes))
	}
	if len(Wallpapers) != 5 {
		t.Errorf("len(Wallpapers) = %d, want 5", len(Wallpapers))
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, th := range Themes {
		if seen[th.ID] {
			t.Errorf("duplicate theme id %q", th.ID)
		}
		seen[th.ID] = true
	}
	seen = make(map[string]bool)
	for _, w := range Wallpapers {
		if seen[w.ID] {
			t.Errorf("duplicate wallpaper id %q", w.ID)
		}
		seen[w.ID] = true
	}
}

func TestSelectUnknownKeepsPrevious(t *testing.T) {
	p := NewPreference("ocean", "dots")

	if p.SelectTheme("neon") {
		t.Error("SelectTheme(neon) = true, want false")
	}
	if p.ThemeID() != "ocean" {
		t.Errorf("ThemeID() = %q after unknown select, want ocean", p.ThemeID())
	}

	if p.SelectWallpaper("") {
		t.Error("SelectWallpaper(\"\") = true, want false")
	}
	if p.WallpaperID() != "dots" {
		t.Errorf("WallpaperID() = %q after unknown select, want dots", p.WallpaperID())
	}
}

func TestNewPreferenceFallsBackToDefaults(t *testing.T) {
	p := NewPreference("bogus", "bogus")
	if p.ThemeID() != DefaultThemeID {
		t.Errorf("ThemeID() = %q, want %q", p.ThemeID(), DefaultThemeID)
	}
	if p.WallpaperID() != DefaultWallpaperID {
		t.Errorf("WallpaperID() = %q, want %q", p.WallpaperID(), DefaultWallpaperID)
	}
}

func TestSelectValid(t *testing.T) {
	p := NewPreference(DefaultThemeID, DefaultWallpaperID)
	for _, th := range Themes {
		if !p.SelectTheme(th.ID) {
			t.Errorf("SelectTheme(%q) = false, want true", th.ID)
		}
		if p.Theme().ID != th.ID {
			t.Errorf("Theme().ID = %q, want %q", p.Theme().ID, th.ID)
		}
	}
	for _, w := range Wallpapers {
		if !p.SelectWallpaper(w.ID) {
			t.Errorf("SelectWallpaper(%q) = false, want true", w.ID)
		}
	}
}
