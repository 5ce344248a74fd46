package style

import "testing"

func TestSetTheme_KnownNames(t *testing.T) {
	defer SetTheme("dark")
	for _, name := range ThemeNames {
		if !SetTheme(name) {
			t.Errorf("SetTheme(%q) should succeed", name)
		}
		if CurrentThemeName != name {
			t.Errorf("CurrentThemeName = %q after SetTheme(%q)", CurrentThemeName, name)
		}
	}
}

func TestSetTheme_UnknownIsRejected(t *testing.T) {
	defer SetTheme("dark")
	SetTheme("dark")
	if SetTheme("hotdog-stand") {
		t.Error("unknown theme should be rejected")
	}
	if CurrentThemeName != "dark" {
		t.Errorf("rejected theme must not change the active one, got %q", CurrentThemeName)
	}
}

func TestThemeNames_MatchRegistry(t *testing.T) {
	if len(ThemeNames) != len(Themes) {
		t.Fatalf("ThemeNames has %d entries, Themes has %d", len(ThemeNames), len(Themes))
	}
	for _, name := range ThemeNames {
		if _, ok := Themes[name]; !ok {
			t.Errorf("theme %q missing from registry", name)
		}
	}
}

func TestToolBadge_KnownKeys(t *testing.T) {
	for _, key := range []string{"google-search", "browse-website", "read-email", "send-email"} {
		if _, ok := ToolBadge(key); !ok {
			t.Errorf("tool pill missing for %q", key)
		}
		if !HasToolBadge(key) {
			t.Errorf("HasToolBadge(%q) should be true", key)
		}
	}
}

func TestToolBadge_UnknownKey(t *testing.T) {
	if _, ok := ToolBadge("quantum-flux"); ok {
		t.Error("unknown tools must not get their own pill")
	}
	if HasToolBadge("Google_Search") {
		t.Error("raw tool names are not style keys")
	}
}
