package ui

import "testing"

func TestThemeOptions(t *testing.T) {
	opts := ThemeOptions()

	if len(opts) != len(BuiltinThemes) {
		t.Fatalf("got %d options, want %d", len(opts), len(BuiltinThemes))
	}
	for _, opt := range opts {
		if !IsThemeName(opt.Value) {
			t.Errorf("option value %q is not a theme name", opt.Value)
		}
		if opt.Key != BuiltinThemes[ThemeName(opt.Value)].Name {
			t.Errorf("option %q labelled %q", opt.Value, opt.Key)
		}
	}
}

func TestFormTheme_UsesPalette(t *testing.T) {
	SetTheme(ThemeNord)
	defer SetTheme(DefaultTheme)

	styles := FormTheme().Theme(true)
	if styles == nil {
		t.Fatal("FormTheme returned no styles")
	}
	if got := styles.Focused.SelectSelector.Value(); got != "> " {
		t.Errorf("select selector = %q, want %q", got, "> ")
	}
}
