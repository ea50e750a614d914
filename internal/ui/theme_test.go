package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != "Dracula" || names[1] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Dracula Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Slate" {
		t.Fatalf("NextTheme(Dracula) = %q, want Slate", got)
	}
	if got := NextTheme("Slate"); got != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want Dracula", got)
	}
	if got := NextTheme("Unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(Unknown) = %q, want Dracula", got)
	}
}

func TestGetThemeFallback(t *testing.T) {
	if got := GetTheme("nope").Name; got != "Dracula" {
		t.Fatalf("GetTheme(nope) = %q, want Dracula", got)
	}
	if got := GetTheme("Slate").Name; got != "Slate" {
		t.Fatalf("GetTheme(Slate) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"Dune", 10, "Dune"},
		{"Foundation and Empire", 10, "Foundat..."},
		{"Dune", 2, "Du"},
		{"Dune", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestFitPadsToWidth(t *testing.T) {
	if got := fit("Dune", 6); got != "Dune  " {
		t.Fatalf("fit = %q", got)
	}
	if got := fit("Foundation", 6); got != "Fou..." {
		t.Fatalf("fit = %q", got)
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := truncateMiddle("https://books.example.com/api", 11)
	if got != "https…m/api" {
		t.Fatalf("truncateMiddle = %q", got)
	}
}

func TestColorProfile(t *testing.T) {
	env := func(kv map[string]string) func(string) string {
		return func(k string) string { return kv[k] }
	}
	tests := []struct {
		name     string
		detected termenv.Profile
		env      map[string]string
		want     termenv.Profile
	}{
		{"no color", termenv.TrueColor, map[string]string{"NO_COLOR": "1"}, termenv.Ascii},
		{"truecolor hint", termenv.ANSI256, map[string]string{"COLORTERM": "truecolor"}, termenv.TrueColor},
		{"256 term hint", termenv.ANSI, map[string]string{"TERM": "xterm-256color"}, termenv.ANSI256},
		{"ascii stays", termenv.Ascii, map[string]string{"COLORTERM": "24bit"}, termenv.Ascii},
		{"detected", termenv.ANSI, nil, termenv.ANSI},
	}
	for _, tt := range tests {
		if got := colorProfile(tt.detected, env(tt.env)); got != tt.want {
			t.Errorf("%s: colorProfile() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClipRenderedKeepsWidth(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render(strings.Repeat("x", 30))
	got := clipRendered(styled, 10)
	if w := lipgloss.Width(got); w != 10 {
		t.Fatalf("clipRendered width = %d, want 10", w)
	}
	if short := clipRendered("Dune", 10); short != "Dune" {
		t.Fatalf("clipRendered(Dune) = %q", short)
	}
	if clipRendered("Dune", 0) != "" {
		t.Fatal("clipRendered with zero width should be empty")
	}
}
