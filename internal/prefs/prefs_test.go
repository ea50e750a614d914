package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if p := Load(""); p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "bookshelf")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte("theme = \"Slate\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if p := Load(""); p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", p.Theme)
	}
}

func TestLoad_CorruptOrBlankFallsBack(t *testing.T) {
	dir := t.TempDir()

	corrupt := filepath.Join(dir, "corrupt.toml")
	if err := os.WriteFile(corrupt, []byte("theme = ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if p := Load(corrupt); p.Theme != defaultTheme {
		t.Fatalf("corrupt Theme = %q, want %q", p.Theme, defaultTheme)
	}

	blank := filepath.Join(dir, "blank.toml")
	if err := os.WriteFile(blank, []byte("theme = \"  \"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if p := Load(blank); p.Theme != defaultTheme {
		t.Fatalf("blank Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestSave_RoundTripCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Slate"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if p := Load(path); p.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", p.Theme)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("prefs dir has %d entries, want only prefs.toml", len(entries))
	}
}
