package logtail

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeLog(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookshelf.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	var all []string
	for i := 1; i <= 10; i++ {
		all = append(all, fmt.Sprintf("time=t level=INFO msg=\"line %d\"", i))
	}
	path := writeLog(t, all)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: all},
		{name: "read all (negative)", maxLines: -1, expected: all},
		{name: "read partial (5)", maxLines: 5, expected: all[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: all},
		{name: "read more than exists (20)", maxLines: 20, expected: all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(path, tt.maxLines, slog.LevelDebug)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_FiltersByLevel(t *testing.T) {
	path := writeLog(t, []string{
		`time=a level=INFO msg="list books"`,
		`time=b level=WARN msg="update book failed" id=1`,
		`time=c level=DEBUG msg="tick"`,
		`time=d level=ERROR msg="create book failed"`,
		`plain line without level`,
	})

	got, err := Read(path, 0, slog.LevelWarn)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []string{
		`time=b level=WARN msg="update book failed" id=1`,
		`time=d level=ERROR msg="create book failed"`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Read() = %v, want %v", got, want)
	}

	got, err = Read(path, 1, slog.LevelWarn)
	if err != nil || len(got) != 1 || !strings.Contains(got[0], "create book failed") {
		t.Fatalf("Read(1) = %v, %v", got, err)
	}
}

func TestRead_MissingFileIsEmpty(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10, slog.LevelDebug)
	if err != nil || got != nil {
		t.Fatalf("Read() = %v, %v; want nil, nil", got, err)
	}
}

func TestLineLevel(t *testing.T) {
	tests := map[string]slog.Level{
		`level=DEBUG msg=x`:        slog.LevelDebug,
		`time=x level=WARN msg=y`:  slog.LevelWarn,
		`time=x level=ERROR`:       slog.LevelError,
		`time=x level=WARN+2 msg=`: slog.LevelWarn + 2,
		`no level here`:            slog.LevelInfo,
		`level=bogus`:              slog.LevelInfo,
	}
	for line, want := range tests {
		if got := LineLevel(line); got != want {
			t.Errorf("LineLevel(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel("warn"); err != nil || lvl != slog.LevelWarn {
		t.Fatalf("ParseLevel(warn) = %v, %v", lvl, err)
	}
	if lvl, err := ParseLevel(""); err != nil || lvl != slog.LevelDebug {
		t.Fatalf("ParseLevel(\"\") = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("ParseLevel(loud) returned nil error")
	}
}

func TestColorize_KeepsText(t *testing.T) {
	line := `time=2025-01-02T15:04:05Z level=WARN msg="update book failed"`
	out := Colorize(line)
	for _, part := range []string{"WARN", "update book failed", "2025-01-02T15:04:05Z"} {
		if !strings.Contains(out, part) {
			t.Fatalf("Colorize() = %q, lost %q", out, part)
		}
	}
	if got := Colorize("plain"); got != "plain" {
		t.Fatalf("Colorize(plain) = %q", got)
	}
}
