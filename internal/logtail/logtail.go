package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path, keeping
// only lines whose level is at least minLevel. maxLines <= 0 returns every
// matching line.
func Read(path string, maxLines int, minLevel slog.Level) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			if line := scanner.Text(); LineLevel(line) >= minLevel {
				lines = append(lines, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count, idx := 0, 0
	for scanner.Scan() {
		line := scanner.Text()
		if LineLevel(line) < minLevel {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := range count {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// LineLevel extracts the slog level of a text-format line.
func LineLevel(line string) slog.Level {
	token, ok := levelToken(line)
	if !ok {
		return slog.LevelInfo
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(token)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ParseLevel parses a user-supplied level name such as "warn".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelDebug, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("parse level %q: %w", s, err)
	}
	return lvl, nil
}

func levelToken(line string) (string, bool) {
	const key = "level="
	i := strings.Index(line, key)
	if i < 0 {
		return "", false
	}
	rest := line[i+len(key):]
	if j := strings.IndexByte(rest, ' '); j >= 0 {
		rest = rest[:j]
	}
	return rest, rest != ""
}

var (
	levelStyles = map[slog.Level]lipgloss.Style{
		slog.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")),
		slog.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B")).Bold(true),
		slog.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C")).Bold(true),
		slog.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true),
	}
	timeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// Colorize highlights the level and timestamp fields of a slog text line.
func Colorize(line string) string {
	token, ok := levelToken(line)
	if !ok {
		return line
	}
	style, found := levelStyles[LineLevel(line)]
	if !found {
		return line
	}
	out := strings.Replace(line, "level="+token, "level="+style.Render(token), 1)
	if strings.HasPrefix(out, "time=") {
		if j := strings.IndexByte(out, ' '); j > 0 {
			out = timeStyle.Render(out[:j]) + out[j:]
		}
	}
	return out
}
