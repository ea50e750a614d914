package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Mode selects which API root the client talks to.
type Mode string

const (
	ModeAuto       Mode = ""
	ModeProduction Mode = "production"
	ModeLocal      Mode = "local"
)

// Config captures everything bookshelf reads from its config file.
type Config struct {
	Mode          Mode
	ProdURL       string
	LocalURL      string
	CloseOnCommit bool
	LogFile       string
	Serve         ServeConfig
}

// ServeConfig configures the development API server.
type ServeConfig struct {
	Listen string
	DBPath string // empty means in-memory
}

const (
	defaultConfigPath = "~/.config/bookshelf/config.toml"
	defaultLogFile    = "~/.local/state/bookshelf/bookshelf.log"
	defaultLocalURL   = "http://127.0.0.1:8000"
	defaultListen     = "127.0.0.1:8000"

	envMode     = "BOOKSHELF_MODE"
	envProdURL  = "BOOKSHELF_PROD_URL"
	envLocalURL = "BOOKSHELF_LOCAL_URL"
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		LocalURL: defaultLocalURL,
		LogFile:  mustExpand(defaultLogFile),
		Serve:    ServeConfig{Listen: defaultListen},
	}

	file, err := os.Open(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
		return finish(cfg)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Mode          string `toml:"mode"`
		ProdURL       string `toml:"prod_url"`
		LocalURL      string `toml:"local_url"`
		CloseOnCommit bool   `toml:"close_on_commit"`
		LogFile       string `toml:"log_file"`
		Serve         struct {
			Listen string `toml:"listen"`
			DB     string `toml:"db"`
		} `toml:"serve"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Mode = Mode(strings.ToLower(strings.TrimSpace(raw.Mode)))
	cfg.ProdURL = strings.TrimSpace(raw.ProdURL)
	if v := strings.TrimSpace(raw.LocalURL); v != "" {
		cfg.LocalURL = v
	}
	cfg.CloseOnCommit = raw.CloseOnCommit
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.Serve.Listen); v != "" {
		cfg.Serve.Listen = v
	}
	if v := strings.TrimSpace(raw.Serve.DB); v != "" {
		cfg.Serve.DBPath = mustExpand(v)
	}

	return finish(cfg)
}

func finish(cfg Config) (Config, error) {
	applyEnv(&cfg)
	if err := cfg.Mode.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(envMode); ok {
		cfg.Mode = Mode(strings.ToLower(strings.TrimSpace(v)))
	}
	if v := strings.TrimSpace(os.Getenv(envProdURL)); v != "" {
		cfg.ProdURL = v
	}
	if v := strings.TrimSpace(os.Getenv(envLocalURL)); v != "" {
		cfg.LocalURL = v
	}
}

// ParseMode validates a mode given on the command line.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if err := m.validate(); err != nil {
		return ModeAuto, err
	}
	return m, nil
}

func (m Mode) validate() error {
	switch m {
	case ModeAuto, ModeProduction, ModeLocal:
		return nil
	default:
		return fmt.Errorf("unknown mode %q (want production or local)", string(m))
	}
}

// BaseURL returns the API root selected by Mode.
func (c Config) BaseURL() (string, error) {
	switch c.Mode {
	case ModeProduction:
		if c.ProdURL == "" {
			return "", fmt.Errorf("production mode requires prod_url or %s", envProdURL)
		}
		return c.ProdURL, nil
	case ModeLocal:
		if c.LocalURL == "" {
			return defaultLocalURL, nil
		}
		return c.LocalURL, nil
	case ModeAuto:
		if c.ProdURL != "" {
			return c.ProdURL, nil
		}
		if c.LocalURL == "" {
			return defaultLocalURL, nil
		}
		return c.LocalURL, nil
	default:
		return "", c.Mode.validate()
	}
}

// EffectiveMode names the mode BaseURL resolved, for display.
func (c Config) EffectiveMode() Mode {
	if c.Mode != ModeAuto {
		return c.Mode
	}
	if c.ProdURL != "" {
		return ModeProduction
	}
	return ModeLocal
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading "~" and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
