package config

import (
	"errors"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"slate/internal/store"
)

const (
	defaultLogLevel         = "info"
	defaultDoublePressMs    = 300
	defaultSettleDurationMs = 200
)

type Config struct {
	Store   StoreConfig   `toml:"store"`
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
}

type StoreConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

type UIConfig struct {
	DoublePressMs    int    `toml:"double_press_ms"`
	SettleDurationMs int    `toml:"settle_duration_ms"`
	NewNoteName      string `toml:"new_note_name"`
}

func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Backend: store.RepositoryBackendFile,
		},
		Logging: LoggingConfig{
			Level: defaultLogLevel,
		},
		UI: UIConfig{
			DoublePressMs:    defaultDoublePressMs,
			SettleDurationMs: defaultSettleDurationMs,
		},
	}
}

func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return loadFromPath(path)
}

func loadFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return toml.Unmarshal(data, out)
}

func (c Config) Backend() string {
	backend := strings.ToLower(strings.TrimSpace(c.Store.Backend))
	if backend == "" {
		return store.RepositoryBackendFile
	}
	return backend
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

func (c Config) DoublePressInterval() time.Duration {
	ms := c.UI.DoublePressMs
	if ms <= 0 {
		ms = defaultDoublePressMs
	}
	return time.Duration(ms) * time.Millisecond
}

func (c Config) SettleDuration() time.Duration {
	ms := c.UI.SettleDurationMs
	if ms <= 0 {
		ms = defaultSettleDurationMs
	}
	return time.Duration(ms) * time.Millisecond
}

// NewNoteName returns the override name for freshly created notes, or
// empty when the current date should be used.
func (c Config) NewNoteName() string {
	return strings.TrimSpace(c.UI.NewNoteName)
}
