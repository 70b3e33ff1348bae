package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataFile   = "data/taskline.txt"
	DefaultSQLiteFile = "data/taskline.db"

	StorageFile   = "file"
	StorageSQLite = "sqlite"

	UITUI     = "tui"
	UIConsole = "console"
)

type Config struct {
	DataFile string `yaml:"data_file" toml:"data_file"`
	Storage  string `yaml:"storage" toml:"storage"`
	UI       string `yaml:"ui" toml:"ui"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
	LogFile  string `yaml:"log_file" toml:"log_file"`
	// Markdown renders help text through glamour in the TUI.
	Markdown bool `yaml:"markdown" toml:"markdown"`
}

func Default() Config {
	return Config{
		DataFile: DefaultDataFile,
		Storage:  StorageFile,
		UI:       UITUI,
		LogLevel: "info",
		Markdown: true,
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file over the defaults. An
// empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(raw), &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q, use .yaml or .toml", filepath.Ext(path))
	}
	return cfg, nil
}

// FromEnv applies TASKLINE_* overrides on top of base.
func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnv("TASKLINE_DATA_FILE"); ok {
		cfg.DataFile = v
	}
	if v, ok := getEnv("TASKLINE_STORAGE"); ok {
		cfg.Storage = strings.ToLower(v)
	}
	if v, ok := getEnv("TASKLINE_UI"); ok {
		cfg.UI = strings.ToLower(v)
	}
	if v, ok := getEnv("TASKLINE_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := getEnv("TASKLINE_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvBool("TASKLINE_MARKDOWN"); ok {
		cfg.Markdown = v
	}
	return cfg
}

// Normalize fills blanks and points the default data file at a .db file when
// the sqlite backend is selected.
func (c Config) Normalize() Config {
	if strings.TrimSpace(c.Storage) == "" {
		c.Storage = StorageFile
	}
	if strings.TrimSpace(c.UI) == "" {
		c.UI = UITUI
	}
	if strings.TrimSpace(c.DataFile) == "" {
		c.DataFile = DefaultDataFile
	}
	if c.Storage == StorageSQLite && c.DataFile == DefaultDataFile {
		c.DataFile = DefaultSQLiteFile
	}
	return c
}

func (c Config) Validate() error {
	switch c.Storage {
	case StorageFile, StorageSQLite:
	default:
		return fmt.Errorf("config: unknown storage %q (want %s or %s)", c.Storage, StorageFile, StorageSQLite)
	}
	switch c.UI {
	case UITUI, UIConsole:
	default:
		return fmt.Errorf("config: unknown ui %q (want %s or %s)", c.UI, UITUI, UIConsole)
	}
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("config: data file must not be empty")
	}
	return nil
}

func getEnv(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
