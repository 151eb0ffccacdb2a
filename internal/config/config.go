package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	AppName               = "todoapp"
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "todo.db"
	DefaultLogName        = "todo.log"
)

type Keymap struct {
	Quit      string `toml:"quit"`
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Confirm   string `toml:"confirm"`
	Cancel    string `toml:"cancel"`
	Delete    string `toml:"delete"`
	Category  string `toml:"category"`
	NextFocus string `toml:"next_focus"`
	PrevFocus string `toml:"prev_focus"`
}

type Config struct {
	DBPath          string `toml:"db_path"`
	LogPath         string `toml:"log_path"`
	LogLevel        string `toml:"log_level"`
	DefaultCategory string `toml:"default_category"`
	Keys            Keymap `toml:"keys"`
}

// ResolveConfigPath returns the config file location under the user config
// directory, or a file in the working directory when none is available.
func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return resolvePaths(path, cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.fillDefaults()
	return resolvePaths(path, cfg), nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// resolvePaths anchors relative db and log paths at the config directory.
func resolvePaths(configPath string, cfg Config) Config {
	base := filepath.Dir(configPath)
	if !filepath.IsAbs(cfg.DBPath) {
		cfg.DBPath = filepath.Join(base, cfg.DBPath)
	}
	if !filepath.IsAbs(cfg.LogPath) {
		cfg.LogPath = filepath.Join(base, cfg.LogPath)
	}
	return cfg
}

func (c *Config) fillDefaults() {
	d := Default()
	if c.DBPath == "" {
		c.DBPath = d.DBPath
	}
	if c.LogPath == "" {
		c.LogPath = d.LogPath
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.DefaultCategory == "" {
		c.DefaultCategory = d.DefaultCategory
	}
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&c.Keys.Quit, d.Keys.Quit)
	fill(&c.Keys.Up, d.Keys.Up)
	fill(&c.Keys.Down, d.Keys.Down)
	fill(&c.Keys.Confirm, d.Keys.Confirm)
	fill(&c.Keys.Cancel, d.Keys.Cancel)
	fill(&c.Keys.Delete, d.Keys.Delete)
	fill(&c.Keys.Category, d.Keys.Category)
	fill(&c.Keys.NextFocus, d.Keys.NextFocus)
	fill(&c.Keys.PrevFocus, d.Keys.PrevFocus)
}

// Default returns the built-in configuration with paths left relative.
func Default() Config {
	return Config{
		DBPath:          DefaultDBName,
		LogPath:         DefaultLogName,
		LogLevel:        "info",
		DefaultCategory: "Design",
		Keys: Keymap{
			Quit:      "ctrl+c",
			Up:        "k",
			Down:      "j",
			Confirm:   "enter",
			Cancel:    "esc",
			Delete:    "d",
			Category:  "ctrl+t",
			NextFocus: "tab",
			PrevFocus: "shift+tab",
		},
	}
}
