// Package config handles loading tasklist.toml configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/amonks/tasklist/internal/paths"
)

// ProjectFile is the per-directory config file name.
const ProjectFile = "tasklist.toml"

// DefaultRefreshInterval is how often the TUI re-evaluates reminder bounds.
const DefaultRefreshInterval = time.Minute

// DefaultDatetimeFormat renders reminders for display.
const DefaultDatetimeFormat = "1/2/2006, 3:04:05 PM"

// ErrInvalidRefreshInterval is returned when [tui] refresh-interval is unusable.
var ErrInvalidRefreshInterval = errors.New("invalid refresh interval")

// Config represents the tasklist.toml configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	Tasks   Tasks   `toml:"tasks"`
	Display Display `toml:"display"`
	TUI     TUI     `toml:"tui"`
}

// Storage selects where tasks are persisted.
type Storage struct {
	// Backend is one of file, sqlite or memory. Empty means file.
	Backend string `toml:"backend"`

	// Dir overrides the data directory.
	Dir string `toml:"dir"`
}

// Tasks contains task list behavior.
type Tasks struct {
	// ClearMode is complement or matching. Empty means complement.
	ClearMode string `toml:"clear-mode"`
}

// Display contains output formatting.
type Display struct {
	// DatetimeFormat is a Go time layout used to show reminders.
	DatetimeFormat string `toml:"datetime-format"`
}

// TUI contains interactive mode settings.
type TUI struct {
	// RefreshInterval is a duration string such as "30s".
	RefreshInterval string `toml:"refresh-interval"`
}

// Load loads configuration from dir and the global config file.
// Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, ProjectFile))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

// LoadFile loads a single explicit config file, which must exist.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	cfg, meta, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return mergeConfigs(&Config{}, cfg, toml.MetaData{}, meta), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.Backend = mergeString(projectMeta.IsDefined("storage", "backend"), projectCfg.Storage.Backend, globalCfg.Storage.Backend)
	merged.Storage.Dir = mergeString(projectMeta.IsDefined("storage", "dir"), projectCfg.Storage.Dir, globalCfg.Storage.Dir)
	merged.Tasks.ClearMode = mergeString(projectMeta.IsDefined("tasks", "clear-mode"), projectCfg.Tasks.ClearMode, globalCfg.Tasks.ClearMode)
	merged.TUI.RefreshInterval = mergeString(projectMeta.IsDefined("tui", "refresh-interval"), projectCfg.TUI.RefreshInterval, globalCfg.TUI.RefreshInterval)

	merged.Display.DatetimeFormat = globalCfg.Display.DatetimeFormat
	if projectMeta.IsDefined("display", "datetime-format") {
		merged.Display.DatetimeFormat = projectCfg.Display.DatetimeFormat
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}

// RefreshInterval parses [tui] refresh-interval, defaulting to DefaultRefreshInterval.
func (c *Config) RefreshInterval() (time.Duration, error) {
	if c.TUI.RefreshInterval == "" {
		return DefaultRefreshInterval, nil
	}
	interval, err := time.ParseDuration(c.TUI.RefreshInterval)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRefreshInterval, c.TUI.RefreshInterval)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", ErrInvalidRefreshInterval, c.TUI.RefreshInterval)
	}
	return interval, nil
}

// DatetimeFormat returns the reminder display layout.
func (c *Config) DatetimeFormat() string {
	if c.Display.DatetimeFormat == "" {
		return DefaultDatetimeFormat
	}
	return c.Display.DatetimeFormat
}
