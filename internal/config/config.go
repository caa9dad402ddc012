// Package config handles loading taskbook.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mkern/taskbook/internal/paths"
)

// ProjectFile is the name of the per-directory configuration file.
const ProjectFile = "taskbook.toml"

// Config represents the taskbook.toml configuration file.
type Config struct {
	Tasks Tasks `toml:"tasks"`
	UI    UI    `toml:"ui"`
}

// Tasks contains task-store related configuration.
type Tasks struct {
	// File is the snapshot file path. Relative paths resolve against the
	// directory the command runs in.
	File string `toml:"file"`

	// DefaultPriority is used when a new task has no explicit priority.
	DefaultPriority string `toml:"default-priority"`
}

// UI contains output-related configuration.
type UI struct {
	// NoColor disables ANSI styling in tables and detail views.
	NoColor bool `toml:"no-color"`
}

// Load loads configuration from the given directory and the global config
// file. Project values win over global ones. Returns an empty config if no
// config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
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
	merged := Config{}
	merged.Tasks.File = mergeString(projectMeta.IsDefined("tasks", "file"), projectCfg.Tasks.File, globalCfg.Tasks.File)
	merged.Tasks.DefaultPriority = mergeString(projectMeta.IsDefined("tasks", "default-priority"), projectCfg.Tasks.DefaultPriority, globalCfg.Tasks.DefaultPriority)
	if projectMeta.IsDefined("ui", "no-color") {
		merged.UI.NoColor = projectCfg.UI.NoColor
	} else {
		merged.UI.NoColor = globalCfg.UI.NoColor
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
