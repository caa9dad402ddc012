package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProjectConfig(t *testing.T, dir, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, ProjectFile), []byte(content), 0644); err != nil {
		t.Fatalf("write project config: %v", err)
	}
}

func writeGlobalConfig(t *testing.T, content string) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".config", "taskbook")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("write global config: %v", err)
	}
}

func TestLoad_NoConfigFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.Tasks.File != "" || cfg.Tasks.DefaultPriority != "" || cfg.UI.NoColor {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	writeProjectConfig(t, dir, `
[tasks]
file = "work/tasks.json"
default-priority = "high"

[ui]
no-color = true
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.Tasks.File != "work/tasks.json" {
		t.Errorf("expected tasks.file 'work/tasks.json', got %q", cfg.Tasks.File)
	}
	if cfg.Tasks.DefaultPriority != "high" {
		t.Errorf("expected default-priority 'high', got %q", cfg.Tasks.DefaultPriority)
	}
	if !cfg.UI.NoColor {
		t.Error("expected no-color true")
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	writeGlobalConfig(t, `
[tasks]
file = "global/tasks.json"
default-priority = "low"
`)

	dir := t.TempDir()
	writeProjectConfig(t, dir, `
[tasks]
file = "project/tasks.json"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.Tasks.File != "project/tasks.json" {
		t.Errorf("expected project value to win, got %q", cfg.Tasks.File)
	}
	// Keys the project leaves undefined fall through to the global file.
	if cfg.Tasks.DefaultPriority != "low" {
		t.Errorf("expected global default-priority 'low', got %q", cfg.Tasks.DefaultPriority)
	}
}

func TestLoad_MalformedConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	writeProjectConfig(t, dir, "tasks = {")

	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed config")
	}
}
