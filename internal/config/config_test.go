package config

import "testing"

func TestLoad_Default(t *testing.T) {
	t.Setenv("TODO_DB", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != DefaultDBFile {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, DefaultDBFile)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TODO_DB", "/tmp/custom/tasks.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "/tmp/custom/tasks.json" {
		t.Errorf("DBPath = %q, want env override", cfg.DBPath)
	}
}
