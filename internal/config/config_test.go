package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), ConfigFileName))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sort != "name" {
		t.Errorf("Sort = %q, want default %q", cfg.Sort, "name")
	}
	if cfg.Backup {
		t.Error("Backup default should be false")
	}
}

func TestLoadFrom_Values(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `solution: demo.sln
props: build/Directory.Build.props
packages: build/Directory.Packages.props
sort: discovery
backup: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Solution != "demo.sln" {
		t.Errorf("Solution = %q", cfg.Solution)
	}
	if cfg.BuildProps != "build/Directory.Build.props" {
		t.Errorf("BuildProps = %q", cfg.BuildProps)
	}
	if cfg.Sort != "discovery" {
		t.Errorf("Sort = %q", cfg.Sort)
	}
	if !cfg.Backup {
		t.Error("Backup = false, want true")
	}
}

func TestLoadFrom_UnknownKeyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("bogus: value\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
}
