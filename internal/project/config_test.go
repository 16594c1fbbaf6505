package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[rewrite]
recursive = true
extensions = [".rs", ".rs.in"]

[output]
write = false
backup_suffix = ".bak"

[cache]
enabled = false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Rewrite.Recursive || len(cfg.Rewrite.Extensions) != 2 {
		t.Fatalf("rewrite section: %+v", cfg.Rewrite)
	}
	if cfg.Output.Write || cfg.Output.BackupSuffix != ".bak" {
		t.Fatalf("output section: %+v", cfg.Output)
	}
	if cfg.Cache.Enabled {
		t.Fatalf("cache section: %+v", cfg.Cache)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[rewrite]\nrecursve = true\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[rewrite]\nrecursive = true\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg, ok, err := Discover(nested)
	if err != nil || !ok {
		t.Fatalf("Discover: ok=%v err=%v", ok, err)
	}
	if !cfg.Rewrite.Recursive {
		t.Fatalf("manifest not applied: %+v", cfg)
	}
}

func TestDiscoverDefaults(t *testing.T) {
	cfg, ok, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if ok {
		t.Fatalf("unexpected manifest found")
	}
	if len(cfg.Rewrite.Extensions) != 1 || cfg.Rewrite.Extensions[0] != ".rs" {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if !cfg.Output.Write || !cfg.Cache.Enabled {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
}
