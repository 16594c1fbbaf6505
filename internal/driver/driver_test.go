package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return dir
}

func TestRewritePathSingleFile(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"lib.rs": "struct S { x: u8 }\n",
	})
	_, result, err := RewritePath(filepath.Join(dir, "lib.rs"), false, 64)
	if err != nil {
		t.Fatalf("RewritePath: %v", err)
	}
	if result.Bag.HasErrors() {
		t.Fatalf("diagnostics: %v", result.Bag.Items())
	}
	if string(result.Output) != "pub struct S { pub x: u8 }\n" {
		t.Fatalf("output: %q", result.Output)
	}
	if !result.Changed {
		t.Fatalf("expected Changed")
	}
}

func TestRewriteOneAbortsOnSyntaxError(t *testing.T) {
	dir := writeTree(t, map[string]string{"bad.rs": "struct {\n"})
	_, result, err := RewritePath(filepath.Join(dir, "bad.rs"), false, 64)
	if err != nil {
		t.Fatalf("RewritePath: %v", err)
	}
	if !result.Bag.HasErrors() {
		t.Fatalf("expected diagnostics")
	}
	if result.Output != nil {
		t.Fatalf("broken file must not produce output")
	}
}

func TestRewriteDirWritesChangedFilesOnly(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.rs":       "fn a() {}\n",
		"sub/b.rs":   "pub fn b() {}\n",
		"notes.txt":  "fn not_code() {}\n",
		"sub/c.toml": "x = 1\n",
	})

	_, results, err := RewriteDir(context.Background(), dir, Options{
		Write:          true,
		MaxDiagnostics: 64,
	})
	if err != nil {
		t.Fatalf("RewriteDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2 (.rs only)", len(results))
	}

	a, err := os.ReadFile(filepath.Join(dir, "a.rs"))
	if err != nil {
		t.Fatalf("read a.rs: %v", err)
	}
	if string(a) != "pub fn a() {}\n" {
		t.Fatalf("a.rs = %q", a)
	}
	b, err := os.ReadFile(filepath.Join(dir, "sub", "b.rs"))
	if err != nil {
		t.Fatalf("read b.rs: %v", err)
	}
	if string(b) != "pub fn b() {}\n" {
		t.Fatalf("already-public file rewritten: %q", b)
	}
}

func TestRewriteDirBackupSuffix(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.rs": "fn a() {}\n"})
	_, _, err := RewriteDir(context.Background(), dir, Options{
		Write:          true,
		BackupSuffix:   ".orig",
		MaxDiagnostics: 64,
	})
	if err != nil {
		t.Fatalf("RewriteDir: %v", err)
	}
	backup, err := os.ReadFile(filepath.Join(dir, "a.rs.orig"))
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if string(backup) != "fn a() {}\n" {
		t.Fatalf("backup content: %q", backup)
	}
}

func TestRewriteDirExcludeGlobs(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.rs":          "fn a() {}\n",
		"generated.rs":  "fn g() {}\n",
		"vendor/v.rs":   "fn v() {}\n",
		"vendor/w.rs":   "fn w() {}\n",
		"src/normal.rs": "fn n() {}\n",
	})
	_, results, err := RewriteDir(context.Background(), dir, Options{
		MaxDiagnostics: 64,
		Excludes:       []string{"generated.rs", "vendor/*"},
	})
	if err != nil {
		t.Fatalf("RewriteDir: %v", err)
	}
	var paths []string
	for _, r := range results {
		paths = append(paths, filepath.Base(r.Path))
	}
	got := strings.Join(paths, ",")
	if got != "a.rs,normal.rs" {
		t.Fatalf("paths = %q", got)
	}
}

func TestRewriteDirEvents(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.rs": "fn a() {}\n",
		"b.rs": "pub fn b() {}\n",
	})
	var mu sync.Mutex
	var events []Event
	_, _, err := RewriteDir(context.Background(), dir, Options{
		MaxDiagnostics: 64,
		Events: func(ev Event) {
			mu.Lock()
			events = append(events, ev)
			mu.Unlock()
		},
	})
	if err != nil {
		t.Fatalf("RewriteDir: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d", len(events))
	}
	for _, ev := range events {
		if ev.Total != 2 || ev.Failed {
			t.Fatalf("bad event: %+v", ev)
		}
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCache("pubsweep-test", t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	key := Digest{1, 2, 3}
	payload := DiskPayload{
		Schema:  diskCacheSchemaVersion,
		Output:  []byte("pub fn a() {}\n"),
		Changed: true,
		Markers: 1,
	}
	if err := cache.Put(key, &payload); err != nil {
		t.Fatalf("Put: %v", err)
	}
	var got DiskPayload
	hit, err := cache.Get(key, &got)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	if string(got.Output) != string(payload.Output) || !got.Changed || got.Markers != 1 {
		t.Fatalf("payload mismatch: %+v", got)
	}
	var miss DiskPayload
	if hit, _ := cache.Get(Digest{9}, &miss); hit {
		t.Fatalf("unexpected hit")
	}
}

func TestRewriteDirUsesCache(t *testing.T) {
	cache, err := OpenDiskCache("pubsweep-test", t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}
	dir := writeTree(t, map[string]string{"a.rs": "fn a() {}\n"})
	opts := Options{MaxDiagnostics: 64, Cache: cache}

	_, first, err := RewriteDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first[0].CacheHit {
		t.Fatalf("first run must miss")
	}
	_, second, err := RewriteDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second[0].CacheHit {
		t.Fatalf("second run must hit the cache")
	}
	if string(second[0].Output) != string(first[0].Output) {
		t.Fatalf("cached output differs")
	}
}
