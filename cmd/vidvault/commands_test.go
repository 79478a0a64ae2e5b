package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vidvault/internal/store"
)

type testEnv struct {
	configPath  string
	libraryPath string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	libraryPath := filepath.Join(dir, "videos.json")
	content := "[paths]\n" +
		"library_file = \"" + libraryPath + "\"\n" +
		"log_dir = \"" + filepath.Join(dir, "logs") + "\"\n"
	configPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return testEnv{configPath: configPath, libraryPath: libraryPath}
}

func (e testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func (e testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("command %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

func (e testEnv) listJSON(t *testing.T) []store.Video {
	t.Helper()
	out := e.mustRun(t, "list", "--json")
	var videos []store.Video
	if err := json.Unmarshal([]byte(out), &videos); err != nil {
		t.Fatalf("parse list output: %v\n%s", err, out)
	}
	return videos
}

func TestAddAndList(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "add", "Understanding Channels", "https://youtube.com/watch?v=1", "--tags", "go,concurrency", "--duration", "41:12")
	if !strings.Contains(out, "Added video #1") {
		t.Fatalf("unexpected add output: %s", out)
	}

	out = env.mustRun(t, "list")
	if !strings.Contains(out, "Understanding Channels") || !strings.Contains(out, "41:12") {
		t.Fatalf("list output missing record: %s", out)
	}

	videos := env.listJSON(t)
	if len(videos) != 1 || videos[0].ID != 1 || len(videos[0].Tags) != 2 {
		t.Fatalf("unexpected records: %+v", videos)
	}
}

func TestAddRejectsBadURL(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.run(t, "add", "Talk", "not-a-url"); err == nil {
		t.Fatal("expected error for malformed url")
	}
	if videos := env.listJSON(t); len(videos) != 0 {
		t.Fatalf("rejected add must not persist: %+v", videos)
	}
}

func TestUpdateAndShow(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "Old Title", "https://example.com/1")

	env.mustRun(t, "update", "1", "--title", "New Title", "--notes", "rewatch")

	out := env.mustRun(t, "show", "1")
	if !strings.Contains(out, "New Title") || !strings.Contains(out, "rewatch") {
		t.Fatalf("show output missing update: %s", out)
	}
}

func TestUpdateRequiresAField(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "Talk", "https://example.com/1")
	if _, err := env.run(t, "update", "1"); err == nil {
		t.Fatal("expected error when no field flags are supplied")
	}
}

func TestUpdateUnknownID(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.run(t, "update", "9", "--title", "X"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestRemove(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "Talk A", "https://x.com/1")
	env.mustRun(t, "add", "Talk B", "https://x.com/2")

	out := env.mustRun(t, "remove", "1", "--yes")
	if !strings.Contains(out, "Removed video #1") {
		t.Fatalf("unexpected remove output: %s", out)
	}

	videos := env.listJSON(t)
	if len(videos) != 1 || videos[0].ID != 2 {
		t.Fatalf("unexpected records after remove: %+v", videos)
	}

	// Ids are never reused after a delete.
	env.mustRun(t, "add", "Talk C", "https://x.com/3")
	videos = env.listJSON(t)
	if len(videos) != 2 || videos[1].ID != 3 {
		t.Fatalf("expected new id 3, got %+v", videos)
	}
}

func TestRemoveRefusesToPromptNonInteractively(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "Talk", "https://x.com/1")
	if _, err := env.run(t, "remove", "1"); err == nil {
		t.Fatal("expected error without --yes on non-interactive input")
	}
	if videos := env.listJSON(t); len(videos) != 1 {
		t.Fatalf("record must survive refused prompt: %+v", videos)
	}
}

func TestSearchCommand(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "Understanding Channels", "https://youtube.com/1", "--tags", "go")
	env.mustRun(t, "add", "Cooking Pasta", "https://vimeo.com/2")

	out := env.mustRun(t, "search", "channels")
	if !strings.Contains(out, "Understanding Channels") || strings.Contains(out, "Pasta") {
		t.Fatalf("unexpected search output: %s", out)
	}

	out = env.mustRun(t, "search", "haskell")
	if !strings.Contains(out, "No matches found.") {
		t.Fatalf("unexpected search output: %s", out)
	}
}

func TestSortCommandSave(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "banana", "https://x.com/1")
	env.mustRun(t, "add", "Apple", "https://x.com/2")

	env.mustRun(t, "sort", "--by", "title", "--save")

	videos := env.listJSON(t)
	if videos[0].Title != "Apple" || videos[0].ID != 2 {
		t.Fatalf("stored order not sorted: %+v", videos)
	}
}

func TestSortRejectsUnknownKey(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.run(t, "sort", "--by", "views"); err == nil {
		t.Fatal("expected error for unknown sort key")
	}
}

func TestCorruptedLibraryStartsEmptyWithBackup(t *testing.T) {
	env := newTestEnv(t)
	if err := os.WriteFile(env.libraryPath, []byte("{{{ not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := env.mustRun(t, "list")
	if !strings.Contains(out, "Library is empty") {
		t.Fatalf("corrupted library must yield empty store: %s", out)
	}

	backups, err := filepath.Glob(env.libraryPath + ".corrupt-*")
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected one backup, got %v", backups)
	}
	data, err := os.ReadFile(backups[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "{{{ not json" {
		t.Fatalf("backup does not hold original bytes: %q", data)
	}
}

func TestConfigInitAndPath(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.toml")

	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	// A second init without --overwrite must refuse.
	cmd = newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when config already exists")
	}
}
