package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/fbkclanna/autocommit/internal/config"
)

func TestRunInit_defaults(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, "init", dir, "--defaults")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, config.FileName) {
		t.Errorf("output = %q", out)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, config.Default()) {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestRunInit_watchFlag(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := execute(t, "init", dir, "--watch", "app.c,lib", "--watch", "Makefile"); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"app.c", "lib", "Makefile"}
	if !reflect.DeepEqual(cfg.Watch, want) {
		t.Errorf("watch = %v, want %v", cfg.Watch, want)
	}
}

func TestRunInit_watchFlagRejectsEscapingPath(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := execute(t, "init", dir, "--watch", "../outside"); err == nil {
		t.Fatal("expected error for a path outside the root")
	}
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
		t.Error("config must not be written on error")
	}
}

func TestRunInit_alreadyExists(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("version: 1\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	if _, _, err := execute(t, "init", dir, "--defaults"); err == nil {
		t.Fatal("expected error when the config already exists")
	}
}

func TestRunInit_force(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte("version: 1\nwatch: [old.c]\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}

	if _, _, err := execute(t, "init", dir, "--defaults", "--force"); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg.Watch, config.DefaultWatch) {
		t.Errorf("watch = %v, want defaults", cfg.Watch)
	}
}

func TestRunInit_missingRoot(t *testing.T) {
	if _, _, err := execute(t, "init", filepath.Join(t.TempDir(), "missing"), "--defaults"); err == nil {
		t.Fatal("expected error for a missing root")
	}
}
