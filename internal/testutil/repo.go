// Package testutil builds throwaway git repositories and fake build outputs
// for tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// RequireGit skips the test when git is not on PATH.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// IsolateGitConfig points git at an empty global config so tests do not
// depend on the developer's identity or default branch settings.
func IsolateGitConfig(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(home, ".gitconfig"))
}

// InitRepo creates a working repository on branch main with one commit.
// Returns the path to the repository.
func InitRepo(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "work")
	Git(t, filepath.Dir(dir), "init", "-b", "main", dir)
	Git(t, dir, "config", "user.email", "test@example.com")
	Git(t, dir, "config", "user.name", "Test")

	WriteFile(t, dir, "README.md", "# test\n")
	Git(t, dir, "add", ".")
	Git(t, dir, "commit", "-m", "initial commit")
	return dir
}

// CreateBareRepo creates an empty bare repository to act as "origin".
// Returns the path to the bare repo.
func CreateBareRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	bare := filepath.Join(dir, "origin.git")
	Git(t, dir, "init", "--bare", "-b", "main", bare)
	return bare
}

// WriteFile writes content to dir/name, creating parent directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil { //nolint:gosec // test directory
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	return p
}

// WriteExecutable writes a shell script named name into dir and marks it
// executable. Tests using it are skipped on Windows.
func WriteExecutable(t *testing.T, dir, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script executables are not supported on windows")
	}
	p := WriteFile(t, dir, name, "#!/bin/sh\n"+script)
	if err := os.Chmod(p, 0755); err != nil { //nolint:gosec // test executable
		t.Fatal(err)
	}
	return p
}

// Git runs a git command in dir, failing the test on error, and returns
// trimmed stdout.
func Git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		var stderr string
		if ee, ok := err.(*exec.ExitError); ok {
			stderr = string(ee.Stderr)
		}
		t.Fatalf("git %v failed: %v: %s", args, err, stderr)
	}
	return strings.TrimSpace(string(out))
}
