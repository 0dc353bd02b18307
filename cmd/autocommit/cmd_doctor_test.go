package main

import (
	"strings"
	"testing"

	"github.com/fbkclanna/autocommit/internal/testutil"
)

func TestRunDoctor_beforeFirstRun(t *testing.T) {
	dir := setupProject(t)

	out, _, err := execute(t, "doctor", dir, "welcome", "build")
	if err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, out)
	}
	for _, want := range []string{"not found (using defaults)", "not initialized", "found at", "All checks passed."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunDoctor_afterRunWithRemote(t *testing.T) {
	dir := setupProject(t)
	if _, _, err := execute(t, dir, "welcome", "build"); err != nil {
		t.Fatal(err)
	}
	testutil.Git(t, dir, "remote", "add", "origin", testutil.CreateBareRepo(t))

	out, _, err := execute(t, "doctor", dir)
	if err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "no upstream") {
		t.Errorf("expected upstream hint:\n%s", out)
	}
	if strings.Contains(out, "Checking executable") {
		t.Error("executable check requires target and dest dir")
	}
}

func TestRunDoctor_missingExecutable(t *testing.T) {
	testutil.IsolateGitConfig(t)
	dir := t.TempDir()

	out, _, err := execute(t, "doctor", dir, "welcome", "build")
	if err == nil {
		t.Fatal("expected doctor to fail without an executable")
	}
	if !strings.Contains(out, "Some checks failed.") {
		t.Errorf("output = %s", out)
	}
}

func TestRunDoctor_missingTool(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, "doctor", dir, "--git", "autocommit-no-such-git")
	if err == nil {
		t.Fatal("expected doctor to fail without git")
	}
	if !strings.Contains(out, "NOT FOUND") {
		t.Errorf("output = %s", out)
	}
}

func TestRunDoctor_argCount(t *testing.T) {
	if _, _, err := execute(t, "doctor", t.TempDir(), "welcome"); err == nil {
		t.Fatal("expected usage error with two arguments")
	}
}
