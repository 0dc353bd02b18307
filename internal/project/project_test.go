package project

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/fbkclanna/autocommit/internal/config"
	"github.com/fbkclanna/autocommit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	root := t.TempDir()

	ctx, err := Load(root, "welcome", "build", Options{})
	require.NoError(t, err)

	abs, _ := filepath.Abs(root)
	assert.Equal(t, abs, ctx.Root)
	assert.Equal(t, filepath.Join(abs, "build"), ctx.DestDir)
	assert.Equal(t, filepath.Join(abs, config.FileName), ctx.ConfigPath)
	assert.Equal(t, config.Default(), ctx.Config)
	assert.Equal(t, filepath.Join(abs, ".autocommit_counter.txt"), ctx.CounterPath())
	assert.Equal(t, filepath.Join(abs, "output"), ctx.OutputDir())
}

func TestLoad_absoluteDestDir(t *testing.T) {
	dest := t.TempDir()
	ctx, err := Load(t.TempDir(), "welcome", dest, Options{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(dest), ctx.DestDir)
}

func TestLoad_configFile(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, config.FileName, "version: 1\nwatch: [app.c]\noutput_prefix: run\n")

	ctx, err := Load(root, "app", "bin", Options{Tool: "/usr/bin/git"})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.c"}, ctx.Config.Watch)
	assert.Equal(t, "output/run_4.txt", ctx.ArtifactRel(4))
	assert.Equal(t, "/usr/bin/git", ctx.Tool)
}

func TestLoad_invalidConfig(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, config.FileName, "version: 7\n")

	_, err := Load(root, "app", "bin", Options{})
	assert.Error(t, err)
}

func TestLoad_missingRoot(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), "app", "bin", Options{})
	assert.Error(t, err)
}

func TestWatchSet_filtersMissingAndKeepsOrder(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "main.cpp", "int main(){}\n")
	testutil.WriteFile(t, root, "include/a.h", "\n")
	testutil.WriteFile(t, root, "CMakeLists.txt", "project(x)\n")

	ctx, err := Load(root, "welcome", "build", Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"CMakeLists.txt", "main.cpp", "include"}, ctx.WatchSet())
}

func TestWatchSet_empty(t *testing.T) {
	ctx, err := Load(t.TempDir(), "welcome", "build", Options{})
	require.NoError(t, err)
	assert.Empty(t, ctx.WatchSet())
}

func TestArtifactRel(t *testing.T) {
	ctx, err := Load(t.TempDir(), "welcome", "build", Options{})
	require.NoError(t, err)
	assert.Equal(t, "output/welcome_output_1.txt", ctx.ArtifactRel(1))
	assert.Equal(t, "output/welcome_output_12.txt", ctx.ArtifactRel(12))
}

func TestExecutable(t *testing.T) {
	root := t.TempDir()
	ctx, err := Load(root, "welcome", "build", Options{})
	require.NoError(t, err)

	assert.Empty(t, ctx.Executable(), "missing executable")

	exe := testutil.WriteFile(t, root, "build/welcome.exe", "")
	assert.Equal(t, exe, ctx.Executable())

	if runtime.GOOS != "windows" {
		bare := testutil.WriteFile(t, root, "build/welcome", "")
		assert.Equal(t, bare, ctx.Executable(), "bare name preferred off windows")
	}
}

func TestExecutable_directoryIsNotExecutable(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build", "welcome"), 0755)) //nolint:gosec // test directory
	ctx, err := Load(root, "welcome", "build", Options{})
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Empty(t, ctx.Executable())
	}
}

func TestStagePaths(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "main.cpp", "int main(){}\n")
	testutil.WriteFile(t, root, "output/welcome_output_1.txt", "hi\n")
	testutil.WriteFile(t, root, ".autocommit_counter.txt", "1\n")
	testutil.WriteFile(t, root, config.FileName, "version: 1\nwatch: [main.cpp, main.cpp, src]\n")

	ctx, err := Load(root, "welcome", "build", Options{})
	require.NoError(t, err)

	got := ctx.StagePaths("output/welcome_output_1.txt")
	assert.Equal(t, []string{
		"main.cpp",
		"output/welcome_output_1.txt",
		".autocommit_counter.txt",
		config.FileName,
	}, got)
}

func TestLabel(t *testing.T) {
	root := filepath.Join(t.TempDir(), "hello")
	require.NoError(t, os.MkdirAll(root, 0755)) //nolint:gosec // test directory
	ctx, err := Load(root, "welcome", "build", Options{})
	require.NoError(t, err)
	assert.Equal(t, "hello/welcome", ctx.Label())
}
