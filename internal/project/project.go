package project

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/fbkclanna/autocommit/internal/config"
)

// Context holds the resolved paths and loaded config for one invocation.
type Context struct {
	Root       string
	TargetName string
	DestDir    string
	ConfigPath string
	Tool       string
	Config     *config.Config
}

// Options are the optional inputs of Load.
type Options struct {
	// ConfigPath overrides <root>/.autocommit.yaml.
	ConfigPath string
	// Tool is the git executable; empty means "git" on PATH.
	Tool string
}

// Load resolves paths and loads the configuration.
func Load(root, targetName, destDir string, opts Options) (*Context, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving repository root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("repository root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("repository root %s is not a directory", root)
	}

	if destDir != "" {
		if !filepath.IsAbs(destDir) {
			destDir = filepath.Join(root, destDir)
		}
		destDir = filepath.Clean(destDir)
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = filepath.Join(root, config.FileName)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	return &Context{
		Root:       root,
		TargetName: targetName,
		DestDir:    destDir,
		ConfigPath: cfgPath,
		Tool:       opts.Tool,
		Config:     cfg,
	}, nil
}

// Path returns the absolute path for a repository-relative path.
func (c *Context) Path(rel string) string {
	return filepath.Join(c.Root, rel)
}

// Exists reports whether a repository-relative path exists.
func (c *Context) Exists(rel string) bool {
	_, err := os.Stat(c.Path(rel))
	return err == nil
}

// WatchSet returns the configured watch candidates that exist, in order.
func (c *Context) WatchSet() []string {
	var set []string
	for _, w := range c.Config.Watch {
		if c.Exists(w) {
			set = append(set, filepath.ToSlash(filepath.Clean(w)))
		}
	}
	return set
}

// CounterPath is the absolute path of the counter file.
func (c *Context) CounterPath() string {
	return c.Path(c.Config.CounterFile)
}

// OutputDir is the absolute path of the artifact directory.
func (c *Context) OutputDir() string {
	return c.Path(c.Config.OutputDir)
}

// ArtifactRel returns the repository-relative artifact path for run n.
func (c *Context) ArtifactRel(n int) string {
	name := c.Config.OutputPrefix + "_" + strconv.Itoa(n) + ".txt"
	return filepath.ToSlash(filepath.Join(c.Config.OutputDir, name))
}

// Executable returns the path of the built target, or "" when it does not
// exist. Windows only accepts <name>.exe; other platforms try the bare name
// first.
func (c *Context) Executable() string {
	if c.DestDir == "" || c.TargetName == "" {
		return ""
	}
	for _, p := range c.executableCandidates() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func (c *Context) executableCandidates() []string {
	exe := filepath.Join(c.DestDir, c.TargetName+".exe")
	if runtime.GOOS == "windows" {
		return []string{exe}
	}
	return []string{filepath.Join(c.DestDir, c.TargetName), exe}
}

// StagePaths lists the repository-relative paths staged for an auto-commit:
// the watch set, the artifact, the counter file and the automation's own
// files, skipping anything missing on disk and duplicates.
func (c *Context) StagePaths(artifactRel string) []string {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		p = filepath.ToSlash(filepath.Clean(p))
		if seen[p] || !c.Exists(p) {
			return
		}
		seen[p] = true
		paths = append(paths, p)
	}
	for _, w := range c.WatchSet() {
		add(w)
	}
	if artifactRel != "" {
		add(artifactRel)
	}
	add(c.Config.CounterFile)
	for _, s := range c.Config.ScriptPaths {
		add(s)
	}
	return paths
}

// Label identifies the run in commit messages: <root-basename>/<target>.
func (c *Context) Label() string {
	return filepath.Base(c.Root) + "/" + c.TargetName
}
