package config

import (
	"sort"
	"time"
)

// FileName is the configuration file looked up at the repository root.
const FileName = ".autocommit.yaml"

// Config represents .autocommit.yaml.
type Config struct {
	Version      int      `yaml:"version"`
	Watch        []string `yaml:"watch"`
	OutputDir    string   `yaml:"output_dir,omitempty"`
	OutputPrefix string   `yaml:"output_prefix,omitempty"`
	CounterFile  string   `yaml:"counter_file,omitempty"`
	Ignore       []string `yaml:"ignore,omitempty"`
	ScriptPaths  []string `yaml:"script_paths,omitempty"`
	Remote       string   `yaml:"remote,omitempty"`
	Branch       string   `yaml:"branch,omitempty"`
	Push         *bool    `yaml:"push,omitempty"`
	Identity     Identity `yaml:"identity,omitempty"`
	Run          Run      `yaml:"run,omitempty"`
}

// Identity is the fallback commit author used when git has none configured.
type Identity struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Run configures how the built executable is invoked.
type Run struct {
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`
	Timeout time.Duration     `yaml:"timeout,omitempty"`
}

// Default values.
const (
	DefaultOutputDir    = "output"
	DefaultOutputPrefix = "welcome_output"
	DefaultCounterFile  = ".autocommit_counter.txt"
	DefaultRemote       = "origin"
	DefaultBranch       = "main"
	DefaultAuthorName   = "autocommit"
	DefaultAuthorEmail  = "autocommit@localhost"
)

// DefaultWatch lists the source candidates watched when none are configured.
var DefaultWatch = []string{"CMakeLists.txt", "main.cpp", "src", "include"}

// DefaultIgnore is the pattern set written to a freshly bootstrapped .gitignore.
var DefaultIgnore = []string{
	"build/",
	"out/",
	"cmake-build-*/",
	"CMakeFiles/",
	"CMakeCache.txt",
	".vs/",
	".vscode/",
	".idea/",
	"*.o",
	"*.obj",
	"*.exe",
	"*.pdb",
	"*.ilk",
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{Version: 1}
	c.Watch = append([]string(nil), DefaultWatch...)
	c.applyDefaults()
	return c
}

// applyDefaults fills every empty optional field. Watch is left alone:
// an explicit empty list is meaningful.
func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.OutputPrefix == "" {
		c.OutputPrefix = DefaultOutputPrefix
	}
	if c.CounterFile == "" {
		c.CounterFile = DefaultCounterFile
	}
	if c.Ignore == nil {
		c.Ignore = append([]string(nil), DefaultIgnore...)
	}
	if c.ScriptPaths == nil {
		c.ScriptPaths = []string{FileName}
	}
	if c.Remote == "" {
		c.Remote = DefaultRemote
	}
	if c.Branch == "" {
		c.Branch = DefaultBranch
	}
	if c.Identity.Name == "" {
		c.Identity.Name = DefaultAuthorName
	}
	if c.Identity.Email == "" {
		c.Identity.Email = DefaultAuthorEmail
	}
}

// PushEnabled returns whether publishing is enabled (default true).
func (c *Config) PushEnabled() bool {
	if c.Push != nil {
		return *c.Push
	}
	return true
}

// RunEnv renders Run.Env as KEY=VALUE pairs in a stable order.
func (c *Config) RunEnv() []string {
	if len(c.Run.Env) == 0 {
		return nil
	}
	keys := make([]string, 0, len(c.Run.Env))
	for k := range c.Run.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+c.Run.Env[k])
	}
	return env
}
