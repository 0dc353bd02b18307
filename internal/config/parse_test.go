package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_valid(t *testing.T) {
	data := []byte(`
version: 1
watch: [CMakeLists.txt, app.cpp]
output_dir: logs
output_prefix: run
remote: upstream
branch: trunk
push: false
identity:
  name: Builder
run:
  args: ["--once"]
  env:
    AUTOCOMMIT_NONINTERACTIVE: "1"
  timeout: 30s
`)
	c, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"CMakeLists.txt", "app.cpp"}, c.Watch)
	assert.Equal(t, "logs", c.OutputDir)
	assert.Equal(t, "run", c.OutputPrefix)
	assert.Equal(t, "upstream", c.Remote)
	assert.Equal(t, "trunk", c.Branch)
	assert.False(t, c.PushEnabled())
	assert.Equal(t, "Builder", c.Identity.Name)
	assert.Equal(t, DefaultAuthorEmail, c.Identity.Email)
	assert.Equal(t, []string{"--once"}, c.Run.Args)
	assert.Equal(t, 30*time.Second, c.Run.Timeout)
	assert.Equal(t, []string{"AUTOCOMMIT_NONINTERACTIVE=1"}, c.RunEnv())
	assert.Equal(t, DefaultCounterFile, c.CounterFile)
	assert.Equal(t, DefaultIgnore, c.Ignore)
}

func TestParse_defaultsWhenOmitted(t *testing.T) {
	c, err := Parse([]byte("version: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.True(t, c.PushEnabled())
	assert.Nil(t, c.RunEnv())
}

func TestParse_explicitEmptyWatch(t *testing.T) {
	c, err := Parse([]byte("version: 1\nwatch: []\n"))
	require.NoError(t, err)
	assert.NotNil(t, c.Watch)
	assert.Empty(t, c.Watch)
}

func TestParse_invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing version", "watch: [a]\n"},
		{"wrong version", "version: 2\n"},
		{"absolute watch", "version: 1\nwatch: [/etc/passwd]\n"},
		{"escaping watch", "version: 1\nwatch: [../outside]\n"},
		{"escaping output_dir", "version: 1\noutput_dir: ../out\n"},
		{"prefix with separator", "version: 1\noutput_prefix: a/b\n"},
		{"branch as ref", "version: 1\nbranch: refs/heads/main\n"},
		{"negative timeout", "version: 1\nrun:\n  timeout: -1s\n"},
		{"bad env key", "version: 1\nrun:\n  env:\n    \"A=B\": x\n"},
		{"not yaml", ":::invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_missingFileGivesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	c := Default()
	c.Watch = []string{"main.c"}
	c.Run.Timeout = time.Minute
	c.Run.Env = map[string]string{"B": "2", "A": "1"}

	require.NoError(t, Save(path, c))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
	assert.Equal(t, []string{"A=1", "B=2"}, loaded.RunEnv())
}

func TestSave_rejectsInvalid(t *testing.T) {
	c := Default()
	c.Version = 0
	assert.Error(t, Save(filepath.Join(t.TempDir(), FileName), c))
}
