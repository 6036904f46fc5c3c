package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()

	content := `root: /home/u/geet
upstream: enfabrica/internal
ghuser: jonathan
fix_commands:
  - gofmt -w .
  - buildifier -r .
`
	path := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "/home/u/geet", cfg.Root)
	assert.Equal(t, "enfabrica/internal", cfg.Upstream)
	assert.Equal(t, "jonathan", cfg.GHUser)
	assert.Equal(t, []string{"gofmt -w .", "buildifier -r ."}, cfg.FixCommands)
	assert.Equal(t, DefaultMainCandidates, cfg.MainCandidates)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestConfig_RepoName(t *testing.T) {
	cfg := &Config{Upstream: "enfabrica/internal"}
	assert.Equal(t, "internal", cfg.RepoName())

	cfg = &Config{Upstream: "internal"}
	assert.Equal(t, "internal", cfg.RepoName())
}

func TestConfig_BranchDir(t *testing.T) {
	cfg := &Config{Root: "/home/u/geet", Upstream: "enfabrica/internal"}

	assert.Equal(t, "/home/u/geet/internal/my_feature", cfg.BranchDir("my_feature"))
	assert.Equal(t, "/home/u/geet/internal", cfg.RepoDir())
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	// Point the user config dir somewhere empty so a developer's real
	// config cannot leak into the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()

	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Root)
	assert.Equal(t, DefaultMainCandidates, cfg.MainCandidates)
	assert.Empty(t, cfg.Upstream)
}
