// Package config loads geet's user configuration and defines the process
// exit codes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Exit codes
const (
	ExitSuccess = iota
	ExitGeneralError
	ExitUsageError
	ExitConfigurationError
	ExitAborted
)

// DefaultMainCandidates is tried in order when looking for the repo's top of
// tree; repos still transitioning from "master" keep working.
var DefaultMainCandidates = []string{"main", "master"}

// Config is geet's user configuration, read from
// ~/.config/geet/config.yaml and overridable via GEET_* env vars.
type Config struct {
	// Root is the directory all branch worktrees live under; every branch
	// directory is <root>/<repo>/<branch>.
	Root string `mapstructure:"root"`

	// Upstream is the original "owner/repo" we forked.
	Upstream string `mapstructure:"upstream"`

	// GHUser is the user's github name; their fork is <ghuser>/<repo>.
	GHUser string `mapstructure:"ghuser"`

	// MainCandidates are tried in order when finding top of tree.
	MainCandidates []string `mapstructure:"main_candidates"`

	// FixCommands are run in order by "geet fix" (formatters and the like).
	FixCommands []string `mapstructure:"fix_commands"`

	// Verbose raises the log level to debug.
	Verbose bool `mapstructure:"verbose"`
}

// Load reads the config file if present and applies environment overrides.
// A missing file is fine; defaults carry a usable setup for everything
// except Upstream and GHUser, which init validates when it needs them.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "geet"))
	}
	v.SetEnvPrefix("GEET")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	home, _ := os.UserHomeDir()
	v.SetDefault("root", filepath.Join(home, "geet"))
	v.SetDefault("main_candidates", DefaultMainCandidates)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg, err := decode(v.AllSettings())
	if err != nil {
		return nil, err
	}

	// Env-only values do not show up in AllSettings.
	if s := v.GetString("root"); s != "" {
		cfg.Root = s
	}
	if s := v.GetString("upstream"); s != "" {
		cfg.Upstream = s
	}
	if s := v.GetString("ghuser"); s != "" {
		cfg.GHUser = s
	}
	cfg.Verbose = cfg.Verbose || v.GetBool("verbose")

	return cfg, nil
}

// LoadFile reads an explicit config file; used by tests and GEET_CONFIG.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("main_candidates", DefaultMainCandidates)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return decode(v.AllSettings())
}

func decode(settings map[string]any) (*Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(settings); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// RepoName returns the bare repo name from the "owner/repo" upstream.
func (c *Config) RepoName() string {
	_, repo, found := strings.Cut(c.Upstream, "/")
	if !found {
		return c.Upstream
	}
	return repo
}

// BranchDir returns the worktree directory for a branch:
// <root>/<repo>/<branch>.
func (c *Config) BranchDir(branch string) string {
	return filepath.Join(c.Root, c.RepoName(), branch)
}

// RepoDir returns the directory holding all of the repo's worktrees.
func (c *Config) RepoDir() string {
	return filepath.Join(c.Root, c.RepoName())
}
