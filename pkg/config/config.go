// Package config handles loading and validation of user configuration.
//
// The configuration file is optional. It is looked up in
// ~/.config/git-weblink/ as config.yml, config.yaml or config.toml, unless
// GIT_WEBLINK_CONFIG or an explicit path names another file. A missing file
// yields [Default].
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sgaunet/git-weblink/pkg/action"
	"github.com/sgaunet/git-weblink/pkg/git"
	"github.com/sgaunet/git-weblink/pkg/weburl"
)

// EnvConfigPath overrides the configuration file location.
const EnvConfigPath = "GIT_WEBLINK_CONFIG"

// Query backends.
const (
	BackendCLI   = "cli"
	BackendGoGit = "go-git"
)

const appDir = "git-weblink"

var configNames = []string{"config.yml", "config.yaml", "config.toml"}

var (
	errInvalidBackend     = errors.New("backend must be \"cli\" or \"go-git\"")
	errInvalidTimeout     = errors.New("query_timeout must be a positive duration")
	errInvalidHostMapping = errors.New("invalid host_mapping entry")
	errInvalidAction      = errors.New("default_action must be \"browser\", \"clipboard\" or \"print\"")

	// Exported validation errors.
	ErrInvalidBackend     = errInvalidBackend
	ErrInvalidTimeout     = errInvalidTimeout
	ErrInvalidHostMapping = errInvalidHostMapping
	ErrInvalidAction      = errInvalidAction
)

// Config represents the complete configuration for git-weblink.
type Config struct {
	// HostMapping maps raw remote hosts (or SSH aliases) to web hosts.
	HostMapping   map[string]string `yaml:"host_mapping" toml:"host_mapping"`
	Remote        string            `yaml:"remote" toml:"remote"`
	Backend       string            `yaml:"backend" toml:"backend"`
	QueryTimeout  string            `yaml:"query_timeout" toml:"query_timeout"`
	DefaultAction string            `yaml:"default_action" toml:"default_action"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		HostMapping:   map[string]string{},
		Remote:        git.DefaultRemote,
		Backend:       BackendCLI,
		QueryTimeout:  git.DefaultQueryTimeout.String(),
		DefaultAction: string(action.SinkBrowser),
	}
}

// Dir returns the configuration directory, ~/.config/git-weblink.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", appDir), nil
}

// FindConfigFile returns the configuration file path. The environment
// override wins; otherwise the first existing candidate in [Dir] is
// returned, or config.yml when none exists.
func FindConfigFile() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	dir, err := Dir()
	if err != nil {
		return "", err
	}
	for _, name := range configNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return filepath.Join(dir, configNames[0]), nil
}

// Load reads, parses and validates the configuration at path. An empty path
// means [FindConfigFile]. A file that does not exist yields [Default].
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			return nil, err
		}
		path = found
	}

	// #nosec G304 - reading a user chosen config file is intentional
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.HostMapping == nil {
		c.HostMapping = def.HostMapping
	}
	if c.Remote == "" {
		c.Remote = def.Remote
	}
	if c.Backend == "" {
		c.Backend = def.Backend
	}
	if c.QueryTimeout == "" {
		c.QueryTimeout = def.QueryTimeout
	}
	if c.DefaultAction == "" {
		c.DefaultAction = def.DefaultAction
	}
}

// Validate checks backend, timeout, default action and host mapping entries.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendCLI, BackendGoGit:
	default:
		return fmt.Errorf("%w, got %q", errInvalidBackend, c.Backend)
	}

	d, err := time.ParseDuration(c.QueryTimeout)
	if err != nil || d <= 0 {
		return fmt.Errorf("%w, got %q", errInvalidTimeout, c.QueryTimeout)
	}

	if _, err := action.ParseSinkKind(c.DefaultAction); err != nil {
		return fmt.Errorf("%w, got %q", errInvalidAction, c.DefaultAction)
	}

	for raw, canonical := range c.HostMapping {
		switch {
		case strings.TrimSpace(raw) == "":
			return fmt.Errorf("%w: empty host for %q", errInvalidHostMapping, canonical)
		case strings.TrimSpace(canonical) == "":
			return fmt.Errorf("%w: empty target for %q", errInvalidHostMapping, raw)
		case strings.Contains(canonical, "/"):
			return fmt.Errorf("%w: target for %q must be a bare host, got %q", errInvalidHostMapping, raw, canonical)
		}
	}

	return nil
}

// Timeout returns the parsed query timeout. Call it on a validated config.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.QueryTimeout)
	if err != nil || d <= 0 {
		return git.DefaultQueryTimeout
	}
	return d
}

// Mapping returns the user host mapping merged over the built-in defaults.
func (c *Config) Mapping() weburl.HostMapping {
	return weburl.MergeHostMapping(c.HostMapping)
}

// Sink returns the configured default result sink.
func (c *Config) Sink() action.SinkKind {
	kind, err := action.ParseSinkKind(c.DefaultAction)
	if err != nil {
		return action.SinkBrowser
	}
	return kind
}
