package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sgaunet/git-weblink/pkg/action"
	"github.com/sgaunet/git-weblink/pkg/config"
)

// Config fixtures for Load() tests.
const (
	validConfigYAML = `
host_mapping:
  work: github.com
  gitlab.internal.example: gitlab.example.com
remote: upstream
backend: go-git
query_timeout: 2s
default_action: clipboard
`

	validConfigTOML = `
remote = "upstream"
backend = "cli"
query_timeout = "1500ms"
default_action = "print"

[host_mapping]
work = "github.com"
"ssh.git.example.org" = "git.example.org"
`

	validConfigWithComments = `
# git-weblink configuration
host_mapping:
  # SSH alias from ~/.ssh/config
  work: github.com
`

	emptyYAML = ``

	malformedYAMLIndentation = `
host_mapping:
work: github.com
  other: gitlab.com
`

	malformedTOML = `
[host_mapping
work = "github.com"
`

	configInvalidBackend = `
backend: libgit2
`

	configInvalidTimeout = `
query_timeout: soon
`

	configNegativeTimeout = `
query_timeout: -5s
`

	configInvalidAction = `
default_action: email
`

	configEmptyMappingTarget = `
host_mapping:
  work: ""
`

	configMappingWithScheme = `
host_mapping:
  work: https://github.com
`
)

// writeConfig writes content to name in a temporary directory.
func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

// setupTestHome redirects $HOME and clears the path override.
func setupTestHome(t *testing.T) string {
	t.Helper()
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)
	t.Setenv(config.EnvConfigPath, "")
	return tmpHome
}

func TestLoad_ValidYAML(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "config.yml", validConfigYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Remote != "upstream" {
		t.Errorf("Remote = %q, want %q", cfg.Remote, "upstream")
	}
	if cfg.Backend != config.BackendGoGit {
		t.Errorf("Backend = %q, want %q", cfg.Backend, config.BackendGoGit)
	}
	if cfg.Timeout() != 2*time.Second {
		t.Errorf("Timeout() = %v, want 2s", cfg.Timeout())
	}
	if cfg.Sink() != action.SinkClipboard {
		t.Errorf("Sink() = %q, want clipboard", cfg.Sink())
	}
	if got := cfg.Mapping()["work"]; got != "github.com" {
		t.Errorf("Mapping()[work] = %q, want github.com", got)
	}
	if got := cfg.Mapping()["ssh.dev.azure.com"]; got != "dev.azure.com" {
		t.Errorf("built-in mapping lost, got %q", got)
	}
}

func TestLoad_ValidTOML(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "config.toml", validConfigTOML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Timeout() != 1500*time.Millisecond {
		t.Errorf("Timeout() = %v, want 1.5s", cfg.Timeout())
	}
	if cfg.Sink() != action.SinkPrint {
		t.Errorf("Sink() = %q, want print", cfg.Sink())
	}
	if got := cfg.HostMapping["ssh.git.example.org"]; got != "git.example.org" {
		t.Errorf("HostMapping = %v", cfg.HostMapping)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: emptyYAML},
		{name: "comments and mapping only", content: validConfigWithComments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(writeConfig(t, "config.yml", tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			def := config.Default()
			if cfg.Remote != def.Remote || cfg.Backend != def.Backend ||
				cfg.QueryTimeout != def.QueryTimeout || cfg.DefaultAction != def.DefaultAction {
				t.Errorf("defaults not applied: %+v", cfg)
			}
			if cfg.HostMapping == nil {
				t.Error("HostMapping is nil")
			}
		})
	}
}

func TestLoad_MissingFileIsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend != config.BackendCLI || cfg.Remote != "origin" || cfg.QueryTimeout != "5s" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
		wantMsg string
	}{
		{name: "malformed yaml", file: "config.yml", content: malformedYAMLIndentation, wantMsg: "failed to parse config file"},
		{name: "malformed toml", file: "config.toml", content: malformedTOML, wantMsg: "failed to parse config file"},
		{name: "invalid backend", file: "config.yml", content: configInvalidBackend, wantErr: config.ErrInvalidBackend},
		{name: "invalid timeout", file: "config.yml", content: configInvalidTimeout, wantErr: config.ErrInvalidTimeout},
		{name: "negative timeout", file: "config.yml", content: configNegativeTimeout, wantErr: config.ErrInvalidTimeout},
		{name: "invalid action", file: "config.yml", content: configInvalidAction, wantErr: config.ErrInvalidAction},
		{name: "empty mapping target", file: "config.yml", content: configEmptyMappingTarget, wantErr: config.ErrInvalidHostMapping},
		{name: "mapping with scheme", file: "config.yml", content: configMappingWithScheme, wantErr: config.ErrInvalidHostMapping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(writeConfig(t, tt.file, tt.content))
			if err == nil {
				t.Fatalf("Load() expected error, got config %+v", cfg)
			}
			if cfg != nil {
				t.Error("Load() returned a config with an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	home := setupTestHome(t)
	dir := filepath.Join(home, ".config", "git-weblink")

	got, err := config.FindConfigFile()
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if want := filepath.Join(dir, "config.yml"); got != want {
		t.Errorf("FindConfigFile() = %q, want %q when nothing exists", got, want)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(validConfigTOML), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	got, err = config.FindConfigFile()
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if want := filepath.Join(dir, "config.toml"); got != want {
		t.Errorf("FindConfigFile() = %q, want %q", got, want)
	}
}

func TestFindConfigFile_EnvOverride(t *testing.T) {
	setupTestHome(t)
	path := writeConfig(t, "custom.yml", validConfigYAML)
	t.Setenv(config.EnvConfigPath, path)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Remote != "upstream" {
		t.Errorf("env override not used, Remote = %q", cfg.Remote)
	}
}

func TestLoad_FromHome(t *testing.T) {
	home := setupTestHome(t)
	dir := filepath.Join(home, ".config", "git-weblink")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(validConfigYAML), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Backend != config.BackendGoGit {
		t.Errorf("Backend = %q, want go-git", cfg.Backend)
	}
}

func TestValidate_Default(t *testing.T) {
	if err := config.Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestFileSource_ReadsLiveMapping(t *testing.T) {
	path := writeConfig(t, "config.yml", "host_mapping:\n  work: github.com\n")
	source := config.NewFileSource(path)

	m, err := source.HostMapping()
	if err != nil {
		t.Fatalf("HostMapping() error = %v", err)
	}
	if m["work"] != "github.com" {
		t.Fatalf("HostMapping()[work] = %q, want github.com", m["work"])
	}

	if err := os.WriteFile(path, []byte("host_mapping:\n  work: gitlab.com\n"), 0o600); err != nil {
		t.Fatalf("Failed to rewrite config: %v", err)
	}

	m, err = source.HostMapping()
	if err != nil {
		t.Fatalf("HostMapping() error = %v", err)
	}
	if m["work"] != "gitlab.com" {
		t.Errorf("edit not picked up, HostMapping()[work] = %q", m["work"])
	}
}

func TestFileSource_BrokenFile(t *testing.T) {
	source := config.NewFileSource(writeConfig(t, "config.yml", malformedYAMLIndentation))

	if _, err := source.HostMapping(); err == nil {
		t.Error("HostMapping() expected error for malformed file")
	}
}
