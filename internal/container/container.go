// Package container wires the application graph with dig.
package container

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sgaunet/bullets"
	"go.uber.org/dig"

	"github.com/sgaunet/git-weblink/internal/logger"
	"github.com/sgaunet/git-weblink/internal/ui"
	"github.com/sgaunet/git-weblink/pkg/action"
	"github.com/sgaunet/git-weblink/pkg/config"
	"github.com/sgaunet/git-weblink/pkg/git"
)

// Options are the command line overrides. Zero values defer to the
// configuration file.
type Options struct {
	ConfigPath string
	Backend    string
	Remote     string
	Timeout    time.Duration
	LogLevel   string
	Out        io.Writer // URL output of the print sink, stdout when nil
	Log        io.Writer // log output, stderr when nil
}

// App is the assembled application.
type App struct {
	Config  *config.Config
	Querier git.Querier
	Runner  *action.Runner
	Logger  *bullets.Logger
}

// Build registers all providers and resolves the App.
func Build(opts Options) (*App, error) {
	c := dig.New()
	if err := RegisterProviders(c, opts); err != nil {
		return nil, fmt.Errorf("failed to register providers: %w", err)
	}

	var app *App
	if err := c.Invoke(func(a *App) {
		app = a
	}); err != nil {
		return nil, dig.RootCause(err)
	}
	return app, nil
}

// RegisterProviders registers the constructors, bottom-up: logger and
// config, then the git backend, then the action collaborators.
func RegisterProviders(c *dig.Container, opts Options) error {
	providers := []any{
		func() Options { return opts },
		newLogger,
		loadConfig,
		newQuerier,
		newLocator,
		func(l *git.Locator) action.Resolver { return l },
		func() action.BranchPicker { return ui.NewBranchPicker() },
		func(o Options) action.HostMappingSource { return config.NewFileSource(o.ConfigPath) },
		newSinks,
		newRunner,
		newApp,
	}
	for _, p := range providers {
		if err := c.Provide(p); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(o Options) *bullets.Logger {
	w := o.Log
	if w == nil {
		w = os.Stderr
	}
	return logger.NewLoggerTo(w, o.LogLevel)
}

// loadConfig reads the config file and applies the command line options.
// A broken file degrades to the defaults with a warning; invalid options
// are an error.
func loadConfig(o Options, log *bullets.Logger) (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		log.Warn("Ignoring config file: " + err.Error())
		cfg = config.Default()
	}

	if o.Backend != "" {
		cfg.Backend = o.Backend
	}
	if o.Remote != "" {
		cfg.Remote = o.Remote
	}
	if o.Timeout > 0 {
		cfg.QueryTimeout = o.Timeout.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid option: %w", err)
	}

	log.Debug(fmt.Sprintf("Config - backend: %s, remote: %s, timeout: %s", cfg.Backend, cfg.Remote, cfg.QueryTimeout))
	return cfg, nil
}

func newQuerier(cfg *config.Config) git.Querier {
	if cfg.Backend == config.BackendGoGit {
		return git.NewGoGitQuerier()
	}
	return git.NewCLIQuerier(cfg.Timeout())
}

func newLocator(q git.Querier, cfg *config.Config, log *bullets.Logger) *git.Locator {
	l := git.NewLocator(q)
	l.SetRemote(cfg.Remote)
	l.SetLogger(log)
	return l
}

func newSinks(o Options) []action.Sink {
	out := o.Out
	if out == nil {
		out = os.Stdout
	}
	return ui.Sinks(out)
}

func newRunner(
	resolver action.Resolver,
	picker action.BranchPicker,
	mappings action.HostMappingSource,
	sinks []action.Sink,
	log *bullets.Logger,
) *action.Runner {
	r := action.NewRunner(resolver, picker, mappings, sinks...)
	r.SetLogger(log)
	return r
}

func newApp(cfg *config.Config, q git.Querier, r *action.Runner, log *bullets.Logger) *App {
	return &App{Config: cfg, Querier: q, Runner: r, Logger: log}
}
