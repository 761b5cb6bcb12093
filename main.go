// Package main provides the entry point for the git-weblink CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sgaunet/git-weblink/internal/container"
	"github.com/sgaunet/git-weblink/pkg/action"
)

var errTooManySinks = errors.New("--copy and --print cannot be used together")

var (
	logLevel   string
	configPath string
	backend    string
	remoteName string
	timeout    time.Duration
	copyURL    bool
	printURL   bool
)

var rootCmd = &cobra.Command{
	Use:   "git-weblink",
	Short: "Open or copy the web URL of a file or branch of a git repository",
	Long: `git-weblink turns a path inside a git working copy, with an optional line
range, into its URL on GitHub, GitLab, Bitbucket, Azure DevOps or a
self-hosted front end, then opens it in the browser, copies it to the
clipboard or prints it.

Remote hosts that are SSH aliases or enterprise domains can be mapped to
their web host in ~/.config/git-weblink/config.yml:

  host_mapping:
    work: github.com`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&logLevel, "log-level", "l", "info",
		"Set log level (debug, info, warn, error)")
	flags.StringVar(&configPath, "config", "",
		"Config file (default ~/.config/git-weblink/config.yml, or $GIT_WEBLINK_CONFIG)")
	flags.StringVar(&backend, "backend", "",
		"Repository query backend: cli or go-git (default from config, cli)")
	flags.StringVarP(&remoteName, "remote", "r", "",
		"Remote whose URL is used (default from config, origin)")
	flags.DurationVar(&timeout, "timeout", 0,
		"Timeout of each git query (default from config, 5s)")
	flags.BoolVarP(&copyURL, "copy", "c", false, "Copy the URL to the clipboard")
	flags.BoolVarP(&printURL, "print", "p", false, "Print the URL on stdout")

	rootCmd.AddCommand(newFileCmd(), newBranchCmd(), newParseCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildApp() (*container.App, error) {
	return container.Build(container.Options{
		ConfigPath: configPath,
		Backend:    backend,
		Remote:     remoteName,
		Timeout:    timeout,
		LogLevel:   logLevel,
	})
}

// sinkKind returns the sink selected by flags, or the configured default.
func sinkKind(app *container.App) (action.SinkKind, error) {
	switch {
	case copyURL && printURL:
		return "", errTooManySinks
	case copyURL:
		return action.SinkClipboard, nil
	case printURL:
		return action.SinkPrint, nil
	default:
		return app.Config.Sink(), nil
	}
}
