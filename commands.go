package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgaunet/git-weblink/internal/logger"
	"github.com/sgaunet/git-weblink/pkg/action"
	"github.com/sgaunet/git-weblink/pkg/config"
	"github.com/sgaunet/git-weblink/pkg/weburl"
)

type targetFlags struct {
	branch     string
	pickBranch bool
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.branch, "branch", "b", "", "Link to this branch instead of the current one")
	cmd.Flags().BoolVar(&f.pickBranch, "pick-branch", false, "Choose the branch from the local branches, most recent first")
	cmd.MarkFlagsMutuallyExclusive("branch", "pick-branch")
}

func newFileCmd() *cobra.Command {
	var (
		flags targetFlags
		lines string
	)

	cmd := &cobra.Command{
		Use:   "file [PATH[:LINE[-END]]]",
		Short: "Link to a file, optionally at a line or line range",
		Example: `  git-weblink file src/index.ts:42
  git-weblink file -p src/index.ts --line 10-20
  git-weblink file -c --pick-branch README.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, selection := splitPathArg(args)
			if lines != "" {
				parsed, err := weburl.ParseLineSpec(lines)
				if err != nil {
					return err
				}
				selection = parsed
			}

			return run(cmd, action.Request{
				Path:       path,
				Lines:      selection,
				Target:     action.TargetFile,
				Branch:     flags.branch,
				PickBranch: flags.pickBranch,
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&lines, "line", "L", "", "Line or range to highlight, e.g. 42 or 10-20")
	return cmd
}

func newBranchCmd() *cobra.Command {
	var flags targetFlags

	cmd := &cobra.Command{
		Use:   "branch [PATH]",
		Short: "Link to the branch of the repository containing PATH",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			return run(cmd, action.Request{
				Path:       path,
				Target:     action.TargetBranch,
				Branch:     flags.branch,
				PickBranch: flags.pickBranch,
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse REMOTE",
		Short: "Show how a remote URL is understood",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				logger.NewLoggerTo(cmd.ErrOrStderr(), logLevel).Warn("Ignoring config file: " + err.Error())
				cfg = config.Default()
			}

			d := weburl.ParseRemote(args[0], cfg.Mapping())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "host:   %s\n", d.Host)
			fmt.Fprintf(out, "owner:  %s\n", d.Owner)
			fmt.Fprintf(out, "repo:   %s\n", d.Repo)
			fmt.Fprintf(out, "family: %s\n", d.Family())
			if !d.Usable() {
				return action.ErrURLIndeterminate
			}
			return nil
		},
	}
}

func run(cmd *cobra.Command, req action.Request) error {
	app, err := buildApp()
	if err != nil {
		return err
	}

	req.Sink, err = sinkKind(app)
	if err != nil {
		return err
	}

	res, err := app.Runner.Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	if res.Cancelled {
		app.Logger.Debug("Cancelled")
	}
	return nil
}

// splitPathArg returns the path argument and a line suffix, if any. An
// argument naming an existing file is never split.
func splitPathArg(args []string) (string, *weburl.LineRange) {
	if len(args) == 0 {
		return ".", nil
	}
	if _, err := os.Stat(args[0]); err == nil {
		return args[0], nil
	}
	return weburl.SplitLocation(args[0])
}
