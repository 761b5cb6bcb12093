package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sgaunet/git-weblink/internal/timeutil"
)

// DefaultQueryTimeout bounds a single git invocation.
const DefaultQueryTimeout = 5 * time.Second

type runFunc func(ctx context.Context, dir string, args ...string) ([]byte, error)

// CLIQuerier answers repository queries by running the git binary.
// It is safe for concurrent use.
type CLIQuerier struct {
	binary  string
	timeout time.Duration
	run     runFunc
}

// NewCLIQuerier creates a querier that runs "git" from PATH. A non-positive
// timeout selects [DefaultQueryTimeout].
func NewCLIQuerier(timeout time.Duration) *CLIQuerier {
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}
	q := &CLIQuerier{binary: "git", timeout: timeout}
	q.run = q.execGit
	return q
}

// Timeout returns the per-query timeout.
func (q *CLIQuerier) Timeout() time.Duration {
	return q.timeout
}

// TopLevel runs `git rev-parse --show-toplevel`.
func (q *CLIQuerier) TopLevel(ctx context.Context, dir string) (string, error) {
	return q.single(ctx, queryTopLevel, dir, "rev-parse", "--show-toplevel")
}

// RemoteURL runs `git remote get-url -- <remote>`. The separator keeps a
// remote name starting with "-" from being read as an option.
func (q *CLIQuerier) RemoteURL(ctx context.Context, dir, remote string) (string, error) {
	return q.single(ctx, queryRemote, dir, "remote", "get-url", "--", remote)
}

// CurrentBranch runs `git symbolic-ref --short HEAD`, which fails on a
// detached HEAD.
func (q *CLIQuerier) CurrentBranch(ctx context.Context, dir string) (string, error) {
	return q.single(ctx, queryBranch, dir, "symbolic-ref", "--short", "HEAD")
}

// Branches lists local branches, most recently committed first.
func (q *CLIQuerier) Branches(ctx context.Context, dir string) ([]string, error) {
	out, err := q.query(ctx, queryBranches, dir,
		"for-each-ref", "--sort=-committerdate", "refs/heads/", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	return ParseBranchList(out), nil
}

// single runs a query whose empty output counts as a failure.
func (q *CLIQuerier) single(ctx context.Context, name, dir string, args ...string) (string, error) {
	out, err := q.query(ctx, name, dir, args...)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", &QueryError{Query: name, Err: errEmptyOutput}
	}
	return out, nil
}

func (q *CLIQuerier) query(ctx context.Context, name, dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, q.timeout)
	defer cancel()

	out, err := q.run(ctx, dir, args...)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &QueryError{
				Query: name,
				Err:   fmt.Errorf("%w after %s", errQueryTimeout, timeutil.FormatDuration(q.timeout)),
			}
		}
		return "", &QueryError{Query: name, Err: err}
	}
	return strings.TrimSpace(string(out)), nil
}

func (q *CLIQuerier) execGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	// #nosec G204 - arguments are fixed query flags and a remote name
	cmd := exec.CommandContext(ctx, q.binary, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}
