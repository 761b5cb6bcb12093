package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/git-weblink/internal/logger"
	"github.com/sgaunet/git-weblink/internal/security"
	"golang.org/x/sync/errgroup"
)

// Locator resolves a file path into a [RepositoryContext].
type Locator struct {
	querier Querier
	remote  string
	log     *bullets.Logger
}

// NewLocator creates a locator reading the "origin" remote through q.
func NewLocator(q Querier) *Locator {
	return &Locator{
		querier: q,
		remote:  DefaultRemote,
		log:     logger.NoLogger(),
	}
}

// SetLogger sets the logger for the locator.
func (l *Locator) SetLogger(logger *bullets.Logger) {
	l.log = logger
}

// SetRemote selects the remote whose URL is resolved. Empty keeps the current one.
func (l *Locator) SetRemote(name string) {
	if name != "" {
		l.remote = name
	}
}

// Resolve finds the repository containing path and reads its root, remote URL
// and current branch. The three queries run concurrently; if any of them fails
// the result is nil and the error wraps [ErrNotAGitRepository].
//
// The queries run from the parent directory of path, or from path itself when
// it is a directory. path does not need to exist.
func (l *Locator) Resolve(ctx context.Context, path string) (*RepositoryContext, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errNotAGitRepository, err)
	}
	dir := workingDir(absPath)
	l.log.Debug("Resolving repository from " + dir)

	var root, remoteURL, branch string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var qerr error
		root, qerr = l.querier.TopLevel(gctx, dir)
		return qerr
	})
	g.Go(func() error {
		var qerr error
		remoteURL, qerr = l.querier.RemoteURL(gctx, dir, l.remote)
		return qerr
	})
	g.Go(func() error {
		var qerr error
		branch, qerr = l.querier.CurrentBranch(gctx, dir)
		return qerr
	})

	if err := g.Wait(); err != nil {
		l.log.Debug("Repository resolution failed: " + security.SanitizeError(err).Error())
		return nil, fmt.Errorf("%w: %w", errNotAGitRepository, err)
	}

	rel, err := relativePath(root, absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errNotAGitRepository, err)
	}

	security.DebugRemote(l.log, l.remote, remoteURL)
	l.log.Debug(fmt.Sprintf("Repository resolved - root: %s, branch: %s, path: %s", root, branch, rel))

	return &RepositoryContext{
		RemoteURL:        remoteURL,
		Branch:           branch,
		RelativeFilePath: rel,
		RepoRoot:         root,
	}, nil
}

// ListBranches lists the local branches of the repository containing dir.
// A failed query wraps [ErrBranchEnumeration]; an empty list is a valid result.
func (l *Locator) ListBranches(ctx context.Context, dir string) ([]string, error) {
	branches, err := l.querier.Branches(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBranchEnumeration, err)
	}
	l.log.Debug(fmt.Sprintf("Branches listed, count: %d", len(branches)))
	return branches, nil
}

func workingDir(absPath string) string {
	if info, err := os.Stat(absPath); err == nil && info.IsDir() {
		return absPath
	}
	return filepath.Dir(absPath)
}

// relativePath returns target relative to root with forward slashes. Both
// sides have symlinks resolved first, since git reports the physical root.
func relativePath(root, target string) (string, error) {
	rel, err := filepath.Rel(resolveSymlinks(root), resolveSymlinks(target))
	if err != nil {
		return "", fmt.Errorf("failed to compute relative path: %w", err)
	}

	rel = filepath.ToSlash(rel)
	if rel == "." {
		return "", nil
	}
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%w: %s", errOutsideRepository, target)
	}
	return rel, nil
}

// resolveSymlinks evaluates symlinks in p. A path that does not exist keeps
// its base name and has only its parent resolved.
func resolveSymlinks(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	if parent, err := filepath.EvalSymlinks(filepath.Dir(p)); err == nil {
		return filepath.Join(parent, filepath.Base(p))
	}
	return filepath.Clean(p)
}
