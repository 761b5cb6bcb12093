package git

import (
	"context"
	"fmt"
	"sort"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GoGitQuerier answers repository queries in process with go-git, for
// machines without a git binary. Queries are local reads and return quickly,
// so the context is only checked before each query starts.
type GoGitQuerier struct{}

// NewGoGitQuerier creates a go-git backed querier.
func NewGoGitQuerier() *GoGitQuerier {
	return &GoGitQuerier{}
}

// TopLevel returns the root of the working tree that contains dir.
func (q *GoGitQuerier) TopLevel(ctx context.Context, dir string) (string, error) {
	repo, err := q.open(ctx, queryTopLevel, dir)
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", &QueryError{Query: queryTopLevel, Err: fmt.Errorf("failed to get worktree: %w", err)}
	}

	return worktree.Filesystem.Root(), nil
}

// RemoteURL returns the first configured URL of the named remote.
func (q *GoGitQuerier) RemoteURL(ctx context.Context, dir, remote string) (string, error) {
	repo, err := q.open(ctx, queryRemote, dir)
	if err != nil {
		return "", err
	}

	r, err := repo.Remote(remote)
	if err != nil {
		return "", &QueryError{Query: queryRemote, Err: fmt.Errorf("failed to get remote %s: %w", remote, err)}
	}

	urls := r.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return "", &QueryError{Query: queryRemote, Err: fmt.Errorf("%w %s", errNoRemoteURL, remote)}
	}

	return urls[0], nil
}

// CurrentBranch reads HEAD without resolving it, so a freshly initialized
// repository without commits still reports its branch.
func (q *GoGitQuerier) CurrentBranch(ctx context.Context, dir string) (string, error) {
	repo, err := q.open(ctx, queryBranch, dir)
	if err != nil {
		return "", err
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", &QueryError{Query: queryBranch, Err: fmt.Errorf("failed to get HEAD reference: %w", err)}
	}

	if head.Type() != plumbing.SymbolicReference || !head.Target().IsBranch() {
		return "", &QueryError{Query: queryBranch, Err: errDetachedHead}
	}

	return head.Target().Short(), nil
}

// Branches lists local branches ordered by tip commit time, newest first.
// Branches whose tip cannot be read sort last, by name.
func (q *GoGitQuerier) Branches(ctx context.Context, dir string) ([]string, error) {
	repo, err := q.open(ctx, queryBranches, dir)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Branches()
	if err != nil {
		return nil, &QueryError{Query: queryBranches, Err: fmt.Errorf("failed to list branches: %w", err)}
	}
	defer iter.Close()

	type branchTip struct {
		name string
		when time.Time
	}

	var tips []branchTip
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tip := branchTip{name: ref.Name().Short()}
		if commit, commitErr := repo.CommitObject(ref.Hash()); commitErr == nil {
			tip.when = commit.Committer.When
		}
		tips = append(tips, tip)
		return nil
	})
	if err != nil {
		return nil, &QueryError{Query: queryBranches, Err: fmt.Errorf("failed to iterate branches: %w", err)}
	}

	sort.SliceStable(tips, func(i, j int) bool {
		if !tips[i].when.Equal(tips[j].when) {
			return tips[i].when.After(tips[j].when)
		}
		return tips[i].name < tips[j].name
	})

	branches := make([]string, len(tips))
	for i, tip := range tips {
		branches[i] = tip.name
	}
	return branches, nil
}

func (q *GoGitQuerier) open(ctx context.Context, query, dir string) (*gogit.Repository, error) {
	if err := ctx.Err(); err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &QueryError{Query: query, Err: fmt.Errorf("failed to open git repository: %w", err)}
	}
	return repo, nil
}
