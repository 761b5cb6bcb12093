package git_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgaunet/git-weblink/pkg/git"
)

func TestGoGitQuerier_TopLevelFromSubdirectory(t *testing.T) {
	r := newTestRepo(t)
	nested := filepath.Join(r.dir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("Failed to create nested directories: %v", err)
	}

	root, err := git.NewGoGitQuerier().TopLevel(context.Background(), nested)
	require.NoError(t, err)
	assert.Equal(t, realPath(t, r.dir), realPath(t, root))
}

func TestGoGitQuerier_RemoteURL(t *testing.T) {
	r := newTestRepo(t)
	q := git.NewGoGitQuerier()

	remote, err := q.RemoteURL(context.Background(), r.dir, "origin")
	require.NoError(t, err)
	assert.Equal(t, testRemoteURL, remote)

	_, err = q.RemoteURL(context.Background(), r.dir, "upstream")
	require.Error(t, err)

	var qerr *git.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "remote", qerr.Query)
}

func TestGoGitQuerier_CurrentBranch(t *testing.T) {
	r := newTestRepo(t)
	q := git.NewGoGitQuerier()

	// an unborn branch still has a name
	branch, err := q.CurrentBranch(context.Background(), r.dir)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)

	r.commit(t, "a.go", baseTime)
	branch, err = q.CurrentBranch(context.Background(), r.dir)
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestGoGitQuerier_DetachedHead(t *testing.T) {
	r := newTestRepo(t)
	r.detach(t, r.commit(t, "a.go", baseTime))

	_, err := git.NewGoGitQuerier().CurrentBranch(context.Background(), r.dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, git.ErrDetachedHead)
}

func TestGoGitQuerier_BranchesNewestFirst(t *testing.T) {
	r := newTestRepo(t)
	oldest := r.commit(t, "one.go", baseTime)
	r.branch(t, "oldest", oldest)
	middle := r.commit(t, "two.go", baseTime.Add(time.Hour))
	r.branch(t, "b-middle", middle)
	r.branch(t, "a-middle", middle)
	r.commit(t, "three.go", baseTime.Add(2*time.Hour))

	branches, err := git.NewGoGitQuerier().Branches(context.Background(), r.dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "a-middle", "b-middle", "oldest"}, branches)
}

func TestGoGitQuerier_BranchesEmptyRepository(t *testing.T) {
	r := newTestRepo(t)

	branches, err := git.NewGoGitQuerier().Branches(context.Background(), r.dir)
	require.NoError(t, err)
	assert.Empty(t, branches)
}

func TestGoGitQuerier_NotARepository(t *testing.T) {
	dir := t.TempDir()
	q := git.NewGoGitQuerier()

	tests := []struct {
		name  string
		query func() error
	}{
		{name: "toplevel", query: func() error { _, err := q.TopLevel(context.Background(), dir); return err }},
		{name: "remote", query: func() error { _, err := q.RemoteURL(context.Background(), dir, "origin"); return err }},
		{name: "branch", query: func() error { _, err := q.CurrentBranch(context.Background(), dir); return err }},
		{name: "branches", query: func() error { _, err := q.Branches(context.Background(), dir); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query()
			require.Error(t, err)

			var qerr *git.QueryError
			require.True(t, errors.As(err, &qerr), "expected QueryError, got %T", err)
			assert.Equal(t, tt.name, qerr.Query)
		})
	}
}

func TestGoGitQuerier_CancelledContext(t *testing.T) {
	r := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := git.NewGoGitQuerier().TopLevel(ctx, r.dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
