package git_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const testRemoteURL = "git@github.com:acme/widgets.git"

// testRepo is a go-git repository in a temporary directory with an origin
// remote and HEAD on "main".
type testRepo struct {
	dir  string
	repo *gogit.Repository
}

func newTestRepo(t *testing.T) *testRepo {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("Failed to initialize git repository: %v", err)
	}

	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("main"))
	if err := repo.Storer.SetReference(head); err != nil {
		t.Fatalf("Failed to point HEAD at main: %v", err)
	}

	_, err = repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{testRemoteURL},
	})
	if err != nil {
		t.Fatalf("Failed to create remote origin: %v", err)
	}

	return &testRepo{dir: dir, repo: repo}
}

// commit writes name and commits it on the current branch at when.
func (r *testRepo) commit(t *testing.T, name string, when time.Time) plumbing.Hash {
	t.Helper()

	path := filepath.Join(r.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(name+"\n"), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	if _, err := wt.Add(name); err != nil {
		t.Fatalf("Failed to add %s: %v", name, err)
	}

	hash, err := wt.Commit("add "+name, &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test Developer", Email: "test@example.com", When: when},
	})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	return hash
}

// branch creates a local branch pointing at hash without checking it out.
func (r *testRepo) branch(t *testing.T, name string, hash plumbing.Hash) {
	t.Helper()
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), hash)
	if err := r.repo.Storer.SetReference(ref); err != nil {
		t.Fatalf("Failed to create branch %s: %v", name, err)
	}
}

// detach points HEAD directly at hash.
func (r *testRepo) detach(t *testing.T, hash plumbing.Hash) {
	t.Helper()
	if err := r.repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, hash)); err != nil {
		t.Fatalf("Failed to detach HEAD: %v", err)
	}
}

func realPath(t *testing.T, p string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		t.Fatalf("Failed to resolve %s: %v", p, err)
	}
	return resolved
}

var baseTime = time.Date(2025, 1, 11, 10, 0, 0, 0, time.UTC)
