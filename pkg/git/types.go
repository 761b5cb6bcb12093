// Package git locates the repository that contains a file and reads the
// facts needed to link to it: repository root, remote URL and current
// branch. It only reads; nothing here writes to a repository.
//
// Two [Querier] backends are provided. [CLIQuerier] shells out to the git
// binary with a bounded timeout per query, [GoGitQuerier] reads the
// repository in process with go-git. The [Locator] runs the queries and
// assembles a [RepositoryContext].
package git

import "context"

// DefaultRemote is the remote whose URL is used when none is configured.
const DefaultRemote = "origin"

// RepositoryContext describes one file in one repository snapshot. It is
// built fresh for every action and never mutated afterwards.
type RepositoryContext struct {
	RemoteURL        string // raw URL of the remote, as configured
	Branch           string // short name of the checked out branch
	RelativeFilePath string // forward-slash path from RepoRoot; "" for the root itself
	RepoRoot         string // absolute path of the working tree root
}

// Querier runs the read-only repository queries. Every method reports a
// failure for a missing repository, remote or branch; callers do not
// distinguish why a query failed.
type Querier interface {
	// TopLevel returns the absolute working tree root containing dir.
	TopLevel(ctx context.Context, dir string) (string, error)
	// RemoteURL returns the first URL of the named remote.
	RemoteURL(ctx context.Context, dir, remote string) (string, error)
	// CurrentBranch returns the short name of the checked out branch.
	// A detached HEAD is a failure.
	CurrentBranch(ctx context.Context, dir string) (string, error)
	// Branches lists local branch names. An empty list is not a failure.
	Branches(ctx context.Context, dir string) ([]string, error)
}
