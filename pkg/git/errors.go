package git

import (
	"errors"
	"fmt"
)

// Error definitions for repository queries.
var (
	errNotAGitRepository = errors.New("not a git repository")
	errBranchEnumeration = errors.New("failed to enumerate branches")
	errQueryTimeout      = errors.New("git query timed out")
	errEmptyOutput       = errors.New("git query returned no output")
	errDetachedHead      = errors.New("HEAD is not pointing to a branch")
	errNoRemoteURL       = errors.New("no URLs found for remote")
	errOutsideRepository = errors.New("path is outside the repository")

	// ErrNotAGitRepository is returned by [Locator.Resolve] when any query fails.
	ErrNotAGitRepository = errNotAGitRepository
	// ErrBranchEnumeration is returned by [Locator.ListBranches] when the branch query fails.
	ErrBranchEnumeration = errBranchEnumeration
	// ErrQueryTimeout is wrapped by a [QueryError] when a query exceeds its timeout.
	ErrQueryTimeout = errQueryTimeout
	// ErrDetachedHead is wrapped by a [QueryError] when HEAD is not a branch.
	ErrDetachedHead = errDetachedHead
)

// QueryError reports which repository query failed.
type QueryError struct {
	Query string // "toplevel", "remote", "branch" or "branches"
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("git %s query failed: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

const (
	queryTopLevel = "toplevel"
	queryRemote   = "remote"
	queryBranch   = "branch"
	queryBranches = "branches"
)
