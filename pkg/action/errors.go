package action

import (
	"errors"
	"fmt"
)

// Error definitions surfaced at the action boundary.
var (
	errRepositoryInfo     = errors.New("failed to get repository information")
	errURLIndeterminate   = errors.New("could not determine web URL for this repository")
	errSelectionCancelled = errors.New("selection cancelled")
	errUnknownSink        = errors.New("unknown result sink")
	errNoBranches         = errors.New("no local branches found")
	errNoPicker           = errors.New("no branch picker configured")

	// ErrRepositoryInfo is returned when the repository cannot be resolved.
	// It does not say why: no repository, no remote and detached HEAD all
	// look the same to the user.
	ErrRepositoryInfo = errRepositoryInfo
	// ErrURLIndeterminate is returned when the remote yields no usable URL.
	ErrURLIndeterminate = errURLIndeterminate
	// ErrSelectionCancelled is returned by a [BranchPicker] the user dismissed.
	ErrSelectionCancelled = errSelectionCancelled
	// ErrUnknownSink is returned when no sink is registered for a kind.
	ErrUnknownSink = errUnknownSink
	// ErrNoBranches is returned when a branch pick is requested in a
	// repository without local branches.
	ErrNoBranches = errNoBranches
)

// SinkError reports a failed delivery of a generated URL.
type SinkError struct {
	Action string // "opening browser", "copying to clipboard", ...
	URL    string
	Err    error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("error %s: %v", e.Action, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
