package action

import (
	"context"

	"github.com/sgaunet/git-weblink/pkg/git"
	"github.com/sgaunet/git-weblink/pkg/weburl"
)

// Resolver locates the repository of a path. [git.Locator] implements it.
type Resolver interface {
	Resolve(ctx context.Context, path string) (*git.RepositoryContext, error)
	ListBranches(ctx context.Context, dir string) ([]string, error)
}

// BranchPicker lets the user choose one branch. Returning
// [ErrSelectionCancelled] ends the action silently.
type BranchPicker interface {
	PickBranch(branches []string, current string) (string, error)
}

// Sink receives the generated URL.
type Sink interface {
	// Kind is the sink identity used to select it.
	Kind() SinkKind
	// Deliver hands the URL over (browser, clipboard, stdout).
	Deliver(url string) error
	// Action names the attempt in failure messages, e.g. "opening browser".
	Action() string
	// SuccessMessage is logged after a successful delivery.
	SuccessMessage(url string) string
}

// HostMappingSource provides the live user host mapping. It is queried on
// every run.
type HostMappingSource interface {
	HostMapping() (weburl.HostMapping, error)
}
