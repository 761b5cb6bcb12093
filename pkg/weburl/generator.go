package weburl

import (
	"strings"

	"github.com/sgaunet/git-weblink/pkg/git"
	"github.com/sgaunet/git-weblink/pkg/platform"
)

// TargetRequest is what to link to.
type TargetRequest struct {
	Context *git.RepositoryContext
	// LineRange selects lines of the file. Nil means no anchor.
	LineRange *LineRange
	// IncludeFilePath false links to the branch instead of the file.
	IncludeFilePath bool
	// BranchOverride, when non-empty, replaces Context.Branch.
	BranchOverride string
}

// Branch returns the branch the URL will point at.
func (r TargetRequest) Branch() string {
	if r.BranchOverride != "" {
		return r.BranchOverride
	}
	if r.Context == nil {
		return ""
	}
	return r.Context.Branch
}

// Generate returns the web URL for req, or "" when the remote does not
// yield a host and a repository name. It never fails otherwise: unknown
// hosts get the generic grammar.
//
// A tree URL is produced when IncludeFilePath is false or the file is the
// repository root. The line anchor is only ever appended to a blob URL.
// An End that does not lie after Start is treated as absent; reversed
// selections are the caller's to order.
func Generate(req TargetRequest, mapping HostMapping) string {
	if req.Context == nil {
		return ""
	}

	remote := ParseRemote(req.Context.RemoteURL, mapping)
	if !remote.Usable() {
		return ""
	}

	loc := platform.Location{
		Host:   remote.Host,
		Owner:  remote.Owner,
		Repo:   remote.Repo,
		Branch: req.Branch(),
		Path:   strings.Trim(req.Context.RelativeFilePath, "/"),
	}
	grammar := platform.Lookup(remote.Family())

	if !req.IncludeFilePath || loc.Path == "" {
		return grammar.Tree(loc)
	}

	u := grammar.Blob(loc)
	if req.LineRange != nil {
		u += grammar.Anchor(req.LineRange.Start, req.LineRange.End)
	}
	return u
}
