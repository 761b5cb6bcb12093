// Package action runs one user action end to end: resolve the repository,
// optionally pick a branch, generate the URL and hand it to a sink.
//
// Every failure is converted here into one of the user-facing errors of
// this package. Cancelling the branch picker is not a failure.
package action

import (
	"context"
	"errors"
	"fmt"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/git-weblink/internal/logger"
	"github.com/sgaunet/git-weblink/internal/security"
	"github.com/sgaunet/git-weblink/pkg/weburl"
)

// Target selects what the URL points at.
type Target int

const (
	// TargetFile links to the file (blob view), with an optional line anchor.
	TargetFile Target = iota
	// TargetBranch links to the branch (tree view).
	TargetBranch
)

func (t Target) String() string {
	if t == TargetBranch {
		return "branch"
	}
	return "file"
}

// SinkKind identifies a result sink.
type SinkKind string

const (
	SinkBrowser   SinkKind = "browser"
	SinkClipboard SinkKind = "clipboard"
	SinkPrint     SinkKind = "print"
)

// ParseSinkKind returns the sink kind named s.
func ParseSinkKind(s string) (SinkKind, error) {
	switch k := SinkKind(s); k {
	case SinkBrowser, SinkClipboard, SinkPrint:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownSink, s)
	}
}

// Request is one user action.
type Request struct {
	Path       string            // file or directory inside the working tree
	Lines      *weburl.LineRange // ignored for TargetBranch
	Target     Target
	Branch     string // overrides the current branch when set
	PickBranch bool   // ask the user, overrides Branch
	Sink       SinkKind
}

// Result is the outcome of a completed or cancelled action.
type Result struct {
	URL       string
	Branch    string
	Cancelled bool
}

// Runner sequences an action over its collaborators.
type Runner struct {
	resolver Resolver
	picker   BranchPicker
	mappings HostMappingSource
	sinks    map[SinkKind]Sink
	log      *bullets.Logger
}

// NewRunner creates a runner. mappings may be nil, in which case only the
// built-in host mapping is used. picker is only needed for requests with
// PickBranch set.
func NewRunner(resolver Resolver, picker BranchPicker, mappings HostMappingSource, sinks ...Sink) *Runner {
	r := &Runner{
		resolver: resolver,
		picker:   picker,
		mappings: mappings,
		sinks:    make(map[SinkKind]Sink, len(sinks)),
		log:      logger.NoLogger(),
	}
	for _, s := range sinks {
		r.sinks[s.Kind()] = s
	}
	return r
}

// SetLogger sets the logger for the runner.
func (r *Runner) SetLogger(logger *bullets.Logger) {
	r.log = logger
}

// Run performs req. A cancelled branch pick returns a Result with Cancelled
// set and a nil error.
func (r *Runner) Run(ctx context.Context, req Request) (Result, error) {
	sink, ok := r.sinks[req.Sink]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", errUnknownSink, req.Sink)
	}

	repo, err := r.resolver.Resolve(ctx, req.Path)
	if err != nil {
		r.log.Debug("Resolve failed: " + security.SanitizeError(err).Error())
		return Result{}, errRepositoryInfo
	}

	branch := req.Branch
	if req.PickBranch {
		picked, err := r.pickBranch(ctx, repo.RepoRoot, repo.Branch)
		if errors.Is(err, errSelectionCancelled) {
			r.log.Debug("Branch selection cancelled")
			return Result{Cancelled: true}, nil
		}
		if err != nil {
			return Result{}, err
		}
		branch = picked
	}

	target := weburl.TargetRequest{
		Context:         repo,
		IncludeFilePath: req.Target == TargetFile,
		BranchOverride:  branch,
	}
	if req.Target == TargetFile {
		target.LineRange = req.Lines
	}

	u := weburl.Generate(target, r.hostMapping())
	if u == "" {
		r.log.Debug("No URL for remote " + security.SanitizeString(repo.RemoteURL))
		return Result{}, errURLIndeterminate
	}
	r.log.Debug(fmt.Sprintf("Generated %s URL: %s", req.Target, u))

	if err := sink.Deliver(u); err != nil {
		return Result{}, &SinkError{Action: sink.Action(), URL: u, Err: err}
	}
	r.log.Info(sink.SuccessMessage(u))

	return Result{URL: u, Branch: target.Branch()}, nil
}

func (r *Runner) pickBranch(ctx context.Context, root, current string) (string, error) {
	branches, err := r.resolver.ListBranches(ctx, root)
	if err != nil {
		r.log.Debug("Branch listing failed: " + security.SanitizeError(err).Error())
		return "", errRepositoryInfo
	}
	if len(branches) == 0 {
		return "", errNoBranches
	}
	if r.picker == nil {
		return "", errNoPicker
	}

	picked, err := r.picker.PickBranch(branches, current)
	if err != nil {
		if errors.Is(err, errSelectionCancelled) {
			return "", errSelectionCancelled
		}
		return "", fmt.Errorf("failed to select branch: %w", err)
	}
	return picked, nil
}

// hostMapping reads the live mapping. A broken source falls back to the
// built-in entries.
func (r *Runner) hostMapping() weburl.HostMapping {
	if r.mappings == nil {
		return weburl.DefaultHostMapping()
	}
	m, err := r.mappings.HostMapping()
	if err != nil {
		r.log.Warn("Ignoring host mapping: " + err.Error())
		return weburl.DefaultHostMapping()
	}
	return m
}
