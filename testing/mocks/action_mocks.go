package mocks

import (
	"context"

	"github.com/sgaunet/git-weblink/pkg/action"
	"github.com/sgaunet/git-weblink/pkg/git"
	"github.com/sgaunet/git-weblink/pkg/weburl"
)

// Resolver is a mock implementation of action.Resolver with call tracking.
type Resolver struct {
	recorder

	ResolveResponse      *git.RepositoryContext
	ResolveError         error
	ListBranchesResponse []string
	ListBranchesError    error
}

// NewResolver creates a mock resolver returning repo.
func NewResolver(repo *git.RepositoryContext) *Resolver {
	return &Resolver{ResolveResponse: repo}
}

// Resolve implements action.Resolver.
func (m *Resolver) Resolve(_ context.Context, path string) (*git.RepositoryContext, error) {
	m.trackCall("Resolve", map[string]any{
		"path": path,
	})
	return m.ResolveResponse, m.ResolveError
}

// ListBranches implements action.Resolver.
func (m *Resolver) ListBranches(_ context.Context, dir string) ([]string, error) {
	m.trackCall("ListBranches", map[string]any{
		"dir": dir,
	})
	return m.ListBranchesResponse, m.ListBranchesError
}

// BranchPicker is a mock implementation of action.BranchPicker.
type BranchPicker struct {
	recorder

	PickResponse string
	PickError    error
}

// PickBranch implements action.BranchPicker.
func (m *BranchPicker) PickBranch(branches []string, current string) (string, error) {
	m.trackCall("PickBranch", map[string]any{
		"branches": branches,
		"current":  current,
	})
	return m.PickResponse, m.PickError
}

// Sink is a mock implementation of action.Sink that stores delivered URLs.
type Sink struct {
	recorder

	KindValue    action.SinkKind
	ActionValue  string
	DeliverError error
	Delivered    []string
}

// NewSink creates a mock sink of the given kind.
func NewSink(kind action.SinkKind) *Sink {
	return &Sink{
		KindValue:   kind,
		ActionValue: "delivering to " + string(kind),
	}
}

// Kind implements action.Sink.
func (m *Sink) Kind() action.SinkKind {
	return m.KindValue
}

// Deliver implements action.Sink.
func (m *Sink) Deliver(url string) error {
	m.trackCall("Deliver", map[string]any{
		"url": url,
	})
	if m.DeliverError != nil {
		return m.DeliverError
	}
	m.mu.Lock()
	m.Delivered = append(m.Delivered, url)
	m.mu.Unlock()
	return nil
}

// Action implements action.Sink.
func (m *Sink) Action() string {
	return m.ActionValue
}

// SuccessMessage implements action.Sink.
func (m *Sink) SuccessMessage(url string) string {
	return "delivered " + url
}

// HostMappingSource is a mock implementation of action.HostMappingSource.
// It returns Mappings in order, repeating the last one.
type HostMappingSource struct {
	recorder

	Mappings []weburl.HostMapping
	Error    error
}

// HostMapping implements action.HostMappingSource.
func (m *HostMappingSource) HostMapping() (weburl.HostMapping, error) {
	n := m.GetCallCount("HostMapping")
	m.trackCall("HostMapping", map[string]any{})
	if m.Error != nil {
		return nil, m.Error
	}
	if len(m.Mappings) == 0 {
		return weburl.DefaultHostMapping(), nil
	}
	return m.Mappings[min(n, len(m.Mappings)-1)], nil
}

// Ensure mocks implement their interfaces.
var (
	_ action.Resolver          = (*Resolver)(nil)
	_ action.BranchPicker      = (*BranchPicker)(nil)
	_ action.Sink              = (*Sink)(nil)
	_ action.HostMappingSource = (*HostMappingSource)(nil)
)
