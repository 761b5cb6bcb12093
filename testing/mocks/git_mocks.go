package mocks

import (
	"context"
	"time"

	"github.com/sgaunet/git-weblink/pkg/git"
)

// Querier is a mock implementation of git.Querier with call tracking.
type Querier struct {
	recorder

	// Configurable responses
	TopLevelResponse      string
	TopLevelError         error
	RemoteURLResponse     string
	RemoteURLError        error
	CurrentBranchResponse string
	CurrentBranchError    error
	BranchesResponse      []string
	BranchesError         error

	// Delay blocks every query until it elapses or the context is done.
	Delay time.Duration
}

// NewQuerier creates a mock querier answering for the fixture GitHub
// repository rooted at root.
func NewQuerier(root string) *Querier {
	return &Querier{
		TopLevelResponse:      root,
		RemoteURLResponse:     "git@github.com:acme/widgets.git",
		CurrentBranchResponse: "main",
		BranchesResponse:      []string{"main"},
	}
}

func (m *Querier) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(m.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TopLevel implements git.Querier.
func (m *Querier) TopLevel(ctx context.Context, dir string) (string, error) {
	m.trackCall("TopLevel", map[string]any{
		"dir": dir,
	})
	if err := m.wait(ctx); err != nil {
		return "", err
	}
	return m.TopLevelResponse, m.TopLevelError
}

// RemoteURL implements git.Querier.
func (m *Querier) RemoteURL(ctx context.Context, dir, remote string) (string, error) {
	m.trackCall("RemoteURL", map[string]any{
		"dir":    dir,
		"remote": remote,
	})
	if err := m.wait(ctx); err != nil {
		return "", err
	}
	return m.RemoteURLResponse, m.RemoteURLError
}

// CurrentBranch implements git.Querier.
func (m *Querier) CurrentBranch(ctx context.Context, dir string) (string, error) {
	m.trackCall("CurrentBranch", map[string]any{
		"dir": dir,
	})
	if err := m.wait(ctx); err != nil {
		return "", err
	}
	return m.CurrentBranchResponse, m.CurrentBranchError
}

// Branches implements git.Querier.
func (m *Querier) Branches(ctx context.Context, dir string) ([]string, error) {
	m.trackCall("Branches", map[string]any{
		"dir": dir,
	})
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	return m.BranchesResponse, m.BranchesError
}

// Ensure Querier implements git.Querier interface.
var _ git.Querier = (*Querier)(nil)
