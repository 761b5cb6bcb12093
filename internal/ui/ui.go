// Package ui holds the interactive and output collaborators of an action:
// the branch picker and the result sinks.
package ui

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/sgaunet/git-weblink/pkg/action"
)

const branchPageSize = 15

type askFunc func(prompt survey.Prompt, response any, opts ...survey.AskOpt) error

// BranchPicker asks the user to choose a branch.
type BranchPicker struct {
	ask askFunc
}

// NewBranchPicker creates a picker prompting on the terminal.
func NewBranchPicker() *BranchPicker {
	return &BranchPicker{ask: survey.AskOne}
}

// PickBranch prompts with branches in the given order, the current branch
// preselected. Ctrl+C returns [action.ErrSelectionCancelled].
func (p *BranchPicker) PickBranch(branches []string, current string) (string, error) {
	if len(branches) == 0 {
		return "", action.ErrNoBranches
	}

	prompt := &survey.Select{
		Message:  "Select branch:",
		Options:  branches,
		PageSize: branchPageSize,
	}
	for _, b := range branches {
		if b == current {
			prompt.Default = current
			break
		}
	}

	var selected string
	if err := p.ask(prompt, &selected); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", action.ErrSelectionCancelled
		}
		return "", fmt.Errorf("failed to get branch selection: %w", err)
	}
	if selected == "" {
		return "", action.ErrSelectionCancelled
	}

	return selected, nil
}
