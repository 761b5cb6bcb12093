package git

import "strings"

// ParseBranchList turns `git branch` or `git for-each-ref` output into branch
// names. The current-branch marker ("* ") and the worktree marker ("+ ") are
// removed, as are blank lines and detached HEAD entries like
// "(HEAD detached at 1a2b3c)". The result is never nil.
func ParseBranchList(output string) []string {
	branches := []string{}
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(line)
		for _, marker := range []string{"* ", "+ "} {
			if strings.HasPrefix(name, marker) {
				name = strings.TrimSpace(strings.TrimPrefix(name, marker))
			}
		}
		if name == "" || strings.HasPrefix(name, "(") {
			continue
		}
		branches = append(branches, name)
	}
	return branches
}
