package git

import "context"

// SetRunner replaces the git command runner.
func (q *CLIQuerier) SetRunner(run func(ctx context.Context, dir string, args ...string) ([]byte, error)) {
	q.run = run
}

// SetBinary changes the git executable used by the default runner.
func (q *CLIQuerier) SetBinary(binary string) {
	q.binary = binary
}
