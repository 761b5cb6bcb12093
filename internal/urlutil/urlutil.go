// Package urlutil provides the low-level tokenizing helpers used to take
// git remote URLs apart.
//
// It understands three shapes:
//   - scheme URLs: https://host/owner/repo, ssh://git@host:22/owner/repo
//   - SCP-like SSH: git@github.com:owner/repo
//   - anything else, which callers split with [Segments]
//
// None of the helpers fail; malformed input yields empty parts.
package urlutil

import (
	"strings"
)

const (
	gitSuffix = ".git"
	schemeSep = "://"
)

// SplitScheme cuts a remote URL into its lower-cased scheme and the rest.
// The scheme is empty when the URL has none.
//
//	SplitScheme("https://github.com/o/r") → "https", "github.com/o/r"
//	SplitScheme("git@github.com:o/r")     → "", "git@github.com:o/r"
func SplitScheme(raw string) (string, string) {
	scheme, rest, ok := strings.Cut(raw, schemeSep)
	if !ok || scheme == "" || strings.ContainsAny(scheme, "/@:") {
		return "", raw
	}
	return strings.ToLower(scheme), rest
}

// StripUserinfo removes a "user[:password]@" prefix from an authority.
// The last '@' wins so passwords containing '@' are removed entirely.
func StripUserinfo(authority string) string {
	if i := strings.LastIndex(authority, "@"); i >= 0 {
		return authority[i+1:]
	}
	return authority
}

// StripPort removes a trailing ":port" from a host.
func StripPort(host string) string {
	name, port, ok := strings.Cut(host, ":")
	if !ok {
		return host
	}
	for _, c := range port {
		if c < '0' || c > '9' {
			return host
		}
	}
	return name
}

// SplitSCP splits an SCP-like SSH remote ("git@host:path") into host and
// path. ok is false when the input is not SCP-like: no colon, or a slash
// before the first colon (which makes it a local path).
func SplitSCP(raw string) (host, path string, ok bool) {
	authority, path, found := strings.Cut(raw, ":")
	if !found || authority == "" || strings.Contains(authority, "/") {
		return "", "", false
	}
	return StripUserinfo(authority), path, true
}

// TrimRepoPath removes surrounding slashes and a trailing ".git" from a
// repository path.
func TrimRepoPath(path string) string {
	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, gitSuffix)
	return strings.TrimRight(path, "/")
}

// Segments splits s on any of the separator runes and drops empty parts.
//
//	Segments("/a//b/", "/")  → [a b]
//	Segments("h:o/r", "/:") → [h o r]
func Segments(s, separators string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
}

// JoinNonEmpty joins the non-empty parts with '/'.
func JoinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}
