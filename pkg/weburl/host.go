package weburl

import (
	"strings"

	"github.com/sgaunet/git-weblink/pkg/platform"
)

// HostMapping maps a raw host, as written in a remote URL or an SSH config
// alias, to the canonical web host.
type HostMapping map[string]string

// DefaultHostMapping returns the built-in entries.
func DefaultHostMapping() HostMapping {
	return HostMapping{
		platform.HostGitHub:    platform.HostGitHub,
		platform.HostGitLab:    platform.HostGitLab,
		platform.HostBitbucket: platform.HostBitbucket,
		"ssh.dev.azure.com":    platform.HostAzure,
	}
}

// MergeHostMapping returns the defaults overridden by the user entries.
// Entries with an empty key or value are ignored.
func MergeHostMapping(user map[string]string) HostMapping {
	merged := DefaultHostMapping()
	for raw, canonical := range user {
		if raw == "" || canonical == "" {
			continue
		}
		merged[raw] = canonical
	}
	return merged
}

func (m HostMapping) lookup(host string) (string, bool) {
	if canonical, ok := m[host]; ok {
		return canonical, true
	}
	canonical, ok := m[strings.ToLower(host)]
	return canonical, ok
}

// NormalizeHost returns the canonical host for a raw host. An exact mapping
// entry wins; otherwise hosts containing "github", "gitlab" or "bitbucket"
// map to the public service, Azure DevOps hosts are kept as is (self-hosted
// instances vary), and anything else passes through unchanged.
//
// A nil mapping means [DefaultHostMapping].
func NormalizeHost(host string, mapping HostMapping) string {
	if host == "" {
		return ""
	}
	if mapping == nil {
		mapping = DefaultHostMapping()
	}
	if canonical, ok := mapping.lookup(host); ok {
		return canonical
	}

	lower := strings.ToLower(host)
	switch {
	case strings.Contains(lower, "github"):
		return platform.HostGitHub
	case strings.Contains(lower, "gitlab"):
		return platform.HostGitLab
	case strings.Contains(lower, "bitbucket"):
		return platform.HostBitbucket
	default:
		// includes "azure" and "visualstudio" hosts
		return host
	}
}
