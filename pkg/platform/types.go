// Package platform describes the web URL grammar of each git hosting family.
//
// A [Family] is the canonical identity of a hosting provider. Each family maps
// to a [Grammar] holding three builders: the branch tree view, the file blob
// view and the line anchor. Callers detect the family from a normalized host
// and then build URLs without knowing which provider they talk to:
//
//	g := platform.Lookup(platform.Detect("github.com"))
//	u := g.Blob(loc) + g.Anchor(10, 20)
//
// Adding a provider is one entry in the grammar table.
package platform

import "strings"

// Family identifies a hosting provider URL grammar.
type Family string

const (
	FamilyGitHub       Family = "github"
	FamilyGitLab       Family = "gitlab"
	FamilyBitbucket    Family = "bitbucket"
	FamilyAzureDevOps  Family = "azure-devops"
	FamilyVisualStudio Family = "visualstudio"
	FamilyGeneric      Family = "generic"
)

// Canonical hosts of the families that have one.
const (
	HostGitHub    = "github.com"
	HostGitLab    = "gitlab.com"
	HostBitbucket = "bitbucket.org"
	HostAzure     = "dev.azure.com"

	visualStudioDomain = "visualstudio.com"
)

// Location is everything a grammar needs to build a URL.
type Location struct {
	Host   string // normalized host, no scheme
	Owner  string // may contain '/', e.g. "org/project" on Azure DevOps
	Repo   string
	Branch string
	Path   string // forward-slash path relative to the repository root
}

// Detect returns the family for a normalized host. Hosts that match no
// known provider are [FamilyGeneric].
func Detect(host string) Family {
	host = strings.ToLower(host)
	switch {
	case host == HostGitHub:
		return FamilyGitHub
	case host == HostGitLab:
		return FamilyGitLab
	case host == HostBitbucket:
		return FamilyBitbucket
	case strings.Contains(host, HostAzure):
		return FamilyAzureDevOps
	case strings.Contains(host, visualStudioDomain):
		return FamilyVisualStudio
	default:
		return FamilyGeneric
	}
}

// IsAzure reports whether the family uses the Azure DevOps query grammar.
func (f Family) IsAzure() bool {
	return f == FamilyAzureDevOps || f == FamilyVisualStudio
}
