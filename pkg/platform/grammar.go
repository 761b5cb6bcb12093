package platform

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/sgaunet/git-weblink/internal/urlutil"
)

// Grammar builds the web URLs of one hosting family.
type Grammar struct {
	// Tree returns the branch-only (tree view) URL.
	Tree func(loc Location) string
	// Blob returns the file view URL, without any line anchor.
	Blob func(loc Location) string
	// Anchor returns the suffix selecting lines start..end. It returns ""
	// when start is not a line number, and the single-line form when end
	// is not after start.
	Anchor func(start, end int) string
}

var grammars = map[Family]Grammar{
	FamilyGitHub: {
		Tree:   pathGrammar("tree"),
		Blob:   pathGrammar("blob"),
		Anchor: anchorGitHub,
	},
	FamilyGitLab: {
		Tree:   pathGrammar("-/tree"),
		Blob:   pathGrammar("-/blob"),
		Anchor: anchorGitLab,
	},
	FamilyBitbucket: {
		Tree:   pathGrammar("src"),
		Blob:   pathGrammar("src"),
		Anchor: anchorBitbucket,
	},
	FamilyAzureDevOps: {
		Tree:   azureTree(azureDevOpsBase),
		Blob:   azureBlob(azureDevOpsBase),
		Anchor: anchorAzure,
	},
	FamilyVisualStudio: {
		Tree:   azureTree(visualStudioBase),
		Blob:   azureBlob(visualStudioBase),
		Anchor: anchorAzure,
	},
	// Self-hosted front ends get the GitHub shape. Gitea and Gogs use other
	// anchors; that is a known limitation kept for compatibility.
	FamilyGeneric: {
		Tree:   pathGrammar("tree"),
		Blob:   pathGrammar("blob"),
		Anchor: anchorGitHub,
	},
}

// Lookup returns the grammar of a family, falling back to the generic one.
func Lookup(f Family) Grammar {
	if g, ok := grammars[f]; ok {
		return g
	}
	return grammars[FamilyGeneric]
}

// pathGrammar builds https://host/owner/repo/<kind>/branch[/path].
// The file path is inserted as is.
func pathGrammar(kind string) func(Location) string {
	return func(loc Location) string {
		return "https://" + urlutil.JoinNonEmpty(loc.Host, loc.Owner, loc.Repo, kind, loc.Branch, loc.Path)
	}
}

// azureDevOpsBase splits the owner into organization and project:
// https://dev.azure.com/org/project/_git/repo.
func azureDevOpsBase(loc Location) string {
	org, project, _ := strings.Cut(loc.Owner, "/")
	return "https://" + urlutil.JoinNonEmpty(loc.Host, org, project, "_git", loc.Repo)
}

// visualStudioBase is the legacy https://org.visualstudio.com/project/_git/repo.
func visualStudioBase(loc Location) string {
	return "https://" + urlutil.JoinNonEmpty(loc.Host, loc.Owner, "_git", loc.Repo)
}

func azureTree(base func(Location) string) func(Location) string {
	return func(loc Location) string {
		return base(loc) + "?version=GB" + loc.Branch
	}
}

func azureBlob(base func(Location) string) func(Location) string {
	tree := azureTree(base)
	return func(loc Location) string {
		return tree(loc) + "&path=" + queryComponent(loc.Path)
	}
}

// queryComponent escapes s for use inside a query value, spaces as %20.
func queryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func anchorGitHub(start, end int) string { // #L42 or #L42-L50
	return lineAnchor(start, end, "#L", "-L")
}

func anchorGitLab(start, end int) string { // #L42 or #L42-50
	return lineAnchor(start, end, "#L", "-")
}

func anchorBitbucket(start, end int) string { // #lines-42 or #lines-42:50
	return lineAnchor(start, end, "#lines-", ":")
}

func anchorAzure(start, end int) string { // &line=42 or &line=42&lineEnd=50
	return lineAnchor(start, end, "&line=", "&lineEnd=")
}

func lineAnchor(start, end int, single, rangeSep string) string {
	if start <= 0 {
		return ""
	}
	anchor := single + strconv.Itoa(start)
	if end > start {
		anchor += rangeSep + strconv.Itoa(end)
	}
	return anchor
}
