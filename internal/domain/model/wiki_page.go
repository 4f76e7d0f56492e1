package model

import (
	"fmt"
	"strings"
)

// WikiPage maps a row of the replica's page table. Read-only; the replica is
// externally owned and independently updated.
type WikiPage struct {
	pageID     int64
	namespace  int32
	title      string // stored convention: spaces replaced by underscores
	isRedirect bool
	isNew      bool
	length     int64
	latestRev  int64
}

// ReconstructWikiPage creates a WikiPage from a replica row.
func ReconstructWikiPage(
	pageID int64,
	namespace int32,
	title string,
	isRedirect bool,
	isNew bool,
	length int64,
	latestRev int64,
) *WikiPage {
	return &WikiPage{
		pageID:     pageID,
		namespace:  namespace,
		title:      title,
		isRedirect: isRedirect,
		isNew:      isNew,
		length:     length,
		latestRev:  latestRev,
	}
}

func (p *WikiPage) PageID() int64    { return p.pageID }
func (p *WikiPage) Namespace() int32 { return p.namespace }
func (p *WikiPage) Title() string    { return p.title }
func (p *WikiPage) IsRedirect() bool { return p.isRedirect }
func (p *WikiPage) IsNew() bool      { return p.isNew }
func (p *WikiPage) Length() int64    { return p.length }
func (p *WikiPage) LatestRev() int64 { return p.latestRev }

// WikiActor maps a row of the replica's actor table. The name column is raw
// bytes on the wiki side and is not guaranteed to be clean UTF-8.
type WikiActor struct {
	actorID int64
	userID  int64 // 0 for anonymous actors
	name    []byte
}

// ReconstructWikiActor creates a WikiActor from a replica row.
func ReconstructWikiActor(actorID int64, userID int64, name []byte) *WikiActor {
	return &WikiActor{
		actorID: actorID,
		userID:  userID,
		name:    name,
	}
}

func (a *WikiActor) ActorID() int64 { return a.actorID }
func (a *WikiActor) UserID() int64  { return a.userID }
func (a *WikiActor) Name() []byte   { return a.name }

// Namespace prefixes for canonical page URLs. Namespaces outside the table
// get a generic NS<n>: prefix.
var namespacePrefixes = map[int32]string{
	0:  "",
	6:  "File:",
	14: "Category:",
}

// DisplayTitle converts a stored title to its display form
// (underscores back to spaces).
func DisplayTitle(raw string) string {
	return strings.ReplaceAll(raw, "_", " ")
}

// NormalizeSearchTerm converts a user query to the replica's storage
// convention (spaces to underscores).
func NormalizeSearchTerm(query string) string {
	return strings.ReplaceAll(query, " ", "_")
}

// CanonicalURL builds the public URL for a page. The raw underscore title is
// used as-is; no percent-encoding beyond what the stored title already
// satisfies.
func CanonicalURL(articleBase string, rawTitle string, namespace int32) string {
	prefix, ok := namespacePrefixes[namespace]
	if !ok {
		prefix = fmt.Sprintf("NS%d:", namespace)
	}
	return articleBase + prefix + rawTitle
}

// SearchResult is the derived, render-ready view of a matched page.
type SearchResult struct {
	PageID       int64
	DisplayTitle string
	Namespace    int32
	IsRedirect   bool
	Length       int64
	CanonicalURL string
}

// NewSearchResult derives a SearchResult from a replica page row.
func NewSearchResult(page *WikiPage, articleBase string) SearchResult {
	return SearchResult{
		PageID:       page.PageID(),
		DisplayTitle: DisplayTitle(page.Title()),
		Namespace:    page.Namespace(),
		IsRedirect:   page.IsRedirect(),
		Length:       page.Length(),
		CanonicalURL: CanonicalURL(articleBase, page.Title(), page.Namespace()),
	}
}
