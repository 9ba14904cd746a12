// Package domain defines the bibliographic record model shared by the
// deduplication engine and the service surface.
package domain

import "strings"

// SourceType identifies the academic database a record came from.
type SourceType string

// Known paper sources. Records may carry any other source name; unknown
// sources are valid and simply rank lowest in record selection.
const (
	SourcePubMed          SourceType = "PubMed"
	SourceSemanticScholar SourceType = "Semantic Scholar"
	SourceCrossref        SourceType = "Crossref"
	SourceArXiv           SourceType = "arXiv"
	SourceScopus          SourceType = "Scopus"
)

// Paper is a single bibliographic record as returned by one search source.
//
// Only Title and Authors are guaranteed present (Authors may be empty).
// All other fields use their zero value when the source did not supply
// them, so "missing" and "empty" are indistinguishable by construction
// and the engine treats both the same way.
type Paper struct {
	Title    string   `json:"title"`
	Abstract string   `json:"abstract,omitempty"`
	Authors  []string `json:"authors"`
	Year     int      `json:"year,omitempty"`
	DOI      string   `json:"doi,omitempty"`
	Journal  string   `json:"journal,omitempty"`
	Database string   `json:"database,omitempty"`
}

// HasDOI reports whether the record carries a non-empty DOI.
func (p *Paper) HasDOI() bool {
	return strings.TrimSpace(p.DOI) != ""
}

// NormalizedDOI returns the DOI lower-cased and trimmed for comparison.
// Returns the empty string when no DOI is present.
func (p *Paper) NormalizedDOI() string {
	return strings.ToLower(strings.TrimSpace(p.DOI))
}

// HasAbstract reports whether the record carries a non-empty abstract.
func (p *Paper) HasAbstract() bool {
	return strings.TrimSpace(p.Abstract) != ""
}
