package dedup

import "github.com/litmerge/dedup-service/internal/domain"

// minAbstractLen is the minimum abstract length for a record to count as
// having a usable abstract during selection.
const minAbstractLen = 50

// sourceAuthority ranks the known databases by curation quality. Unknown
// sources score zero and are never rejected.
var sourceAuthority = map[domain.SourceType]int{
	domain.SourcePubMed:          6,
	domain.SourceSemanticScholar: 5,
	domain.SourceCrossref:        4,
	domain.SourceArXiv:           3,
	domain.SourceScopus:          2,
}

// recordScore ranks a record within a duplicate group. Fields are compared
// lexicographically in declaration order, all higher-is-better, so any
// record with a DOI outranks any record without one no matter how the later
// fields compare.
type recordScore struct {
	hasDOI          int
	hasAbstract     int
	abstractLen     int
	authorCount     int
	year            int
	sourceAuthority int
}

// scoreRecord computes the selection score for a single record.
func scoreRecord(p *domain.Paper) recordScore {
	s := recordScore{
		abstractLen:     len(p.Abstract),
		authorCount:     len(p.Authors),
		year:            p.Year,
		sourceAuthority: sourceAuthority[domain.SourceType(p.Database)],
	}
	if p.HasDOI() {
		s.hasDOI = 1
	}
	if len(p.Abstract) > minAbstractLen {
		s.hasAbstract = 1
	}
	return s
}

// greaterThan reports whether s outranks other under the fixed priority
// order: DOI presence, qualifying abstract, abstract length, author count,
// year, source authority.
func (s recordScore) greaterThan(other recordScore) bool {
	if s.hasDOI != other.hasDOI {
		return s.hasDOI > other.hasDOI
	}
	if s.hasAbstract != other.hasAbstract {
		return s.hasAbstract > other.hasAbstract
	}
	if s.abstractLen != other.abstractLen {
		return s.abstractLen > other.abstractLen
	}
	if s.authorCount != other.authorCount {
		return s.authorCount > other.authorCount
	}
	if s.year != other.year {
		return s.year > other.year
	}
	return s.sourceAuthority > other.sourceAuthority
}

// selectBest picks the index of the record to keep from a duplicate group.
// Ties keep the earliest index, which makes selection deterministic.
// Single-element groups return their only member without scoring.
func selectBest(group []int, papers []*domain.Paper) int {
	if len(group) == 1 {
		return group[0]
	}

	best := group[0]
	bestScore := scoreRecord(papers[best])

	for _, idx := range group[1:] {
		if score := scoreRecord(papers[idx]); score.greaterThan(bestScore) {
			best = idx
			bestScore = score
		}
	}

	return best
}
