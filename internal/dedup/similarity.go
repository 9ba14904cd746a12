package dedup

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/litmerge/dedup-service/internal/domain"
)

// Fixed corroboration constants of the matching algorithm. Only the title
// similarity threshold is configurable; changing these values changes which
// records are judged duplicates.
const (
	// DefaultSimilarityThreshold is the default title similarity threshold (0-100).
	DefaultSimilarityThreshold = 85

	// abstractThreshold is the minimum token-set ratio between truncated
	// abstracts required to confirm a title match.
	abstractThreshold = 70

	// authorThreshold is the minimum token-set ratio between joined author
	// lists required to confirm a loose title match.
	authorThreshold = 60

	// looseTitleThreshold is the lower bound of the secondary title band in
	// which author corroboration can still produce a match.
	looseTitleThreshold = 70

	// abstractPrefixLen is the number of characters of each abstract compared
	// during corroboration.
	abstractPrefixLen = 500
)

// Verdict is the outcome of comparing two records, with the individual
// similarity scores retained for tests and debugging. Callers normally only
// consult Duplicate.
type Verdict struct {
	// Duplicate is true when the two records describe the same publication.
	Duplicate bool

	// DOIMatch is true when the verdict was decided by an exact DOI match.
	DOIMatch bool

	// TitleRatio, TitleTokenSet and TitlePartial are the three title
	// similarity scores (0-100). Zero when the title path was never reached.
	TitleRatio    int
	TitleTokenSet int
	TitlePartial  int

	// AbstractScore is the token-set ratio of the truncated abstracts.
	// Zero when abstract corroboration did not run.
	AbstractScore int

	// AuthorScore is the token-set ratio of the joined author lists.
	// Zero when author corroboration did not run.
	AuthorScore int
}

// Scorer decides whether two records represent the same publication.
//
// The checks run in a fixed order and the first matching rule wins:
//
//  1. Exact DOI match (lower-cased). Authoritative: matching DOIs always
//     merge, regardless of how different the titles look.
//  2. Title similarity: whole-string ratio, token-set ratio and partial
//     ratio between lower-cased titles. If any score reaches the configured
//     threshold the match is confirmed by step 3.
//  3. Abstract corroboration: when both records have an abstract, the first
//     500 characters of each must reach a token-set ratio of 70. If either
//     abstract is missing, the title match alone suffices.
//  4. Loose title band: a best title score of at least 70 (but below the
//     configured threshold) still merges when both records have authors and
//     the joined author lists reach a token-set ratio of 60. Covers
//     preprint-vs-published pairs whose titles were reworded.
//
// Records with an empty title on either side never match through the title
// path.
type Scorer struct {
	threshold int
}

// NewScorer creates a Scorer with the given title similarity threshold
// (1-100). Zero and out-of-range values fall back to the default; a zero
// threshold would merge every pair of titled records, so it is not a valid
// setting.
func NewScorer(threshold int) *Scorer {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultSimilarityThreshold
	}
	return &Scorer{threshold: threshold}
}

// Threshold returns the configured title similarity threshold.
func (s *Scorer) Threshold() int {
	return s.threshold
}

// IsDuplicate reports whether two records describe the same publication.
func (s *Scorer) IsDuplicate(a, b *domain.Paper) bool {
	return s.Compare(a, b).Duplicate
}

// Compare runs the full rule chain and returns the verdict with all
// computed scores.
func (s *Scorer) Compare(a, b *domain.Paper) Verdict {
	var v Verdict

	// Step 1: exact DOI match is authoritative.
	if doi := a.NormalizedDOI(); doi != "" && doi == b.NormalizedDOI() {
		v.DOIMatch = true
		v.Duplicate = true
		return v
	}

	titleA := strings.ToLower(strings.TrimSpace(a.Title))
	titleB := strings.ToLower(strings.TrimSpace(b.Title))
	if titleA == "" || titleB == "" {
		// No meaningful title similarity can be computed.
		return v
	}

	// Step 2: three independent title metrics. Ratio catches small edits,
	// token-set ratio catches reordered words, partial ratio catches
	// truncated titles.
	v.TitleRatio = fuzzy.Ratio(titleA, titleB)
	v.TitleTokenSet = fuzzy.TokenSetRatio(titleA, titleB)
	v.TitlePartial = fuzzy.PartialRatio(titleA, titleB)

	best := v.TitleRatio
	if v.TitleTokenSet > best {
		best = v.TitleTokenSet
	}
	if v.TitlePartial > best {
		best = v.TitlePartial
	}

	if best >= s.threshold {
		// Step 3: abstract corroboration, only possible when both sides
		// carry an abstract.
		if a.HasAbstract() && b.HasAbstract() {
			v.AbstractScore = fuzzy.TokenSetRatio(
				truncateLower(a.Abstract, abstractPrefixLen),
				truncateLower(b.Abstract, abstractPrefixLen),
			)
			v.Duplicate = v.AbstractScore >= abstractThreshold
			return v
		}
		v.Duplicate = true
		return v
	}

	// Step 4: loose title band with author corroboration.
	if best >= looseTitleThreshold && len(a.Authors) > 0 && len(b.Authors) > 0 {
		authorsA := joinAuthors(a.Authors)
		authorsB := joinAuthors(b.Authors)
		if authorsA != "" && authorsB != "" {
			v.AuthorScore = fuzzy.TokenSetRatio(authorsA, authorsB)
			v.Duplicate = v.AuthorScore >= authorThreshold
		}
	}

	return v
}

// truncateLower lower-cases s and truncates it to at most n runes.
func truncateLower(s string, n int) string {
	s = strings.ToLower(s)
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
