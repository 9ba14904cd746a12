package dedup

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/litmerge/dedup-service/internal/domain"
)

// Result is the outcome of deduplicating one batch of records.
type Result struct {
	// UniquePapers holds exactly one representative per publication, ordered
	// by the representative's original input index, ascending. Records that
	// belonged to no duplicate group keep their original position in that
	// ordering.
	UniquePapers []*domain.Paper `json:"unique_papers"`

	// DuplicatesRemoved is len(input) - len(UniquePapers).
	DuplicatesRemoved int `json:"duplicates_removed"`

	// DuplicateGroups lists the original input indices of every duplicate
	// group. Groups are disjoint and always have at least two members;
	// singletons are never listed.
	DuplicateGroups [][]int `json:"duplicate_groups"`
}

// Config holds the tunable settings of an Engine.
type Config struct {
	// SimilarityThreshold is the title similarity threshold (1-100) above
	// which two records are considered candidate duplicates. Zero and
	// out-of-range values fall back to the default of 85.
	SimilarityThreshold int
}

// Engine deduplicates batches of bibliographic records. It is a pure,
// synchronous, in-memory transform: no I/O, no locks, no state shared
// between calls. The threshold is fixed at construction, so a single Engine
// is safe to use from concurrent callers.
type Engine struct {
	scorer *Scorer
	logger zerolog.Logger
}

// NewEngine creates an Engine with the given configuration and logger.
func NewEngine(cfg Config, logger zerolog.Logger) *Engine {
	return &Engine{
		scorer: NewScorer(cfg.SimilarityThreshold),
		logger: logger.With().Str("component", "dedup-engine").Logger(),
	}
}

// Threshold returns the engine's title similarity threshold.
func (e *Engine) Threshold() int {
	return e.scorer.Threshold()
}

// Deduplicate collapses duplicate records in the batch and returns one
// representative per publication plus the audit mapping of what was merged.
// The input is never mutated. An empty batch yields an empty result.
func (e *Engine) Deduplicate(papers []*domain.Paper) Result {
	result := Result{
		UniquePapers:    []*domain.Paper{},
		DuplicateGroups: [][]int{},
	}
	if len(papers) == 0 {
		return result
	}

	result.DuplicateGroups = buildGroups(papers, e.scorer)

	// Union of group winners and everything outside any group, sorted by
	// original index.
	grouped := make(map[int]bool)
	keep := make([]int, 0, len(papers))

	for _, group := range result.DuplicateGroups {
		for _, idx := range group {
			grouped[idx] = true
		}
		keep = append(keep, selectBest(group, papers))
	}
	for i := range papers {
		if !grouped[i] {
			keep = append(keep, i)
		}
	}
	sort.Ints(keep)

	result.UniquePapers = make([]*domain.Paper, len(keep))
	for i, idx := range keep {
		result.UniquePapers[i] = papers[idx]
	}
	result.DuplicatesRemoved = len(papers) - len(result.UniquePapers)

	e.logger.Debug().
		Int("input_count", len(papers)).
		Int("unique_count", len(result.UniquePapers)).
		Int("duplicates_removed", result.DuplicatesRemoved).
		Int("duplicate_groups", len(result.DuplicateGroups)).
		Msg("batch deduplicated")

	return result
}
