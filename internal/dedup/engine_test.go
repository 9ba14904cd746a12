package dedup

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litmerge/dedup-service/internal/domain"
)

func newTestEngine(threshold int) *Engine {
	return NewEngine(Config{SimilarityThreshold: threshold}, zerolog.Nop())
}

func TestEngine_EmptyInput(t *testing.T) {
	t.Parallel()

	result := newTestEngine(0).Deduplicate(nil)

	assert.Empty(t, result.UniquePapers)
	assert.Zero(t, result.DuplicatesRemoved)
	assert.Empty(t, result.DuplicateGroups)
}

func TestEngine_SameDOIDifferentTitles(t *testing.T) {
	t.Parallel()

	papers := []*domain.Paper{
		{Title: "Foo", DOI: "10.1/x"},
		{Title: "Completely Different Bar", DOI: "10.1/x"},
	}

	result := newTestEngine(0).Deduplicate(papers)

	require.Len(t, result.DuplicateGroups, 1)
	assert.Equal(t, []int{0, 1}, result.DuplicateGroups[0])
	assert.Equal(t, 1, result.DuplicatesRemoved)
	require.Len(t, result.UniquePapers, 1)
}

func TestEngine_TitleAndAbstractMatch(t *testing.T) {
	t.Parallel()

	abstract := strings.Repeat("systematic review of screening methods for clinical decision support ", 9)
	papers := []*domain.Paper{
		{Title: "Machine Learning in Healthcare", Abstract: abstract},
		{Title: "Machine Learning in Health Care", Abstract: abstract + " further remarks"},
	}

	result := newTestEngine(0).Deduplicate(papers)

	assert.Equal(t, 1, result.DuplicatesRemoved)
	require.Len(t, result.DuplicateGroups, 1)
}

func TestEngine_UnrelatedRecordsUntouched(t *testing.T) {
	t.Parallel()

	papers := []*domain.Paper{
		{Title: "Quantum Error Correction With Surface Codes"},
		{Title: "Microbial Ecology of Deep Sea Hydrothermal Vents"},
		{Title: "Adversarial Robustness of Image Classifiers"},
	}

	result := newTestEngine(0).Deduplicate(papers)

	assert.Zero(t, result.DuplicatesRemoved)
	assert.Empty(t, result.DuplicateGroups)
	require.Len(t, result.UniquePapers, 3)
	// Original order preserved.
	for i, p := range result.UniquePapers {
		assert.Same(t, papers[i], p)
	}
}

func TestEngine_PrioritizerKeepsMostCompleteRecord(t *testing.T) {
	t.Parallel()

	// The preprint abstract is a token subset of the published one, so
	// abstract corroboration confirms the title match.
	papers := []*domain.Paper{
		{
			Title:    "Deep Learning for Protein Folding",
			Abstract: "Structure prediction evaluated on CASP targets.",
			Database: string(domain.SourceArXiv),
		},
		{
			Title:    "Deep Learning for Protein Folding",
			Abstract: strings.Repeat("alphafold style structure prediction evaluated on casp targets ", 5),
			DOI:      "10.1038/s41586",
			Database: string(domain.SourcePubMed),
		},
	}

	result := newTestEngine(0).Deduplicate(papers)

	require.Len(t, result.UniquePapers, 1)
	assert.Same(t, papers[1], result.UniquePapers[0])
}

func TestEngine_GreedyGroupsAnchorAtFirstMember(t *testing.T) {
	t.Parallel()

	// B matches the anchor A by DOI and C matches B by title, but C never
	// matches A. The greedy pass claims B for A's group and leaves C as a
	// singleton: across-group chains are not followed.
	papers := []*domain.Paper{
		{Title: "Alpha", DOI: "10.1/x"},
		{Title: "Totally Unrelated Beta Considerations", DOI: "10.1/x"},
		{Title: "Totally Unrelated Beta Considerations"},
	}

	result := newTestEngine(0).Deduplicate(papers)

	require.Len(t, result.DuplicateGroups, 1)
	assert.Equal(t, []int{0, 1}, result.DuplicateGroups[0])
	require.Len(t, result.UniquePapers, 2)
	assert.Same(t, papers[2], result.UniquePapers[1])
}

func TestEngine_PartitionAndCountInvariants(t *testing.T) {
	t.Parallel()

	abstract := strings.Repeat("retrospective cohort analysis of postoperative complications ", 9)
	papers := []*domain.Paper{
		{Title: "Machine Learning in Healthcare", Abstract: abstract},
		{Title: "Estimating Glacier Mass Balance From Satellite Altimetry"},
		{Title: "Machine Learning in Health Care", Abstract: abstract},
		{Title: "Foo", DOI: "10.1/x"},
		{Title: "Completely Different Bar", DOI: "10.1/x"},
		{Title: "Bayesian Phylogenetics of Passerine Birds"},
	}

	result := newTestEngine(0).Deduplicate(papers)

	// Count invariant.
	assert.Equal(t, len(papers), len(result.UniquePapers)+result.DuplicatesRemoved)

	// Partition invariant: every index appears exactly once, either as a
	// group member or as an ungrouped unique record.
	indexOf := make(map[*domain.Paper]int, len(papers))
	for i, p := range papers {
		indexOf[p] = i
	}

	seen := make(map[int]int)
	grouped := make(map[int]bool)
	for _, group := range result.DuplicateGroups {
		require.GreaterOrEqual(t, len(group), 2)
		for _, idx := range group {
			seen[idx]++
			grouped[idx] = true
		}
	}
	for _, p := range result.UniquePapers {
		idx, ok := indexOf[p]
		require.True(t, ok)
		if !grouped[idx] {
			seen[idx]++
		}
	}

	for i := range papers {
		assert.Equal(t, 1, seen[i], "index %d covered exactly once", i)
	}

	// Unique papers come back in ascending original-index order.
	prev := -1
	for _, p := range result.UniquePapers {
		idx := indexOf[p]
		assert.Greater(t, idx, prev)
		prev = idx
	}
}

func TestEngine_ThresholdMonotonicity(t *testing.T) {
	t.Parallel()

	papers := []*domain.Paper{
		{Title: "Machine Learning in Healthcare"},
		{Title: "Machine Learning in Health Care"},
		{Title: "Machine Learning for Health Care Applications"},
		{Title: "Transformer Models for Clinical Text"},
		{Title: "Transformer Models for Clinical Texts"},
	}

	prevGroups := -1
	prevRemoved := -1
	for _, threshold := range []int{100, 95, 90, 85} {
		result := newTestEngine(threshold).Deduplicate(papers)
		if prevGroups >= 0 {
			// Loosening the threshold never reduces the number of merges.
			assert.GreaterOrEqual(t, len(result.DuplicateGroups), prevGroups)
			assert.GreaterOrEqual(t, result.DuplicatesRemoved, prevRemoved)
		}
		prevGroups = len(result.DuplicateGroups)
		prevRemoved = result.DuplicatesRemoved
	}
}

func TestEngine_Idempotent(t *testing.T) {
	t.Parallel()

	abstract := strings.Repeat("double blind randomised trial of statin therapy in older adults ", 9)
	papers := []*domain.Paper{
		{Title: "Foo", DOI: "10.1/x"},
		{Title: "Completely Different Bar", DOI: "10.1/x"},
		{Title: "Machine Learning in Healthcare", Abstract: abstract},
		{Title: "Machine Learning in Health Care", Abstract: abstract},
		{Title: "Bayesian Phylogenetics of Passerine Birds"},
	}

	engine := newTestEngine(0)
	first := engine.Deduplicate(papers)
	second := engine.Deduplicate(first.UniquePapers)

	assert.Zero(t, second.DuplicatesRemoved)
	assert.Empty(t, second.DuplicateGroups)
	assert.Len(t, second.UniquePapers, len(first.UniquePapers))
}

func TestEngine_InputNotMutated(t *testing.T) {
	t.Parallel()

	papers := []*domain.Paper{
		{Title: "Foo", DOI: "10.1/x"},
		{Title: "Completely Different Bar", DOI: "10.1/x"},
	}
	copies := []domain.Paper{*papers[0], *papers[1]}

	newTestEngine(0).Deduplicate(papers)

	assert.Equal(t, copies[0], *papers[0])
	assert.Equal(t, copies[1], *papers[1])
}
