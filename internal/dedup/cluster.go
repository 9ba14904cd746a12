package dedup

import "github.com/litmerge/dedup-service/internal/domain"

// buildGroups partitions the input indices into duplicate groups using the
// scorer as a pairwise oracle.
//
// The pass is greedy and left-to-right: each unprocessed index i anchors a
// candidate group, every later unprocessed index j that the scorer judges a
// duplicate of i joins it, and claimed indices never join another group.
// Groups are therefore always disjoint. Only groups of size two or more are
// returned; untouched indices remain implicit singletons.
//
// Similarity is not transitive, but the anchor-centred pass treats it as if
// it were: when i matches B and B matches C without i matching C, C stays a
// singleton unless it matches i directly. No transitive-closure repair is
// attempted; that is the documented behaviour of this engine.
//
// Cost is O(n^2) pairwise comparisons, fine for the hundreds-to-low-thousands
// of records a literature search yields. Larger batches would need a
// blocking pre-pass (by normalized title prefix or DOI presence) before the
// pairwise scan.
func buildGroups(papers []*domain.Paper, scorer *Scorer) [][]int {
	var groups [][]int
	processed := make(map[int]bool, len(papers))

	for i := range papers {
		if processed[i] {
			continue
		}

		group := []int{i}
		for j := i + 1; j < len(papers); j++ {
			if processed[j] {
				continue
			}
			if scorer.IsDuplicate(papers[i], papers[j]) {
				group = append(group, j)
				processed[j] = true
			}
		}

		processed[i] = true
		if len(group) > 1 {
			groups = append(groups, group)
		}
	}

	return groups
}
