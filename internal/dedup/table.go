package dedup

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// TableResult is the outcome of deduplicating generic tabular rows.
type TableResult struct {
	// UniqueRows holds one row per group, always the first-seen row, in
	// ascending original-index order.
	UniqueRows []map[string]string `json:"unique_rows"`

	// DuplicatesRemoved is len(input) - len(UniqueRows).
	DuplicatesRemoved int `json:"duplicates_removed"`

	// DuplicateGroups lists the original row indices of each duplicate
	// group, size two or more.
	DuplicateGroups [][]int `json:"duplicate_groups"`
}

// DeduplicateTable is the reduced sibling of Deduplicate for ad hoc tabular
// cleanup. Rows are generic string maps; only the title column and the
// optional DOI column (pass "" for none) take part in matching, with no
// abstract or author corroboration, and each group keeps its first row
// rather than running record selection. It is intentionally simpler than
// the record path and kept separate from it.
func (e *Engine) DeduplicateTable(rows []map[string]string, titleColumn, doiColumn string) TableResult {
	result := TableResult{
		UniqueRows:      []map[string]string{},
		DuplicateGroups: [][]int{},
	}
	if len(rows) == 0 {
		return result
	}

	processed := make(map[int]bool, len(rows))
	keep := make([]int, 0, len(rows))

	for i := range rows {
		if processed[i] {
			continue
		}

		group := []int{i}
		for j := i + 1; j < len(rows); j++ {
			if processed[j] {
				continue
			}
			if e.rowsMatch(rows[i], rows[j], titleColumn, doiColumn) {
				group = append(group, j)
				processed[j] = true
			}
		}

		processed[i] = true
		keep = append(keep, i)
		if len(group) > 1 {
			result.DuplicateGroups = append(result.DuplicateGroups, group)
		}
	}

	result.UniqueRows = make([]map[string]string, len(keep))
	for i, idx := range keep {
		result.UniqueRows[i] = rows[idx]
	}
	result.DuplicatesRemoved = len(rows) - len(result.UniqueRows)

	e.logger.Debug().
		Int("input_rows", len(rows)).
		Int("unique_rows", len(result.UniqueRows)).
		Int("duplicates_removed", result.DuplicatesRemoved).
		Msg("table deduplicated")

	return result
}

// rowsMatch applies the title/DOI criteria only.
func (e *Engine) rowsMatch(a, b map[string]string, titleColumn, doiColumn string) bool {
	if doiColumn != "" {
		doiA := strings.ToLower(strings.TrimSpace(a[doiColumn]))
		doiB := strings.ToLower(strings.TrimSpace(b[doiColumn]))
		if doiA != "" && doiA == doiB {
			return true
		}
	}

	titleA := strings.ToLower(strings.TrimSpace(a[titleColumn]))
	titleB := strings.ToLower(strings.TrimSpace(b[titleColumn]))
	if titleA == "" || titleB == "" {
		return false
	}

	threshold := e.scorer.Threshold()
	if fuzzy.Ratio(titleA, titleB) >= threshold {
		return true
	}
	if fuzzy.TokenSetRatio(titleA, titleB) >= threshold {
		return true
	}
	return fuzzy.PartialRatio(titleA, titleB) >= threshold
}
