package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/litmerge/dedup-service/internal/observability"
)

// dedupePapers handles POST /api/v1/dedupe. It accepts a batch of
// bibliographic records, collapses duplicates, and returns the unique
// records together with the audit mapping of merged groups.
func (s *Server) dedupePapers(w http.ResponseWriter, r *http.Request) {
	var req dedupeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if len(req.Papers) > s.maxBatchSize {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("batch of %d records exceeds the maximum of %d", len(req.Papers), s.maxBatchSize))
		return
	}

	logger := observability.WithRequestContext(s.logger, observability.RequestIDFromContext(r.Context()))

	start := time.Now()
	result := s.engine.Deduplicate(requestToDomainPapers(req.Papers))
	elapsed := time.Since(start)

	if s.metrics != nil {
		s.metrics.RecordBatch("records", len(req.Papers), result.DuplicatesRemoved,
			groupSizes(result.DuplicateGroups), elapsed.Seconds())
	}

	logger.Info().
		Int("input_count", len(req.Papers)).
		Int("unique_count", len(result.UniquePapers)).
		Int("duplicates_removed", result.DuplicatesRemoved).
		Dur("duration", elapsed).
		Msg("dedupe batch processed")

	writeJSON(w, http.StatusOK, resultToResponse(len(req.Papers), result))
}

// dedupeTable handles POST /api/v1/dedupe/table, the reduced sibling
// operation over generic rows: title/DOI matching only, keeping the first
// row of each group.
func (s *Server) dedupeTable(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if len(req.Rows) > s.maxBatchSize {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("batch of %d rows exceeds the maximum of %d", len(req.Rows), s.maxBatchSize))
		return
	}

	logger := observability.WithRequestContext(s.logger, observability.RequestIDFromContext(r.Context()))

	start := time.Now()
	result := s.engine.DeduplicateTable(req.Rows, req.TitleColumn, req.DOIColumn)
	elapsed := time.Since(start)

	if s.metrics != nil {
		s.metrics.RecordBatch("table", len(req.Rows), result.DuplicatesRemoved,
			groupSizes(result.DuplicateGroups), elapsed.Seconds())
	}

	logger.Info().
		Int("input_rows", len(req.Rows)).
		Int("unique_rows", len(result.UniqueRows)).
		Int("duplicates_removed", result.DuplicatesRemoved).
		Dur("duration", elapsed).
		Msg("table dedupe batch processed")

	writeJSON(w, http.StatusOK, tableResultToResponse(len(req.Rows), result))
}

// groupSizes extracts group sizes for the metrics histogram.
func groupSizes(groups [][]int) []int {
	sizes := make([]int, len(groups))
	for i, g := range groups {
		sizes[i] = len(g)
	}
	return sizes
}

// validationMessage flattens validator errors into a single readable message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return fmt.Sprintf("invalid field %q: failed %q validation", first.Field(), first.Tag())
	}
	return fmt.Sprintf("invalid request: %v", err)
}
