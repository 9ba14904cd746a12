// Package observability provides logging and metrics support for the
// deduplication service.
//
// # Overview
//
// The observability package provides:
//
//   - Structured logging with zerolog
//   - Prometheus metrics for batches, records, and HTTP traffic
//   - Context helpers for propagating observability data
//
// # Logging
//
// Create a logger from configuration:
//
//	cfg := observability.LoggingConfig{
//	    Level:     "info",
//	    Format:    "json",
//	    Output:    "stdout",
//	    AddSource: true,
//	}
//
//	logger := observability.NewLogger(cfg)
//	logger.Info().Str("request_id", reqID).Msg("batch received")
//
// Add request context to logger:
//
//	logger = observability.WithRequestContext(logger, requestID)
//
// # Metrics
//
// Initialize metrics:
//
//	metrics := observability.NewMetrics("dedup")
//
// Record metrics:
//
//	metrics.RecordBatch("records", inputCount, removed, groupSizes, seconds)
//	metrics.RecordHTTPRequest("/api/v1/dedupe", "200", seconds)
//
// # Context Helpers
//
// Store and retrieve request context:
//
//	ctx = observability.WithRequestID(ctx, requestID)
//	reqID := observability.RequestIDFromContext(ctx)
//
// # Standard Fields
//
// Common fields used across the service:
//
//   - request_id: HTTP request identifier
//   - batch_id: Deduplication batch identifier
//   - batch_size: Number of input records in a batch
//
// # Thread Safety
//
// All components are safe for concurrent use from multiple goroutines.
package observability
