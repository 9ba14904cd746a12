// Package main provides a CLI tool for ad hoc deduplication of CSV files.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/litmerge/dedup-service/internal/dedup"
	"github.com/litmerge/dedup-service/internal/observability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define CLI flags.
	inPath := flag.String("in", "", "Input CSV file with a header row (required)")
	outPath := flag.String("out", "", "Output CSV file (default: stdout)")
	titleColumn := flag.String("title-column", "title", "Name of the title column")
	doiColumn := flag.String("doi-column", "", "Name of the DOI column (optional)")
	threshold := flag.Int("threshold", dedup.DefaultSimilarityThreshold, "Title similarity threshold (1-100)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		return fmt.Errorf("missing required -in flag")
	}

	logger := observability.NewLogger(observability.LoggingConfig{
		Level:  *logLevel,
		Format: "console",
		Output: "stderr",
	})
	logger = logger.With().Str("component", "dedupe-cli").Logger()

	header, rows, err := readCSV(*inPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if !contains(header, *titleColumn) {
		return fmt.Errorf("input has no %q column", *titleColumn)
	}
	if *doiColumn != "" && !contains(header, *doiColumn) {
		return fmt.Errorf("input has no %q column", *doiColumn)
	}

	logger = observability.WithBatchContext(logger, uuid.NewString(), len(rows))

	engine := dedup.NewEngine(dedup.Config{SimilarityThreshold: *threshold}, logger)
	result := engine.DeduplicateTable(rows, *titleColumn, *doiColumn)

	if err := writeCSV(*outPath, header, result.UniqueRows); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info().
		Int("input_rows", len(rows)).
		Int("unique_rows", len(result.UniqueRows)).
		Int("duplicates_removed", result.DuplicatesRemoved).
		Int("duplicate_groups", len(result.DuplicateGroups)).
		Msg("deduplication complete")

	return nil
}

// readCSV reads the file into a header plus one string map per row.
func readCSV(path string) ([]string, []map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, nil, err
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	return header, rows, nil
}

// writeCSV writes the rows in the original column order. An empty path
// writes to stdout.
func writeCSV(path string, header []string, rows []map[string]string) error {
	var out io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(header))
		for i, col := range header {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
