package httpserver

import (
	"github.com/litmerge/dedup-service/internal/dedup"
	"github.com/litmerge/dedup-service/internal/domain"
)

// Request and response types for JSON serialization.

type paperRequest struct {
	Title    string   `json:"title" validate:"max=2000"`
	Abstract string   `json:"abstract" validate:"max=50000"`
	Authors  []string `json:"authors" validate:"dive,max=512"`
	Year     int      `json:"year" validate:"omitempty,gte=0,lte=2100"`
	DOI      string   `json:"doi" validate:"max=512"`
	Journal  string   `json:"journal" validate:"max=1024"`
	Database string   `json:"database" validate:"max=128"`
}

type dedupeRequest struct {
	Papers []paperRequest `json:"papers" validate:"dive"`
}

type paperResponse struct {
	Title    string   `json:"title"`
	Abstract string   `json:"abstract,omitempty"`
	Authors  []string `json:"authors"`
	Year     int      `json:"year,omitempty"`
	DOI      string   `json:"doi,omitempty"`
	Journal  string   `json:"journal,omitempty"`
	Database string   `json:"database,omitempty"`
}

type dedupeResponse struct {
	UniquePapers      []paperResponse `json:"unique_papers"`
	DuplicatesRemoved int             `json:"duplicates_removed"`
	DuplicateGroups   [][]int         `json:"duplicate_groups"`
	InputCount        int             `json:"input_count"`
	UniqueCount       int             `json:"unique_count"`
}

type tableRequest struct {
	Rows        []map[string]string `json:"rows"`
	TitleColumn string              `json:"title_column" validate:"required,max=256"`
	DOIColumn   string              `json:"doi_column" validate:"max=256"`
}

type tableResponse struct {
	UniqueRows        []map[string]string `json:"unique_rows"`
	DuplicatesRemoved int                 `json:"duplicates_removed"`
	DuplicateGroups   [][]int             `json:"duplicate_groups"`
	InputCount        int                 `json:"input_count"`
	UniqueCount       int                 `json:"unique_count"`
}

// Converter functions

func requestToDomainPapers(reqs []paperRequest) []*domain.Paper {
	papers := make([]*domain.Paper, len(reqs))
	for i, r := range reqs {
		authors := r.Authors
		if authors == nil {
			authors = []string{}
		}
		papers[i] = &domain.Paper{
			Title:    r.Title,
			Abstract: r.Abstract,
			Authors:  authors,
			Year:     r.Year,
			DOI:      r.DOI,
			Journal:  r.Journal,
			Database: r.Database,
		}
	}
	return papers
}

func domainPaperToResponse(p *domain.Paper) paperResponse {
	authors := p.Authors
	if authors == nil {
		authors = []string{}
	}
	return paperResponse{
		Title:    p.Title,
		Abstract: p.Abstract,
		Authors:  authors,
		Year:     p.Year,
		DOI:      p.DOI,
		Journal:  p.Journal,
		Database: p.Database,
	}
}

func resultToResponse(inputCount int, result dedup.Result) dedupeResponse {
	papers := make([]paperResponse, len(result.UniquePapers))
	for i, p := range result.UniquePapers {
		papers[i] = domainPaperToResponse(p)
	}
	return dedupeResponse{
		UniquePapers:      papers,
		DuplicatesRemoved: result.DuplicatesRemoved,
		DuplicateGroups:   result.DuplicateGroups,
		InputCount:        inputCount,
		UniqueCount:       len(result.UniquePapers),
	}
}

func tableResultToResponse(inputCount int, result dedup.TableResult) tableResponse {
	return tableResponse{
		UniqueRows:        result.UniqueRows,
		DuplicatesRemoved: result.DuplicatesRemoved,
		DuplicateGroups:   result.DuplicateGroups,
		InputCount:        inputCount,
		UniqueCount:       len(result.UniqueRows),
	}
}
