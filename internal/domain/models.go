// Package domain defines the core types of the section generation service.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// Document is a stored text record belonging to exactly one company.
// Documents are created by an external ingestion process and are read-only here.
type Document struct {
	ID          string `json:"id" db:"id"`
	CompanyID   string `json:"company_id" db:"company_id"`
	SectionType string `json:"section_type" db:"section_type"`
	Text        string `json:"text" db:"text"`
}

// GenerateSectionRequest is the payload of POST /generate-section.
type GenerateSectionRequest struct {
	CompanyID   string `json:"company_id"`
	SectionType string `json:"section_type"`
	Text        string `json:"text"`
}

// Validate checks that all required fields are present before any I/O happens.
func (r *GenerateSectionRequest) Validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"company_id", r.CompanyID},
		{"section_type", r.SectionType},
		{"text", r.Text},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, f.name)
		}
	}
	return nil
}

// GenerationResult is the record produced by one successful generation.
// It is persisted immediately after creation and never mutated.
type GenerationResult struct {
	RequestID     string    `json:"request_id"`
	CompanyID     string    `json:"company_id"`
	SectionType   string    `json:"section_type"`
	GeneratedText string    `json:"generated_text"`
	Sources       []string  `json:"sources"`
	CreatedAt     time.Time `json:"created_at"`
}

// HistoryItem is the projection of a GenerationResult returned by history listings.
type HistoryItem struct {
	RequestID     string    `json:"request_id"`
	SectionType   string    `json:"section_type"`
	GeneratedText string    `json:"generated_text"`
	CreatedAt     time.Time `json:"created_at"`
	Sources       []string  `json:"sources"`
}

// HistoryResponse is the payload of GET /history/:company_id.
type HistoryResponse struct {
	CompanyID string        `json:"company_id"`
	Items     []HistoryItem `json:"items"`
}
