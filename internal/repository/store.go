// Package repository provides persistence for documents and generation history.
package repository

import (
	"context"

	"github.com/grantpilot/sectiond/internal/domain"
)

// Store defines the persistence operations consumed by the service.
// History is append-only; no update or delete operations exist.
type Store interface {
	// FindDocumentsByCompany returns all documents for a company in
	// insertion order. A company without documents yields an empty slice.
	FindDocumentsByCompany(ctx context.Context, companyID string) ([]domain.Document, error)

	// InsertDocument stores a document. Ingestion has no HTTP surface;
	// this exists for seeding and tests.
	InsertDocument(ctx context.Context, doc *domain.Document) error

	// InsertHistory durably appends a generation result.
	InsertHistory(ctx context.Context, result *domain.GenerationResult) error

	// ListHistory returns results for a company ordered by created_at
	// descending, truncated to limit. A company without history yields an
	// empty slice.
	ListHistory(ctx context.Context, companyID string, limit int) ([]domain.GenerationResult, error)

	Close() error
}
