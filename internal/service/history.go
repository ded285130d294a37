package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/grantpilot/sectiond/internal/domain"
)

// History lists persisted generation results for a company, newest first.
// A company without history yields an empty item list, not an error.
func (s *Service) History(ctx context.Context, companyID string, limit int) (*domain.HistoryResponse, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, fmt.Errorf("%w: company_id is required", domain.ErrValidation)
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	results, err := s.store.ListHistory(ctx, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}

	items := make([]domain.HistoryItem, 0, len(results))
	for _, r := range results {
		items = append(items, domain.HistoryItem{
			RequestID:     r.RequestID,
			SectionType:   r.SectionType,
			GeneratedText: r.GeneratedText,
			CreatedAt:     r.CreatedAt,
			Sources:       r.Sources,
		})
	}
	return &domain.HistoryResponse{CompanyID: companyID, Items: items}, nil
}
