package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/grantpilot/sectiond/internal/domain"
	"github.com/grantpilot/sectiond/internal/prompt"
	"github.com/grantpilot/sectiond/internal/retrieval"
)

// GenerateSection runs one orchestration: fetch candidates, retrieve top-K,
// assemble the prompt, call the provider, persist and return the result.
// Any failure before persistence leaves no history entry behind.
func (s *Service) GenerateSection(ctx context.Context, req *domain.GenerateSectionRequest) (*domain.GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	candidates, err := s.store.FindDocumentsByCompany(ctx, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}
	log.Printf("Fetched %d documents for company_id=%s", len(candidates), req.CompanyID)

	contexts, err := retrieval.TopK(req.Text, candidates, s.topK)
	if err != nil {
		return nil, err
	}

	systemPrompt := prompt.SystemPrompt(req.SectionType)
	userPrompt := prompt.UserPrompt(req.Text, prompt.FormatContexts(contexts))

	start := time.Now()
	generated, err := s.llm.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}
	log.Printf("Generated %s section for company_id=%s in %dms", req.SectionType, req.CompanyID, time.Since(start).Milliseconds())

	sources := make([]string, 0, len(contexts))
	for _, c := range contexts {
		sources = append(sources, c.ID)
	}

	// The timestamp is assigned here, at the moment of successful
	// generation, never as a struct default.
	result := &domain.GenerationResult{
		RequestID:     uuid.New().String(),
		CompanyID:     req.CompanyID,
		SectionType:   req.SectionType,
		GeneratedText: generated,
		Sources:       sources,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.InsertHistory(ctx, result); err != nil {
		return nil, fmt.Errorf("%w: generation succeeded but the result could not be saved: %v", domain.ErrPersistence, err)
	}
	return result, nil
}
