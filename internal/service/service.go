// Package service implements the section generation pipeline and history reads.
package service

import (
	"github.com/grantpilot/sectiond/internal/adapter/llm"
	"github.com/grantpilot/sectiond/internal/repository"
)

const (
	// DefaultTopK is the number of context documents retrieved per request.
	DefaultTopK = 3
	// DefaultHistoryLimit caps history listings when the caller gives no limit.
	DefaultHistoryLimit = 20
)

// Service composes the document store and the completion client into the
// generate and list-history operations.
type Service struct {
	store repository.Store
	llm   llm.CompletionClient
	topK  int
}

// New creates a service. A non-positive topK falls back to DefaultTopK.
func New(store repository.Store, client llm.CompletionClient, topK int) *Service {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Service{
		store: store,
		llm:   client,
		topK:  topK,
	}
}
