// Package llm provides the client for the external text generation provider.
package llm

import "context"

// CompletionClient defines the single completion operation the service needs.
type CompletionClient interface {
	// Complete sends a system/user prompt pair to the provider and returns
	// the trimmed text of the first completion choice. All failure modes
	// surface as domain.ErrGenerationFailed.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Ensure Client implements CompletionClient interface.
var _ CompletionClient = (*Client)(nil)
