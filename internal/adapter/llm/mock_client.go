package llm

import (
	"context"
	"fmt"
)

// MockClient is a mock implementation of CompletionClient for local runs
// without provider credentials.
type MockClient struct{}

// NewMockClient creates a new mock completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements CompletionClient interface.
var _ CompletionClient = (*MockClient)(nil)

// Complete returns a canned draft derived from the prompt sizes.
func (m *MockClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return fmt.Sprintf("Mock section draft generated from %d prompt bytes.", len(systemPrompt)+len(userPrompt)), nil
}
