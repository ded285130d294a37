package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvMode is the environment variable name for mode selection.
	EnvMode = "SECTIOND_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewCompletionClient creates a completion client based on the SECTIOND_MODE
// environment variable. If SECTIOND_MODE=MOCK, returns a MockClient;
// otherwise returns a real Client.
func NewCompletionClient(baseURL, apiKey, model string, maxTokens int, timeout time.Duration) CompletionClient {
	if os.Getenv(EnvMode) == ModeMock {
		log.Println("SECTIOND_MODE=MOCK detected, using mock completion client")
		return NewMockClient()
	}

	return NewClient(baseURL, apiKey, model, maxTokens, timeout)
}
