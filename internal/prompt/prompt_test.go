package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grantpilot/sectiond/internal/domain"
)

func TestFormatContextsEmpty(t *testing.T) {
	assert.Equal(t, "", FormatContexts(nil))
	assert.Equal(t, "", FormatContexts([]domain.Document{}))
}

func TestFormatContextsSingleBlock(t *testing.T) {
	got := FormatContexts([]domain.Document{
		{ID: "doc2", SectionType: "market_analysis", Text: "Doc2"},
	})
	assert.Equal(t, "[MARKET_ANALYSIS]\nDoc2", got)
}

func TestFormatContextsSeparatesBlocks(t *testing.T) {
	got := FormatContexts([]domain.Document{
		{SectionType: "market_analysis", Text: "first"},
		{SectionType: "ip_strategy", Text: "second"},
	})
	assert.Equal(t, "[MARKET_ANALYSIS]\nfirst\n\n[IP_STRATEGY]\nsecond", got)
}

func TestSystemPromptNamesSectionTwice(t *testing.T) {
	got := SystemPrompt("ip_strategy")
	assert.Equal(t, 2, strings.Count(got, "[IP_STRATEGY]"))
	assert.Contains(t, got, "context")
	assert.Contains(t, got, "concise")
}

func TestSystemPromptDeterministic(t *testing.T) {
	assert.Equal(t, SystemPrompt("team"), SystemPrompt("team"))
}

func TestUserPromptLabels(t *testing.T) {
	got := UserPrompt("our company builds solar panels", "[TEAM]\nfounders")
	assert.Equal(t, "User input: our company builds solar panels\n\nContext snippets:\n[TEAM]\nfounders", got)
}

func TestUserPromptEmptyContextBlock(t *testing.T) {
	got := UserPrompt("input", "")
	assert.True(t, strings.HasSuffix(got, "Context snippets:\n"))
}
