// Package prompt assembles the system and user prompts handed to the
// generation provider. Everything here is deterministic string templating.
package prompt

import (
	"fmt"
	"strings"

	"github.com/grantpilot/sectiond/internal/domain"
)

// FormatContexts renders retrieved documents as context blocks, each headed
// by its section type in uppercase and separated by a blank line. Empty input
// yields an empty string.
func FormatContexts(contexts []domain.Document) string {
	blocks := make([]string, 0, len(contexts))
	for _, c := range contexts {
		blocks = append(blocks, fmt.Sprintf("[%s]\n%s", strings.ToUpper(c.SectionType), c.Text))
	}
	return strings.Join(blocks, "\n\n")
}

// SystemPrompt returns the instruction for generating one section type.
func SystemPrompt(sectionType string) string {
	section := strings.ToUpper(sectionType)
	return fmt.Sprintf(
		"You are an expert at writing grant application document sections. "+
			"The user will ask you to generate the [%s] section. "+
			"Use the provided context snippets (labeled with their original section types) "+
			"to generate a coherent, comprehensive [%s] section. "+
			"Be concise and make sure to use factual information from the context whenever possible.",
		section, section)
}

// UserPrompt combines the caller's input text with the formatted context block.
func UserPrompt(inputText, contextBlock string) string {
	return fmt.Sprintf("User input: %s\n\nContext snippets:\n%s", inputText, contextBlock)
}
