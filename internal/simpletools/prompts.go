package simpletools

import (
	"context"

	"simpletools/internal/api"
	"simpletools/pkg/logging"
)

const (
	systemPromptName        = "system"
	systemPromptDescription = "Sample system prompt"
	systemPromptText        = "Sample system prompt"
)

// GetPrompts implements api.PromptProvider.
func (p *Provider) GetPrompts() []api.PromptMetadata {
	return []api.PromptMetadata{
		{Name: systemPromptName, Description: systemPromptDescription},
	}
}

// GetPrompt implements api.PromptProvider. Prompts are not gated on
// credentials; they carry no user data.
func (p *Provider) GetPrompt(ctx context.Context, promptName string, args map[string]string) (*api.PromptResult, error) {
	logging.Debug("SimpleTools", "Rendering prompt %s", promptName)

	if promptName != systemPromptName {
		return nil, api.NewUnknownPromptError(promptName)
	}

	return &api.PromptResult{
		Description: systemPromptDescription,
		Messages: []api.PromptMessage{
			{Role: "user", Text: systemPromptText},
		},
	}, nil
}
