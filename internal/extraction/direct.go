package extraction

import (
	"context"

	"github.com/jonathan/resume-extractor/internal/llm"
	"github.com/jonathan/resume-extractor/internal/types"
)

// DirectStrategy extracts through a provider client held by the caller.
type DirectStrategy struct {
	client llm.Client
}

// NewDirectStrategy wraps an LLM client as an extraction strategy.
func NewDirectStrategy(client llm.Client) *DirectStrategy {
	return &DirectStrategy{client: client}
}

// Name identifies the strategy
func (s *DirectStrategy) Name() string {
	return "direct"
}

// Extract prompts the model and decodes its JSON response.
func (s *DirectStrategy) Extract(ctx context.Context, resumeText string) (*types.ProfileRecord, error) {
	text, truncated := TruncateResume(resumeText)

	raw, err := s.client.GenerateJSON(ctx, systemPrompt, BuildUserPrompt(text))
	if err != nil {
		return nil, err
	}

	record, err := decodeResponse(raw)
	if err != nil {
		return nil, err
	}
	if truncated {
		record.AddWarning("Resume text was truncated before extraction")
	}
	return record, nil
}
