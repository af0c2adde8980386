package generator

import (
	"context"
	"fmt"
	"strings"
)

// Corrector revises only the spans the verifier flagged.
type Corrector struct {
	llm LLMClient
}

func NewCorrector(llm LLMClient) *Corrector {
	return &Corrector{llm: llm}
}

// Correct returns the revised draft, or the original when the model answers with nothing.
func (c *Corrector) Correct(ctx context.Context, model, draft string, issues []string, maxTokens int64) (string, Usage, error) {
	if strings.TrimSpace(draft) == "" {
		return draft, Usage{}, ErrEmptyContent
	}
	out, err := c.llm.Complete(ctx, BuildCorrectionPrompt(model, draft, issues, maxTokens))
	if err != nil {
		return draft, out.Usage, fmt.Errorf("correct draft: %w", err)
	}
	if out.Text == "" {
		return draft, out.Usage, nil
	}
	return out.Text, out.Usage, nil
}
