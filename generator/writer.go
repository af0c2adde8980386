package generator

import (
	"context"
	"fmt"
)

// Writer produces the grounded draft.
type Writer struct {
	llm LLMClient
	tpl *Templates
}

func NewWriter(llm LLMClient, tpl *Templates) *Writer {
	if tpl == nil {
		tpl = DefaultTemplates()
	}
	return &Writer{llm: llm, tpl: tpl}
}

// Write returns the model's draft. An empty draft is not an error.
func (w *Writer) Write(ctx context.Context, model string, req GenerationRequest, facts FactSet, length LengthConfig) (string, Usage, error) {
	c, err := w.llm.Complete(ctx, BuildWriterPrompt(w.tpl, model, req, facts, length))
	if err != nil {
		return "", c.Usage, fmt.Errorf("generate draft: %w", err)
	}
	return c.Text, c.Usage, nil
}
