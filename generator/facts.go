package generator

import (
	"context"

	"go.uber.org/zap"
)

// FactExtractor pulls confidently-known facts about a wine out of the model.
type FactExtractor struct {
	llm LLMClient
	log *zap.Logger
}

func NewFactExtractor(llm LLMClient, log *zap.Logger) *FactExtractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &FactExtractor{llm: llm, log: log}
}

// Extract never fails: on any call error it returns an empty FactSet and
// generation falls back to general wine knowledge.
func (e *FactExtractor) Extract(ctx context.Context, model, description string) (FactSet, Usage) {
	c, err := e.llm.Complete(ctx, BuildFactPrompt(model, description))
	if err != nil {
		e.log.Warn("fact extraction failed, continuing without facts", zap.String("model", model), zap.Error(err))
		return FactSet{}, c.Usage
	}
	return FactSet{Text: c.Text}, c.Usage
}
