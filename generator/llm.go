package generator

import "context"

// LLMClient 는 모델 호출을 추상화한다. 테스트에서는 ScriptedLLM 으로 대체한다.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (Completion, error)
}

// LLMSettings carries what a concrete client needs to connect.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// Completion is one model answer plus the tokens it cost.
type Completion struct {
	Text  string
	Usage Usage
}

// Usage mirrors the provider token accounting.
type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// Add accumulates another call's usage.
func (u *Usage) Add(o Usage) {
	u.PromptTokens += o.PromptTokens
	u.CompletionTokens += o.CompletionTokens
	u.TotalTokens += o.TotalTokens
}
