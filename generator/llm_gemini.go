package generator

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiLLM implements LLMClient on top of the Google GenAI SDK.
type GeminiLLM struct {
	Model  string
	client *genai.Client
}

func NewGeminiLLMFromConfig(ctx context.Context, cfg *LLMSettings) (*GeminiLLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key missing; set GEMINI_API_KEY or llm.api_key")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiLLM{Model: cfg.Model, client: client}, nil
}

func (g *GeminiLLM) Complete(ctx context.Context, prompt Prompt) (Completion, error) {
	model := prompt.Model
	if model == "" {
		model = g.Model
	}

	gc := &genai.GenerateContentConfig{}
	if prompt.System != "" {
		gc.SystemInstruction = genai.NewContentFromText(prompt.System, genai.RoleUser)
	}
	if prompt.Temperature > 0 {
		gc.Temperature = genai.Ptr(float32(prompt.Temperature))
	}
	if prompt.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(prompt.MaxTokens)
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt.User), gc)
	if err != nil {
		return Completion{}, err
	}
	var usage Usage
	if md := resp.UsageMetadata; md != nil {
		usage = Usage{
			PromptTokens:     int64(md.PromptTokenCount),
			CompletionTokens: int64(md.CandidatesTokenCount),
			TotalTokens:      int64(md.TotalTokenCount),
		}
	}
	return Completion{Text: resp.Text(), Usage: usage}, nil
}
