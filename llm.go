package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"wine_blog_writer/config"
	"wine_blog_writer/generator"
)

func buildLLM(ctx context.Context, cfg config.Config) (generator.LLMClient, error) {
	settings := &generator.LLMSettings{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
	}
	if settings.Model == "" {
		settings.Model = generator.CatalogFor(cfg.LLM.Provider).DefaultModel()
	}

	switch cfg.LLM.Provider {
	case "openai":
		return generator.NewOpenAILLMFromConfig(settings)
	case "deepseek":
		// DeepSeek 은 OpenAI 호환 API 라 같은 어댑터를 쓴다.
		if settings.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAILLMFromConfig(settings)
	case "gemini":
		return generator.NewGeminiLLMFromConfig(ctx, settings)
	case "mock":
		return generator.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}

// pipeline bundles everything the commands share.
type pipeline struct {
	agent      *generator.Agent
	editor     *generator.Editor
	summarizer *generator.Summarizer
}

func buildPipeline(ctx context.Context, cfg config.Config, log *zap.Logger) (*pipeline, error) {
	llm, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}
	agent, err := generator.NewAgent(llm, generator.AgentConfig{
		Catalog: generator.CatalogFor(cfg.LLM.Provider).WithDefault(cfg.LLM.Model),
		Logger:  log,
	})
	if err != nil {
		return nil, err
	}
	return &pipeline{
		agent:      agent,
		editor:     generator.NewEditor(llm, cfg.LLM.UtilityModel),
		summarizer: generator.NewSummarizer(llm, cfg.LLM.UtilityModel),
	}, nil
}
