package generator

import (
	"math"
	"strings"
)

// USDToKRW is the fixed exchange rate used for cost previews.
const USDToKRW = 1300

// baseSeconds covers the fact-check and verification calls that precede/follow generation.
const baseSeconds = 50

// ModelInfo is one selectable model with its list price (USD per 1M tokens).
type ModelInfo struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	InputUSD    float64 `json:"inputPerMillionUsd"`
	OutputUSD   float64 `json:"outputPerMillionUsd"`
	// output tokens per second, for time estimates
	TokensPerSecond float64 `json:"-"`
}

// Catalog is the immutable model table for one provider.
type Catalog struct {
	provider     string
	defaultModel string
	models       []ModelInfo
}

// Estimate is a cost and latency preview for a model/length pair.
type Estimate struct {
	CostUSD float64 `json:"costUsd"`
	CostKRW float64 `json:"costKrw"`
	Seconds int     `json:"seconds"`
}

var openAICatalog = &Catalog{
	provider:     "openai",
	defaultModel: "gpt-5-mini",
	models: []ModelInfo{
		{ID: "gpt-5.2", Label: "GPT-5.2 (고품질)", Description: "최신 GPT-5 모델", InputUSD: 1.25, OutputUSD: 10.0, TokensPerSecond: 20},
		{ID: "gpt-5-mini", Label: "GPT-5 mini (추천)", Description: "빠르고 비용 효율적", InputUSD: 0.25, OutputUSD: 2.0, TokensPerSecond: 50},
		{ID: "gpt-5-nano", Label: "GPT-5 nano (초저가)", Description: "가장 빠르고 저렴한 옵션", InputUSD: 0.05, OutputUSD: 0.4, TokensPerSecond: 80},
	},
}

var geminiCatalog = &Catalog{
	provider:     "gemini",
	defaultModel: "gemini-2.5-flash",
	models: []ModelInfo{
		{ID: "gemini-2.5-pro", Label: "Gemini 2.5 Pro (고품질)", Description: "가장 정교한 Gemini 모델", InputUSD: 1.25, OutputUSD: 10.0, TokensPerSecond: 30},
		{ID: "gemini-2.5-flash", Label: "Gemini 2.5 Flash (추천)", Description: "빠르고 비용 효율적", InputUSD: 0.30, OutputUSD: 2.5, TokensPerSecond: 60},
		{ID: "gemini-2.5-flash-lite", Label: "Gemini 2.5 Flash-Lite (초저가)", Description: "가장 빠르고 저렴한 옵션", InputUSD: 0.10, OutputUSD: 0.4, TokensPerSecond: 90},
	},
}

var deepSeekCatalog = &Catalog{
	provider:     "deepseek",
	defaultModel: "deepseek-chat",
	models: []ModelInfo{
		{ID: "deepseek-chat", Label: "DeepSeek Chat (추천)", Description: "빠르고 비용 효율적", InputUSD: 0.27, OutputUSD: 1.10, TokensPerSecond: 40},
		{ID: "deepseek-reasoner", Label: "DeepSeek Reasoner (고품질)", Description: "추론 특화 모델", InputUSD: 0.55, OutputUSD: 2.19, TokensPerSecond: 25},
	},
}

// CatalogFor returns the table for a provider. Unknown providers and mock
// use the OpenAI table.
func CatalogFor(provider string) *Catalog {
	switch strings.ToLower(provider) {
	case "gemini":
		return geminiCatalog
	case "deepseek":
		return deepSeekCatalog
	default:
		return openAICatalog
	}
}

// WithDefault returns a copy whose default is id. An id missing from the
// table is added without pricing so requests naming it are not rewritten.
func (c *Catalog) WithDefault(id string) *Catalog {
	id = strings.TrimSpace(id)
	if id == "" {
		return c
	}
	out := &Catalog{provider: c.provider, defaultModel: id, models: c.Models()}
	if _, ok := c.Lookup(id); !ok {
		out.models = append(out.models, ModelInfo{ID: id, Label: id, Description: "설정된 모델"})
	}
	return out
}

// Provider names the table's provider family.
func (c *Catalog) Provider() string { return c.provider }

// DefaultModel is used for blank or unknown model identifiers.
func (c *Catalog) DefaultModel() string { return c.defaultModel }

// Models returns a copy of the table.
func (c *Catalog) Models() []ModelInfo {
	out := make([]ModelInfo, len(c.models))
	copy(out, c.models)
	return out
}

// Lookup finds a model by id.
func (c *Catalog) Lookup(id string) (ModelInfo, bool) {
	for _, m := range c.models {
		if m.ID == id {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// Resolve maps a requested identifier onto a known model id.
func (c *Catalog) Resolve(id string) string {
	if m, ok := c.Lookup(strings.TrimSpace(id)); ok {
		return m.ID
	}
	return c.defaultModel
}

// Estimate previews one generation run.
func (c *Catalog) Estimate(modelID, lengthKey string) Estimate {
	m, _ := c.Lookup(c.Resolve(modelID))
	l, _ := LookupLength(lengthKey)

	usd := float64(l.EstimatedInput)/1_000_000*m.InputUSD + float64(l.EstimatedOutput)/1_000_000*m.OutputUSD
	secs := float64(baseSeconds)
	if m.TokensPerSecond > 0 {
		secs += float64(l.EstimatedOutput) / m.TokensPerSecond
	}
	return Estimate{
		CostUSD: usd,
		CostKRW: usd * USDToKRW,
		Seconds: int(math.Round(secs)),
	}
}

// Cost prices actual usage for a model.
func (c *Catalog) Cost(modelID string, u Usage) float64 {
	m, _ := c.Lookup(c.Resolve(modelID))
	return float64(u.PromptTokens)/1_000_000*m.InputUSD + float64(u.CompletionTokens)/1_000_000*m.OutputUSD
}
