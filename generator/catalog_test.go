package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogFor(t *testing.T) {
	assert.Equal(t, "gpt-5-mini", CatalogFor("openai").DefaultModel())
	assert.Equal(t, "deepseek-chat", CatalogFor("deepseek").DefaultModel())
	assert.Equal(t, "deepseek-chat", CatalogFor("DeepSeek").DefaultModel())
	assert.Equal(t, "gpt-5-mini", CatalogFor("mock").DefaultModel())
	assert.Equal(t, "gemini-2.5-flash", CatalogFor("Gemini").DefaultModel())
}

func TestCatalog_Resolve(t *testing.T) {
	c := CatalogFor("openai")
	assert.Equal(t, "gpt-5.2", c.Resolve("gpt-5.2"))
	assert.Equal(t, "gpt-5-nano", c.Resolve(" gpt-5-nano "))
	assert.Equal(t, "gpt-5-mini", c.Resolve(""))
	assert.Equal(t, "gpt-5-mini", c.Resolve("gpt-4"))
}

func TestCatalog_ModelsIsCopy(t *testing.T) {
	c := CatalogFor("openai")
	ms := c.Models()
	ms[0].ID = "changed"
	assert.Equal(t, "gpt-5.2", c.Models()[0].ID)
}

func TestCatalog_Estimate(t *testing.T) {
	c := CatalogFor("openai")

	// normal tier on gpt-5-mini: 1200 in, 2500 out
	est := c.Estimate("gpt-5-mini", "normal")
	wantUSD := 1200.0/1_000_000*0.25 + 2500.0/1_000_000*2.0
	assert.InDelta(t, wantUSD, est.CostUSD, 1e-12)
	assert.InDelta(t, wantUSD*USDToKRW, est.CostKRW, 1e-9)
	assert.Equal(t, 100, est.Seconds)

	// unknown inputs resolve to the defaults
	assert.Equal(t, est, c.Estimate("nope", "nope"))

	assert.Less(t, c.Estimate("gpt-5-nano", "short").CostKRW, c.Estimate("gpt-5.2", "detailed").CostKRW)
}

func TestCatalog_Cost(t *testing.T) {
	c := CatalogFor("openai")
	got := c.Cost("gpt-5.2", Usage{PromptTokens: 1_000_000, CompletionTokens: 100_000})
	assert.InDelta(t, 1.25+1.0, got, 1e-9)
}

func TestLookupLength(t *testing.T) {
	for _, key := range LengthKeys() {
		l, ok := LookupLength(key)
		assert.True(t, ok)
		assert.Equal(t, key, l.Key)
	}

	l, ok := LookupLength("")
	assert.False(t, ok)
	assert.Equal(t, "normal", l.Key)

	s, _ := LookupLength("short")
	n, _ := LookupLength("normal")
	d, _ := LookupLength("detailed")
	assert.Equal(t, []int64{2500, 4000, 6000}, []int64{s.MaxTokens, n.MaxTokens, d.MaxTokens})
	assert.Equal(t, []string{"짧게", "보통", "자세히"}, []string{s.Label, n.Label, d.Label})
}

func TestCatalog_WithDefault(t *testing.T) {
	base := CatalogFor("openai")

	t.Run("blank keeps table", func(t *testing.T) {
		assert.Same(t, base, base.WithDefault(" "))
	})

	t.Run("known model", func(t *testing.T) {
		c := base.WithDefault("gpt-5.2")
		assert.Equal(t, "gpt-5.2", c.DefaultModel())
		assert.Equal(t, "gpt-5.2", c.Resolve("unknown"))
		assert.Len(t, c.Models(), 3)
		assert.Equal(t, "gpt-5-mini", base.DefaultModel())
	})

	t.Run("unlisted model is added", func(t *testing.T) {
		c := base.WithDefault("gpt-4.1")
		assert.Equal(t, "gpt-4.1", c.Resolve(""))
		assert.Equal(t, "gpt-4.1", c.Resolve("gpt-4.1"))
		assert.Len(t, c.Models(), 4)
		assert.Len(t, base.Models(), 3)
	})
}
