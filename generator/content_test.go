package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditor_Modify(t *testing.T) {
	t.Run("blank input is rejected before calling", func(t *testing.T) {
		llm := NewScriptedLLM()
		_, err := NewEditor(llm, "gpt-4o-mini").Modify(context.Background(), "본문", "  ")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "현재 글과 수정 요청을 입력해주세요.", ve.Message)
		assert.Equal(t, 0, llm.CallCount())
	})

	t.Run("returns revised post", func(t *testing.T) {
		llm := NewScriptedLLM(ScriptedResponse{Text: "수정본", Usage: Usage{TotalTokens: 9}})
		c, err := NewEditor(llm, "gpt-4o-mini").Modify(context.Background(), "원문", "더 짧게")
		require.NoError(t, err)
		assert.Equal(t, "수정본", c.Text)
		assert.Equal(t, int64(9), c.Usage.TotalTokens)

		p := llm.Calls()[0]
		assert.Equal(t, "gpt-4o-mini", p.Model)
		assert.Equal(t, EditSystemPrompt, p.System)
		assert.Contains(t, p.User, "=== 현재 글 ===\n원문")
		assert.Contains(t, p.User, "=== 수정 요청 ===\n더 짧게")
		assert.Equal(t, int64(4000), p.MaxTokens)
	})

	t.Run("call error is wrapped", func(t *testing.T) {
		llm := NewScriptedLLM(ScriptedResponse{Err: errors.New("boom")})
		_, err := NewEditor(llm, "m").Modify(context.Background(), "a", "b")
		assert.EqualError(t, err, "modify content: boom")
		assert.Equal(t, "수정 중 오류: boom", ClientMessage(err, "OpenAI", "수정"))
	})
}

func TestSummarizer_Summarize(t *testing.T) {
	t.Run("blank content", func(t *testing.T) {
		llm := NewScriptedLLM()
		_, err := NewSummarizer(llm, "m").Summarize(context.Background(), "\n")
		require.Error(t, err)
		assert.Equal(t, "요약할 글을 입력해주세요.", err.Error())
		assert.Equal(t, 0, llm.CallCount())
	})

	t.Run("parses sections", func(t *testing.T) {
		llm := NewScriptedLLM(Texts("=== 요약 ===\n보르도의 클래식.\n\n=== 후킹 메시지 ===\n지금 아니면 늦습니다.\n")...)
		s, err := NewSummarizer(llm, "m").Summarize(context.Background(), "본문")
		require.NoError(t, err)
		assert.Equal(t, "보르도의 클래식.", s.Summary)
		assert.Equal(t, "지금 아니면 늦습니다.", s.HookMessage)

		p := llm.Calls()[0]
		assert.Equal(t, 0.7, p.Temperature)
		assert.Equal(t, int64(800), p.MaxTokens)
		assert.Equal(t, "다음 블로그 글을 요약하고 후킹 메시지를 만들어주세요:\n\n본문", p.User)
	})
}

func TestParseSummary(t *testing.T) {
	t.Run("missing hook", func(t *testing.T) {
		s, h := ParseSummary("=== 요약 ===\n요약만 있음")
		assert.Equal(t, "요약만 있음", s)
		assert.Empty(t, h)
	})

	t.Run("no markers", func(t *testing.T) {
		s, h := ParseSummary("그냥 텍스트")
		assert.Empty(t, s)
		assert.Empty(t, h)
	})

	t.Run("multiline", func(t *testing.T) {
		s, h := ParseSummary("=== 요약 ===\n첫 줄\n둘째 줄\n=== 후킹 메시지 ===\n한 줄\n두 줄")
		assert.Equal(t, "첫 줄\n둘째 줄", s)
		assert.Equal(t, "한 줄\n두 줄", h)
	})
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "샤토 테스트 2018", Title("\n# 샤토 테스트 2018\n=== 인트로 ===\n본문"))
	assert.Equal(t, "본문", Title("=== 인트로 ===\n\n본문"))
	assert.Empty(t, Title("  \n"))
}

func TestMockLLM(t *testing.T) {
	a, err := NewAgent(MockLLM{}, AgentConfig{})
	require.NoError(t, err)

	res, err := a.Generate(context.Background(), GenerationRequest{WineName: "Chateau Test"})
	require.NoError(t, err)
	assert.Contains(t, res.Content, "Chateau Test")
	assert.False(t, res.Corrected)

	s, err := NewSummarizer(MockLLM{}, "m").Summarize(context.Background(), "본문")
	require.NoError(t, err)
	assert.NotEmpty(t, s.Summary)
	assert.NotEmpty(t, s.HookMessage)
}

func TestTemplates(t *testing.T) {
	tpl := DefaultTemplates()
	assert.NotEmpty(t, tpl.System())
	assert.Contains(t, tpl.Contact(), "구매 및 문의 안내")
	for _, key := range LengthKeys() {
		assert.NotEmpty(t, tpl.Example(key), key)
	}
	assert.Equal(t, tpl.Example("normal"), tpl.Example("unknown"))
	assert.NotEqual(t, tpl.Example("short"), tpl.Example("detailed"))
}

func TestUsage_Add(t *testing.T) {
	var u Usage
	u.Add(Usage{PromptTokens: 1, CompletionTokens: 2, TotalTokens: 3})
	u.Add(Usage{PromptTokens: 4, CompletionTokens: 5, TotalTokens: 9})
	assert.Equal(t, Usage{PromptTokens: 5, CompletionTokens: 7, TotalTokens: 12}, u)
}
