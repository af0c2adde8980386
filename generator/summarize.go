package generator

import (
	"context"
	"fmt"
	"strings"
)

// SummarySystemPrompt asks for a summary and a purchase hook in a fixed delimited layout.
const SummarySystemPrompt = `당신은 와인 마케팅 전문가입니다.

블로그 글을 받으면 다음 두 가지를 생성해주세요:

1. **요약**: 400자 이내로 핵심 내용 요약
   - 와인의 주요 특징 (테루아, 품종, 테이스팅 노트)
   - 와이너리 핵심 정보
   - 구매 추천 이유

2. **후킹 메시지**: 2-4줄의 강렬한 구매 유도 메시지
   - 감성적이고 설득력 있게 작성
   - FOMO(Fear Of Missing Out) 자극
   - 구체적인 가치 제안 포함
   - 과장은 금지, 진정성 있게

## 응답 형식
다음 형식을 **정확히** 따라주세요:

=== 요약 ===
[400자 이내 요약]

=== 후킹 메시지 ===
[2-4줄의 구매 유도 메시지]`

const (
	summaryTemperature = 0.7
	summaryMaxTokens   = 800
)

// Summary is the parsed summarizer answer.
type Summary struct {
	Summary     string `json:"summary"`
	HookMessage string `json:"hookMessage"`
	Usage       Usage  `json:"usage"`
}

// Summarizer condenses a post and writes a short purchase hook.
type Summarizer struct {
	llm   LLMClient
	model string
}

func NewSummarizer(llm LLMClient, model string) *Summarizer {
	return &Summarizer{llm: llm, model: model}
}

// Summarize makes one call and parses the delimited answer.
func (s *Summarizer) Summarize(ctx context.Context, content string) (Summary, error) {
	if strings.TrimSpace(content) == "" {
		return Summary{}, &ValidationError{Message: "요약할 글을 입력해주세요."}
	}
	c, err := s.llm.Complete(ctx, Prompt{
		Model:       s.model,
		System:      SummarySystemPrompt,
		User:        "다음 블로그 글을 요약하고 후킹 메시지를 만들어주세요:\n\n" + content,
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	})
	if err != nil {
		return Summary{}, fmt.Errorf("summarize content: %w", err)
	}
	summary, hook := ParseSummary(c.Text)
	return Summary{Summary: summary, HookMessage: hook, Usage: c.Usage}, nil
}
