package generator

import (
	"context"
	"fmt"
	"strings"
)

// EditSystemPrompt instructs the model to apply a user's edit request in place.
const EditSystemPrompt = `당신은 와인 블로그 글 편집 전문가입니다.

사용자의 수정 요청에 따라 기존 글을 수정해주세요.

## 수정 규칙
1. 사용자의 요청에 해당하는 부분만 수정하세요
2. 전체 구조와 형식은 유지하세요
3. 수정하지 않는 부분은 그대로 유지하세요
4. 이미지 마커 ([이미지N: ...])는 유지하세요
5. 섹션 구분 (=== ... ===)은 유지하세요

## 응답 형식
수정된 전체 글을 그대로 반환하세요. 설명이나 주석은 추가하지 마세요.`

const (
	editTemperature = 0.5
	editMaxTokens   = 4000
)

// BuildEditPrompt 는 수정 요청용 프롬프트를 만든다.
func BuildEditPrompt(model, current, request string) Prompt {
	user := fmt.Sprintf(`다음 블로그 글을 수정해주세요.

=== 현재 글 ===
%s

=== 수정 요청 ===
%s

=== 수정된 전체 글을 작성해주세요 ===`, current, request)
	return Prompt{
		Model:       model,
		System:      EditSystemPrompt,
		User:        user,
		Temperature: editTemperature,
		MaxTokens:   editMaxTokens,
	}
}

// Editor applies free-form edit requests with a single model call; no fact pipeline.
type Editor struct {
	llm   LLMClient
	model string
}

func NewEditor(llm LLMClient, model string) *Editor {
	return &Editor{llm: llm, model: model}
}

// Modify returns the revised post.
func (e *Editor) Modify(ctx context.Context, current, request string) (Completion, error) {
	if strings.TrimSpace(current) == "" || strings.TrimSpace(request) == "" {
		return Completion{}, &ValidationError{Message: "현재 글과 수정 요청을 입력해주세요."}
	}
	c, err := e.llm.Complete(ctx, BuildEditPrompt(e.model, current, request))
	if err != nil {
		return Completion{}, fmt.Errorf("modify content: %w", err)
	}
	return c, nil
}
