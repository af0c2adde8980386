package generator

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockLLM 은 외부 모델을 호출하지 않는 로컬 디버깅용 구현이다 (LLM_PROVIDER=mock).
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (Completion, error) {
	switch prompt.System {
	case FactSystemPrompt:
		return Completion{Text: "정보 없음"}, nil
	case VerifySystemPrompt:
		return Completion{Text: "1. 문제점 목록: 없음"}, nil
	case SummarySystemPrompt:
		return Completion{Text: "=== 요약 ===\n로컬 모의 요약입니다.\n\n=== 후킹 메시지 ===\n지금 바로 만나보세요."}, nil
	}

	var sb strings.Builder
	sb.WriteString("=== 모의 생성 글 ===\n\n")
	sb.WriteString("입력으로 받은 내용:\n\n")
	sb.WriteString(prompt.User)
	sb.WriteString("\n")
	return Completion{Text: sb.String()}, nil
}

// ScriptedResponse is one canned answer for ScriptedLLM.
type ScriptedResponse struct {
	Text  string
	Usage Usage
	Err   error
}

// ScriptedLLM replays responses in order and records every prompt it saw.
// Calls past the end of the script fail.
type ScriptedLLM struct {
	mu        sync.Mutex
	responses []ScriptedResponse
	calls     []Prompt
}

func NewScriptedLLM(responses ...ScriptedResponse) *ScriptedLLM {
	return &ScriptedLLM{responses: responses}
}

// Texts is shorthand for a script of successful text responses.
func Texts(texts ...string) []ScriptedResponse {
	out := make([]ScriptedResponse, len(texts))
	for i, t := range texts {
		out[i] = ScriptedResponse{Text: t}
	}
	return out
}

func (s *ScriptedLLM) Complete(ctx context.Context, prompt Prompt) (Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, prompt)
	if err := ctx.Err(); err != nil {
		return Completion{}, err
	}
	i := len(s.calls) - 1
	if i >= len(s.responses) {
		return Completion{}, fmt.Errorf("scripted llm: unexpected call %d", i+1)
	}
	r := s.responses[i]
	if r.Err != nil {
		return Completion{}, r.Err
	}
	return Completion{Text: r.Text, Usage: r.Usage}, nil
}

// Calls returns a copy of the prompts received so far.
func (s *ScriptedLLM) Calls() []Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Prompt, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount reports how many calls were made.
func (s *ScriptedLLM) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// CallsWithSystem counts calls whose system prompt equals system.
func (s *ScriptedLLM) CallsWithSystem(system string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		if c.System == system {
			n++
		}
	}
	return n
}
