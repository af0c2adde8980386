package generator

import (
	"fmt"
	"strings"
)

// Prompt is a single system+user exchange sent to the model.
// Zero Temperature or MaxTokens leaves the provider default in place.
type Prompt struct {
	Model       string
	System      string
	User        string
	Temperature float64
	MaxTokens   int64
}

const (
	FactSystemPrompt       = "당신은 정확성을 최우선으로 하는 와인 전문가입니다. 확실한 사실만 제공하며, 모르는 것은 모른다고 솔직하게 말합니다."
	VerifySystemPrompt     = "당신은 팩트체커입니다. 과장이나 허위 정보를 찾아내는 것이 임무입니다."
	CorrectionSystemPrompt = "당신은 팩트체커입니다. 블로그 글에서 과장되거나 확인되지 않은 내용을 수정해주세요."
)

const (
	factTemperature   = 0.5
	factMaxTokens     = 1500
	writerTemperature = 0.6
	verifyTemperature = 0.5
	verifyMaxTokens   = 1000
)

const factCheckInstruction = `당신은 와인 전문가이자 팩트체커입니다.
다음 와인에 대해 **확실하게 알고 있는 사실만** 제공해주세요.

중요 규칙:
1. 확실하지 않은 정보는 절대 포함하지 마세요
2. 추측이나 가정은 하지 마세요
3. "~일 수 있다", "~로 추정된다" 같은 불확실한 표현은 사용하지 마세요
4. 해당 와인/와이너리에 대한 정보가 없으면 "정보 없음"이라고 명시하세요
5. 일반적인 와인 지식(품종 특성, 지역 특성)은 포함 가능합니다

다음 정보를 구조화해서 제공해주세요:
- 와이너리/생산자 정보 (역사, 설립자, 특징)
- 와인 생산 지역 특성
- 포도 품종 특성
- 양조 방식 (알려진 경우)
- 수상 내역 및 평점 (확인된 경우만)
- 가격대 (알려진 경우)`

const groundingRules = `## 중요: 팩트 기반 작성 원칙
- 아래 "검증된 정보"에 있는 내용만 사실로 작성하세요
- 검증된 정보에 없는 내용은 추측하지 마세요
- 확실하지 않은 수상내역, 평점은 포함하지 마세요
- 일반적인 와인/품종/지역 지식은 사용 가능합니다

**절대 금지 표현:**
- "정보 없음", "확인되지 않았습니다", "본 자료에서 확인되지 않았습니다" 등의 표현을 글에 절대 포함하지 마세요
- 팩트체크 실패 내용을 독자에게 보여주지 마세요
- 확인되지 않은 정보는 자연스럽게 생략하거나 일반적인 지역/품종 특성으로 대체하세요`

// BuildFactPrompt asks the model for confidently-known facts only.
func BuildFactPrompt(model, description string) Prompt {
	return Prompt{
		Model:       model,
		System:      FactSystemPrompt,
		User:        factCheckInstruction + "\n\n와인 정보:\n" + description,
		Temperature: factTemperature,
		MaxTokens:   factMaxTokens,
	}
}

// BuildUserMessage renders the request as the generator's user turn.
func BuildUserMessage(req GenerationRequest, length LengthConfig) string {
	var sb strings.Builder
	sb.WriteString("다음 정보를 바탕으로 와인 홍보 블로그 글을 작성해주세요:\n\n")
	sb.WriteString(req.Description())

	var highlights []string
	for _, h := range req.Highlights {
		if h = strings.TrimSpace(h); h != "" {
			highlights = append(highlights, h)
		}
	}
	if len(highlights) > 0 {
		sb.WriteString("\n\n특별히 강조해야 할 포인트: ")
		sb.WriteString(strings.Join(highlights, ", "))
	}
	sb.WriteString("\n\n")
	sb.WriteString(length.Instruction)
	return sb.String()
}

// BuildWriterPrompt grounds the generator in the extracted facts and a style exemplar.
func BuildWriterPrompt(tpl *Templates, model string, req GenerationRequest, facts FactSet, length LengthConfig) Prompt {
	var sb strings.Builder
	sb.WriteString(tpl.System())
	sb.WriteString("\n\n")
	sb.WriteString(groundingRules)
	sb.WriteString("\n\n=== 검증된 정보 ===\n")
	sb.WriteString(facts.Render())
	sb.WriteString("\n===================\n\n")
	sb.WriteString(fmt.Sprintf("## 참고 예시 (%s 버전)\n", length.Label))
	sb.WriteString(tpl.Example(length.Key))

	return Prompt{
		Model:       model,
		System:      sb.String(),
		User:        BuildUserMessage(req, length),
		Temperature: writerTemperature,
		MaxTokens:   length.MaxTokens,
	}
}

// BuildVerifyPrompt asks for a critique of the draft against the facts.
func BuildVerifyPrompt(model, draft string, facts FactSet) Prompt {
	user := fmt.Sprintf(`다음 블로그 글에서 사실과 다르거나 과장된 내용이 있는지 검토해주세요.

원본 팩트:
%s

생성된 블로그 글:
%s

검토 결과를 다음 형식으로 제공해주세요:
1. 문제점 목록 (없으면 "없음")
2. 수정이 필요한 부분과 수정 제안`, facts.Render(), draft)

	return Prompt{
		Model:       model,
		System:      VerifySystemPrompt,
		User:        user,
		Temperature: verifyTemperature,
		MaxTokens:   verifyMaxTokens,
	}
}

// BuildCorrectionPrompt requests a surgical revision of the flagged spans.
func BuildCorrectionPrompt(model, draft string, issues []string, maxTokens int64) Prompt {
	user := fmt.Sprintf(`다음 블로그 글에서 발견된 문제를 수정해주세요.

문제점:
%s

원본 글:
%s

수정된 전체 글을 작성해주세요. 구조와 형식은 유지하되, 문제가 된 부분만 수정하거나 삭제하세요.`, strings.Join(issues, "\n"), draft)

	return Prompt{
		Model:     model,
		System:    CorrectionSystemPrompt,
		User:      user,
		MaxTokens: maxTokens,
	}
}
