package generator

import (
	"fmt"
	"strings"
)

// GenerationRequest is what a caller asks the pipeline to write about.
type GenerationRequest struct {
	Prompt     string   `json:"prompt,omitempty"`
	WineName   string   `json:"wineName,omitempty"`
	Region     string   `json:"region,omitempty"`
	Vintage    string   `json:"vintage,omitempty"`
	Variety    string   `json:"variety,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	Length     string   `json:"length,omitempty"`
	Model      string   `json:"model,omitempty"`
}

// Validate rejects requests that name no wine at all.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" && strings.TrimSpace(r.WineName) == "" {
		return &ValidationError{Message: "와인 정보를 입력해주세요."}
	}
	return nil
}

// Description renders the wine-identifying part of the request: the free text
// followed by the structured fields as a labeled list.
func (r GenerationRequest) Description() string {
	var sb strings.Builder
	if p := strings.TrimSpace(r.Prompt); p != "" {
		sb.WriteString(p)
	}
	fields := []struct{ label, value string }{
		{"와인명", r.WineName},
		{"생산 지역", r.Region},
		{"빈티지", r.Vintage},
		{"품종", r.Variety},
	}
	for _, f := range fields {
		v := strings.TrimSpace(f.value)
		if v == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("- %s: %s", f.label, v))
	}
	return sb.String()
}

// FactSet is the opaque block of facts the extractor is confident about.
type FactSet struct {
	Text string
}

// NoFactsFallback replaces an empty FactSet wherever facts are shown to a model.
const NoFactsFallback = "검증된 정보 없음 - 일반적인 와인 지식만 사용하세요"

// Empty reports whether extraction produced nothing usable.
func (f FactSet) Empty() bool { return strings.TrimSpace(f.Text) == "" }

// Render returns the fact text, or the fallback sentence when empty.
func (f FactSet) Render() string {
	if f.Empty() {
		return NoFactsFallback
	}
	return f.Text
}

// VerificationVerdict is the verifier's judgment. Issues is empty iff Valid.
type VerificationVerdict struct {
	Valid  bool
	Issues []string
}

// NeedsCorrection is true when the verdict should trigger the correction pass.
func (v VerificationVerdict) NeedsCorrection() bool {
	return !v.Valid && len(v.Issues) > 0
}

// Stage names a step of the generation pipeline.
type Stage string

const (
	StageExtractingFacts Stage = "extracting_facts"
	StageGenerating      Stage = "generating"
	StageVerifying       Stage = "verifying"
	StageCorrecting      Stage = "correcting"
	StageDone            Stage = "done"
)

// Result is the final generated post.
type Result struct {
	ID        string `json:"id"`
	Model     string `json:"model"`
	Length    string `json:"length"`
	Content   string `json:"content"`
	Usage     Usage  `json:"usage"`
	Corrected bool   `json:"corrected"`
	// Stages records the pipeline steps actually run, in order.
	Stages []Stage `json:"stages"`
}
