package generator

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// AffirmativePhrases are the substrings that mark a critique as "no issues found".
// A critique that contains one of these and also lists problems is still judged valid.
var AffirmativePhrases = []string{"없음", "문제가 없", "정확합니다"}

// IsAffirmative reports whether a critique contains an affirmative phrase.
func IsAffirmative(critique string) bool {
	for _, p := range AffirmativePhrases {
		if strings.Contains(critique, p) {
			return true
		}
	}
	return false
}

// Verifier judges a draft against the extracted facts.
type Verifier struct {
	llm LLMClient
	log *zap.Logger
}

func NewVerifier(llm LLMClient, log *zap.Logger) *Verifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Verifier{llm: llm, log: log}
}

// Verify fails open: a call error yields a valid verdict.
func (v *Verifier) Verify(ctx context.Context, model, draft string, facts FactSet) (VerificationVerdict, Usage) {
	c, err := v.llm.Complete(ctx, BuildVerifyPrompt(model, draft, facts))
	if err != nil {
		v.log.Warn("verification failed, accepting draft", zap.String("model", model), zap.Error(err))
		return VerificationVerdict{Valid: true}, c.Usage
	}
	return verdictFrom(c.Text), c.Usage
}

func verdictFrom(critique string) VerificationVerdict {
	if strings.TrimSpace(critique) == "" || IsAffirmative(critique) {
		return VerificationVerdict{Valid: true}
	}
	return VerificationVerdict{Valid: false, Issues: []string{critique}}
}
