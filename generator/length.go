package generator

import "strings"

// DefaultLength is used whenever a request names no tier or an unknown one.
const DefaultLength = "normal"

// LengthConfig describes one output-length preset.
type LengthConfig struct {
	Key         string
	Label       string
	Instruction string
	MaxTokens   int64
	// rough per-call token estimates used for cost/time previews
	EstimatedInput  int64
	EstimatedOutput int64
}

var lengthConfigs = map[string]LengthConfig{
	"short": {
		Key:             "short",
		Label:           "짧게",
		Instruction:     "글 길이: 공백 포함 1,000~1,500자 내외로 핵심만 간결하게 작성해주세요. 섹션은 3개 이내로 구성하세요.",
		MaxTokens:       2500,
		EstimatedInput:  800,
		EstimatedOutput: 1500,
	},
	"normal": {
		Key:             "normal",
		Label:           "보통",
		Instruction:     "글 길이: 공백 포함 2,000~3,000자 내외로 작성해주세요. 섹션은 4~5개로 구성하세요.",
		MaxTokens:       4000,
		EstimatedInput:  1200,
		EstimatedOutput: 2500,
	},
	"detailed": {
		Key:             "detailed",
		Label:           "자세히",
		Instruction:     "글 길이: 공백 포함 4,000~5,000자 내외로 충분히 자세하게 작성해주세요. 모든 섹션을 빠짐없이 구성하세요.",
		MaxTokens:       6000,
		EstimatedInput:  1500,
		EstimatedOutput: 4000,
	},
}

// LookupLength resolves a tier key. ok is false when the default was substituted.
func LookupLength(key string) (cfg LengthConfig, ok bool) {
	cfg, ok = lengthConfigs[strings.TrimSpace(key)]
	if !ok {
		return lengthConfigs[DefaultLength], false
	}
	return cfg, true
}

// LengthKeys lists the known tiers, shortest first.
func LengthKeys() []string {
	return []string{"short", "normal", "detailed"}
}
