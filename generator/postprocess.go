package generator

import (
	"regexp"
	"strings"
)

var (
	summaryRe = regexp.MustCompile(`===\s*요약\s*===\s*([\s\S]*?)(?:===|$)`)
	hookRe    = regexp.MustCompile(`===\s*후킹 메시지\s*===\s*([\s\S]*?)$`)
)

// ParseSummary splits a summarizer answer into its two sections.
// A missing section comes back empty.
func ParseSummary(raw string) (summary, hook string) {
	if m := summaryRe.FindStringSubmatch(raw); len(m) >= 2 {
		summary = strings.TrimSpace(m[1])
	}
	if m := hookRe.FindStringSubmatch(raw); len(m) >= 2 {
		hook = strings.TrimSpace(m[1])
	}
	return summary, hook
}

// Title returns the first meaningful line of a post, skipping section dividers.
func Title(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
		if line == "" || strings.HasPrefix(line, "===") {
			continue
		}
		return line
	}
	return ""
}
