// Package render turns generated posts into HTML for the preview pane.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// Marker is one [이미지N: 설명] placeholder the writer left in a post.
type Marker struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
}

var (
	markerRe  = regexp.MustCompile(`\[이미지(\d+):\s*([^\]]+)\]`)
	headingRe = regexp.MustCompile(`(?s)<h([1-6])[^>]*>(.*?)</h[1-6]>`)
	olRe      = regexp.MustCompile(`(?s)<ol[^>]*>(.*?)</ol>`)
	ulRe      = regexp.MustCompile(`(?s)<ul[^>]*>(.*?)</ul>`)
	liRe      = regexp.MustCompile(`(?s)<li[^>]*>(.*?)</li>`)
)

var headingSizes = map[string]string{
	"1": "24px",
	"2": "22px",
	"3": "20px",
	"4": "18px",
	"5": "16px",
	"6": "15px",
}

// Blog editors drop single newlines, so hard wraps keep the writer's line breaks.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(ghtml.WithHardWraps()),
)

// ImageMarkers lists the markers in order of appearance.
func ImageMarkers(content string) []Marker {
	matches := markerRe.FindAllStringSubmatch(content, -1)
	out := make([]Marker, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		out = append(out, Marker{Index: n, Description: strings.TrimSpace(m[2])})
	}
	return out
}

// ToHTML converts markdown with goldmark.
func ToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Preview renders a post the way it will look once pasted into a blog
// editor: headings become styled paragraphs, lists are flattened and image
// markers turn into placeholder boxes.
func Preview(content string) (string, []Marker, error) {
	out, err := ToHTML(content)
	if err != nil {
		return "", nil, fmt.Errorf("render markdown: %w", err)
	}
	out = convertHeadings(out)
	out = flattenLists(out)
	out = replaceMarkers(out)
	return out, ImageMarkers(content), nil
}

func convertHeadings(s string) string {
	return headingRe.ReplaceAllStringFunc(s, func(block string) string {
		parts := headingRe.FindStringSubmatch(block)
		if len(parts) != 3 {
			return block
		}
		size := headingSizes[parts[1]]
		if size == "" {
			size = "18px"
		}
		return fmt.Sprintf(`<p style="font-size:%s;font-weight:700;margin:1em 0 0.6em;">%s</p>`, size, strings.TrimSpace(parts[2]))
	})
}

func flattenLists(s string) string {
	s = olRe.ReplaceAllStringFunc(s, func(block string) string {
		items := liRe.FindAllStringSubmatch(block, -1)
		if len(items) == 0 {
			return block
		}
		var b strings.Builder
		for i, item := range items {
			fmt.Fprintf(&b, "<p>%d. %s</p>", i+1, strings.TrimSpace(item[1]))
		}
		return b.String()
	})

	return ulRe.ReplaceAllStringFunc(s, func(block string) string {
		items := liRe.FindAllStringSubmatch(block, -1)
		if len(items) == 0 {
			return block
		}
		var b strings.Builder
		for _, item := range items {
			b.WriteString("<p>• ")
			b.WriteString(strings.TrimSpace(item[1]))
			b.WriteString("</p>")
		}
		return b.String()
	})
}

func replaceMarkers(s string) string {
	return markerRe.ReplaceAllStringFunc(s, func(m string) string {
		parts := markerRe.FindStringSubmatch(m)
		// goldmark already escaped the description
		desc := strings.TrimSpace(parts[2])
		return fmt.Sprintf(`<span class="image-slot" data-index="%s">📷 %s</span>`, parts[1], desc)
	})
}
