package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const post = `# 샤토 테스트 2018

=== 인트로 ===
보르도에서 온 **클래식** 레드.

[이미지1: 포도밭 전경]

## 테이스팅 노트
- 블랙커런트
- 삼나무

1. 디캔팅
2. 서빙

[이미지2: 잔에 따른 와인]`

func TestImageMarkers(t *testing.T) {
	assert.Equal(t, []Marker{
		{Index: 1, Description: "포도밭 전경"},
		{Index: 2, Description: "잔에 따른 와인"},
	}, ImageMarkers(post))
	assert.Empty(t, ImageMarkers("마커 없음"))
	assert.Equal(t, []Marker{{Index: 3, Description: "치즈 플레이트"}}, ImageMarkers("[이미지3:치즈 플레이트 ]"))
}

func TestToHTML(t *testing.T) {
	out, err := ToHTML("**굵게**")
	require.NoError(t, err)
	assert.Equal(t, "<p><strong>굵게</strong></p>\n", out)
}

func TestPreview(t *testing.T) {
	out, markers, err := Preview(post)
	require.NoError(t, err)

	assert.Len(t, markers, 2)
	assert.NotContains(t, out, "<h1")
	assert.NotContains(t, out, "<ul")
	assert.NotContains(t, out, "<ol")
	assert.Contains(t, out, `<p style="font-size:24px;font-weight:700;margin:1em 0 0.6em;">샤토 테스트 2018</p>`)
	assert.Contains(t, out, `font-size:22px`)
	assert.Contains(t, out, "<p>• 블랙커런트</p><p>• 삼나무</p>")
	assert.Contains(t, out, "<p>1. 디캔팅</p><p>2. 서빙</p>")
	assert.Contains(t, out, `<span class="image-slot" data-index="1">📷 포도밭 전경</span>`)
	assert.Contains(t, out, "<strong>클래식</strong>")
}

func TestPreview_EscapesHTML(t *testing.T) {
	out, _, err := Preview("[이미지1: <script>]")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}
