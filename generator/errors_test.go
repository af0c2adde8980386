package generator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"validation", &ValidationError{Message: "와인 정보를 입력해주세요."}, CategoryInput},
		{"wrapped validation", fmt.Errorf("x: %w", &ValidationError{Message: "m"}), CategoryInput},
		{"missing key", errors.New("The apiKey option must be set"), CategoryAuth},
		{"unauthorized", errors.New("401 Unauthorized"), CategoryAuth},
		{"gemini invalid key", errors.New("Error 400, API_KEY_INVALID"), CategoryAuth},
		{"other", errors.New("connection reset"), CategoryUpstream},
		{"nil", nil, CategoryUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestClientMessage(t *testing.T) {
	t.Run("input returns its message", func(t *testing.T) {
		err := &ValidationError{Message: "와인 정보를 입력해주세요."}
		assert.Equal(t, "와인 정보를 입력해주세요.", ClientMessage(err, "OpenAI", "글 생성"))
	})

	t.Run("missing key", func(t *testing.T) {
		err := errors.New("openai API key missing")
		assert.Equal(t, "OpenAI API 키 오류: openai API key missing", ClientMessage(err, "OpenAI", "글 생성"))
	})

	t.Run("invalid key", func(t *testing.T) {
		err := errors.New("401 Unauthorized")
		assert.Equal(t, "OpenAI API 키가 유효하지 않습니다. 키를 확인해주세요.", ClientMessage(err, "OpenAI", "글 생성"))
	})

	t.Run("generic", func(t *testing.T) {
		err := errors.New("timeout")
		assert.Equal(t, "글 생성 중 오류: timeout", ClientMessage(err, "OpenAI", "글 생성"))
		assert.Equal(t, "수정 중 오류: timeout", ClientMessage(err, "OpenAI", "수정"))
	})

	t.Run("wrap prefixes are dropped", func(t *testing.T) {
		err := fmt.Errorf("generate draft: %w", errors.New("connection reset"))
		assert.Equal(t, "글 생성 중 오류: connection reset", ClientMessage(err, "OpenAI", "글 생성"))

		keyErr := fmt.Errorf("generate draft: %w", errors.New("The apiKey option must be set"))
		assert.Equal(t, "OpenAI API 키 오류: The apiKey option must be set", ClientMessage(keyErr, "OpenAI", "글 생성"))
	})
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "input", CategoryInput.String())
	assert.Equal(t, "auth", CategoryAuth.String())
	assert.Equal(t, "upstream", CategoryUpstream.String())
}
