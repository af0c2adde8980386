package generator

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/openai/openai-go"
)

// ErrEmptyContent is returned by helpers that need non-empty text to work on.
var ErrEmptyContent = errors.New("content is empty")

// ValidationError is a client input problem, caught before any model call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Category groups errors by how they are surfaced to a client.
type Category int

const (
	CategoryUpstream Category = iota
	CategoryInput
	CategoryAuth
)

func (c Category) String() string {
	switch c {
	case CategoryInput:
		return "input"
	case CategoryAuth:
		return "auth"
	default:
		return "upstream"
	}
}

var missingKeyMarkers = []string{"API key", "apiKey", "api key", "API_KEY"}

var invalidKeyMarkers = []string{"401", "Unauthorized", "API_KEY_INVALID", "invalid_api_key"}

// Classify maps an error from any pipeline stage to its client-facing category.
func Classify(err error) Category {
	if err == nil {
		return CategoryUpstream
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return CategoryInput
	}
	if IsAuthError(err) {
		return CategoryAuth
	}
	return CategoryUpstream
}

// IsAuthError reports whether err looks like a missing or rejected provider credential.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		return true
	}
	msg := err.Error()
	return containsAny(msg, missingKeyMarkers) || containsAny(msg, invalidKeyMarkers)
}

// ClientMessage renders the localized message for err. provider is a display
// name such as "OpenAI"; action prefixes generic failures (e.g. "글 생성").
func ClientMessage(err error, provider, action string) string {
	switch Classify(err) {
	case CategoryInput:
		return err.Error()
	case CategoryAuth:
		msg := rootMessage(err)
		if containsAny(msg, missingKeyMarkers) {
			return fmt.Sprintf("%s API 키 오류: %s", provider, msg)
		}
		return fmt.Sprintf("%s API 키가 유효하지 않습니다. 키를 확인해주세요.", provider)
	default:
		return fmt.Sprintf("%s 중 오류: %s", action, rootMessage(err))
	}
}

// rootMessage drops our own wrap prefixes so clients see the upstream message.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
