package helper

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

const ExcerptLength = 150

var (
	stripPolicy     *bluemonday.Policy
	stripPolicyOnce sync.Once
)

func getStripPolicy() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}

// StripHTML reduces rich article content to plain text: all tags removed,
// entities decoded, whitespace collapsed.
func StripHTML(raw string) string {
	text := getStripPolicy().Sanitize(raw)
	text = html.UnescapeString(text)
	return strings.Join(strings.Fields(text), " ")
}

// Excerpt builds the social-preview description: stripped content truncated
// to ExcerptLength runes with an ellipsis marker. Truncation counts runes so
// multi-byte titles are never cut mid-character.
func Excerpt(content string) string {
	text := StripHTML(content)
	runes := []rune(text)
	if len(runes) <= ExcerptLength {
		return text
	}
	return strings.TrimSpace(string(runes[:ExcerptLength])) + "..."
}
