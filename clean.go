package polyglot

import (
	"regexp"
	"strings"
)

// Matches Discord custom emojis: <:name:id> or <a:name:id>
var customEmojiPattern = regexp.MustCompile(`<a?:\w+:\d+>`)

// CleanText prepares chat text for translation. It removes Discord custom
// emoji markup (regular text and Unicode emojis are preserved) and trims
// surrounding whitespace. Cache keys are derived from the cleaned text.
func CleanText(text string) string {
	return strings.TrimSpace(customEmojiPattern.ReplaceAllString(text, ""))
}
