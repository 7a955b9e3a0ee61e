package polyglot

import (
	"sort"
	"strings"
)

// ChineseSimplified is the canonical code all Chinese variants collapse to.
const ChineseSimplified = "zh-cn"

// Languages maps language codes to lowercase display names. It mirrors the
// directory used by Google's web translation endpoint.
var Languages = map[string]string{
	"af":    "afrikaans",
	"sq":    "albanian",
	"am":    "amharic",
	"ar":    "arabic",
	"hy":    "armenian",
	"az":    "azerbaijani",
	"eu":    "basque",
	"be":    "belarusian",
	"bn":    "bengali",
	"bs":    "bosnian",
	"bg":    "bulgarian",
	"ca":    "catalan",
	"zh-cn": "chinese (simplified)",
	"zh-tw": "chinese (traditional)",
	"hr":    "croatian",
	"cs":    "czech",
	"da":    "danish",
	"nl":    "dutch",
	"en":    "english",
	"eo":    "esperanto",
	"et":    "estonian",
	"fi":    "finnish",
	"fr":    "french",
	"gl":    "galician",
	"ka":    "georgian",
	"de":    "german",
	"el":    "greek",
	"gu":    "gujarati",
	"ht":    "haitian creole",
	"he":    "hebrew",
	"hi":    "hindi",
	"hu":    "hungarian",
	"is":    "icelandic",
	"id":    "indonesian",
	"ga":    "irish",
	"it":    "italian",
	"ja":    "japanese",
	"kn":    "kannada",
	"kk":    "kazakh",
	"km":    "khmer",
	"ko":    "korean",
	"lo":    "lao",
	"la":    "latin",
	"lv":    "latvian",
	"lt":    "lithuanian",
	"mk":    "macedonian",
	"ms":    "malay",
	"ml":    "malayalam",
	"mt":    "maltese",
	"mr":    "marathi",
	"mn":    "mongolian",
	"ne":    "nepali",
	"no":    "norwegian",
	"fa":    "persian",
	"pl":    "polish",
	"pt":    "portuguese",
	"pa":    "punjabi",
	"ro":    "romanian",
	"ru":    "russian",
	"sr":    "serbian",
	"si":    "sinhala",
	"sk":    "slovak",
	"sl":    "slovenian",
	"so":    "somali",
	"es":    "spanish",
	"sw":    "swahili",
	"sv":    "swedish",
	"tl":    "tagalog",
	"ta":    "tamil",
	"te":    "telugu",
	"th":    "thai",
	"tr":    "turkish",
	"uk":    "ukrainian",
	"ur":    "urdu",
	"uz":    "uzbek",
	"vi":    "vietnamese",
	"cy":    "welsh",
	"yi":    "yiddish",
	"zu":    "zulu",
}

// LanguageName returns the display name for a language code.
// Falls back to the code itself if not found.
func LanguageName(code string) string {
	if name, ok := Languages[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

// Resolver normalizes free-form user language input ("spanish", "ES",
// "chinese") to a canonical code over a code-to-name directory.
type Resolver struct {
	languages map[string]string
}

// NewResolver creates a resolver over the given directory.
// A nil directory uses Languages.
func NewResolver(languages map[string]string) *Resolver {
	if languages == nil {
		languages = Languages
	}
	return &Resolver{languages: languages}
}

// Normalize maps user input to a canonical language code. The second return
// value reports whether the input was recognized.
//
// Matching is case and surrounding-whitespace insensitive. Codes match
// directly; display names match exactly. Chinese variants all collapse to
// ChineseSimplified, including the bare inputs "zh" and "ch".
func (r *Resolver) Normalize(input string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return "", false
	}

	// Direct code lookup (e.g., "es")
	if _, ok := r.languages[in]; ok {
		return in, true
	}

	// Reverse lookup by display name (e.g., "spanish" -> "es")
	for code, name := range r.languages {
		if strings.ToLower(name) == in {
			if strings.Contains(strings.ToLower(name), "chinese") {
				return ChineseSimplified, true
			}
			return code, true
		}
	}

	// Partial match for Chinese variations
	if strings.Contains(in, "chinese") || in == "zh" || in == "ch" {
		return ChineseSimplified, true
	}

	return "", false
}

// Name returns the display name for a code, falling back to the code itself.
func (r *Resolver) Name(code string) string {
	if name, ok := r.languages[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

// Codes returns all known language codes in sorted order.
func (r *Resolver) Codes() []string {
	codes := make([]string, 0, len(r.languages))
	for code := range r.languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Names returns all display names in sorted order, for autocomplete-style
// callers.
func (r *Resolver) Names() []string {
	names := make([]string, 0, len(r.languages))
	for _, name := range r.languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
