package polyglot

import (
	"sort"
	"testing"
)

func TestResolver_Normalize(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		name  string
		input string
		code  string
		found bool
	}{
		{"code passthrough", "en", "en", true},
		{"code uppercase", "ES", "es", true},
		{"code with whitespace", "  fr  ", "fr", true},
		{"name lookup", "english", "en", true},
		{"name capitalized", "Spanish", "es", true},
		{"name with whitespace", " german ", "de", true},
		{"chinese name collapses", "chinese (simplified)", "zh-cn", true},
		{"chinese variant collapses", "chinese (traditional)", "zh-cn", true},
		{"chinese partial", "chinese", "zh-cn", true},
		{"zh collapses", "zh", "zh-cn", true},
		{"ch collapses", "ch", "zh-cn", true},
		{"zh-tw code passthrough", "zh-tw", "zh-tw", true},
		{"unknown language", "not-a-language", "", false},
		{"empty input", "", "", false},
		{"whitespace only", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, found := r.Normalize(tt.input)
			if found != tt.found {
				t.Fatalf("Normalize(%q) found = %v, want %v", tt.input, found, tt.found)
			}
			if code != tt.code {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, code, tt.code)
			}
		})
	}
}

func TestResolver_ChineseVariantsAgree(t *testing.T) {
	r := NewResolver(nil)

	a, _ := r.Normalize("chinese")
	b, _ := r.Normalize("chinese (traditional)")
	if a != b || a != ChineseSimplified {
		t.Errorf("Chinese variants should collapse to %q, got %q and %q", ChineseSimplified, a, b)
	}
}

func TestResolver_CustomDirectory(t *testing.T) {
	r := NewResolver(map[string]string{
		"xx": "examplish",
	})

	if code, ok := r.Normalize("examplish"); !ok || code != "xx" {
		t.Errorf("Normalize(examplish) = %q/%v, want xx/true", code, ok)
	}
	if _, ok := r.Normalize("english"); ok {
		t.Error("Custom directory should not know english")
	}
}

func TestResolver_Name(t *testing.T) {
	r := NewResolver(nil)

	if name := r.Name("es"); name != "spanish" {
		t.Errorf("Name(es) = %q, want spanish", name)
	}
	if name := r.Name("ES"); name != "spanish" {
		t.Errorf("Name(ES) = %q, want spanish", name)
	}
	// Unknown codes fall back to the code itself
	if name := r.Name("xx"); name != "xx" {
		t.Errorf("Name(xx) = %q, want xx", name)
	}
}

func TestResolver_CodesSorted(t *testing.T) {
	codes := NewResolver(nil).Codes()

	if len(codes) != len(Languages) {
		t.Fatalf("Codes() returned %d codes, want %d", len(codes), len(Languages))
	}
	if !sort.StringsAreSorted(codes) {
		t.Error("Codes() should be sorted")
	}
}

func TestResolver_NamesSorted(t *testing.T) {
	names := NewResolver(nil).Names()

	if len(names) != len(Languages) {
		t.Fatalf("Names() returned %d names, want %d", len(names), len(Languages))
	}
	if !sort.StringsAreSorted(names) {
		t.Error("Names() should be sorted")
	}
}

func TestLanguageName(t *testing.T) {
	if name := LanguageName("ja"); name != "japanese" {
		t.Errorf("LanguageName(ja) = %q, want japanese", name)
	}
	if name := LanguageName("unknown"); name != "unknown" {
		t.Errorf("LanguageName(unknown) = %q, want unknown", name)
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "Hello world", "Hello world"},
		{"custom emoji stripped", "Hello <:wave:123456789>", "Hello"},
		{"animated emoji stripped", "<a:party:987654321> Hooray", "Hooray"},
		{"unicode emoji preserved", "Hello 👋", "Hello 👋"},
		{"whitespace trimmed", "  Hello  ", "Hello"},
		{"only emoji", "<:wave:123456789>", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.expected {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
