package sentiment

import (
	"strings"
	"testing"
)

func tokenTexts(tokens []Token) []string {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return texts
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{"This is a wonderful book!", []string{"This", "is", "a", "wonderful", "book"}, "Trailing punctuation"},
		{"A really good, great book", []string{"A", "really", "good", "great", "book"}, "Commas"},
		{":) and :D", []string{":)", "and", ":D"}, "Emoticons kept"},
		{":( and :'(", []string{":(", "and", ":'("}, "Emoticon with quote"},
		{"ok!", []string{"ok!"}, "Short word keeps punctuation"},
		{"\"Quoted\" (text)", []string{"Quoted", "text"}, "Quotes and parentheses"},
		{"don’t stop", []string{"don't", "stop"}, "Curly apostrophe"},
		{"  spaced\tout\n", []string{"spaced", "out"}, "Mixed whitespace"},
		{"", []string{}, "Empty"},
		{"   ", []string{}, "Blank"},
	}

	tokenizer := NewTokenizer()
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := tokenTexts(tokenizer.Tokenize(tt.text))
			if strings.Join(got, "|") != strings.Join(tt.expected, "|") {
				t.Errorf("Tokenize(%q) = %q, expected %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestTokenFields(t *testing.T) {
	tokens := NewTokenizer().Tokenize("This is GOOD")
	if len(tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(tokens))
	}
	last := tokens[2]
	if last.Text != "GOOD" || last.Lower != "good" || last.Index != 2 {
		t.Errorf("Unexpected token %+v", last)
	}
}

func TestTokenizeEmoji(t *testing.T) {
	emoji, err := DefaultEmoji()
	if err != nil {
		t.Fatalf("Failed to load emoji table: %v", err)
	}
	tokenizer := NewTokenizer(UsingEmoji(emoji))

	got := tokenizer.Prepare("nice😃")
	if !strings.HasPrefix(got, "nice grinning") {
		t.Errorf("Expected emoji to be replaced after a space, got %q", got)
	}

	got = tokenizer.Prepare("😃")
	if got != "grinning face with big eyes" {
		t.Errorf("Expected emoji description, got %q", got)
	}

	got = tokenizer.Prepare("no emoji here ")
	if got != "no emoji here " {
		t.Errorf("Expected text without emoji to be left alone, got %q", got)
	}
}

func TestDefaultEmoji(t *testing.T) {
	table, err := DefaultEmoji()
	if err != nil {
		t.Fatalf("Failed to load emoji table: %v", err)
	}
	if table.Size() < 500 {
		t.Errorf("Expected the VADER emoji table, got %d emoji", table.Size())
	}

	tests := []struct {
		emoji    rune
		expected string
	}{
		{'🤬', "face with symbols on mouth"},
		{'💔', "broken heart"},
		{'😃', "grinning face with big eyes"},
	}
	for _, tt := range tests {
		if d, ok := table.Describe(tt.emoji); !ok || d != tt.expected {
			t.Errorf("Expected %q for %q, got %q (%v)", tt.expected, string(tt.emoji), d, ok)
		}
	}

	again, _ := DefaultEmoji()
	if again != table {
		t.Error("Expected the default emoji table to be shared")
	}
}

func TestNewEmojiTable(t *testing.T) {
	table := NewEmojiTable(map[string]string{
		"😀":  "grinning face",
		"🇫🇷": "flag: France",
		"☹️": "frowning face",
		"😶":  " ",
		"💔":  " broken heart ",
	})
	if table.Size() != 3 {
		t.Errorf("Expected 3 single-rune emoji, got %d", table.Size())
	}
	if d, ok := table.Describe('☹'); !ok || d != "frowning face" {
		t.Errorf("Expected the variation selector to be dropped, got %q", d)
	}
	if d, ok := table.Describe('💔'); !ok || d != "broken heart" {
		t.Errorf("Expected a trimmed description, got %q", d)
	}
}

func TestParseEmoji(t *testing.T) {
	table, err := ParseEmoji(strings.NewReader("😀\tgrinning face\n\n💔\tbroken heart\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if table.Size() != 2 {
		t.Errorf("Expected 2 emoji, got %d", table.Size())
	}
	if d, ok := table.Describe('💔'); !ok || d != "broken heart" {
		t.Errorf("Unexpected description %q", d)
	}

	for _, bad := range []string{"😀 grinning face\n", "ab\tletters\n", "😀\t\n"} {
		if _, err := ParseEmoji(strings.NewReader(bad)); err == nil {
			t.Errorf("Expected an error for %q", bad)
		}
	}
}

func TestIsUpper(t *testing.T) {
	tests := []struct {
		word     string
		expected bool
	}{
		{"GOOD", true},
		{"GR8", true},
		{"Good", false},
		{"good", false},
		{"123", false},
		{":D", true},
		{":)", false},
		{"ÉTÉ", true},
	}

	for _, tt := range tests {
		if got := IsUpper(tt.word); got != tt.expected {
			t.Errorf("IsUpper(%q) = %v, expected %v", tt.word, got, tt.expected)
		}
	}
}

func TestCapDifferential(t *testing.T) {
	tokenizer := NewTokenizer()
	tests := []struct {
		text     string
		expected bool
	}{
		{"This is GOOD", true},
		{"THIS IS GOOD", false},
		{"this is good", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := CapDifferential(tokenizer.Tokenize(tt.text)); got != tt.expected {
			t.Errorf("CapDifferential(%q) = %v, expected %v", tt.text, got, tt.expected)
		}
	}
}
