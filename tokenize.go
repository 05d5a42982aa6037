package sentiment

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenizerOptFunc configures a Tokenizer.
type TokenizerOptFunc func(*Tokenizer)

// Tokenizer splits a text into words and emoticons.
type Tokenizer struct {
	sanitizer   *strings.Replacer
	emoji       *EmojiTable
	punctuation string
}

// UsingSanitizer replaces the default quote sanitizer.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(t *Tokenizer) {
		t.sanitizer = x
	}
}

// UsingEmoji sets the emoji table used to rewrite emoji into words. A nil
// table disables emoji rewriting.
func UsingEmoji(x *EmojiTable) TokenizerOptFunc {
	return func(t *Tokenizer) {
		t.emoji = x
	}
}

// UsingPunctuation sets the characters trimmed from both ends of a word.
func UsingPunctuation(x string) TokenizerOptFunc {
	return func(t *Tokenizer) {
		t.punctuation = x
	}
}

// NewTokenizer returns a tokenizer with the default sanitizer and
// punctuation set and no emoji table.
func NewTokenizer(opts ...TokenizerOptFunc) *Tokenizer {
	tok := &Tokenizer{
		sanitizer:   sanitizer,
		punctuation: asciiPunctuation,
	}

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	return tok
}

// Prepare applies emoji rewriting and quote sanitizing to text. The
// result is what Tokenize splits.
func (t *Tokenizer) Prepare(text string) string {
	text = t.emoji.Replace(text)
	if t.sanitizer != nil {
		text = t.sanitizer.Replace(text)
	}
	return text
}

// Tokenize splits text on whitespace and trims surrounding punctuation
// from each word. A word whose trimmed form would be two characters or
// shorter is kept as is, which leaves emoticons such as ":)" and ":D"
// intact. Tokenize never fails; empty or blank text yields no tokens.
func (t *Tokenizer) Tokenize(text string) []Token {
	return t.split(t.Prepare(text))
}

func (t *Tokenizer) split(prepared string) []Token {
	fields := strings.Fields(prepared)
	if len(fields) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(fields))
	for i, field := range fields {
		word := t.stripPunctuation(field)
		tokens = append(tokens, Token{
			Text:  word,
			Lower: strings.ToLower(word),
			Index: i,
		})
	}
	return tokens
}

func (t *Tokenizer) stripPunctuation(word string) string {
	stripped := strings.Trim(word, t.punctuation)
	if utf8.RuneCountInString(stripped) <= 2 {
		return word
	}
	return stripped
}

// IsUpper reports whether word is written in capitals: it has at least
// one cased letter and no lowercase letter.
func IsUpper(word string) bool {
	cased := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

// CapDifferential reports whether some, but not all, of tokens are
// written in capitals. ALL-CAPS emphasis only counts when it stands out
// against the rest of the text.
func CapDifferential(tokens []Token) bool {
	upper := 0
	for _, tok := range tokens {
		if IsUpper(tok.Text) {
			upper++
		}
	}
	diff := len(tokens) - upper
	return diff > 0 && diff < len(tokens)
}

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")
