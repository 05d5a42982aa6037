package sentiment

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"
)

// variationSelector requests emoji presentation of the preceding rune.
const variationSelector = "\uFE0F"

// EmojiTable maps single-rune emoji to a short English description. The
// description words are scored through the lexicon.
type EmojiTable struct {
	descriptions map[rune]string
}

// NewEmojiTable creates a table from emoji to description entries. A
// trailing variation selector is dropped from a key; keys still spanning
// more than one rune, such as flags, are skipped since Replace works rune
// by rune. A bare key wins over the same emoji with a selector.
func NewEmojiTable(entries map[string]string) *EmojiTable {
	descriptions := make(map[rune]string, len(entries))
	for emoji, description := range entries {
		description = strings.TrimSpace(description)
		bare := strings.TrimSuffix(emoji, variationSelector)
		if utf8.RuneCountInString(bare) != 1 || description == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(bare)
		if _, exists := descriptions[r]; exists && bare != emoji {
			continue
		}
		descriptions[r] = description
	}
	return &EmojiTable{descriptions: descriptions}
}

// ParseEmoji reads an emoji table made of "emoji<TAB>description" lines.
func ParseEmoji(r io.Reader) (*EmojiTable, error) {
	descriptions := make(map[rune]string)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		emoji, description, found := strings.Cut(text, "\t")
		if !found {
			return nil, fmt.Errorf("emoji line %d: expected emoji and description separated by a tab", line)
		}
		if utf8.RuneCountInString(emoji) != 1 {
			return nil, fmt.Errorf("emoji line %d: %q is not a single rune", line, emoji)
		}
		description = strings.TrimSpace(description)
		if description == "" {
			return nil, fmt.Errorf("emoji line %d: empty description", line)
		}

		r, _ := utf8.DecodeRuneInString(emoji)
		if _, exists := descriptions[r]; !exists {
			descriptions[r] = description
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading emoji table: %w", err)
	}

	return &EmojiTable{descriptions: descriptions}, nil
}

// LoadEmojiFile parses the emoji table stored at path.
func LoadEmojiFile(path string) (*EmojiTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening emoji file: %w", err)
	}
	defer f.Close()

	table, err := ParseEmoji(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing emoji file %s: %w", path, err)
	}
	return table, nil
}

var (
	defaultEmojiOnce sync.Once
	defaultEmoji     *EmojiTable
	defaultEmojiErr  error
)

// DefaultEmoji returns the single-rune part of the VADER emoji table.
func DefaultEmoji() (*EmojiTable, error) {
	defaultEmojiOnce.Do(func() {
		defaultEmoji = NewEmojiTable(vaderData().EmojiDict)
		if defaultEmoji.Size() == 0 {
			defaultEmojiErr = fmt.Errorf("emoji table is empty")
		}
	})
	return defaultEmoji, defaultEmojiErr
}

// Size returns the number of emoji in the table.
func (e *EmojiTable) Size() int {
	if e == nil {
		return 0
	}
	return len(e.descriptions)
}

// Describe returns the description of emoji r.
func (e *EmojiTable) Describe(r rune) (string, bool) {
	if e == nil {
		return "", false
	}
	d, ok := e.descriptions[r]
	return d, ok
}

// Replace rewrites every known emoji in text into its description. A
// space is inserted in front of a description unless the text already
// has one there. The result is trimmed.
func (e *EmojiTable) Replace(text string) string {
	if e == nil || len(e.descriptions) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	prevSpace := true
	replaced := false
	for _, r := range text {
		if d, ok := e.descriptions[r]; ok {
			if !prevSpace {
				b.WriteByte(' ')
			}
			b.WriteString(d)
			prevSpace = false
			replaced = true
			continue
		}
		b.WriteRune(r)
		prevSpace = r == ' '
	}

	if !replaced {
		return text
	}
	return strings.TrimSpace(b.String())
}
