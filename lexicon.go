package sentiment

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/jonreiter/govader"
	"gopkg.in/yaml.v3"
)

// Lexicon maps words and emoticons to their base valence. A Lexicon is
// immutable once constructed and safe for concurrent use.
type Lexicon struct {
	words map[string]float64
}

// LexiconOverlay is the YAML structure accepted by Lexicon.WithOverlay:
//
//	entries:
//	  - token: meh
//	    valence: -0.6
//	  - token: bussin
//	    valence: 2.4
type LexiconOverlay struct {
	Entries []OverlayEntry `yaml:"entries"`
}

// OverlayEntry is one custom word in a LexiconOverlay.
type OverlayEntry struct {
	Token   string  `yaml:"token"`
	Valence float64 `yaml:"valence"`
}

// NewLexicon creates a lexicon from the given entries. Keys are
// lowercased, so entries that only differ in case collapse into one: an
// already lowercase key wins, otherwise the first key in sorted order.
func NewLexicon(entries map[string]float64) *Lexicon {
	keys := make([]string, 0, len(entries))
	for word := range entries {
		keys = append(keys, word)
	}
	sort.Strings(keys)

	words := make(map[string]float64, len(entries))
	for _, word := range keys {
		lower := strings.ToLower(word)
		if _, exists := words[lower]; exists && word != lower {
			continue
		}
		words[lower] = entries[word]
	}
	return &Lexicon{words: words}
}

// ParseLexicon reads a tab separated lexicon. The first column holds the
// token and the second its valence; any further columns are ignored.
// Blank lines are skipped. When two tokens only differ in case the first
// one wins.
func ParseLexicon(r io.Reader) (*Lexicon, error) {
	words := make(map[string]float64)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("lexicon line %d: expected token and valence separated by a tab", line)
		}

		token := strings.ToLower(strings.TrimSpace(fields[0]))
		if token == "" {
			return nil, fmt.Errorf("lexicon line %d: empty token", line)
		}

		valence, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("lexicon line %d: invalid valence %q: %w", line, fields[1], err)
		}
		if math.IsNaN(valence) || math.IsInf(valence, 0) {
			return nil, fmt.Errorf("lexicon line %d: valence %q is not finite", line, fields[1])
		}

		if _, exists := words[token]; !exists {
			words[token] = valence
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading lexicon: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("lexicon is empty")
	}

	return &Lexicon{words: words}, nil
}

// LoadLexiconFile parses the lexicon stored at path.
func LoadLexiconFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening lexicon file: %w", err)
	}
	defer f.Close()

	lex, err := ParseLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing lexicon file %s: %w", path, err)
	}
	return lex, nil
}

var (
	defaultLexiconOnce sync.Once
	defaultLexicon     *Lexicon
	defaultLexiconErr  error
)

var (
	vaderOnce sync.Once
	vader     *govader.SentimentIntensityAnalyzer
)

// vaderData returns the analyzer whose lexicon and emoji tables back the
// package defaults. Only its data is read; scoring is done here.
func vaderData() *govader.SentimentIntensityAnalyzer {
	vaderOnce.Do(func() {
		vader = govader.NewSentimentIntensityAnalyzer()
	})
	return vader
}

// DefaultLexicon returns the full VADER lexicon. It is built on first use
// and shared afterwards.
func DefaultLexicon() (*Lexicon, error) {
	defaultLexiconOnce.Do(func() {
		defaultLexicon = NewLexicon(vaderData().Lexicon)
		if defaultLexicon.Size() == 0 {
			defaultLexiconErr = fmt.Errorf("lexicon is empty")
		}
	})
	return defaultLexicon, defaultLexiconErr
}

// MustDefaultLexicon is like DefaultLexicon but panics if the bundled
// data cannot be parsed.
func MustDefaultLexicon() *Lexicon {
	lex, err := DefaultLexicon()
	if err != nil {
		panic(fmt.Sprintf("sentiment: bundled lexicon: %v", err))
	}
	return lex
}

// WithOverlay returns a copy of the lexicon extended with the YAML
// overlay stored at path. Overlay entries replace existing ones.
func (l *Lexicon) WithOverlay(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon overlay: %w", err)
	}

	var overlay LexiconOverlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("error parsing lexicon overlay YAML: %w", err)
	}

	return l.merge(overlay)
}

func (l *Lexicon) merge(overlay LexiconOverlay) (*Lexicon, error) {
	words := make(map[string]float64, len(l.words)+len(overlay.Entries))
	for word, valence := range l.words {
		words[word] = valence
	}
	for i, entry := range overlay.Entries {
		token := strings.ToLower(strings.TrimSpace(entry.Token))
		if token == "" {
			return nil, fmt.Errorf("lexicon overlay entry %d: empty token", i)
		}
		if math.IsNaN(entry.Valence) || math.IsInf(entry.Valence, 0) {
			return nil, fmt.Errorf("lexicon overlay entry %d: valence of %q is not finite", i, token)
		}
		words[token] = entry.Valence
	}
	return &Lexicon{words: words}, nil
}

// Sentiment returns the base valence of word and whether the word is
// present. Lookups are case-insensitive.
func (l *Lexicon) Sentiment(word string) (float64, bool) {
	if v, ok := l.words[word]; ok {
		return v, true
	}
	v, ok := l.words[strings.ToLower(word)]
	return v, ok
}

// HasWord checks if a word exists in the lexicon.
func (l *Lexicon) HasWord(word string) bool {
	_, ok := l.Sentiment(word)
	return ok
}

// Size returns the number of entries in the lexicon.
func (l *Lexicon) Size() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}
