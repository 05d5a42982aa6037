package sentiment

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Analyzer scores and classifies texts against a lexicon. An Analyzer
// holds no mutable state; a single value may be shared by any number of
// goroutines.
type Analyzer struct {
	lexicon   *Lexicon
	tokenizer *Tokenizer
	segmenter *Segmenter
}

// AnalyzerOptFunc configures an Analyzer.
type AnalyzerOptFunc func(*Analyzer)

// UsingTokenizer replaces the analyzer's tokenizer.
func UsingTokenizer(x *Tokenizer) AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.tokenizer = x
	}
}

// UsingSegmenter replaces the sentence segmenter used by AnalyzeSentences.
func UsingSegmenter(x *Segmenter) AnalyzerOptFunc {
	return func(a *Analyzer) {
		a.segmenter = x
	}
}

// NewAnalyzer creates an analyzer scoring against lex. Without options it
// uses a tokenizer with no emoji table, and AnalyzeSentences loads the
// sentence model on every call.
func NewAnalyzer(lex *Lexicon, opts ...AnalyzerOptFunc) *Analyzer {
	a := &Analyzer{
		lexicon:   lex,
		tokenizer: NewTokenizer(),
	}
	for _, applyOpt := range opts {
		applyOpt(a)
	}
	return a
}

// NewDefaultAnalyzer creates an analyzer backed by the bundled lexicon and
// emoji table.
func NewDefaultAnalyzer() (*Analyzer, error) {
	return LoadAnalyzer(DataFiles{})
}

// DataFiles names replacement data for LoadAnalyzer. Empty fields select
// the bundled data.
type DataFiles struct {
	Lexicon string
	Emoji   string
	Overlay string
}

// LoadAnalyzer creates an analyzer from the given data files, falling back
// to the bundled lexicon and emoji table. The overlay, when set, is merged
// over the lexicon.
func LoadAnalyzer(files DataFiles) (*Analyzer, error) {
	var (
		lex *Lexicon
		err error
	)
	if files.Lexicon != "" {
		lex, err = LoadLexiconFile(files.Lexicon)
	} else {
		lex, err = DefaultLexicon()
	}
	if err != nil {
		return nil, fmt.Errorf("loading lexicon: %w", err)
	}
	if files.Overlay != "" {
		if lex, err = lex.WithOverlay(files.Overlay); err != nil {
			return nil, fmt.Errorf("applying lexicon overlay: %w", err)
		}
	}

	var emoji *EmojiTable
	if files.Emoji != "" {
		emoji, err = LoadEmojiFile(files.Emoji)
	} else {
		emoji, err = DefaultEmoji()
	}
	if err != nil {
		return nil, fmt.Errorf("loading emoji table: %w", err)
	}

	seg, err := NewSegmenter()
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(lex,
		UsingTokenizer(NewTokenizer(UsingEmoji(emoji))),
		UsingSegmenter(seg),
	), nil
}

var (
	defaultAnalyzerOnce sync.Once
	defaultAnalyzer     *Analyzer
)

// Classify labels text with an analyzer backed by the bundled data.
func Classify(text string) Label {
	defaultAnalyzerOnce.Do(func() {
		a, err := NewDefaultAnalyzer()
		if err != nil {
			panic(fmt.Sprintf("sentiment: %v", err))
		}
		defaultAnalyzer = a
	})
	return defaultAnalyzer.Classify(text)
}

// Lexicon returns the lexicon the analyzer scores against.
func (a *Analyzer) Lexicon() *Lexicon {
	return a.lexicon
}

// Classify labels text as Positive, Neutral or Negative.
func (a *Analyzer) Classify(text string) Label {
	return a.PolarityScores(text).Label()
}

// PolarityScores returns the compound score of text together with the
// share of positive, neutral and negative words.
func (a *Analyzer) PolarityScores(text string) Scores {
	prepared := a.tokenizer.Prepare(text)
	tokens := a.tokenizer.split(prepared)
	if len(tokens) == 0 {
		return Scores{}
	}

	st := newSentimentText(a.lexicon, tokens)
	sentiments := a.valences(st)
	butCheck(st, sentiments)

	return scoreValence(sentiments, prepared)
}

// valences returns the adjusted valence of every token, zero for tokens
// that carry none.
func (a *Analyzer) valences(st *sentimentText) []float64 {
	sentiments := make([]float64, len(st.tokens))
	for i := range st.tokens {
		if skipToken(st, i) {
			continue
		}
		valence, ok := a.lexicon.Sentiment(st.lower(i))
		if !ok {
			continue
		}
		for _, rule := range valenceRules {
			valence = rule.apply(st, i, valence)
		}
		sentiments[i] = valence
	}
	return sentiments
}

// scoreValence turns per-token valences into Scores. text is used for
// punctuation emphasis.
func scoreValence(sentiments []float64, text string) Scores {
	if len(sentiments) == 0 {
		return Scores{}
	}

	amplifier := PunctuationEmphasis(text)

	sum := floats.Sum(sentiments)
	switch {
	case sum > 0:
		sum += amplifier
	case sum < 0:
		sum -= amplifier
	}
	compound := Normalize(sum)

	pos, neg, neu := siftScores(sentiments)
	switch {
	case pos > math.Abs(neg):
		pos += amplifier
	case pos < math.Abs(neg):
		neg -= amplifier
	}

	total := pos + math.Abs(neg) + neu
	return Scores{
		Compound: scalar.Round(compound, 4),
		Positive: scalar.Round(math.Abs(pos/total), 3),
		Neutral:  scalar.Round(math.Abs(neu/total), 3),
		Negative: scalar.Round(math.Abs(neg/total), 3),
	}
}

// siftScores sums positive and negative valences separately and counts
// neutral ones. Each valenced word adds one extra point to its side to
// balance the one point a neutral word contributes.
func siftScores(sentiments []float64) (pos, neg, neu float64) {
	for _, s := range sentiments {
		switch {
		case s > 0:
			pos += s + 1
		case s < 0:
			neg += s - 1
		default:
			neu++
		}
	}
	return pos, neg, neu
}

// PunctuationEmphasis returns the amplifier contributed by exclamation and
// question marks in text.
func PunctuationEmphasis(text string) float64 {
	return exclamationEmphasis(text) + questionEmphasis(text)
}

func exclamationEmphasis(text string) float64 {
	n := strings.Count(text, "!")
	if n > MaxExclamations {
		n = MaxExclamations
	}
	return float64(n) * ExclamationIncrement
}

func questionEmphasis(text string) float64 {
	n := strings.Count(text, "?")
	switch {
	case n <= 1:
		return 0
	case n <= 3:
		return float64(n) * QuestionIncrement
	default:
		return MaxQuestionAmplifier
	}
}

// Normalize maps an unbounded score into [-1, 1] using x/sqrt(x²+alpha).
func Normalize(score float64) float64 {
	norm := score / math.Sqrt(score*score+NormalizationAlpha)
	switch {
	case norm < -1:
		return -1
	case norm > 1:
		return 1
	default:
		return norm
	}
}
