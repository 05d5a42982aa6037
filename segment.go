package sentiment

import (
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Segmenter splits a paragraph into sentences using the Punkt sentence
// tokenizer and its English model (https://github.com/neurosnap/sentences).
type Segmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewSegmenter loads the English Punkt model.
func NewSegmenter() (*Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("loading sentence model: %w", err)
	}
	return &Segmenter{tokenizer: tokenizer}, nil
}

// Sentence is a segmented span of the input. Start and End are byte
// offsets into the original text.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// Segment splits text into sentences. Sentences are trimmed of
// surrounding whitespace, with offsets narrowed to match, so that
// text[Start:End] == Text. Blank sentences are dropped.
func (s *Segmenter) Segment(text string) []Sentence {
	tokens := s.tokenizer.Tokenize(text)
	sents := make([]Sentence, 0, len(tokens))
	for _, tok := range tokens {
		trimmed := strings.TrimSpace(tok.Text)
		if trimmed == "" {
			continue
		}
		start := tok.Start + len(tok.Text) - len(strings.TrimLeftFunc(tok.Text, unicode.IsSpace))
		sents = append(sents, Sentence{Text: trimmed, Start: start, End: start + len(trimmed)})
	}
	return sents
}

// AnalyzeSentences scores every sentence of text on its own. Scoring one
// sentence at a time keeps a strong sentence from drowning out the rest
// of a paragraph.
func (a *Analyzer) AnalyzeSentences(text string) ([]SentenceScore, error) {
	seg := a.segmenter
	if seg == nil {
		var err error
		if seg, err = NewSegmenter(); err != nil {
			return nil, err
		}
	}

	sents := seg.Segment(text)
	results := make([]SentenceScore, len(sents))
	for i, sent := range sents {
		scores := a.PolarityScores(sent.Text)
		results[i] = SentenceScore{
			Text:   sent.Text,
			Start:  sent.Start,
			End:    sent.End,
			Scores: scores,
			Label:  scores.Label(),
		}
	}
	return results, nil
}
