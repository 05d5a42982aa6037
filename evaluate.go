package sentiment

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bbalet/stopwords"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Corpus column names.
const (
	TextColumn   = "text_snippet"
	RatingColumn = "mean_sentiment_rating"
)

// maxLexiconGaps bounds Evaluation.LexiconGaps.
const maxLexiconGaps = 20

// Labels lists the labels in the row and column order of a confusion
// matrix.
var Labels = []Label{Positive, Neutral, Negative}

func labelIndex(l Label) int {
	switch l {
	case Positive:
		return 0
	case Neutral:
		return 1
	default:
		return 2
	}
}

// LabeledText is a corpus entry: a snippet and its human rating.
type LabeledText struct {
	Text   string
	Rating float64
}

// Expected returns the label implied by the human rating.
func (lt LabeledText) Expected() Label {
	return ClassifyCompound(lt.Rating)
}

// ReadCorpus reads a CSV corpus. The header must name a text_snippet and a
// mean_sentiment_rating column; other columns are ignored.
func ReadCorpus(r io.Reader) ([]LabeledText, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("corpus is empty")
		}
		return nil, fmt.Errorf("error reading corpus header: %w", err)
	}

	textCol, ratingCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case TextColumn:
			textCol = i
		case RatingColumn:
			ratingCol = i
		}
	}
	if textCol < 0 || ratingCol < 0 {
		return nil, fmt.Errorf("corpus header must contain %q and %q", TextColumn, RatingColumn)
	}

	var corpus []LabeledText
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading corpus: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if textCol >= len(record) || ratingCol >= len(record) {
			return nil, fmt.Errorf("corpus line %d: expected at least %d fields", line, max(textCol, ratingCol)+1)
		}
		rating, err := strconv.ParseFloat(strings.TrimSpace(record[ratingCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("corpus line %d: invalid rating %q: %w", line, record[ratingCol], err)
		}
		corpus = append(corpus, LabeledText{Text: record[textCol], Rating: rating})
	}

	return corpus, nil
}

// LoadCorpusFile reads the CSV corpus stored at path.
func LoadCorpusFile(path string) ([]LabeledText, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening corpus file: %w", err)
	}
	defer f.Close()
	return ReadCorpus(f)
}

// LabelMetrics contains precision, recall and F1 for one label.
type LabelMetrics struct {
	Precision float64
	Recall    float64
	F1Score   float64
	Support   int
}

// Miss is a corpus entry the analyzer labeled differently from its rating.
type Miss struct {
	Text      string
	Expected  Label
	Predicted Label
	Compound  float64
}

// WordCount is an unscored word and the number of missed snippets it
// appeared in.
type WordCount struct {
	Word  string
	Count int
}

// Evaluation contains accuracy metrics over a labeled corpus.
type Evaluation struct {
	Total    int
	Correct  int
	Accuracy float64

	// Correlation is the Pearson correlation between compound scores and
	// human ratings. It is NaN when either side is constant.
	Correlation float64

	// Confusion counts entries by expected label (rows) and predicted
	// label (columns), both in Labels order.
	Confusion *mat.Dense

	PerLabel map[Label]LabelMetrics
	Misses   []Miss

	// LexiconGaps lists the most frequent words of missed snippets that
	// are neither lexicon words, modifiers nor stop words.
	LexiconGaps []WordCount
}

// Evaluate classifies every entry of corpus and compares the result with
// the label implied by its rating.
func (a *Analyzer) Evaluate(corpus []LabeledText) (Evaluation, error) {
	if len(corpus) == 0 {
		return Evaluation{}, fmt.Errorf("cannot evaluate an empty corpus")
	}

	n := len(Labels)
	confusion := mat.NewDense(n, n, nil)
	compounds := make([]float64, len(corpus))
	ratings := make([]float64, len(corpus))
	gaps := map[string]int{}

	eval := Evaluation{Total: len(corpus)}
	for i, entry := range corpus {
		scores := a.PolarityScores(entry.Text)
		expected, predicted := entry.Expected(), scores.Label()

		compounds[i] = scores.Compound
		ratings[i] = entry.Rating

		r, c := labelIndex(expected), labelIndex(predicted)
		confusion.Set(r, c, confusion.At(r, c)+1)

		if expected == predicted {
			eval.Correct++
			continue
		}
		eval.Misses = append(eval.Misses, Miss{
			Text:      entry.Text,
			Expected:  expected,
			Predicted: predicted,
			Compound:  scores.Compound,
		})
		for word := range a.unscoredWords(entry.Text) {
			gaps[word]++
		}
	}

	eval.Accuracy = float64(eval.Correct) / float64(eval.Total)
	eval.Correlation = stat.Correlation(compounds, ratings, nil)
	eval.Confusion = confusion
	eval.PerLabel = labelMetrics(confusion)
	eval.LexiconGaps = topWords(gaps, maxLexiconGaps)

	return eval, nil
}

// labelMetrics derives per-label precision, recall and F1 from a
// confusion matrix.
func labelMetrics(confusion *mat.Dense) map[Label]LabelMetrics {
	n, _ := confusion.Dims()
	metrics := make(map[Label]LabelMetrics, n)

	row := make([]float64, n)
	col := make([]float64, n)
	for i, label := range Labels {
		mat.Row(row, i, confusion)
		mat.Col(col, i, confusion)

		tp := confusion.At(i, i)
		actual, predicted := floats.Sum(row), floats.Sum(col)

		var m LabelMetrics
		m.Support = int(actual)
		if predicted > 0 {
			m.Precision = tp / predicted
		}
		if actual > 0 {
			m.Recall = tp / actual
		}
		if m.Precision+m.Recall > 0 {
			m.F1Score = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		metrics[label] = m
	}
	return metrics
}

// unscoredWords returns the distinct words of text the analyzer gave no
// meaning to.
func (a *Analyzer) unscoredWords(text string) map[string]bool {
	words := map[string]bool{}
	for _, tok := range a.tokenizer.Tokenize(text) {
		word := strings.Trim(tok.Lower, asciiPunctuation)
		if word == "" || a.lexicon.HasWord(word) || IsNegation(word) {
			continue
		}
		if _, ok := BoosterStrength(word); ok {
			continue
		}
		if strings.TrimSpace(stopwords.CleanString(word, "en", false)) == "" {
			continue
		}
		words[word] = true
	}
	return words
}

func topWords(counts map[string]int, limit int) []WordCount {
	words := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		words = append(words, WordCount{Word: w, Count: c})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if len(words) > limit {
		words = words[:limit]
	}
	return words
}

// Summary formats the evaluation as a short human readable report.
func (e Evaluation) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "accuracy: %.4f (%d/%d)\n", e.Accuracy, e.Correct, e.Total)
	if !math.IsNaN(e.Correlation) {
		fmt.Fprintf(&b, "correlation: %.4f\n", e.Correlation)
	}

	b.WriteString("confusion (rows expected, columns predicted):\n")
	fmt.Fprintf(&b, "%10s", "")
	for _, l := range Labels {
		fmt.Fprintf(&b, "%10s", l)
	}
	b.WriteByte('\n')
	for i, l := range Labels {
		fmt.Fprintf(&b, "%10s", l)
		for j := range Labels {
			fmt.Fprintf(&b, "%10d", int(e.Confusion.At(i, j)))
		}
		b.WriteByte('\n')
	}

	for _, l := range Labels {
		m := e.PerLabel[l]
		fmt.Fprintf(&b, "%-9s precision=%.3f recall=%.3f f1=%.3f support=%d\n",
			l, m.Precision, m.Recall, m.F1Score, m.Support)
	}

	if len(e.LexiconGaps) > 0 {
		b.WriteString("unscored words in missed snippets:")
		for _, wc := range e.LexiconGaps {
			fmt.Fprintf(&b, " %s(%d)", wc.Word, wc.Count)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
