package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tsawler/sentiment"
	"github.com/tsawler/sentiment/internal/logger"
)

func main() {
	var (
		corpusPath  = flag.String("corpus", "testdata/accuracy_corpus.csv", "Labeled CSV corpus")
		minAccuracy = flag.Float64("min", 0.8, "Minimum accuracy before exiting non-zero")
		lexiconPath = flag.String("lexicon", "", "Lexicon file (bundled lexicon when empty)")
		emojiPath   = flag.String("emoji", "", "Emoji description file (bundled table when empty)")
		overlayPath = flag.String("overlay", "", "YAML lexicon overlay")
		logLevel    = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	zl, err := logger.NewWithWriter(*logLevel, "console", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zl.Sync() }()

	analyzer, err := sentiment.LoadAnalyzer(sentiment.DataFiles{
		Lexicon: *lexiconPath,
		Emoji:   *emojiPath,
		Overlay: *overlayPath,
	})
	if err != nil {
		zl.Fatal("Failed to load analyzer data", zap.Error(err))
	}

	corpus, err := sentiment.LoadCorpusFile(*corpusPath)
	if err != nil {
		zl.Fatal("Failed to load corpus", zap.String("path", *corpusPath), zap.Error(err))
	}
	zl.Info("Corpus loaded", zap.String("path", *corpusPath), zap.Int("snippets", len(corpus)))

	eval, err := analyzer.Evaluate(corpus)
	if err != nil {
		zl.Fatal("Evaluation failed", zap.Error(err))
	}

	fmt.Print(eval.Summary())

	for _, miss := range eval.Misses {
		zl.Debug("Misclassified snippet",
			zap.String("text", miss.Text),
			zap.String("expected", miss.Expected.String()),
			zap.String("got", miss.Predicted.String()),
			zap.Float64("compound", miss.Compound))
	}

	if eval.Accuracy < *minAccuracy {
		zl.Error("Accuracy below minimum",
			zap.Float64("accuracy", eval.Accuracy),
			zap.Float64("min", *minAccuracy))
		_ = zl.Sync()
		os.Exit(1)
	}
}
