package sentiment

import "strings"

// Empirically derived increments. These values come from the rated
// human judgements the lexicon was built from; changing them changes
// labels on the accuracy corpus.
const (
	// BoosterIncrement is the mean intensity increase for booster words.
	BoosterIncrement = 0.293
	// BoosterDecrement is the mean intensity decrease for dampener words.
	BoosterDecrement = -0.293
	// CapsIncrement is the mean intensity increase for an ALL-CAPS word
	// in an otherwise mixed-case text.
	CapsIncrement = 0.733
	// NegationScalar flips and dampens a negated valence.
	NegationScalar = -0.74

	// ExclamationIncrement is added per exclamation mark, up to MaxExclamations.
	ExclamationIncrement = 0.292
	MaxExclamations      = 4
	// QuestionIncrement is added per question mark when there are 2 or 3.
	QuestionIncrement = 0.18
	// MaxQuestionAmplifier is used for 4 or more question marks.
	MaxQuestionAmplifier = 0.96

	// Weights applied around the first contrastive "but".
	ButBeforeWeight = 0.5
	ButAfterWeight  = 1.5

	// NormalizationAlpha approximates the max expected raw sum.
	NormalizationAlpha = 15.0
)

// negations lists words that negate a valenced word within the look-back window.
var negations = map[string]bool{
	"aint": true, "arent": true, "cannot": true, "cant": true, "couldnt": true,
	"darent": true, "didnt": true, "doesnt": true,
	"ain't": true, "aren't": true, "can't": true, "couldn't": true, "daren't": true,
	"didn't": true, "doesn't": true,
	"dont": true, "hadnt": true, "hasnt": true, "havent": true, "isnt": true,
	"mightnt": true, "mustnt": true, "neither": true,
	"don't": true, "hadn't": true, "hasn't": true, "haven't": true, "isn't": true,
	"mightn't": true, "mustn't": true,
	"neednt": true, "needn't": true, "never": true, "none": true, "nope": true,
	"nor": true, "not": true, "nothing": true, "nowhere": true,
	"oughtnt": true, "shant": true, "shouldnt": true, "uhuh": true, "wasnt": true,
	"werent": true,
	"oughtn't": true, "shan't": true, "shouldn't": true, "uh-uh": true,
	"wasn't": true, "weren't": true,
	"without": true, "wont": true, "wouldnt": true, "won't": true, "wouldn't": true,
	"rarely": true, "seldom": true, "despite": true,
}

// boosters maps degree adverbs to the increment they apply to the word
// they modify. Multi-word entries are matched as n-grams by the idiom rule.
var boosters = map[string]float64{
	"absolutely": BoosterIncrement, "amazingly": BoosterIncrement, "awfully": BoosterIncrement,
	"completely": BoosterIncrement, "considerable": BoosterIncrement, "considerably": BoosterIncrement,
	"decidedly": BoosterIncrement, "deeply": BoosterIncrement,
	"effing": BoosterIncrement, "enormous": BoosterIncrement, "enormously": BoosterIncrement,
	"entirely": BoosterIncrement, "especially": BoosterIncrement, "exceptional": BoosterIncrement,
	"exceptionally": BoosterIncrement, "extreme": BoosterIncrement, "extremely": BoosterIncrement,
	"fabulously": BoosterIncrement, "flipping": BoosterIncrement, "flippin": BoosterIncrement,
	"frackin": BoosterIncrement, "fracking": BoosterIncrement,
	"fricking": BoosterIncrement, "frickin": BoosterIncrement, "frigging": BoosterIncrement,
	"friggin": BoosterIncrement, "fully": BoosterIncrement,
	"fuckin": BoosterIncrement, "fucking": BoosterIncrement, "fuggin": BoosterIncrement,
	"fugging": BoosterIncrement,
	"greatly": BoosterIncrement, "hella": BoosterIncrement, "highly": BoosterIncrement,
	"hugely": BoosterIncrement, "incredible": BoosterIncrement, "incredibly": BoosterIncrement,
	"intensely": BoosterIncrement,
	"major": BoosterIncrement, "majorly": BoosterIncrement, "more": BoosterIncrement,
	"most": BoosterIncrement, "particularly": BoosterIncrement,
	"purely": BoosterIncrement, "quite": BoosterIncrement, "really": BoosterIncrement,
	"remarkably": BoosterIncrement,
	"so": BoosterIncrement, "substantially": BoosterIncrement,
	"thoroughly": BoosterIncrement, "total": BoosterIncrement, "totally": BoosterIncrement,
	"tremendous": BoosterIncrement, "tremendously": BoosterIncrement,
	"uber": BoosterIncrement, "unbelievably": BoosterIncrement, "unusually": BoosterIncrement,
	"utter": BoosterIncrement, "utterly": BoosterIncrement,
	"very": BoosterIncrement,

	"almost": BoosterDecrement, "barely": BoosterDecrement, "hardly": BoosterDecrement,
	"just enough": BoosterDecrement,
	"kind of": BoosterDecrement, "kinda": BoosterDecrement, "kindof": BoosterDecrement,
	"kind-of": BoosterDecrement,
	"less": BoosterDecrement, "little": BoosterDecrement, "marginal": BoosterDecrement,
	"marginally": BoosterDecrement,
	"occasional": BoosterDecrement, "occasionally": BoosterDecrement, "partly": BoosterDecrement,
	"scarce": BoosterDecrement, "scarcely": BoosterDecrement, "slight": BoosterDecrement,
	"slightly": BoosterDecrement, "somewhat": BoosterDecrement,
	"sort of": BoosterDecrement, "sorta": BoosterDecrement, "sortof": BoosterDecrement,
	"sort-of": BoosterDecrement,
}

// specialIdioms are phrases containing lexicon words whose combined
// valence overrides the per-word result.
var specialIdioms = map[string]float64{
	"the shit":      3,
	"the bomb":      3,
	"bad ass":       1.5,
	"badass":        1.5,
	"bus stop":      0.0,
	"yeah right":    -2,
	"kiss of death": -1.5,
	"to die for":    3,
	"beating heart": 3.1,
	"broken heart":  -2.9,
}

// IsNegation reports whether word is in the fixed negation list or
// carries an "n't" contraction.
func IsNegation(word string) bool {
	if negations[word] {
		return true
	}
	return strings.Contains(word, "n't")
}

// BoosterStrength returns the booster/dampener increment for word and
// whether the word is one.
func BoosterStrength(word string) (float64, bool) {
	v, ok := boosters[word]
	return v, ok
}
