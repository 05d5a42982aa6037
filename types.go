package sentiment

// A Token represents an individual word or emoticon of the analyzed text.
type Token struct {
	Text  string // The token's surface form, original casing preserved.
	Lower string // The token's lowercased form used for lookups.
	Index int    // Position of the token within the text.
}

// Label is the three-way classification of a text.
type Label string

const (
	Positive Label = "Positive"
	Neutral  Label = "Neutral"
	Negative Label = "Negative"
)

// String returns the label text.
func (l Label) String() string {
	return string(l)
}

// Scores represents the result of scoring a single text.
type Scores struct {
	// Compound is the normalized, weighted composite score in [-1, 1].
	Compound float64 `json:"compound"`

	// Proportions of the text that fall in each category. They add up
	// to 1 (or close to it) whenever at least one token was scored.
	Positive float64 `json:"pos"`
	Neutral  float64 `json:"neu"`
	Negative float64 `json:"neg"`
}

// Label classifies the compound score.
func (s Scores) Label() Label {
	return ClassifyCompound(s.Compound)
}

// SentenceScore is the score of one segmented sentence.
type SentenceScore struct {
	Text   string `json:"text"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Scores Scores `json:"scores"`
	Label  Label  `json:"label"`
}
