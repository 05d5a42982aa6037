package sentiment

// Threshold separates Neutral from Positive and Negative. The boundary
// values themselves belong to the outer classes.
const Threshold = 0.05

// ClassifyCompound maps a compound score to a Label.
//
//	compound >= +Threshold -> Positive
//	compound <= -Threshold -> Negative
//	otherwise              -> Neutral
func ClassifyCompound(compound float64) Label {
	switch {
	case compound >= Threshold:
		return Positive
	case compound <= -Threshold:
		return Negative
	default:
		return Neutral
	}
}
