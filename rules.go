package sentiment

// sentimentText is the per-call view of a text shared by the rules. It is
// built fresh for every call and never shared between goroutines.
type sentimentText struct {
	lexicon *Lexicon
	tokens  []Token
	capDiff bool
}

func newSentimentText(lex *Lexicon, tokens []Token) *sentimentText {
	return &sentimentText{
		lexicon: lex,
		tokens:  tokens,
		capDiff: CapDifferential(tokens),
	}
}

// lower returns the lowercased token at i.
func (st *sentimentText) lower(i int) string {
	return st.tokens[i].Lower
}

func (st *sentimentText) inLexicon(i int) bool {
	return st.lexicon.HasWord(st.tokens[i].Lower)
}

// A valenceRule adjusts the valence of the lexicon word at position i.
// Rules never look at anything but the sentimentText and the incoming
// valence, so the same tables serve every caller.
type valenceRule struct {
	name  string
	apply func(st *sentimentText, i int, valence float64) float64
}

// valenceRules run in order on every token found in the lexicon.
var valenceRules = []valenceRule{
	{name: "no", apply: applyNo},
	{name: "caps", apply: applyCaps},
	{name: "window", apply: applyWindow},
	{name: "least", apply: applyLeast},
}

// skipToken reports whether the token at i is a modifier that carries no
// valence of its own.
func skipToken(st *sentimentText, i int) bool {
	if _, ok := BoosterStrength(st.lower(i)); ok {
		return true
	}
	return i < len(st.tokens)-1 && st.lower(i) == "kind" && st.lower(i+1) == "of"
}

// applyNo handles "no" both as a negator of the next lexicon word and as
// a word on its own.
func applyNo(st *sentimentText, i int, valence float64) float64 {
	if st.lower(i) == "no" && i != len(st.tokens)-1 && st.inLexicon(i+1) {
		valence = 0
	}

	if (i > 0 && st.lower(i-1) == "no") ||
		(i > 1 && st.lower(i-2) == "no") ||
		(i > 2 && st.lower(i-3) == "no" && (st.lower(i-1) == "or" || st.lower(i-1) == "nor")) {
		base, _ := st.lexicon.Sentiment(st.lower(i))
		valence = base * NegationScalar
	}
	return valence
}

// applyCaps emphasizes an ALL-CAPS word in a text that is not all caps.
func applyCaps(st *sentimentText, i int, valence float64) float64 {
	if !st.capDiff || !IsUpper(st.tokens[i].Text) {
		return valence
	}
	if valence > 0 {
		return valence + CapsIncrement
	}
	return valence - CapsIncrement
}

// applyWindow looks at up to three preceding tokens. Each one that is not
// itself a lexicon word may boost or dampen the valence and may negate
// it. The idiom check runs once the whole window has been seen.
func applyWindow(st *sentimentText, i int, valence float64) float64 {
	for dist := 0; dist < 3; dist++ {
		j := i - (dist + 1)
		if j < 0 || st.inLexicon(j) {
			continue
		}

		s := scalarIncDec(st, j, valence)
		switch {
		case dist == 1 && s != 0:
			s *= 0.95
		case dist == 2 && s != 0:
			s *= 0.9
		}
		valence += s

		valence = negationCheck(st, dist, i, valence)
		if dist == 2 {
			valence = idiomCheck(st, i, valence)
		}
	}
	return valence
}

// scalarIncDec returns the increment the booster at j applies to valence.
func scalarIncDec(st *sentimentText, j int, valence float64) float64 {
	scalar, ok := BoosterStrength(st.lower(j))
	if !ok {
		return 0
	}
	if valence < 0 {
		scalar = -scalar
	}
	if st.capDiff && IsUpper(st.tokens[j].Text) {
		if valence > 0 {
			scalar += CapsIncrement
		} else {
			scalar -= CapsIncrement
		}
	}
	return scalar
}

func isSoOrThis(w string) bool {
	return w == "so" || w == "this"
}

// negationCheck applies the negation scalar when the token dist+1
// positions back negates the word at i.
func negationCheck(st *sentimentText, dist, i int, valence float64) float64 {
	switch dist {
	case 0:
		if IsNegation(st.lower(i - 1)) {
			valence *= NegationScalar
		}
	case 1:
		switch {
		case st.lower(i-2) == "never" && isSoOrThis(st.lower(i-1)):
			valence *= 1.25
		case st.lower(i-2) == "without" && st.lower(i-1) == "doubt":
		case IsNegation(st.lower(i - 2)):
			valence *= NegationScalar
		}
	case 2:
		// "so" or "this" right before the word intensifies it even
		// without a leading "never".
		switch {
		case (st.lower(i-3) == "never" && isSoOrThis(st.lower(i-2))) || isSoOrThis(st.lower(i-1)):
			valence *= 1.25
		case st.lower(i-3) == "without" && (st.lower(i-2) == "doubt" || st.lower(i-1) == "doubt"):
		case IsNegation(st.lower(i - 3)):
			valence *= NegationScalar
		}
	}
	return valence
}

// idiomCheck replaces the valence when the word at i is part of a known
// idiom and adds the increment of multi-word boosters in front of it.
// It is only called with i >= 3.
func idiomCheck(st *sentimentText, i int, valence float64) float64 {
	w := func(k int) string { return st.lower(k) }

	oneZero := w(i-1) + " " + w(i)
	twoOneZero := w(i-2) + " " + w(i-1) + " " + w(i)
	twoOne := w(i-2) + " " + w(i-1)
	threeTwoOne := w(i-3) + " " + w(i-2) + " " + w(i-1)
	threeTwo := w(i-3) + " " + w(i-2)

	for _, seq := range []string{oneZero, twoOneZero, twoOne, threeTwoOne, threeTwo} {
		if v, ok := specialIdioms[seq]; ok {
			valence = v
			break
		}
	}

	n := len(st.tokens)
	if n-1 > i {
		if v, ok := specialIdioms[w(i)+" "+w(i+1)]; ok {
			valence = v
		}
	}
	if n-1 > i+1 {
		if v, ok := specialIdioms[w(i)+" "+w(i+1)+" "+w(i+2)]; ok {
			valence = v
		}
	}

	for _, gram := range []string{threeTwoOne, threeTwo, twoOne} {
		if v, ok := boosters[gram]; ok {
			valence += v
		}
	}
	return valence
}

// applyLeast negates a word preceded by "least", except in "at least"
// and "very least".
func applyLeast(st *sentimentText, i int, valence float64) float64 {
	if i == 0 || st.lower(i-1) != "least" || st.inLexicon(i-1) {
		return valence
	}
	if i > 1 {
		if prev := st.lower(i - 2); prev != "at" && prev != "very" {
			valence *= NegationScalar
		}
		return valence
	}
	return valence * NegationScalar
}

// butCheck reweights valences around the first "but": words before it
// count half, words after it count one and a half times.
func butCheck(st *sentimentText, sentiments []float64) {
	pivot := -1
	for i := range st.tokens {
		if st.lower(i) == "but" {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return
	}

	for i := range sentiments {
		switch {
		case i < pivot:
			sentiments[i] *= ButBeforeWeight
		case i > pivot:
			sentiments[i] *= ButAfterWeight
		}
	}
}
