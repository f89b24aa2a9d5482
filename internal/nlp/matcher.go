package nlp

import "strings"

// Matcher decides whether a vocabulary term occurs in a normalized message.
// Classification and extraction both go through this single interface, so
// the matching rule can be replaced (e.g. by token-boundary matching)
// without touching dispatch logic.
type Matcher interface {
	Matches(message, term string) bool
}

// substringMatcher matches a term anywhere in the message, not word-bounded.
// Short terms can overmatch inside longer words; that is the documented
// behavior of the vocabularies, not something to correct here.
type substringMatcher struct{}

func (substringMatcher) Matches(message, term string) bool {
	return strings.Contains(message, term)
}

// NewSubstringMatcher returns the default case-preserving substring matcher.
// Inputs are expected to be normalized (lowercased) before matching.
func NewSubstringMatcher() Matcher {
	return substringMatcher{}
}
