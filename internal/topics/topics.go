// Package topics extracts candidate topical phrases from the textual
// content of a single document. Content units are lemmatized, normalized,
// filtered to content-bearing tokens, cut into contiguous n-gram windows,
// and ranked either by pointwise mutual information or by part-of-speech
// pattern frequency.
package topics

import (
	"errors"

	"github.com/akshay-bhagdikar/Webpage-topics/internal/lingo"
)

// Extractor derives ranked topical phrases from an ordered collection of
// text units. The content is supplied once and never mutated; every
// scoring call recomputes its intermediate state from scratch.
type Extractor struct {
	content []string
	tagger  lingo.Tagger
}

// New builds an Extractor over the given content units. Empty units are
// tolerated and contribute no tokens.
func New(content []string, tagger lingo.Tagger) *Extractor {
	return &Extractor{content: content, tagger: tagger}
}

// ScoredTopic is a space-joined token tuple with its accumulated PMI score.
type ScoredTopic struct {
	Topic string
	Score float64
}

// CountedTopic is a space-joined token tuple with its accumulated
// frequency score.
type CountedTopic struct {
	Topic string
	Score int
}

// ErrInvalidGramCount is returned by PatternTopics before any scoring work
// when the requested gram width is not 2 or 3.
var ErrInvalidGramCount = errors.New("pattern topics accept only n=2 or n=3")
