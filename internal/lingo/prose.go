package lingo

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"
)

// Prose is the production Tagger: the prose perceptron tagger for
// part-of-speech tags and a golem English dictionary for lemmas.
type Prose struct {
	lemmatizer *golem.Lemmatizer
}

// NewProse loads the English lemma dictionary. The prose tagger model is
// package data and needs no setup of its own.
func NewProse() (*Prose, error) {
	lm, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemma dictionary: %w", err)
	}
	return &Prose{lemmatizer: lm}, nil
}

// Tag runs the perceptron tagger over the single token. Segmentation and
// entity extraction are disabled since the input is one token, not prose.
func (p *Prose) Tag(token string) string {
	doc, err := prose.NewDocument(token,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil || len(doc.Tokens()) == 0 {
		// A bare token cannot fail segmentation-free tokenization in
		// practice; the noun tag keeps the fallback of CategoryOf.
		return "NN"
	}
	return doc.Tokens()[0].Tag
}

// Lemmatize looks the surface form up in the lemma dictionary. The
// dictionary folds inflections of every word class, so cat only matters
// as contract: Other callers already resolved to Noun upstream. Unknown
// surfaces come back unchanged.
func (p *Prose) Lemmatize(surface string, cat Category) string {
	if surface == "" {
		return surface
	}
	return p.lemmatizer.Lemma(surface)
}
