package topics

import (
	"strings"

	"github.com/akshay-bhagdikar/Webpage-topics/internal/lingo"
)

// lemmatizeContent returns each content unit with every whitespace token
// replaced by its lowercase lemma. The word class feeding the lemmatizer
// comes from tagging the original surface form, before lowercasing, with
// unrecognized tags resolving to Noun.
func (e *Extractor) lemmatizeContent(tagger lingo.Tagger) []string {
	out := make([]string, 0, len(e.content))
	for _, unit := range e.content {
		fields := strings.Fields(unit)
		lemmas := make([]string, 0, len(fields))
		for _, tok := range fields {
			cat := lingo.CategoryOf(tagger.Tag(tok))
			if cat == lingo.Other {
				cat = lingo.Noun
			}
			lemmas = append(lemmas, tagger.Lemmatize(strings.ToLower(tok), cat))
		}
		out = append(out, strings.Join(lemmas, " "))
	}
	return out
}

// nGrams slides width-n windows over the filtered token stream of every
// sentence fragment and returns the flat occurrence list in content
// order. Adjacency is computed on the filtered sequence: dropped function
// words do not break contiguity. The list is not deduplicated; repeated
// phrases carry weight in both scorers.
func (e *Extractor) nGrams(n int, tagger lingo.Tagger) [][]string {
	var grams [][]string
	for _, sentence := range e.lemmatizeContent(tagger) {
		sentence = CollapseAcronyms(sentence)
		for _, fragment := range strings.Split(sentence, ".") {
			var tokens []string
			for _, tok := range strings.Fields(StripPunctuation(fragment)) {
				if lingo.CategoryOf(tagger.Tag(tok)).OpenClass() {
					tokens = append(tokens, tok)
				}
			}
			// Strictly more tokens than n are required; a fragment
			// of exactly n tokens yields no window.
			if len(tokens) > n {
				for i := 0; i+n <= len(tokens); i++ {
					grams = append(grams, tokens[i:i+n])
				}
			}
		}
	}
	return grams
}
