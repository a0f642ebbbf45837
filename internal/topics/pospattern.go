package topics

import (
	"strings"

	"github.com/akshay-bhagdikar/Webpage-topics/internal/lingo"
)

// PatternTopics ranks n-gram topics by frequency among grams whose tags
// fit a noun-phrase template: for bigrams noun-noun or adjective-noun, for
// trigrams adjective-or-noun at both ends with the middle unconstrained.
// Every occurrence of a qualifying gram adds the gram's full frequency to
// its topic, so a topic seen k times scores k squared; as with PMITopics
// the amplification is deliberate. Only n of 2 or 3 is accepted.
func (e *Extractor) PatternTopics(n, limit int) ([]CountedTopic, error) {
	if n != 2 && n != 3 {
		return nil, ErrInvalidGramCount
	}
	tagger := lingo.NewMemo(e.tagger)
	grams := e.nGrams(n, tagger)

	freq := make(map[string]int, len(grams))
	values := make([]string, 0, len(grams))
	for _, g := range grams {
		v := strings.Join(g, " ")
		values = append(values, v)
		freq[v]++
	}

	scores := make(map[string]int)
	order := make([]string, 0, len(freq))
	for _, v := range values {
		if !matchesPattern(strings.Split(v, " "), tagger) {
			continue
		}
		if _, seen := scores[v]; !seen {
			order = append(order, v)
		}
		scores[v] += freq[v]
	}

	candidates := make([]rankedTopic, 0, len(order))
	for _, topic := range order {
		candidates = append(candidates, rankedTopic{topic: topic, score: float64(scores[topic])})
	}
	ranked := topN(candidates, limit)

	out := make([]CountedTopic, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, CountedTopic{Topic: r.topic, Score: scores[r.topic]})
	}
	return out, nil
}

func matchesPattern(words []string, tagger lingo.Tagger) bool {
	switch len(words) {
	case 2:
		first := lingo.CategoryOf(tagger.Tag(words[0]))
		second := lingo.CategoryOf(tagger.Tag(words[1]))
		return second == lingo.Noun && (first == lingo.Noun || first == lingo.Adjective)
	case 3:
		return nounOrAdjective(tagger.Tag(words[0])) && nounOrAdjective(tagger.Tag(words[2]))
	}
	return false
}

func nounOrAdjective(tag string) bool {
	cat := lingo.CategoryOf(tag)
	return cat == lingo.Noun || cat == lingo.Adjective
}
