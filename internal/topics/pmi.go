package topics

import (
	"math"
	"strings"

	"github.com/akshay-bhagdikar/Webpage-topics/internal/lingo"
)

// PMITopics ranks n-gram topics by accumulated pointwise mutual
// information. The PMI of a gram is the log ratio of its joint occurrence
// probability over the product of its per-position marginal probabilities.
// Every occurrence in the gram list adds the gram's PMI to its topic, so
// the recorded score equals occurrence count times the single-occurrence
// PMI; this frequency amplification is part of the ranking behavior, not
// an accident to normalize away. Grams occurring no more than twice are
// dropped as noise. A limit of zero or less returns all qualifying topics.
func (e *Extractor) PMITopics(n, limit int) []ScoredTopic {
	tagger := lingo.NewMemo(e.tagger)
	grams := e.nGrams(n, tagger)
	total := float64(len(grams))

	joint := make(map[string]int, len(grams))
	marginal := make([]map[string]int, n)
	for i := range marginal {
		marginal[i] = make(map[string]int)
	}
	for _, g := range grams {
		joint[strings.Join(g, " ")]++
		for i, tok := range g {
			marginal[i][tok]++
		}
	}

	scores := make(map[string]float64)
	order := make([]string, 0, len(joint))
	for _, g := range grams {
		topic := strings.Join(g, " ")
		count := joint[topic]
		if count <= 2 {
			continue
		}
		// The threshold keeps the joint probability strictly positive,
		// and every marginal count is at least the joint count, so the
		// logarithm argument is always positive here.
		pJoint := float64(count) / total
		pMarginals := 1.0
		for i, tok := range g {
			pMarginals *= float64(marginal[i][tok]) / total
		}
		if _, seen := scores[topic]; !seen {
			order = append(order, topic)
		}
		scores[topic] += math.Log(pJoint / pMarginals)
	}

	candidates := make([]rankedTopic, 0, len(order))
	for _, topic := range order {
		candidates = append(candidates, rankedTopic{topic: topic, score: scores[topic]})
	}
	ranked := topN(candidates, limit)

	out := make([]ScoredTopic, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, ScoredTopic{Topic: r.topic, Score: r.score})
	}
	return out
}
