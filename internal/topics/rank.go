package topics

import "sort"

// rankedTopic pairs a topic with its score while ranking.
type rankedTopic struct {
	topic string
	score float64
}

// topN sorts candidates descending by score and truncates to limit.
// Candidates arrive in first-seen order and the sort is stable, so equal
// scores keep the order in which a topic was first encountered. A limit
// of zero or less, or one beyond the candidate count, returns everything.
func topN(candidates []rankedTopic, limit int) []rankedTopic {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if limit > 0 && limit < len(candidates) {
		return candidates[:limit]
	}
	return candidates
}
