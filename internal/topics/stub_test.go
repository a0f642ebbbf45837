package topics

import "github.com/akshay-bhagdikar/Webpage-topics/internal/lingo"

// stubTagger is a deterministic Tagger for pipeline tests. Unknown tokens
// tag NN, matching the production adapter's fallback.
type stubTagger struct {
	tags     map[string]string
	lemmas   map[string]string
	tagCalls int
}

func (s *stubTagger) Tag(token string) string {
	s.tagCalls++
	if t, ok := s.tags[token]; ok {
		return t
	}
	return "NN"
}

func (s *stubTagger) Lemmatize(surface string, cat lingo.Category) string {
	if l, ok := s.lemmas[surface]; ok {
		return l
	}
	return surface
}

// foxTagger covers the vocabulary of the brown-fox fixture sentences.
func foxTagger() *stubTagger {
	return &stubTagger{
		tags: map[string]string{
			"the": "DT", "The": "DT", "a": "DT",
			"over": "IN",
			"big": "JJ", "brown": "JJ", "lazy": "JJ",
			"fox": "NN", "dog": "NN",
			"jumps": "VBZ", "jump": "VB",
			"runs": "VBZ", "run": "VB",
			"sleeps": "VBZ", "sleep": "VB",
			"fast": "RB",
		},
		lemmas: map[string]string{
			"jumps": "jump", "runs": "run", "sleeps": "sleep",
		},
	}
}

func foxContent() []string {
	return []string{
		"the big brown fox jumps over the lazy dog",
		"the big brown fox runs fast",
		"a big brown fox sleeps",
	}
}
