// Package lingo wraps the external part-of-speech tagging and
// lemmatization capability consumed by the topic pipeline.
package lingo

// Category is a coarse word class derived from the first character of a
// Penn-style tag.
type Category int

const (
	Other Category = iota
	Noun
	Verb
	Adverb
	Adjective
	SatelliteAdjective
)

// CategoryOf maps a tag string to its Category by inspecting the first
// character. Tags outside the five open classes map to Other.
func CategoryOf(tag string) Category {
	if tag == "" {
		return Other
	}
	switch tag[0] {
	case 'N':
		return Noun
	case 'V':
		return Verb
	case 'R':
		return Adverb
	case 'J':
		return Adjective
	case 'S':
		return SatelliteAdjective
	}
	return Other
}

// OpenClass reports whether the category is a content-bearing word class.
// Function words (articles, prepositions, pronouns) tag outside these
// classes and get filtered from the token stream.
func (c Category) OpenClass() bool {
	return c != Other
}

// Tagger is the linguistic capability boundary: Penn-style tagging plus
// dictionary lemmatization. Implementations are pure functions of their
// inputs, so results may be memoized freely.
type Tagger interface {
	// Tag returns the part-of-speech tag for a single token.
	Tag(token string) string
	// Lemmatize returns the dictionary base form of surface using its
	// word class. Other is treated as Noun; unknown surfaces come back
	// unchanged.
	Lemmatize(surface string, cat Category) string
}

// Memo caches tag and lemma lookups per unique surface token. The pipeline
// tags the same token many times across filtering and pattern matching;
// wrapping the adapter bounds external calls to O(distinct tokens) without
// changing results. Not safe for concurrent use; take one per scoring run.
type Memo struct {
	inner  Tagger
	tags   map[string]string
	lemmas map[lemmaKey]string
}

type lemmaKey struct {
	surface string
	cat     Category
}

// NewMemo wraps inner with a fresh cache.
func NewMemo(inner Tagger) *Memo {
	return &Memo{
		inner:  inner,
		tags:   make(map[string]string),
		lemmas: make(map[lemmaKey]string),
	}
}

func (m *Memo) Tag(token string) string {
	if tag, ok := m.tags[token]; ok {
		return tag
	}
	tag := m.inner.Tag(token)
	m.tags[token] = tag
	return tag
}

func (m *Memo) Lemmatize(surface string, cat Category) string {
	key := lemmaKey{surface: surface, cat: cat}
	if lemma, ok := m.lemmas[key]; ok {
		return lemma
	}
	lemma := m.inner.Lemmatize(surface, cat)
	m.lemmas[key] = lemma
	return lemma
}
