package topics

import (
	"regexp"
	"strings"
)

// acronymRun matches runs of a single letter followed by a period, e.g.
// "m.b.a.". Text reaches this stage lemmatized and lowercased, so the
// letter match covers both cases.
var acronymRun = regexp.MustCompile(`(?:[A-Za-z]\.)+`)

// CollapseAcronyms removes the internal periods from acronym runs so they
// are not misread as sentence boundaries ("m.b.a." becomes "mba"). A run
// preceded by a letter is the tail of an ordinary word; its period stays
// behind for sentence splitting.
func CollapseAcronyms(sentence string) string {
	matches := acronymRun.FindAllStringIndex(sentence, -1)
	if matches == nil {
		return sentence
	}
	var b strings.Builder
	b.Grow(len(sentence))
	prev := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		b.WriteString(sentence[prev:start])
		run := sentence[start:end]
		if start > 0 && isLetter(sentence[start-1]) {
			b.WriteString(run)
		} else {
			b.WriteString(strings.ReplaceAll(run, ".", ""))
		}
		prev = end
	}
	b.WriteString(sentence[prev:])
	return b.String()
}

// punctuation is the character set replaced by spaces. The apostrophe is
// deliberately absent so contractions like don't survive intact.
const punctuation = "!@#$%*()_+-=[]{}|\\:;\",<>."

// StripPunctuation replaces each punctuation character with a space, then
// collapses whitespace runs to single spaces and trims the ends.
func StripPunctuation(sentence string) string {
	mapped := strings.Map(func(r rune) rune {
		if r < 0x80 && strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, sentence)
	return strings.Join(strings.Fields(mapped), " ")
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
