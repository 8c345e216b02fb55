package hints

import (
	"strings"
	"unicode"

	"github.com/abhisek/geoquest/internal/topics"
)

// Fallback returns an offline hint from the reference sheet of the topic
// titled topicTitle: the term sharing the most words with question, or
// the topic formula when no term matches.
func Fallback(topicTitle, question string) string {
	t, ok := topicByTitle(topicTitle)
	if !ok {
		return "Read the task again and write down what is given and what is asked."
	}

	words := wordSet(question)
	best, bestScore := "", 0
	for _, term := range t.Reference.Terms {
		score := 0
		for w := range wordSet(term) {
			if words[w] {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = term, score
		}
	}
	if best != "" {
		return best
	}
	return "Remember: " + t.Reference.Formula
}

func topicByTitle(title string) (topics.Topic, bool) {
	for _, t := range topics.All() {
		if strings.EqualFold(t.Title, title) {
			return t, true
		}
	}
	return topics.Topic{}, false
}

// wordSet returns the lowercase words of s longer than three letters.
func wordSet(s string) map[string]bool {
	out := make(map[string]bool)
	for _, w := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		if len(w) > 3 {
			out[w] = true
		}
	}
	return out
}
