// Package parsing provides text normalization and requirement inference for
// job descriptions and resume text.
package parsing

import (
	"strings"
	"unicode"
)

// Normalize lowercases text, strips non-alphanumeric characters (keeping
// spaces), and collapses repeated whitespace. It is a total function: empty
// input yields empty output.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := true // leading whitespace is dropped
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r) || isWordSeparator(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		default:
			// Punctuation inside tokens ("node.js", "c++") is dropped so
			// downstream matching works on canonical alphanumeric forms.
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// isWordSeparator reports whether r should split tokens rather than be
// silently dropped. Slashes and hyphens separate words ("ci/cd",
// "problem-solving"); most other punctuation does not.
func isWordSeparator(r rune) bool {
	switch r {
	case '/', '-', ',', ';', ':', '|', '(', ')', '[', ']':
		return true
	}
	return false
}

// Tokenize splits text into normalized word tokens, dropping stop words and
// tokens shorter than two characters.
func Tokenize(text string) []string {
	words := strings.Fields(Normalize(text))
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < 2 || stopWords[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// NormalizeSkillName canonicalizes a skill name for set comparison:
// lowercase, trimmed, with common aliases mapped to one spelling.
func NormalizeSkillName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := skillAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// skillAliases maps common alternate spellings to canonical taxonomy tokens.
var skillAliases = map[string]string{
	"golang":              "go",
	"js":                  "javascript",
	"ts":                  "typescript",
	"node":                "node.js",
	"nodejs":              "node.js",
	"postgres":            "postgresql",
	"k8s":                 "kubernetes",
	"gcp":                 "google cloud",
	"amazon web services": "aws",
	"reactjs":             "react",
	"vuejs":               "vue",
	"ml":                  "machine learning",
	"tdd":                 "test driven development",
	"cicd":                "ci/cd",
}

// stopWords is the standard English stop-word list shared by the tokenizer
// and the TF-IDF vectorizer.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "can": true,
	"do": true, "for": true, "from": true, "had": true, "has": true,
	"have": true, "he": true, "her": true, "his": true, "if": true,
	"in": true, "into": true, "is": true, "it": true, "its": true,
	"like": true, "make": true, "may": true, "more": true, "not": true,
	"of": true, "on": true, "one": true, "or": true, "our": true,
	"out": true, "should": true, "so": true, "some": true, "than": true,
	"that": true, "the": true, "their": true, "them": true, "then": true,
	"there": true, "these": true, "they": true, "this": true, "to": true,
	"was": true, "we": true, "were": true, "what": true, "when": true,
	"which": true, "who": true, "will": true, "with": true, "would": true,
	"you": true, "your": true,
}

// IsStopWord reports whether a normalized token is on the stop-word list.
func IsStopWord(token string) bool {
	return stopWords[token]
}
