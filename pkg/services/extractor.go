// Package services implements the question-answering pipeline: classify,
// translate, plan, execute, narrate.
package services

import (
	"strings"
	"unicode"
)

// nameStopwords are domain nouns that look like proper-noun name parts but
// never are. A stopword token breaks a candidate sequence.
var nameStopwords = map[string]bool{
	"nba":     true,
	"stats":   true,
	"stat":    true,
	"season":  true,
	"league":  true,
	"team":    true,
	"teams":   true,
	"points":  true,
	"the":     true,
	"who":     true,
	"what":    true,
	"which":   true,
	"compare": true,
}

// ExtractPlayerNames scans question text for sequences of two or more
// consecutive capitalized words, a conservative proper-noun heuristic. It is
// not a named-entity recognizer: it over-matches capitalized phrases and
// misses single-word nicknames, so callers treat its output as advisory and
// an explicit players filter always wins.
//
// collegeFilters removes candidates that collide with a college name, since
// proper-noun college names otherwise masquerade as player names.
func ExtractPlayerNames(question string, collegeFilters []string) []string {
	tokens := strings.Fields(question)

	var candidates []string
	var run []string

	flush := func() {
		if len(run) >= 2 {
			candidates = append(candidates, strings.Join(run, " "))
		}
		run = nil
	}

	for _, tok := range tokens {
		word := trimWordPunct(tok)
		if word == "" || !startsUpper(word) || nameStopwords[strings.ToLower(word)] {
			flush()
			continue
		}
		run = append(run, stripPossessive(word))
		// Sentence punctuation after the token ends the sequence even when
		// the next word is capitalized.
		if endsSentence(tok) {
			flush()
		}
	}
	flush()

	candidates = dedupe(candidates)
	return dropCollegeCollisions(candidates, collegeFilters)
}

// stripPossessive removes a trailing possessive marker ("LeBron's").
func stripPossessive(word string) string {
	for _, suffix := range []string{"'s", "’s"} {
		if strings.HasSuffix(word, suffix) {
			return strings.TrimSuffix(word, suffix)
		}
	}
	return word
}

func trimWordPunct(tok string) string {
	return strings.TrimFunc(tok, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\'' && r != '’' && r != '-' && r != '.'
	})
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func endsSentence(tok string) bool {
	return strings.HasSuffix(tok, ",") || strings.HasSuffix(tok, ".") ||
		strings.HasSuffix(tok, "?") || strings.HasSuffix(tok, "!") ||
		strings.HasSuffix(tok, ";") || strings.HasSuffix(tok, ":")
}

// dedupe preserves first-seen order.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		key := strings.ToLower(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}

// dropCollegeCollisions removes candidates equal to, containing, or
// contained in a college-name filter.
func dropCollegeCollisions(names, colleges []string) []string {
	if len(colleges) == 0 {
		return names
	}
	var out []string
	for _, n := range names {
		nl := strings.ToLower(n)
		collides := false
		for _, c := range colleges {
			cl := strings.ToLower(strings.TrimSpace(c))
			if cl == "" {
				continue
			}
			if nl == cl || strings.Contains(nl, cl) || strings.Contains(cl, nl) {
				collides = true
				break
			}
		}
		if !collides {
			out = append(out, n)
		}
	}
	return out
}
