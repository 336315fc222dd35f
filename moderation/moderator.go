// Package moderation censors blacklisted words in chat text before it enters
// the encryption pipeline. Matching is resilient to casing, punctuation
// padding, and common leet-speak substitutions.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator wraps an Aho-Corasick automaton built over a normalized wordlist.
// The zero value is unusable; build one with NewModerator.
type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
	enabled      bool
}

// NewModerator builds the automaton from the censored words. An empty list
// yields a disabled moderator whose Censor is the identity.
func NewModerator(censoredWords []string, censoredChar rune) (Moderator, error) {
	if len(censoredWords) == 0 {
		return Moderator{censoredChar: censoredChar}, nil
	}

	patterns := make([][]rune, len(censoredWords))
	for i, word := range censoredWords {
		patterns[i] = normalizeRunes([]rune(word))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: m, censoredChar: censoredChar, enabled: true}, nil
}

// Enabled reports whether a non-empty wordlist was loaded.
func (m *Moderator) Enabled() bool { return m.enabled }

// Censor replaces every character of a matched span with the replacement rune,
// preserving spacing and untouched text. It returns the censored text and the
// normalized forms of the words that were hit.
func (m *Moderator) Censor(original string) (string, []string) {
	if !m.enabled {
		return original, nil
	}

	origRunes := []rune(original)
	// Search runs on a normalized view; origIdx maps normalized positions
	// back to positions in the original runes.
	norm, origIdx := normalize(origRunes)
	if len(norm) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(norm, false)
	if len(spans) == 0 {
		return original, nil
	}

	var found []string
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			origRunes[i] = m.censoredChar
		}
		found = append(found, string(span.Word))
	}

	return string(origRunes), found
}

// normalize lowercases, undoes leet substitutions, and strips noise runes,
// keeping a position map back into the input.
func normalize(input []rune) ([]rune, []int) {
	norm := make([]rune, 0, len(input))
	origIdx := make([]int, 0, len(input))
	for i, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return norm, origIdx
}

func normalizeRunes(input []rune) []rune {
	norm, _ := normalize(input)
	return norm
}

// simplifyRune maps common leet-speak characters back to their alphabet counterparts.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

// isNoise identifies characters ignored during pattern matching.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
