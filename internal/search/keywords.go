package search

import (
	"strings"
	"unicode"
)

// MaxSkills caps every SkillSet.
const MaxSkills = 6

// SkillSet is a lower-cased, de-duplicated, order-preserving keyword list of
// at most MaxSkills entries.
type SkillSet []string

// ExtractKeywords pulls skill keywords out of free text. Tokens are split on
// whitespace, commas and periods; only purely alphabetic tokens survive.
func ExtractKeywords(text string) SkillSet {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '.'
	})

	alpha := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if isAlphabetic(tok) {
			alpha = append(alpha, tok)
		}
	}
	return NewSkillSet(alpha)
}

// NewSkillSet normalises an explicit skill list.
func NewSkillSet(items []string) SkillSet {
	out := make(SkillSet, 0, MaxSkills)
	seen := make(map[string]struct{}, MaxSkills)
	for _, s := range items {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == MaxSkills {
			break
		}
	}
	return out
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
