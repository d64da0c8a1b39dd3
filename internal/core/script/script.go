// Package script classifies runes into writing-system categories and builds
// per-text script profiles for the language detector
package script

import (
	"unicode"
)

// Category is a coarse writing-system bucket
type Category uint8

// Categories in report order. Other collects punctuation, symbols and emoji
const (
	Hiragana Category = iota
	Katakana
	Han
	Latin
	Hangul
	Arabic
	Cyrillic
	Digit
	Other

	numCategories
)

var catNames = [numCategories]string{
	"hiragana", "katakana", "han", "latin", "hangul", "arabic", "cyrillic", "digit", "other",
}

// String returns the lowercase wire name of the category
func (c Category) String() string {
	if int(c) < len(catNames) {
		return catNames[c]
	}
	return "other"
}

// All lists every category in report order
func All() []Category {
	out := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

// Profile holds per-category rune counts for one text.
// Total excludes whitespace and control runes
type Profile struct {
	Counts [numCategories]int
	Total  int
}

// Classify counts runes per category in a single pass.
// Whitespace and control runes are skipped entirely
func Classify(s string) Profile {
	var p Profile
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			continue
		}
		p.Counts[Of(r)]++
		p.Total++
	}
	return p
}

// Of maps a single rune to its category.
// Kana before Han before Latin so shared CJK punctuation lands in Other
func Of(r rune) Category {
	switch {
	case unicode.In(r, unicode.Hiragana):
		return Hiragana
	case unicode.In(r, unicode.Katakana):
		return Katakana
	case unicode.In(r, unicode.Han):
		return Han
	case unicode.In(r, unicode.Hangul):
		return Hangul
	case unicode.In(r, unicode.Arabic):
		return Arabic
	case unicode.In(r, unicode.Cyrillic):
		return Cyrillic
	case unicode.IsDigit(r):
		return Digit
	case unicode.In(r, unicode.Latin):
		return Latin
	default:
		return Other
	}
}

// Ratio returns Counts[c] / Total, or 0 when the profile is empty
func (p Profile) Ratio(c Category) float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Counts[c]) / float64(p.Total)
}

// Ratios returns the full breakdown keyed by wire name.
// Values sum to 1.0 when Total > 0 and are all zero otherwise
func (p Profile) Ratios() map[string]float64 {
	out := make(map[string]float64, numCategories)
	for c := Category(0); c < numCategories; c++ {
		out[c.String()] = p.Ratio(c)
	}
	return out
}

// Kana reports the combined Hiragana+Katakana count
func (p Profile) Kana() int { return p.Counts[Hiragana] + p.Counts[Katakana] }
