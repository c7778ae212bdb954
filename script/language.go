package script

import (
	"strings"

	"github.com/makhin/gedsync-go/gedmatch"
)

// MinConfidence is the minimum confidence at which a language guess may
// drive locale assignment downstream. Guesses below it are still returned
// so callers can log them, but must not be acted on.
const MinConfidence = 0.75

const (
	uniqueLetterConfidence = 0.90
	suffixConfidence       = 0.80
	combinedConfidence     = 0.98
)

// Guess is a language estimate for a piece of text.
type Guess struct {
	Locale     gedmatch.Locale
	Confidence float64
}

// Usable reports whether the guess is confident enough for locale
// assignment.
func (g Guess) Usable() bool {
	return g.Locale != "" && g.Confidence >= MinConfidence
}

// Letters that occur in exactly one of the languages we distinguish.
// Shared diacritics (š, ž, ä, ö, ü, …) are deliberately excluded: they
// would misfire across the Baltic and Germanic groups.
var uniqueLetters = map[gedmatch.Locale]string{
	gedmatch.LocaleLithuanian: "ąęėįųū",
	gedmatch.LocaleEstonian:   "õ",
	gedmatch.LocaleLatvian:    "āēīģķļņ",
	gedmatch.LocalePolish:     "łśćźżń",
	gedmatch.LocaleGerman:     "ß",
}

// Surname-suffix families per language, matched case-insensitively against
// whole words.
var suffixFamilies = map[gedmatch.Locale][]string{
	gedmatch.LocaleLithuanian: {"auskas", "auskiene", "aitis", "aityte", "iene", "unas"},
	gedmatch.LocaleUkrainian:  {"enko", "eiko", "chuk", "czuk"},
	gedmatch.LocaleLatvian:    {"kalns", "bergs", "sons"},
	gedmatch.LocalePolish:     {"owski", "owska", "wicz", "czyk"},
	gedmatch.LocaleGerman:     {"mann", "stein"},
	gedmatch.LocaleEstonian:   {"saar", "mets", "kivi", "org"},
}

// Ukrainian-only and Russian-only Cyrillic letters.
const (
	ukrainianLetters = "іїєґ"
	russianLetters   = "ыэъё"
)

// GuessLanguage estimates the language of text from its script-specific
// signals. For Latin text it checks language-unique letters and surname
// suffix families; for Cyrillic text it distinguishes Ukrainian from Russian
// by their disjoint letter sets. The zero Guess is returned when nothing
// fires.
func GuessLanguage(text string) Guess {
	lower := strings.ToLower(text)
	switch Classify(text) {
	case Cyrillic:
		if strings.ContainsAny(lower, ukrainianLetters) {
			return Guess{Locale: gedmatch.LocaleUkrainian, Confidence: uniqueLetterConfidence}
		}
		if strings.ContainsAny(lower, russianLetters) {
			return Guess{Locale: gedmatch.LocaleRussian, Confidence: uniqueLetterConfidence}
		}
		return Guess{}
	case Latin:
		return guessLatin(lower)
	default:
		return Guess{}
	}
}

func guessLatin(lower string) Guess {
	best := Guess{}
	for _, locale := range gedmatch.AllLocales {
		confidence := 0.0
		if letters, ok := uniqueLetters[locale]; ok && strings.ContainsAny(lower, letters) {
			confidence = uniqueLetterConfidence
		}
		if hasSuffix(lower, suffixFamilies[locale]) {
			if confidence > 0 {
				confidence = combinedConfidence
			} else {
				confidence = suffixConfidence
			}
		}
		if confidence > best.Confidence {
			best = Guess{Locale: locale, Confidence: confidence}
		}
	}
	return best
}

func hasSuffix(lower string, suffixes []string) bool {
	if len(suffixes) == 0 {
		return false
	}
	for _, word := range strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == '-' || r == ','
	}) {
		for _, suffix := range suffixes {
			// The suffix must leave at least a short stem.
			if len(word) > len(suffix)+1 && strings.HasSuffix(word, suffix) {
				return true
			}
		}
	}
	return false
}
