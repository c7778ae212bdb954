// Package script classifies text by writing system and splits mixed-script
// strings into contiguous same-script runs. For Latin text it can also guess
// a specific language from diacritic and surname-suffix signals.
//
// Example usage:
//
//	switch script.Classify("Pavel Кузнецов") {
//	case script.Mixed:
//	    for _, run := range script.Runs("Pavel Кузнецов") {
//	        fmt.Println(run.Script, run.Text)
//	    }
//	}
package script

import "unicode"

// Script identifies a writing system.
type Script int

// Recognized writing systems. Unknown means the text contains no letters.
const (
	Unknown Script = iota
	Latin
	Cyrillic
	Hebrew
	Mixed
)

// String returns the script name.
func (s Script) String() string {
	switch s {
	case Latin:
		return "Latin"
	case Cyrillic:
		return "Cyrillic"
	case Hebrew:
		return "Hebrew"
	case Mixed:
		return "Mixed"
	default:
		return "Unknown"
	}
}

// Run is a contiguous stretch of text whose letters share one script.
type Run struct {
	Script Script
	Text   string
}

func scriptOf(r rune) Script {
	switch {
	case unicode.In(r, unicode.Latin):
		return Latin
	case unicode.In(r, unicode.Cyrillic):
		return Cyrillic
	case unicode.In(r, unicode.Hebrew):
		return Hebrew
	default:
		return Unknown
	}
}

// Classify reports the writing system of text. Digits, punctuation and
// whitespace are neutral; text whose letters span more than one script is
// Mixed; text with no letters at all is Unknown.
func Classify(text string) Script {
	found := Unknown
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		s := scriptOf(r)
		if s == Unknown {
			continue
		}
		if found == Unknown {
			found = s
			continue
		}
		if found != s {
			return Mixed
		}
	}
	return found
}

// Runs splits text into contiguous same-script runs. Neutral characters
// (digits, punctuation, spaces) attach to the run in progress; neutral
// characters before the first letter attach to the first run. Runs are
// trimmed of surrounding spaces; empty runs are dropped.
func Runs(text string) []Run {
	var runs []Run
	var current []rune
	currentScript := Unknown

	flush := func() {
		trimmed := trimNeutral(current)
		if len(trimmed) > 0 {
			runs = append(runs, Run{Script: currentScript, Text: string(trimmed)})
		}
		current = current[:0]
	}

	for _, r := range text {
		s := Unknown
		if unicode.IsLetter(r) {
			s = scriptOf(r)
		}
		if s == Unknown {
			current = append(current, r)
			continue
		}
		if currentScript == Unknown {
			currentScript = s
		} else if s != currentScript {
			flush()
			currentScript = s
		}
		current = append(current, r)
	}
	flush()
	return runs
}

func trimNeutral(runes []rune) []rune {
	start := 0
	for start < len(runes) && isNeutral(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && isNeutral(runes[end-1]) {
		end--
	}
	return runes[start:end]
}

func isNeutral(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// IsLatin reports whether text contains at least one letter and every letter
// is Latin.
func IsLatin(text string) bool {
	return Classify(text) == Latin
}

// IsCyrillic reports whether text contains at least one letter and every
// letter is Cyrillic.
func IsCyrillic(text string) bool {
	return Classify(text) == Cyrillic
}

// IsHebrew reports whether text contains at least one letter and every
// letter is Hebrew.
func IsHebrew(text string) bool {
	return Classify(text) == Hebrew
}
