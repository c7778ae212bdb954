// Package translit provides deterministic, character-level transliteration
// of Cyrillic and Hebrew text into Latin approximations, plus diacritic
// folding to basic (ASCII) Latin.
//
// All functions are pure and idempotent where that makes sense:
// RemoveDiacritics(RemoveDiacritics(x)) == RemoveDiacritics(x). The tables
// are package-level constants, loaded once and never mutated, so every
// function is safe for concurrent use.
//
// Example usage:
//
//	fmt.Println(translit.Transliterate("Петров", translit.Russian))   // Petrov
//	fmt.Println(translit.Transliterate("Григорій", translit.Ukrainian)) // Hryhorii
package translit

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Source selects the transliteration table.
type Source int

// Transliteration sources. Russian and Ukrainian differ on several letters
// (и→"i" vs "y", г→"g" vs "h", е/є, и/і), so they carry distinct tables.
const (
	Russian Source = iota
	Ukrainian
	Hebrew
)

var russianTable = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
	// Ukrainian-specific letters occasionally leak into Russian-tagged
	// text; fold them rather than dropping.
	'і': "i", 'ї': "i", 'є': "e", 'ґ': "g",
}

// ukrainianOverrides lists the letters whose Ukrainian romanization
// diverges from the Russian table.
var ukrainianOverrides = map[rune]string{
	'г': "h", 'ґ': "g", 'е': "e", 'є': "ye", 'и': "y",
	'і': "i", 'ї': "yi", 'й': "i", 'х': "kh", 'щ': "shch",
	'ю': "yu", 'я': "ya", 'ь': "", '’': "",
}

// Transliterate renders text in Latin letters using the table for the given
// source. Characters outside the table pass through unchanged. The case
// of each source letter is preserved on the first output letter.
func Transliterate(text string, from Source) string {
	if text == "" {
		return ""
	}
	if from == Hebrew {
		return transliterateHebrew(text)
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		lower := unicode.ToLower(r)
		mapped, ok := lookupCyrillic(lower, from)
		if !ok {
			b.WriteRune(r)
			continue
		}
		if mapped == "" {
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteString(strings.ToUpper(mapped[:1]) + mapped[1:])
		} else {
			b.WriteString(mapped)
		}
	}
	return b.String()
}

func lookupCyrillic(r rune, from Source) (string, bool) {
	if from == Ukrainian {
		if mapped, ok := ukrainianOverrides[r]; ok {
			return mapped, true
		}
	}
	mapped, ok := russianTable[r]
	return mapped, ok
}

// stripMarks decomposes to NFD, removes combining marks and recomposes.
// Handles all diacritics expressed as combining characters (á, č, ü, …).
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldTable maps Latin letters that are not mark+base compositions to their
// basic-Latin equivalents.
var foldTable = map[rune]string{
	'ł': "l", 'Ł': "L",
	'ß': "ss",
	'ø': "o", 'Ø': "O",
	'đ': "d", 'Đ': "D",
	'þ': "th", 'Þ': "Th",
	'ð': "d", 'Ð': "D",
	'æ': "ae", 'Æ': "Ae",
	'œ': "oe", 'Œ': "Oe",
	'ı': "i", 'İ': "I",
}

// RemoveDiacritics maps extended-Latin letters to their base ASCII letters:
// "Jiří"→"Jiri", "Šимкус" keeps its Cyrillic part untouched. Non-Latin
// scripts pass through unchanged; this is folding, not transliteration.
func RemoveDiacritics(text string) string {
	stripped, _, err := transform.String(stripMarks, text)
	if err != nil {
		stripped = text
	}
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
			continue
		}
		if mapped, ok := foldTable[r]; ok {
			b.WriteString(mapped)
			continue
		}
		if unicode.In(r, unicode.Latin) {
			// Rare Latin letters outside the fold table (ŋ, ǝ, …).
			b.WriteString(unidecode.Unidecode(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsBasicLatin reports whether every letter in text is within A–Z/a–z.
// Digits, punctuation and whitespace are ignored; an empty string is
// basic Latin.
func IsBasicLatin(text string) bool {
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}
