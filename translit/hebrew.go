package translit

import (
	"strings"
	"unicode"
)

// hebrewTable maps Hebrew consonants to Latin approximations. Final forms
// fold to their base form; niqqud (vowel points) are dropped separately.
var hebrewTable = map[rune]string{
	'א': "a", 'ב': "b", 'ג': "g", 'ד': "d", 'ה': "h",
	'ו': "v", 'ז': "z", 'ח': "ch", 'ט': "t", 'י': "y",
	'כ': "k", 'ך': "k", 'ל': "l", 'מ': "m", 'ם': "m",
	'נ': "n", 'ן': "n", 'ס': "s", 'ע': "a", 'פ': "p",
	'ף': "f", 'צ': "ts", 'ץ': "ts", 'ק': "k", 'ר': "r",
	'ש': "sh", 'ת': "t",
	'׳': "", '״': "", // geresh/gershayim
}

func transliterateHebrew(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if mapped, ok := hebrewTable[r]; ok {
			b.WriteString(mapped)
			continue
		}
		// Drop combining points (niqqud, cantillation).
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
