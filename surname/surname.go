// Package surname normalizes gendered Slavic surname forms. Feminine
// suffixes (-ова, -ская, -skaya, -ska, …) map to the masculine canonical
// form and back; an exception set of invariant surnames (the Ukrainian -ко
// family and a fixed list) bypasses all rules.
//
// Normalize is idempotent and preserves the case pattern of the replaced
// suffix, so "ПЕТРОВА" normalizes to "ПЕТРОВ" and "Петрова" to "Петров".
package surname

import (
	"sort"
	"strings"
	"unicode"

	"github.com/makhin/gedsync-go/script"
	"github.com/makhin/gedsync-go/translit"
)

type rule struct {
	feminine  string
	masculine string
}

// Suffix rules for both Cyrillic and transliterated-Latin surnames.
// Applied longest feminine suffix first so that -ская is tried before -ая
// and -skaya before -aya.
var rules = []rule{
	{"цкая", "цкий"},
	{"ская", "ский"},
	{"ёва", "ёв"},
	{"ова", "ов"},
	{"ева", "ев"},
	{"ина", "ин"},
	{"ына", "ын"},
	{"яя", "ий"},
	{"ая", "ой"},
	{"tskaya", "tsky"},
	{"ckaya", "cky"},
	{"skaya", "sky"},
	{"dzka", "dzki"},
	{"cka", "cki"},
	{"ska", "ski"},
	{"ova", "ov"},
	{"eva", "ev"},
	{"ina", "in"},
	{"yna", "yn"},
	{"aya", "oy"},
}

// Invariant suffixes: surnames in these families do not change by gender.
var invariantSuffixes = []string{
	"ко", "ук", "юк", "ич",
	"ko", "uk", "yuk", "ich", "ych", "wicz", "vich",
	"ых", "их", "ykh", "ikh",
}

// Invariant surnames that would otherwise match a rule.
var invariantNames = map[string]struct{}{
	"дурново":  {},
	"живаго":   {},
	"хитрово":  {},
	"durnovo":  {},
	"zhivago":  {},
	"khitrovo": {},
}

func init() {
	sort.SliceStable(rules, func(i, j int) bool {
		return len([]rune(rules[i].feminine)) > len([]rune(rules[j].feminine))
	})
}

// IsInvariant reports whether the surname belongs to a family that does not
// inflect by gender.
func IsInvariant(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return false
	}
	if _, ok := invariantNames[lower]; ok {
		return true
	}
	for _, suffix := range invariantSuffixes {
		if len([]rune(lower)) > len([]rune(suffix)) && strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// Normalize returns the masculine canonical form of a surname, preserving
// the case pattern of the replaced suffix. Masculine and invariant
// surnames come back unchanged; the function is idempotent.
func Normalize(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || IsInvariant(trimmed) {
		return name
	}
	for _, r := range rules {
		if out, ok := replaceSuffix(trimmed, r.feminine, r.masculine); ok {
			return out
		}
	}
	return name
}

// Feminize returns the expected feminine form of a masculine surname, or
// the input unchanged when no rule applies or the surname is invariant.
func Feminize(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || IsInvariant(trimmed) {
		return name
	}
	for _, r := range rules {
		if out, ok := replaceSuffix(trimmed, r.masculine, r.feminine); ok {
			return out
		}
	}
	return name
}

// AreEquivalent reports whether two surnames share a masculine canonical
// form, comparing across scripts and diacritics ("Petrova" ≡ "Петров").
func AreEquivalent(a, b string) bool {
	ka, kb := canonicalKey(a), canonicalKey(b)
	return ka != "" && ka == kb
}

func canonicalKey(name string) string {
	name = strings.TrimSpace(Normalize(name))
	if name == "" {
		return ""
	}
	if script.IsCyrillic(name) {
		name = translit.Transliterate(name, translit.Russian)
	}
	// Transliterating a Cyrillic feminine form can expose a Latin-rule
	// suffix (Петрова → Petrova), so normalize once more.
	name = Normalize(name)
	return strings.ToLower(translit.RemoveDiacritics(name))
}

// replaceSuffix swaps suffix for replacement at the end of name, matching
// case-insensitively and reproducing the case pattern of the replaced
// letters. Two-letter suffixes require a longer stem to avoid mangling
// short non-Slavic names.
func replaceSuffix(name, suffix, replacement string) (string, bool) {
	nameRunes := []rune(name)
	suffixRunes := []rune(suffix)
	minStem := 2
	if len(suffixRunes) <= 2 {
		minStem = 3
	}
	if len(nameRunes) < len(suffixRunes)+minStem {
		return "", false
	}
	stem := nameRunes[:len(nameRunes)-len(suffixRunes)]
	tail := nameRunes[len(nameRunes)-len(suffixRunes):]
	for i, r := range suffixRunes {
		if unicode.ToLower(tail[i]) != r {
			return "", false
		}
	}
	if allUpper(tail) {
		replacement = strings.ToUpper(replacement)
	}
	return string(stem) + replacement, true
}

func allUpper(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
