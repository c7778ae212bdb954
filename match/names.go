package match

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/makhin/gedsync-go/gedmatch"
	"github.com/makhin/gedsync-go/namedict"
	"github.com/makhin/gedsync-go/surname"
)

// firstNameScore compares given names in [0,1]. Equality is checked on the
// normalized (transliterated, folded, lowercased) forms, then dictionary
// equivalence, then variant pairs, then token structure, then string
// similarity.
func (m *Matcher) firstNameScore(source, target *gedmatch.PersonRecord) (float64, string) {
	a, b := namedict.Key(source.FirstName), namedict.Key(target.FirstName)
	if a == "" || b == "" {
		return 0, ""
	}
	if a == b {
		return 1.0, "first names equal"
	}
	if m.dict != nil && m.dict.AreEquivalent(namedict.GivenNames, source.FirstName, target.FirstName) {
		return 0.95, "first names are dictionary variants"
	}
	if m.variantPairEquivalent(source, target) {
		return 0.90, "name variants are dictionary-equivalent"
	}

	aTokens, bTokens := splitNameTokens(a), splitNameTokens(b)
	if len(aTokens) > 0 && len(bTokens) > 0 && aTokens[0] == bTokens[0] {
		switch {
		case len(aTokens) == 1 && len(bTokens) == 1:
			return 1.0, "first names equal"
		case abs(len(aTokens)-len(bTokens)) == 1:
			// A patronymic recorded on one side only.
			return 0.90, "first tokens equal, one extra name component"
		default:
			return 0.85, "first tokens equal"
		}
	}

	sim := matchr.JaroWinkler(a, b, false)
	if (strings.Contains(a, b) || strings.Contains(b, a)) && sim > 0.7 && sim < 0.85 {
		// One name contained in the other is usually a diminutive.
		return 0.85, "one first name contains the other"
	}
	return sim, "first name similarity"
}

// variantPairEquivalent reports whether any pairing of the two records'
// alternate given names (nickname, middle name, recorded variants) is
// equivalent under the dictionary.
func (m *Matcher) variantPairEquivalent(source, target *gedmatch.PersonRecord) bool {
	if m.dict == nil {
		return false
	}
	for _, a := range givenNameVariants(source) {
		for _, b := range givenNameVariants(target) {
			if namedict.Key(a) == namedict.Key(b) {
				return true
			}
			if m.dict.AreEquivalent(namedict.GivenNames, a, b) {
				return true
			}
		}
	}
	return false
}

func givenNameVariants(p *gedmatch.PersonRecord) []string {
	var out []string
	appendNonEmpty := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	appendNonEmpty(p.FirstName)
	appendNonEmpty(p.MiddleName)
	for _, nick := range strings.Split(p.Nickname, ",") {
		appendNonEmpty(nick)
	}
	for _, v := range p.NameVariants {
		appendNonEmpty(v)
	}
	return out
}

// lastNameScore compares surnames in [0,1] and reports whether the score
// came through a maiden-name substitution or cross-match.
func (m *Matcher) lastNameScore(source, target *gedmatch.PersonRecord) (score float64, viaMaiden bool) {
	s, t := namedict.Key(source.LastName), namedict.Key(target.LastName)
	sm, tm := namedict.Key(source.MaidenName), namedict.Key(target.MaidenName)

	switch {
	case s == "" && t == "":
		// Both missing is neutral, not a penalty.
		return 0.5, false
	case s == "" && sm != "" && surnamesMatch(sm, t, source.MaidenName, target.LastName):
		return 1.0, true
	case t == "" && tm != "" && surnamesMatch(s, tm, source.LastName, target.MaidenName):
		return 1.0, true
	case s == "" || t == "":
		return 0.3, false
	}

	if surnamesMatch(s, t, source.LastName, target.LastName) {
		return 1.0, false
	}
	if sm != "" && surnamesMatch(sm, t, source.MaidenName, target.LastName) {
		return 0.95, true
	}
	if tm != "" && surnamesMatch(s, tm, source.LastName, target.MaidenName) {
		return 0.95, true
	}
	if m.dict != nil && m.dict.AreEquivalent(namedict.Surnames, source.LastName, target.LastName) {
		return 0.90, false
	}
	return matchr.JaroWinkler(s, t, false), false
}

// maidenNameScore compares birth surnames directly. Contributes only when
// both sides carry one.
func (m *Matcher) maidenNameScore(source, target *gedmatch.PersonRecord) float64 {
	a, b := namedict.Key(source.MaidenName), namedict.Key(target.MaidenName)
	if a == "" || b == "" {
		return 0
	}
	if surnamesMatch(a, b, source.MaidenName, target.MaidenName) {
		return 1.0
	}
	if m.dict != nil && m.dict.AreEquivalent(namedict.Surnames, source.MaidenName, target.MaidenName) {
		return 0.95
	}
	return matchr.JaroWinkler(a, b, false)
}

// surnamesMatch tests two surnames for equality, first on their normalized
// keys and then across masculine/feminine Slavic forms using the raw
// values.
func surnamesMatch(aKey, bKey, aRaw, bRaw string) bool {
	if aKey != "" && aKey == bKey {
		return true
	}
	return aRaw != "" && bRaw != "" && surname.AreEquivalent(aRaw, bRaw)
}

func splitNameTokens(normalized string) []string {
	return strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ' ' || r == '-'
	})
}
