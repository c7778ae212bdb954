package match

import (
	"strings"

	"github.com/makhin/gedsync-go/namedict"
)

// placeScore compares place names in [0,1]: exact normalized equality,
// then containment ("Kyiv" in "Kyiv, Ukraine"), then token overlap.
func placeScore(a, b string) float64 {
	an, bn := normalizePlace(a), normalizePlace(b)
	if an == "" || bn == "" {
		return 0
	}
	if an == bn {
		return 1.0
	}
	if strings.Contains(an, bn) || strings.Contains(bn, an) {
		return 0.80
	}
	return jaccard(placeTokens(an), placeTokens(bn))
}

func normalizePlace(value string) string {
	return strings.Join(strings.Fields(namedict.Key(value)), " ")
}

// placeTokens splits a normalized place on whitespace and commas, dropping
// short connective tokens.
func placeTokens(normalized string) map[string]struct{} {
	tokens := strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ' ' || r == ','
	})
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		if len([]rune(token)) > 2 {
			set[token] = struct{}{}
		}
	}
	return set
}

// jaccard is intersection over union of two token sets.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var common int
	for token := range a {
		if _, ok := b[token]; ok {
			common++
		}
	}
	union := len(a) + len(b) - common
	if union == 0 {
		return 0
	}
	return float64(common) / float64(union)
}
