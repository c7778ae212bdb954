package match

import (
	"github.com/antzucaro/matchr"

	"github.com/makhin/gedsync-go/gedmatch"
	"github.com/makhin/gedsync-go/namedict"
)

// Internal weighting of relation categories within the relatives
// sub-score. Renormalized over the categories both records have data for.
var relationCategories = []struct {
	weight float64
	keys   func(*gedmatch.PersonRecord) []string
}{
	{0.4, func(p *gedmatch.PersonRecord) []string { return parentKeys(p) }},
	{0.3, func(p *gedmatch.PersonRecord) []string { return p.SpouseKeys }},
	{0.2, func(p *gedmatch.PersonRecord) []string { return p.ChildKeys }},
	{0.1, func(p *gedmatch.PersonRecord) []string { return p.SiblingKeys }},
}

// relativesScore compares the family neighborhoods of two records in
// [0,1]. Returns false when no relation category has data on both sides.
// A category with keys on only one side is missing data: it stays out of
// the weighting entirely rather than scoring 0 and diluting the rest.
func (m *Matcher) relativesScore(source, target *gedmatch.PersonRecord) (float64, bool) {
	var total, weightSum float64
	for _, cat := range relationCategories {
		sourceKeys, targetKeys := cat.keys(source), cat.keys(target)
		if len(sourceKeys) == 0 || len(targetKeys) == 0 {
			continue
		}
		total += cat.weight * m.relationListScore(sourceKeys, targetKeys)
		weightSum += cat.weight
	}
	if weightSum == 0 {
		return 0, false
	}
	return total / weightSum, true
}

func parentKeys(p *gedmatch.PersonRecord) []string {
	var keys []string
	if p.FatherKey != "" {
		keys = append(keys, p.FatherKey)
	}
	if p.MotherKey != "" {
		keys = append(keys, p.MotherKey)
	}
	return keys
}

// relationListScore pairs relatives greedily, first found wins, each
// target relative used at most once. With lookup tables configured, pairs
// are compared by name; otherwise by raw identifier overlap.
func (m *Matcher) relationListScore(sourceKeys, targetKeys []string) float64 {
	if m.sourceIndex == nil || m.targetIndex == nil {
		return keyOverlap(sourceKeys, targetKeys)
	}
	used := make([]bool, len(targetKeys))
	var credit float64
	for _, sourceKey := range sourceKeys {
		sourceRec := m.sourceIndex.Resolve(sourceKey)
		for i, targetKey := range targetKeys {
			if used[i] {
				continue
			}
			targetRec := m.targetIndex.Resolve(targetKey)
			var c float64
			if sourceRec != nil && targetRec != nil {
				c = relativeNameCredit(sourceRec, targetRec)
			} else if sourceKey == targetKey {
				// Dangling keys still count when identical.
				c = 1.0
			}
			if c > 0 {
				credit += c
				used[i] = true
				break
			}
		}
	}
	size := len(sourceKeys)
	if len(targetKeys) > size {
		size = len(targetKeys)
	}
	return credit / float64(size)
}

// relativeNameCredit compares two resolved relatives by name: 1.0 for a
// strong combined match, 0.5 for a partial one, 0 otherwise. The first
// name must agree reasonably before the surname is consulted at all.
func relativeNameCredit(a, b *gedmatch.PersonRecord) float64 {
	firstSim := nameSimilarity(a.FirstName, b.FirstName)
	if firstSim < 0.8 {
		return 0
	}
	lastSim := nameSimilarity(a.LastName, b.LastName)
	switch avg := (firstSim + lastSim) / 2; {
	case avg >= 0.85:
		return 1.0
	case avg >= 0.7:
		return 0.5
	default:
		return 0
	}
}

func nameSimilarity(a, b string) float64 {
	an, bn := namedict.Key(a), namedict.Key(b)
	if an == "" || bn == "" {
		return 0
	}
	if an == bn {
		return 1.0
	}
	return matchr.JaroWinkler(an, bn, false)
}

// keyOverlap is the Jaccard overlap of two identifier sets.
func keyOverlap(a, b []string) float64 {
	return jaccard(stringSet(a), stringSet(b))
}

func stringSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key != "" {
			set[key] = struct{}{}
		}
	}
	return set
}
