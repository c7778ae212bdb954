// Package match scores pairs of person records for identity, producing a
// confidence value in [0,100] with an itemized list of reasons. Scoring is
// weighted per field; names are compared after the same normalization the
// fixing pipeline applies, so Cyrillic and Latin renderings of one name
// compare as equal.
//
// A Matcher is safe for concurrent use once configured: the options,
// dictionary and lookup tables are read-only after SetDictionary and
// SetLookups, and Compare allocates all per-comparison state.
//
//	m := match.New(match.DefaultOptions())
//	m.SetDictionary(namedict.New())
//	candidate := m.Compare(source, target)
//	if candidate.Score >= float64(match.DefaultOptions().MatchThreshold) {
//		// probable match
//	}
package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/makhin/gedsync-go/gedmatch"
	"github.com/makhin/gedsync-go/namedict"
)

// maidenWeightFactor scales the effective last-name weight for the direct
// maiden-to-maiden comparison. A birth surname is a more stable identity
// signal than a changeable married surname.
const maidenWeightFactor = 1.3

// maidenBonus is the flat score added when a maiden-name match stands in
// for a missing or differing standard surname and the first name and birth
// date agree strongly. It compensates for a derived surname plus a
// possibly-incomplete first name.
const maidenBonus = 15

// Matcher compares person records. The zero value is not usable; construct
// with New.
type Matcher struct {
	opts *Options
	dict *namedict.Dictionary

	// Read-only person indexes for resolving relationship keys. Either may
	// be nil, in which case relation scoring falls back to raw identifier
	// comparison.
	sourceIndex gedmatch.Lookup
	targetIndex gedmatch.Lookup
}

// New returns a Matcher using the given options. A nil opts selects
// DefaultOptions.
func New(opts *Options) *Matcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Matcher{opts: opts}
}

// SetDictionary supplies the name-variant dictionary used for equivalence
// checks. Without one, only textual comparison applies.
func (m *Matcher) SetDictionary(d *namedict.Dictionary) { m.dict = d }

// SetLookups supplies the source-side and target-side person indexes used
// to resolve relationship keys to full records. Must be called before any
// comparison that should score relatives by name; the maps must not be
// mutated while comparisons are in flight.
func (m *Matcher) SetLookups(source, target gedmatch.Lookup) {
	m.sourceIndex = source
	m.targetIndex = target
}

// Compare scores target against source and returns the candidate with its
// itemized reasons. Either record may be sparse; missing data contributes
// neutrally, never an error.
func (m *Matcher) Compare(source, target *gedmatch.PersonRecord) *Candidate {
	cand := &Candidate{Source: source, Target: target}
	if source == nil || target == nil {
		return cand
	}
	o := m.opts

	lastScore, viaMaiden := m.lastNameScore(source, target)

	wFirst := float64(o.FirstNameWeight)
	wLast := float64(o.LastNameWeight)
	if (strings.TrimSpace(source.LastName) == "" || strings.TrimSpace(target.LastName) == "") &&
		lastScore < 0.95 {
		// Half of the surname weight rides on the first name when a
		// surname is missing and no maiden substitution rescued it.
		wFirst += wLast / 2
		wLast /= 2
	}

	var points float64
	add := func(field string, p float64, details string) {
		points += p
		cand.Reasons = append(cand.Reasons, Reason{Field: field, Points: p, Details: details})
	}

	firstScore, firstDetails := m.firstNameScore(source, target)
	if firstScore > 0 {
		add("FirstName", firstScore*wFirst, firstDetails)
	}
	if lastScore > 0 {
		details := "surname similarity"
		if viaMaiden {
			details = "surname matched via maiden name"
		}
		add("LastName", lastScore*wLast, details)
	}
	if maidenScore := m.maidenNameScore(source, target); maidenScore > 0 {
		add("MaidenName", maidenScore*maidenWeightFactor*wLast, "maiden name similarity")
	}

	birthScore := dateScore(source.BirthDate, target.BirthDate)
	if birthScore > 0 {
		add("BirthDate", birthScore*float64(o.BirthDateWeight), "birth date similarity")
	}
	if death := dateScore(source.DeathDate, target.DeathDate); death > 0 {
		add("DeathDate", death*float64(o.DeathDateWeight), "death date similarity")
	}
	if place := placeScore(source.BirthPlace, target.BirthPlace); place > 0 {
		add("BirthPlace", place*float64(o.BirthPlaceWeight), "birth place similarity")
	}

	switch {
	case source.Gender == gedmatch.GenderUnknown || target.Gender == gedmatch.GenderUnknown:
		points += float64(o.GenderWeight)
	case source.Gender == target.Gender:
		add("Gender", float64(o.GenderWeight), "gender matches")
	default:
		add("Gender", -float64(o.GenderWeight), "gender conflict")
	}

	if relScore, ok := m.relativesScore(source, target); ok && relScore > 0 {
		add("Relatives", relScore*float64(o.RelativesWeight), "family relation overlap")
	}

	score := points * 100 / o.weightSum()
	if viaMaiden && lastScore >= 0.95 && firstScore >= 0.85 && birthScore >= 0.85 {
		score += maidenBonus
		cand.Reasons = append(cand.Reasons, Reason{
			Field:   "Bonus",
			Points:  maidenBonus,
			Details: "maiden-name match with strong first name and birth date",
		})
	}
	cand.Score = clamp(score, 0, 100)
	return cand
}

// FindMatches compares source against every candidate and returns those
// scoring at least minScore, best first. Candidates with a known
// conflicting gender or a birth year further than MaxBirthYearGap away are
// excluded without a full comparison. Ties keep input order.
func (m *Matcher) FindMatches(source *gedmatch.PersonRecord, candidates []*gedmatch.PersonRecord, minScore float64) []*Candidate {
	if source == nil {
		return nil
	}
	var out []*Candidate
	for _, target := range candidates {
		if target == nil {
			continue
		}
		if conflictingGender(source.Gender, target.Gender) {
			continue
		}
		if sourceYear, targetYear := source.BirthYear(), target.BirthYear(); sourceYear != 0 && targetYear != 0 {
			if gap := abs(sourceYear - targetYear); gap > m.opts.MaxBirthYearGap {
				continue
			}
		}
		c := m.Compare(source, target)
		if c.Score >= minScore {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func conflictingGender(a, b gedmatch.Gender) bool {
	return a != gedmatch.GenderUnknown && b != gedmatch.GenderUnknown && a != b
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// String renders the candidate for logs and review output.
func (c *Candidate) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "score %.1f", c.Score)
	for _, r := range c.Reasons {
		fmt.Fprintf(&b, "; %s %+.1f (%s)", r.Field, r.Points, r.Details)
	}
	return b.String()
}
