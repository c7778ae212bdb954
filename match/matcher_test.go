package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makhin/gedsync-go/gedmatch"
	"github.com/makhin/gedsync-go/namedict"
)

func newTestMatcher() *Matcher {
	m := New(nil)
	m.SetDictionary(namedict.New())
	return m
}

func TestCompareMaidenSubstitution(t *testing.T) {
	source := &gedmatch.PersonRecord{
		FirstName:  "Иван",
		MaidenName: "Петров",
		BirthDate:  gedmatch.YearDate(1950),
	}
	target := &gedmatch.PersonRecord{
		FirstName: "Ivan",
		LastName:  "Petrov",
		BirthDate: gedmatch.YearDate(1950),
	}
	m := newTestMatcher()
	c := m.Compare(source, target)

	lastScore, viaMaiden := m.lastNameScore(source, target)
	assert.Equal(t, 1.0, lastScore, "missing surname must resolve through the maiden name")
	assert.True(t, viaMaiden)

	assert.Greater(t, c.Score, float64(DefaultOptions().MatchThreshold))
	assert.InDelta(t, 88.5, c.Score, 0.01)

	var bonus bool
	for _, r := range c.Reasons {
		if r.Field == "Bonus" {
			bonus = true
		}
	}
	assert.True(t, bonus, "maiden-name bonus reason missing: %v", c.Reasons)
}

func TestCompareIdenticalRecords(t *testing.T) {
	rec := &gedmatch.PersonRecord{
		FirstName:  "Maria",
		LastName:   "Kowalska",
		Gender:     gedmatch.GenderFemale,
		BirthDate:  gedmatch.DateInfo{Year: 1920, Month: 5, Day: 3, Precision: gedmatch.PrecisionDay},
		BirthPlace: "Warszawa, Polska",
	}
	c := newTestMatcher().Compare(rec, rec)
	assert.InDelta(t, 100.0*(30+25+15+5+5)/100, c.Score, 0.01)
}

func TestCompareNilRecords(t *testing.T) {
	m := newTestMatcher()
	assert.Zero(t, m.Compare(nil, nil).Score)
	assert.Zero(t, m.Compare(&gedmatch.PersonRecord{}, nil).Score)
}

func TestCompareGenderMismatchPenalty(t *testing.T) {
	m := newTestMatcher()
	source := &gedmatch.PersonRecord{FirstName: "Sasha", LastName: "Petrov", Gender: gedmatch.GenderMale}
	same := &gedmatch.PersonRecord{FirstName: "Sasha", LastName: "Petrov", Gender: gedmatch.GenderMale}
	other := &gedmatch.PersonRecord{FirstName: "Sasha", LastName: "Petrov", Gender: gedmatch.GenderFemale}

	matched := m.Compare(source, same)
	conflicting := m.Compare(source, other)
	assert.InDelta(t, float64(2*DefaultOptions().GenderWeight), matched.Score-conflicting.Score, 0.01,
		"a gender conflict must cost the full weight twice over a gender match")
}

func TestCompareRelativesReasonOnlyOnOverlap(t *testing.T) {
	m := newTestMatcher()
	source := &gedmatch.PersonRecord{FirstName: "Ivan", SpouseKeys: []string{"s1"}}
	target := &gedmatch.PersonRecord{FirstName: "Ivan", SpouseKeys: []string{"s2"}}

	// Disjoint spouse keys give a zero relatives signal, which must not
	// surface as a reason.
	c := m.Compare(source, target)
	for _, r := range c.Reasons {
		assert.NotEqual(t, "Relatives", r.Field, "zero-signal relatives reason recorded: %v", r)
	}

	shared := &gedmatch.PersonRecord{FirstName: "Ivan", SpouseKeys: []string{"s1"}}
	c = m.Compare(source, shared)
	var found bool
	for _, r := range c.Reasons {
		if r.Field == "Relatives" {
			found = true
			assert.Greater(t, r.Points, 0.0)
		}
	}
	assert.True(t, found, "shared spouse key must produce a relatives reason: %v", c.Reasons)
}

func TestCompareDynamicWeightShift(t *testing.T) {
	m := newTestMatcher()
	source := &gedmatch.PersonRecord{FirstName: "Anna"}
	target := &gedmatch.PersonRecord{FirstName: "Anna", LastName: "Ivanova"}
	c := m.Compare(source, target)
	// First name takes half the surname weight: 42.5 + 0.3*12.5 + 5.
	assert.InDelta(t, 51.25, c.Score, 0.01)
}

func TestCompareScoreRange(t *testing.T) {
	m := newTestMatcher()
	records := []*gedmatch.PersonRecord{
		{},
		{FirstName: "Иван", LastName: "Петров", Gender: gedmatch.GenderMale},
		{FirstName: "Ivan", LastName: "Petrov", MaidenName: "Kogan", Gender: gedmatch.GenderFemale},
		{FirstName: "X", BirthDate: gedmatch.YearDate(1800)},
		{LastName: "???", BirthPlace: "---"},
	}
	for _, a := range records {
		for _, b := range records {
			c := m.Compare(a, b)
			if c.Score < 0 || c.Score > 100 {
				t.Errorf("Compare(%+v, %+v).Score = %v, out of [0,100]", a, b, c.Score)
			}
		}
	}
}

func TestFindMatchesGenderPreFilter(t *testing.T) {
	m := newTestMatcher()
	source := &gedmatch.PersonRecord{FirstName: "Ivan", LastName: "Petrov", Gender: gedmatch.GenderMale}
	male := &gedmatch.PersonRecord{Key: "m", FirstName: "Ivan", LastName: "Petrov", Gender: gedmatch.GenderMale}
	female := &gedmatch.PersonRecord{Key: "f", FirstName: "Ivan", LastName: "Petrov", Gender: gedmatch.GenderFemale}

	got := m.FindMatches(source, []*gedmatch.PersonRecord{female, male}, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "m", got[0].Target.Key)
}

func TestFindMatchesBirthYearPreFilter(t *testing.T) {
	m := newTestMatcher()
	source := &gedmatch.PersonRecord{FirstName: "Ivan", BirthDate: gedmatch.YearDate(1950)}
	nearby := &gedmatch.PersonRecord{Key: "near", FirstName: "Ivan", BirthDate: gedmatch.YearDate(1960)}
	distant := &gedmatch.PersonRecord{Key: "far", FirstName: "Ivan", BirthDate: gedmatch.YearDate(1961)}

	got := m.FindMatches(source, []*gedmatch.PersonRecord{distant, nearby}, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "near", got[0].Target.Key)
}

func TestFindMatchesSortsByScore(t *testing.T) {
	m := newTestMatcher()
	source := &gedmatch.PersonRecord{FirstName: "Ivan", LastName: "Petrov", BirthDate: gedmatch.YearDate(1950)}
	candidates := []*gedmatch.PersonRecord{
		{Key: "weak", FirstName: "Igor", LastName: "Pavlov"},
		{Key: "strong", FirstName: "Ivan", LastName: "Petrov", BirthDate: gedmatch.YearDate(1950)},
		{Key: "medium", FirstName: "Ivan", LastName: "Petrov"},
	}
	got := m.FindMatches(source, candidates, 0)
	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
	assert.Equal(t, "strong", got[0].Target.Key)
}

func TestFindMatchesMinScore(t *testing.T) {
	m := newTestMatcher()
	source := &gedmatch.PersonRecord{FirstName: "Ivan", LastName: "Petrov"}
	unrelated := &gedmatch.PersonRecord{FirstName: "Wolfgang", LastName: "Schmidt"}
	got := m.FindMatches(source, []*gedmatch.PersonRecord{unrelated}, float64(DefaultOptions().MatchThreshold))
	assert.Empty(t, got)
}

func FuzzCompareDoesNotPanic(f *testing.F) {
	f.Add("Иван", "Петров", "Ivan", "Petrov", 1950, 1950)
	f.Add("", "", "", "", 0, 0)
	f.Add("\xff", "***", "X", "", -5, 99999)
	m := newTestMatcher()
	f.Fuzz(func(t *testing.T, aFirst, aLast, bFirst, bLast string, aYear, bYear int) {
		c := m.Compare(
			&gedmatch.PersonRecord{FirstName: aFirst, LastName: aLast, BirthDate: gedmatch.YearDate(aYear)},
			&gedmatch.PersonRecord{FirstName: bFirst, LastName: bLast, BirthDate: gedmatch.YearDate(bYear)},
		)
		if c.Score < 0 || c.Score > 100 {
			t.Errorf("score %v out of [0,100]", c.Score)
		}
	})
}

func ExampleMatcher_Compare() {
	m := New(nil)
	m.SetDictionary(namedict.New())
	c := m.Compare(
		&gedmatch.PersonRecord{FirstName: "Иван", MaidenName: "Петров", BirthDate: gedmatch.YearDate(1950)},
		&gedmatch.PersonRecord{FirstName: "Ivan", LastName: "Petrov", BirthDate: gedmatch.YearDate(1950)},
	)
	fmt.Printf("%.1f\n", c.Score)
	// Output:
	// 88.5
}
