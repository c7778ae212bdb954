package match

import (
	"testing"

	"github.com/makhin/gedsync-go/gedmatch"
)

func day(year, month, d int) gedmatch.DateInfo {
	return gedmatch.DateInfo{Year: year, Month: month, Day: d, Precision: gedmatch.PrecisionDay}
}

func month(year, m int) gedmatch.DateInfo {
	return gedmatch.DateInfo{Year: year, Month: m, Precision: gedmatch.PrecisionMonth}
}

func TestDateScore(t *testing.T) {
	tests := []struct {
		name string
		a, b gedmatch.DateInfo
		want float64
	}{
		{"both unset", gedmatch.DateInfo{}, gedmatch.DateInfo{}, 0},
		{"one unset", gedmatch.YearDate(1950), gedmatch.DateInfo{}, 0},
		{"same day", day(1950, 5, 3), day(1950, 5, 3), 1.0},
		{"same month different day", day(1950, 5, 3), day(1950, 5, 4), 0.95},
		{"different month day precision", day(1950, 5, 3), day(1950, 6, 3), 0.85},
		{"same month month precision", month(1950, 5), month(1950, 5), 0.95},
		{"different month month precision", month(1950, 5), month(1950, 6), 0.85},
		{"mixed precision same year", day(1950, 5, 3), gedmatch.YearDate(1950), 0.90},
		{"year precision equal", gedmatch.YearDate(1950), gedmatch.YearDate(1950), 0.90},
		{"gap one", gedmatch.YearDate(1950), gedmatch.YearDate(1951), 0.80},
		{"gap two", gedmatch.YearDate(1950), gedmatch.YearDate(1952), 0.60},
		{"gap five", gedmatch.YearDate(1950), gedmatch.YearDate(1955), 0.40},
		{"gap ten", gedmatch.YearDate(1950), gedmatch.YearDate(1960), 0.20},
		{"gap eleven", gedmatch.YearDate(1950), gedmatch.YearDate(1961), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dateScore(tt.a, tt.b); got != tt.want {
				t.Errorf("dateScore(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := dateScore(tt.b, tt.a); got != tt.want {
				t.Errorf("dateScore(%+v, %+v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestPlaceScore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"both missing", "", "", 0},
		{"one missing", "Kyiv", "", 0},
		{"exact", "Kyiv, Ukraine", "Kyiv, Ukraine", 1.0},
		{"case and diacritics folded", "Łódź", "lodz", 1.0},
		{"containment", "Kyiv", "Kyiv, Ukraine", 0.80},
		{"token overlap", "Vilnius Lithuania", "Kaunas Lithuania", 1.0 / 3.0},
		{"no overlap", "Riga", "Tallinn", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := placeScore(tt.a, tt.b); got != tt.want {
				t.Errorf("placeScore(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRelativesScoreResolved(t *testing.T) {
	m := newTestMatcher()
	m.SetLookups(
		gedmatch.Lookup{"sf": {FirstName: "Ivan", LastName: "Petrov"}},
		gedmatch.Lookup{"tf": {FirstName: "Иван", LastName: "Петров"}},
	)
	source := &gedmatch.PersonRecord{FatherKey: "sf"}
	target := &gedmatch.PersonRecord{FatherKey: "tf"}

	score, ok := m.relativesScore(source, target)
	if !ok {
		t.Fatal("parents present on both sides must make the category comparable")
	}
	if score != 1.0 {
		t.Errorf("relativesScore = %v, want 1.0", score)
	}
}

func TestRelativesScoreNoData(t *testing.T) {
	m := newTestMatcher()
	if _, ok := m.relativesScore(&gedmatch.PersonRecord{}, &gedmatch.PersonRecord{}); ok {
		t.Error("no relation data on either side must not be comparable")
	}
	// One-sided data is treated the same as none.
	if _, ok := m.relativesScore(&gedmatch.PersonRecord{FatherKey: "x"}, &gedmatch.PersonRecord{}); ok {
		t.Error("one-sided relation data must not be comparable")
	}
}

func TestRelationListScoreKeyFallback(t *testing.T) {
	m := newTestMatcher() // no lookups configured
	got := m.relationListScore([]string{"x", "y"}, []string{"y", "z"})
	want := 1.0 / 3.0
	if got != want {
		t.Errorf("relationListScore = %v, want %v", got, want)
	}
}

func TestRelativeNameCredit(t *testing.T) {
	tests := []struct {
		name string
		a, b *gedmatch.PersonRecord
		want float64
	}{
		{
			"full match across scripts",
			&gedmatch.PersonRecord{FirstName: "Ivan", LastName: "Petrov"},
			&gedmatch.PersonRecord{FirstName: "Иван", LastName: "Петров"},
			1.0,
		},
		{
			"first name too different",
			&gedmatch.PersonRecord{FirstName: "Olga", LastName: "Petrova"},
			&gedmatch.PersonRecord{FirstName: "Ivan", LastName: "Petrova"},
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeNameCredit(tt.a, tt.b); got != tt.want {
				t.Errorf("relativeNameCredit = %v, want %v", got, tt.want)
			}
		})
	}
}
