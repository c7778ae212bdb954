package namedict

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Пётр", "petr"},
		{"José", "jose"},
		{"  Ivan  ", "ivan"},
		{"ALEXANDER", "alexander"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Key(tt.name); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSeededEquivalence(t *testing.T) {
	d := New()
	tests := []struct {
		kind Kind
		a, b string
		want bool
	}{
		{GivenNames, "Alexander", "Sasha", true},
		{GivenNames, "Александр", "Шура", true},
		{GivenNames, "Саша", "Alexander", true},
		{GivenNames, "Ivan", "Ваня", true},
		{GivenNames, "Yosef", "Осип", true},
		{GivenNames, "Ivan", "Mikhail", false},
		{Surnames, "Kogan", "Каган", true},
		{Surnames, "Rabinovich", "Rabinowitz", true},
		{Surnames, "Kogan", "Levin", false},
		// Same name across scripts needs no group at all.
		{Surnames, "Петров", "Petrov", true},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, d.AreEquivalent(tt.kind, tt.a, tt.b))
			assert.Equal(t, tt.want, d.AreEquivalent(tt.kind, tt.b, tt.a), "equivalence must be symmetric")
		})
	}
}

func TestAddMergesGroups(t *testing.T) {
	d := NewEmpty()
	d.Add(GivenNames, "Ivan", "Vanya")
	d.Add(GivenNames, "Jon", "Ivan")

	assert.True(t, d.AreEquivalent(GivenNames, "Jon", "Vanya"))

	canonical, ok := d.Canonical(GivenNames, "Vanya")
	require.True(t, ok)
	assert.Equal(t, "Ivan", canonical)

	// Re-adding the same rows changes nothing.
	size := d.Size(GivenNames)
	d.Add(GivenNames, "Ivan", "Vanya")
	assert.Equal(t, size, d.Size(GivenNames))
}

func TestLoad(t *testing.T) {
	d := NewEmpty()
	input := strings.Join([]string{
		"# given name variants",
		"",
		"Yosef,Joseph|Iosif|Осип",
		"Pyotr, Petya | Петя ",
	}, "\n")
	require.NoError(t, d.Load(strings.NewReader(input), GivenNames))

	assert.True(t, d.AreEquivalent(GivenNames, "Joseph", "Осип"))
	assert.True(t, d.AreEquivalent(GivenNames, "Pyotr", "Петя"))

	canonical, ok := d.Canonical(GivenNames, "Iosif")
	require.True(t, ok)
	assert.Equal(t, "Yosef", canonical)
}

func TestLoadMalformedRow(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"no comma", "JustOneName", 1},
		{"empty canonical", " ,Vanya", 1},
		{"no variants", "Ivan, | ", 1},
		{"error after valid row", "Ivan,Vanya\nbroken", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewEmpty().Load(strings.NewReader(tt.input), GivenNames)
			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.line, loadErr.Line)
		})
	}
}

func TestLoadIsAdditive(t *testing.T) {
	d := New()
	require.NoError(t, d.Load(strings.NewReader("Ivan,Janek"), GivenNames))
	// Merged into the seeded Ivan group, not a new one.
	assert.True(t, d.AreEquivalent(GivenNames, "Janek", "Ваня"))
}

func TestLoadErrorMessage(t *testing.T) {
	err := &LoadError{Line: 3, Message: "row has no variants", Context: "Ivan,"}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("Error() = %q, want line number included", err.Error())
	}
	var target *LoadError
	if !errors.As(error(err), &target) {
		t.Error("LoadError must satisfy errors.As")
	}
}
