package surname

import (
	"fmt"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Петрова", "Петров"},
		{"Иванова", "Иванов"},
		{"Крупская", "Крупский"},
		{"Вербицкая", "Вербицкий"},
		{"Толстая", "Толстой"},
		{"Ильина", "Ильин"},
		{"Petrova", "Petrov"},
		{"Kowalska", "Kowalski"},
		{"Zawadzka", "Zawadzki"},
		{"Vysotskaya", "Vysotsky"},
		// Masculine forms come back unchanged.
		{"Петров", "Петров"},
		{"Kowalski", "Kowalski"},
		// Invariant families never change.
		{"Шевченко", "Шевченко"},
		{"Ковальчук", "Ковальчук"},
		{"Rabinovich", "Rabinovich"},
		{"Черных", "Черных"},
		{"Живаго", "Живаго"},
		// Non-Slavic names with accidental endings are left alone.
		{"Eva", "Eva"},
		{"Smith", "Smith"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.name)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.name, got, tt.want)
			}
			if again := Normalize(got); again != got {
				t.Errorf("Normalize is not idempotent: %q -> %q -> %q", tt.name, got, again)
			}
		})
	}
}

func TestNormalizeCasePattern(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"ПЕТРОВА", "ПЕТРОВ"},
		{"Петрова", "Петров"},
		{"KOWALSKA", "KOWALSKI"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.name); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFeminize(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Петров", "Петрова"},
		{"Иванов", "Иванова"},
		{"Крупский", "Крупская"},
		{"Толстой", "Толстая"},
		{"Petrov", "Petrova"},
		{"Kowalski", "Kowalska"},
		{"Tolstoy", "Tolstaya"},
		// Invariant and non-Slavic names stay as they are.
		{"Шевченко", "Шевченко"},
		{"Smith", "Smith"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Feminize(tt.name); got != tt.want {
				t.Errorf("Feminize(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestAreEquivalent(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Петрова", "Петров", true},
		{"Петрова", "Petrov", true},
		{"Толстая", "Tolstoy", true},
		{"Kowalska", "Kowalski", true},
		{"ПЕТРОВА", "петров", true},
		{"Шевченко", "Шевченко", true},
		{"Иванов", "Петров", false},
		{"Smith", "Smythe", false},
		{"", "", false},
		{"", "Петров", false},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := AreEquivalent(tt.a, tt.b); got != tt.want {
				t.Errorf("AreEquivalent(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := AreEquivalent(tt.b, tt.a); got != tt.want {
				t.Errorf("AreEquivalent(%q, %q) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestIsInvariant(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Шевченко", true},
		{"Ковальчук", true},
		{"Rabinovich", true},
		{"Sienkiewicz", true},
		{"Черных", true},
		{"Живаго", true},
		{"Петров", false},
		{"Петрова", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsInvariant(tt.name); got != tt.want {
			t.Errorf("IsInvariant(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func FuzzNormalizeDoesNotPanic(f *testing.F) {
	f.Add("Петрова")
	f.Add("KOWALSKA")
	f.Add("\xff\xfe")
	f.Fuzz(func(t *testing.T, name string) {
		got := Normalize(name)
		if again := Normalize(got); again != got {
			t.Errorf("not idempotent: %q -> %q -> %q", name, got, again)
		}
		Feminize(name)
		IsInvariant(name)
	})
}

func ExampleNormalize() {
	fmt.Println(Normalize("Петрова"))
	fmt.Println(Normalize("Шевченко"))
	// Output:
	// Петров
	// Шевченко
}
