// Package namedict maintains equivalence groups of given-name and surname
// variants ("Alexander" ≡ "Sasha" ≡ "Александр") and answers equivalence
// queries for the fuzzy matcher and the typo-suggestion handler.
//
// A Dictionary starts from a built-in seed of common Slavic name groups and
// can be extended at runtime from tabular data:
//
//	d := namedict.New()
//	err := d.Load(strings.NewReader("Yosef,Joseph|Iosif|Osip"), namedict.GivenNames)
//	d.AreEquivalent(namedict.GivenNames, "Саша", "Alexander") // true
//
// Names are compared through a normalized key: transliterated when Cyrillic,
// diacritics folded, lowercased. Lookups never modify group contents.
package namedict

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/makhin/gedsync-go/script"
	"github.com/makhin/gedsync-go/translit"
)

// Kind selects one of the two equivalence tables.
type Kind int

// Dictionary kinds.
const (
	GivenNames Kind = iota
	Surnames
)

// String returns the kind name.
func (k Kind) String() string {
	if k == Surnames {
		return "Surnames"
	}
	return "GivenNames"
}

type group struct {
	canonical string
	members   map[string]struct{}
}

// Dictionary holds bidirectional equivalence groups for given names and
// surnames. The zero value is not usable; construct with New or NewEmpty.
//
// Add merges groups and is commutative and idempotent; read methods never
// mutate, so a Dictionary is safe for concurrent reads once populated.
type Dictionary struct {
	tables map[Kind]map[string]*group
}

// NewEmpty returns a Dictionary with no entries.
func NewEmpty() *Dictionary {
	return &Dictionary{
		tables: map[Kind]map[string]*group{
			GivenNames: {},
			Surnames:   {},
		},
	}
}

// New returns a Dictionary pre-loaded with the built-in seed groups for
// common Slavic given names and surnames.
func New() *Dictionary {
	d := NewEmpty()
	for _, row := range seedGivenNames {
		d.Add(GivenNames, row.canonical, row.variants...)
	}
	for _, row := range seedSurnames {
		d.Add(Surnames, row.canonical, row.variants...)
	}
	return d
}

// Key returns the normalized lookup key for a name: transliterated when
// Cyrillic, diacritics folded, lowercased.
func Key(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if script.IsCyrillic(name) {
		name = translit.Transliterate(name, translit.Russian)
	}
	return strings.ToLower(translit.RemoveDiacritics(name))
}

// Add inserts a canonical name and its variants into one equivalence group,
// merging any groups the names already belong to. Insertion is commutative
// and idempotent: Add(a, b) and Add(b, a) produce the same grouping.
func (d *Dictionary) Add(kind Kind, canonical string, variants ...string) {
	keys := make([]string, 0, len(variants)+1)
	if k := Key(canonical); k != "" {
		keys = append(keys, k)
	}
	for _, variant := range variants {
		if k := Key(variant); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return
	}

	table := d.tables[kind]
	merged := &group{members: map[string]struct{}{}}
	for _, k := range keys {
		if existing, ok := table[k]; ok {
			if merged.canonical == "" {
				merged.canonical = existing.canonical
			}
			for member := range existing.members {
				merged.members[member] = struct{}{}
			}
		}
		merged.members[k] = struct{}{}
	}
	if merged.canonical == "" {
		merged.canonical = strings.TrimSpace(canonical)
	}
	for member := range merged.members {
		table[member] = merged
	}
}

// AreEquivalent reports whether two names are the same name: equal under
// the normalized key (covers case and transliteration differences) or
// members of the same equivalence group. Symmetric by construction.
func (d *Dictionary) AreEquivalent(kind Kind, a, b string) bool {
	ka, kb := Key(a), Key(b)
	if ka == "" || kb == "" {
		return false
	}
	if ka == kb {
		return true
	}
	table := d.tables[kind]
	ga, ok := table[ka]
	if !ok {
		return false
	}
	gb, ok := table[kb]
	return ok && ga == gb
}

// Canonical returns the canonical spelling of the group a name belongs to.
// The second result is false when the name is unknown.
func (d *Dictionary) Canonical(kind Kind, name string) (string, bool) {
	g, ok := d.tables[kind][Key(name)]
	if !ok {
		return "", false
	}
	return g.canonical, true
}

// Size returns the number of distinct names known for a kind.
func (d *Dictionary) Size(kind Kind) int {
	return len(d.tables[kind])
}

// LoadError reports a malformed row in tabular dictionary data.
type LoadError struct {
	Line    int
	Message string
	Context string
}

func (e *LoadError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("line %d: %s (context: %q)", e.Line, e.Message, e.Context)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Load reads tabular rows of the form
//
//	canonicalName,variant1|variant2|...
//
// and adds each row to the dictionary. Blank lines and lines starting with
// '#' are skipped. Loading is additive: existing groups are merged, never
// replaced. The first malformed row aborts with a LoadError carrying the
// row number.
func (d *Dictionary) Load(r io.Reader, kind Kind) error {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		canonical, rest, found := strings.Cut(line, ",")
		if !found {
			return &LoadError{Line: lineNumber, Message: "row must have canonical name and variants separated by a comma", Context: line}
		}
		canonical = strings.TrimSpace(canonical)
		if canonical == "" {
			return &LoadError{Line: lineNumber, Message: "canonical name is empty", Context: line}
		}
		var variants []string
		for _, variant := range strings.Split(rest, "|") {
			variant = strings.TrimSpace(variant)
			if variant != "" {
				variants = append(variants, variant)
			}
		}
		if len(variants) == 0 {
			return &LoadError{Line: lineNumber, Message: "row has no variants", Context: line}
		}
		d.Add(kind, canonical, variants...)
	}
	if err := scanner.Err(); err != nil {
		return &LoadError{Line: lineNumber, Message: "error reading input", Context: err.Error()}
	}
	return nil
}
