// Package gedmatch defines the shared data model for genealogical record
// reconciliation: person records with multi-locale name fields, date
// information with explicit precision, and the lookup tables used to resolve
// relationship identifiers.
//
// Records arrive from an external source (for example a GEDCOM parser) as an
// already-materialized graph keyed by opaque string identifiers. Nothing in
// this package performs I/O; all types are plain values safe to share
// read-only across goroutines.
package gedmatch

// Gender is a person's recorded sex.
type Gender string

// Recognized gender values.
const (
	GenderMale    Gender = "M"
	GenderFemale  Gender = "F"
	GenderUnknown Gender = "U"
)

// ParseGender converts a raw SEX-style value into a Gender.
// Unrecognized values map to GenderUnknown.
func ParseGender(value string) Gender {
	switch value {
	case "M", "m", "Male", "male":
		return GenderMale
	case "F", "f", "Female", "female":
		return GenderFemale
	default:
		return GenderUnknown
	}
}

// DatePrecision describes how much of a calendar date is known.
type DatePrecision int

// Precision levels, ordered from least to most precise.
const (
	PrecisionNone DatePrecision = iota
	PrecisionYear
	PrecisionMonth
	PrecisionDay
)

// DateInfo holds a genealogical date: the original text as recorded in the
// source, the resolved calendar parts, and the precision of the resolution.
type DateInfo struct {
	Text      string
	Year      int
	Month     int
	Day       int
	Precision DatePrecision
}

// IsSet reports whether the date resolved to at least a year.
func (d DateInfo) IsSet() bool {
	return d.Precision > PrecisionNone && d.Year != 0
}

// MinPrecision returns the lesser of two precisions.
func MinPrecision(a, b DatePrecision) DatePrecision {
	if a < b {
		return a
	}
	return b
}

// YearDate builds a year-precision DateInfo. Convenience for tests and
// callers that only know a year.
func YearDate(year int) DateInfo {
	if year == 0 {
		return DateInfo{}
	}
	return DateInfo{Year: year, Precision: PrecisionYear}
}

// Field identifies one logical name field of a person record. The same set
// of fields exists on the primary record and in every locale slot.
type Field string

// Name fields.
const (
	FieldFirstName  Field = "FirstName"
	FieldLastName   Field = "LastName"
	FieldMaidenName Field = "MaidenName"
	FieldMiddleName Field = "MiddleName"
	FieldNickname   Field = "Nickname"
	FieldSuffix     Field = "Suffix"
	FieldTitle      Field = "Title"
)

// NameFields lists every Field in a stable order.
var NameFields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldMaidenName,
	FieldMiddleName,
	FieldNickname,
	FieldSuffix,
	FieldTitle,
}

// PersonRecord is an immutable snapshot of one person as exchanged between
// the normalization pipeline and the matcher. Any field may be empty; both
// consumers treat missing data as "nothing to do", never as an error.
//
// Relationship fields hold opaque keys referencing other records. They are
// resolved only through an externally supplied Lookup and may dangle.
type PersonRecord struct {
	Key string

	FirstName  string
	LastName   string
	MaidenName string
	MiddleName string
	Nickname   string
	Suffix     string
	Title      string

	Gender Gender

	BirthDate  DateInfo
	DeathDate  DateInfo
	BurialDate DateInfo

	BirthPlace string
	DeathPlace string

	FatherKey   string
	MotherKey   string
	SpouseKeys  []string
	ChildKeys   []string
	SiblingKeys []string

	// NameVariants collects alternate name strings found in the source
	// (additional NAME records, AKA facts and the like).
	NameVariants []string

	// LocaleNames holds per-locale renderings of the name fields.
	LocaleNames map[Locale]map[Field]string
}

// LocaleName returns the value of field in the given locale slot, or ""
// when the slot is absent. Safe on a nil record.
func (p *PersonRecord) LocaleName(locale Locale, field Field) string {
	if p == nil || p.LocaleNames == nil {
		return ""
	}
	fields, ok := p.LocaleNames[locale]
	if !ok {
		return ""
	}
	return fields[field]
}

// PrimaryName returns the value of a primary name field.
func (p *PersonRecord) PrimaryName(field Field) string {
	if p == nil {
		return ""
	}
	switch field {
	case FieldFirstName:
		return p.FirstName
	case FieldLastName:
		return p.LastName
	case FieldMaidenName:
		return p.MaidenName
	case FieldMiddleName:
		return p.MiddleName
	case FieldNickname:
		return p.Nickname
	case FieldSuffix:
		return p.Suffix
	case FieldTitle:
		return p.Title
	default:
		return ""
	}
}

// BirthYear returns the resolved birth year, or 0 when unknown.
func (p *PersonRecord) BirthYear() int {
	if p == nil || !p.BirthDate.IsSet() {
		return 0
	}
	return p.BirthDate.Year
}

// Lookup resolves relationship keys to full records. A nil map resolves
// nothing; a missing key resolves to nil.
type Lookup map[string]*PersonRecord

// Resolve returns the record for key, or nil when the key is empty, unknown
// or the lookup itself is nil.
func (l Lookup) Resolve(key string) *PersonRecord {
	if l == nil || key == "" {
		return nil
	}
	return l[key]
}
