package gedmatch

import "fmt"

// Locale identifies a language/script-specific slot holding an alternate
// rendering of a person's name fields.
type Locale string

// Recognized locales. LocaleEnglish is the preferred English rendering;
// LocaleEnglishShort holds an abbreviated English form some sources carry
// alongside it.
const (
	LocaleEnglish      Locale = "en"
	LocaleEnglishShort Locale = "en-short"
	LocaleRussian      Locale = "ru"
	LocaleUkrainian    Locale = "uk"
	LocaleLithuanian   Locale = "lt"
	LocaleEstonian     Locale = "et"
	LocaleLatvian      Locale = "lv"
	LocalePolish       Locale = "pl"
	LocaleGerman       Locale = "de"
	LocaleHebrew       Locale = "he"
)

// AllLocales lists every recognized locale in deduplication priority order:
// when the same value appears in several slots it is kept in the
// earliest-listed one.
var AllLocales = []Locale{
	LocaleEnglish,
	LocaleRussian,
	LocaleUkrainian,
	LocaleHebrew,
	LocaleLithuanian,
	LocaleEstonian,
	LocaleLatvian,
	LocalePolish,
	LocaleGerman,
	LocaleEnglishShort,
}

// UnknownLocaleError reports a locale code outside the recognized set.
type UnknownLocaleError struct {
	Code string
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("unknown locale code %q", e.Code)
}

// ParseLocale converts a raw locale code into a Locale. Unknown codes are
// rejected rather than silently creating dead map slots.
func ParseLocale(code string) (Locale, error) {
	for _, locale := range AllLocales {
		if string(locale) == code {
			return locale, nil
		}
	}
	return "", &UnknownLocaleError{Code: code}
}

// Priority returns the deduplication priority of the locale; lower wins.
// Unknown locales sort last.
func (l Locale) Priority() int {
	for i, locale := range AllLocales {
		if locale == l {
			return i
		}
	}
	return len(AllLocales)
}
