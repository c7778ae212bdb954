package namefix

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/makhin/gedsync-go/gedmatch"
	"github.com/makhin/gedsync-go/script"
	"github.com/makhin/gedsync-go/translit"
)

// transliterateHandler generates English-locale transliterations from
// Russian/Ukrainian slot values, and upgrades purely Cyrillic primary
// fields to their Latin form once an English equivalent exists (the
// Cyrillic original is preserved in the Russian slot).
type transliterateHandler struct{}

func (h *transliterateHandler) Name() string            { return "Transliterate" }
func (h *transliterateHandler) Order() int              { return orderTransliterate }
func (h *transliterateHandler) CanHandle(*Context) bool { return true }

func (h *transliterateHandler) Handle(c *Context) {
	for _, field := range textFields {
		primary := c.Primary(field)
		primaryCyrillic := primary != "" && script.IsCyrillic(primary)

		// A purely Cyrillic primary value is preserved in the Russian
		// slot before anything replaces it.
		if primaryCyrillic && c.Locale(gedmatch.LocaleRussian, field) == "" {
			c.SetLocale(h.Name(), gedmatch.LocaleRussian, field, primary, "Cyrillic primary value preserved in Russian locale")
		}

		if c.Locale(gedmatch.LocaleEnglish, field) == "" {
			if generated := h.generate(c, field); generated != "" {
				c.SetLocale(h.Name(), gedmatch.LocaleEnglish, field, generated, "transliterated from Cyrillic locale value")
			}
		}

		if english := c.Locale(gedmatch.LocaleEnglish, field); primaryCyrillic && english != "" {
			c.SetPrimary(h.Name(), field, english, "primary field updated to Latin form")
		}
	}
}

func (h *transliterateHandler) generate(c *Context, field gedmatch.Field) string {
	if russian := c.Locale(gedmatch.LocaleRussian, field); russian != "" && script.IsCyrillic(russian) {
		return titleWords(translit.Transliterate(russian, translit.Russian))
	}
	if ukrainian := c.Locale(gedmatch.LocaleUkrainian, field); ukrainian != "" && script.IsCyrillic(ukrainian) {
		return titleWords(translit.Transliterate(ukrainian, translit.Ukrainian))
	}
	return ""
}

// titleWords title-cases a generated transliteration word by word.
func titleWords(s string) string {
	if s == "" || s != strings.ToLower(s) {
		// The source had case information; the transliteration kept it.
		return s
	}
	return cases.Title(language.English).String(s)
}

// englishGuaranteeHandler makes sure every field with any value also has a
// basic-Latin English rendering, filled by priority: Russian/Ukrainian
// transliteration, a diacritic-stripped value from another Latin locale,
// then the primary field itself. Existing English values with non-basic
// characters are simplified in place.
type englishGuaranteeHandler struct{}

func (h *englishGuaranteeHandler) Name() string            { return "EnglishGuarantee" }
func (h *englishGuaranteeHandler) Order() int              { return orderEnglishGuarantee }
func (h *englishGuaranteeHandler) CanHandle(*Context) bool { return true }

var latinDonorLocales = []gedmatch.Locale{
	gedmatch.LocaleEnglishShort,
	gedmatch.LocaleLithuanian,
	gedmatch.LocaleEstonian,
	gedmatch.LocaleLatvian,
	gedmatch.LocalePolish,
	gedmatch.LocaleGerman,
}

func (h *englishGuaranteeHandler) Handle(c *Context) {
	for _, field := range textFields {
		english := c.Locale(gedmatch.LocaleEnglish, field)
		if english != "" {
			if translit.IsBasicLatin(english) {
				continue
			}
			simplified := translit.RemoveDiacritics(english)
			if simplified != english && translit.IsBasicLatin(simplified) {
				c.SetLocale(h.Name(), gedmatch.LocaleEnglish, field, simplified, "simplified English value to basic Latin")
			}
			continue
		}
		if value := h.fill(c, field); value != "" {
			c.SetLocale(h.Name(), gedmatch.LocaleEnglish, field, value, "filled English locale value")
		}
	}
}

func (h *englishGuaranteeHandler) fill(c *Context, field gedmatch.Field) string {
	if russian := c.Locale(gedmatch.LocaleRussian, field); russian != "" && script.IsCyrillic(russian) {
		return titleWords(translit.Transliterate(russian, translit.Russian))
	}
	if ukrainian := c.Locale(gedmatch.LocaleUkrainian, field); ukrainian != "" && script.IsCyrillic(ukrainian) {
		return titleWords(translit.Transliterate(ukrainian, translit.Ukrainian))
	}
	for _, locale := range latinDonorLocales {
		value := c.Locale(locale, field)
		if value == "" || !script.IsLatin(value) {
			continue
		}
		if stripped := translit.RemoveDiacritics(value); translit.IsBasicLatin(stripped) {
			return stripped
		}
	}
	primary := c.Primary(field)
	if primary == "" {
		return ""
	}
	switch {
	case translit.IsBasicLatin(primary):
		return primary
	case script.IsCyrillic(primary):
		return titleWords(translit.Transliterate(primary, translit.Russian))
	case script.IsLatin(primary):
		if stripped := translit.RemoveDiacritics(primary); translit.IsBasicLatin(stripped) {
			return stripped
		}
	}
	return ""
}
