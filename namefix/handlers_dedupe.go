package namefix

import (
	"strings"

	"github.com/makhin/gedsync-go/gedmatch"
	"github.com/makhin/gedsync-go/script"
	"github.com/makhin/gedsync-go/translit"
)

// localeDedupeHandler removes values that repeat across locale slots,
// keeping each value only in the highest-priority locale. Three kinds of
// duplicates survive on purpose:
//
//   - cross-script values are never duplicates of each other;
//   - an identical Cyrillic value in both ru and uk is legitimate;
//   - a diacritic-bearing value is never removed just because English
//     holds its undiacritized form;
//   - a value sitting in its own detected home locale stays there even
//     when a higher-priority locale holds a copy (language-detection
//     handlers copy values in deliberately).
type localeDedupeHandler struct{}

func (h *localeDedupeHandler) Name() string            { return "LocaleDedupe" }
func (h *localeDedupeHandler) Order() int              { return orderLocaleDedupe }
func (h *localeDedupeHandler) CanHandle(*Context) bool { return true }

func (h *localeDedupeHandler) Handle(c *Context) {
	for _, field := range gedmatch.NameFields {
		locales := c.PresentLocales()
		for i := 0; i < len(locales); i++ {
			higher := c.Locale(locales[i], field)
			if higher == "" {
				continue
			}
			for j := i + 1; j < len(locales); j++ {
				lower := c.Locale(locales[j], field)
				if lower == "" {
					continue
				}
				if !h.isRemovableDuplicate(locales[i], higher, locales[j], lower) {
					continue
				}
				c.RemoveLocale(h.Name(), locales[j], field,
					"duplicate of "+string(locales[i])+" value")
			}
		}
	}
}

func (h *localeDedupeHandler) isRemovableDuplicate(higherLocale gedmatch.Locale, higher string, lowerLocale gedmatch.Locale, lower string) bool {
	if script.Classify(higher) != script.Classify(lower) {
		return false
	}
	if dedupeKey(higher) != dedupeKey(lower) {
		return false
	}
	// Identical Cyrillic in ru and uk is legitimate bilingual data.
	if higherLocale == gedmatch.LocaleRussian && lowerLocale == gedmatch.LocaleUkrainian && higher == lower {
		return false
	}
	// Keep the diacritic-bearing original when English only holds the
	// stripped form.
	if higherLocale == gedmatch.LocaleEnglish && lower != translit.RemoveDiacritics(lower) {
		return false
	}
	// Keep a value in its detected home locale.
	if guess := script.GuessLanguage(lower); guess.Usable() && guess.Locale == lowerLocale {
		return false
	}
	return true
}

func dedupeKey(value string) string {
	return strings.ToLower(translit.RemoveDiacritics(value))
}
