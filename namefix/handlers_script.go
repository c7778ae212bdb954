package namefix

import (
	"strings"

	"github.com/makhin/gedsync-go/gedmatch"
	"github.com/makhin/gedsync-go/script"
)

// scriptSplitHandler splits mixed-script field values into same-script runs
// and redistributes them: Cyrillic runs to the Russian locale slot, Hebrew
// runs to the Hebrew slot, Latin runs stay in (or move to) the primary
// field or English slot. Occupied target slots are never overwritten; a run
// that cannot be placed is dropped with an audit entry.
type scriptSplitHandler struct{}

func (h *scriptSplitHandler) Name() string            { return "ScriptSplit" }
func (h *scriptSplitHandler) Order() int              { return orderScriptSplit }
func (h *scriptSplitHandler) CanHandle(*Context) bool { return true }

func (h *scriptSplitHandler) Handle(c *Context) {
	for _, field := range textFields {
		value := c.Primary(field)
		if script.Classify(value) == script.Mixed {
			h.splitPrimary(c, field, value)
		}
	}
	for _, locale := range c.PresentLocales() {
		for _, field := range textFields {
			value := c.Locale(locale, field)
			if script.Classify(value) == script.Mixed {
				h.splitLocale(c, locale, field, value)
			}
		}
	}
}

func (h *scriptSplitHandler) splitPrimary(c *Context, field gedmatch.Field, value string) {
	latin, cyrillic, hebrew := splitRuns(value)
	h.place(c, gedmatch.LocaleRussian, field, cyrillic, "Cyrillic part of mixed-script value")
	h.place(c, gedmatch.LocaleHebrew, field, hebrew, "Hebrew part of mixed-script value")
	kept := latin
	if kept == "" {
		kept = cyrillic
	}
	if kept == "" {
		kept = hebrew
	}
	c.SetPrimary(h.Name(), field, kept, "split mixed-script value by script")
}

func (h *scriptSplitHandler) splitLocale(c *Context, locale gedmatch.Locale, field gedmatch.Field, value string) {
	latin, cyrillic, hebrew := splitRuns(value)
	kept := ""
	switch localeScript(locale) {
	case script.Cyrillic:
		kept = cyrillic
		h.place(c, gedmatch.LocaleEnglish, field, latin, "Latin part of mixed-script value")
		h.place(c, gedmatch.LocaleHebrew, field, hebrew, "Hebrew part of mixed-script value")
	case script.Hebrew:
		kept = hebrew
		h.place(c, gedmatch.LocaleEnglish, field, latin, "Latin part of mixed-script value")
		h.place(c, gedmatch.LocaleRussian, field, cyrillic, "Cyrillic part of mixed-script value")
	default:
		kept = latin
		h.place(c, gedmatch.LocaleRussian, field, cyrillic, "Cyrillic part of mixed-script value")
		h.place(c, gedmatch.LocaleHebrew, field, hebrew, "Hebrew part of mixed-script value")
	}
	if kept == "" {
		c.RemoveLocale(h.Name(), locale, field, "no same-script content after split")
		return
	}
	c.SetLocale(h.Name(), locale, field, kept, "split mixed-script value by script")
}

// place copies a run into a locale slot when the slot is empty or already
// holds the same value. A differing occupant wins; the run is dropped with
// a warning so nothing is silently overwritten.
func (h *scriptSplitHandler) place(c *Context, locale gedmatch.Locale, field gedmatch.Field, run, reason string) {
	if run == "" {
		return
	}
	existing := c.Locale(locale, field)
	if existing == "" {
		c.SetLocale(h.Name(), locale, field, run, reason)
		return
	}
	if existing != run {
		c.Warn(h.Name(), localeFieldRef(locale, field), run, existing,
			"dropped split run: slot already holds a different value")
	}
}

// splitRuns groups the same-script runs of a mixed value, joining multiple
// runs of one script with spaces.
func splitRuns(value string) (latin, cyrillic, hebrew string) {
	var latinParts, cyrillicParts, hebrewParts []string
	for _, run := range script.Runs(value) {
		switch run.Script {
		case script.Latin:
			latinParts = append(latinParts, run.Text)
		case script.Cyrillic:
			cyrillicParts = append(cyrillicParts, run.Text)
		case script.Hebrew:
			hebrewParts = append(hebrewParts, run.Text)
		}
	}
	return strings.Join(latinParts, " "), strings.Join(cyrillicParts, " "), strings.Join(hebrewParts, " ")
}

func localeScript(locale gedmatch.Locale) script.Script {
	switch locale {
	case gedmatch.LocaleRussian, gedmatch.LocaleUkrainian:
		return script.Cyrillic
	case gedmatch.LocaleHebrew:
		return script.Hebrew
	default:
		return script.Latin
	}
}

// cyrillicToRussianHandler relocates purely Cyrillic values out of the
// English locale slots into the Russian slot, or drops them when a
// different Russian value already exists.
type cyrillicToRussianHandler struct{}

func (h *cyrillicToRussianHandler) Name() string            { return "CyrillicToRussian" }
func (h *cyrillicToRussianHandler) Order() int              { return orderCyrillicToRussian }
func (h *cyrillicToRussianHandler) CanHandle(*Context) bool { return true }

func (h *cyrillicToRussianHandler) Handle(c *Context) {
	for _, locale := range []gedmatch.Locale{gedmatch.LocaleEnglish, gedmatch.LocaleEnglishShort} {
		for _, field := range gedmatch.NameFields {
			value := c.Locale(locale, field)
			if value == "" || !script.IsCyrillic(value) {
				continue
			}
			russian := c.Locale(gedmatch.LocaleRussian, field)
			switch russian {
			case "":
				c.SetLocale(h.Name(), gedmatch.LocaleRussian, field, value, "Cyrillic value relocated from English locale")
				c.RemoveLocale(h.Name(), locale, field, "Cyrillic value relocated to Russian locale")
			case value:
				c.RemoveLocale(h.Name(), locale, field, "Cyrillic duplicate of Russian value")
			default:
				c.RemoveLocale(h.Name(), locale, field, "dropped Cyrillic value: Russian slot holds a different value")
			}
		}
	}
}
