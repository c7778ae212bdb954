package namefix

import (
	"strings"
	"unicode"

	"github.com/makhin/gedsync-go/gedmatch"
)

// specialCharsHandler strips punctuation noise, invalid symbols and leading
// digits from every primary field and every locale slot, and collapses
// whitespace.
type specialCharsHandler struct{}

func (h *specialCharsHandler) Name() string            { return "SpecialChars" }
func (h *specialCharsHandler) Order() int              { return orderSpecialChars }
func (h *specialCharsHandler) CanHandle(*Context) bool { return true }

func (h *specialCharsHandler) Handle(c *Context) {
	for _, field := range gedmatch.NameFields {
		value := c.Primary(field)
		if cleaned := cleanValue(value); cleaned != value {
			c.SetPrimary(h.Name(), field, cleaned, "removed invalid characters")
		}
	}
	for _, locale := range c.PresentLocales() {
		for _, field := range gedmatch.NameFields {
			value := c.Locale(locale, field)
			if value == "" {
				continue
			}
			if cleaned := cleanValue(value); cleaned != value {
				c.SetLocale(h.Name(), locale, field, cleaned, "removed invalid characters")
			}
		}
	}
	for i, nick := range c.Nicknames {
		if cleaned := cleanValue(nick); cleaned != nick {
			c.Changes = append(c.Changes, Change{
				Field:    string(gedmatch.FieldNickname),
				OldValue: nick,
				NewValue: cleaned,
				Reason:   "removed invalid characters",
				Handler:  h.Name(),
			})
			c.Nicknames[i] = cleaned
		}
	}
}

// cleanValue normalizes one raw field value: invalid symbols become spaces,
// whitespace collapses, and leading/trailing noise (digits, stray
// punctuation) is trimmed. Parentheses and quotes survive so the extraction
// handlers can still see them.
func cleanValue(value string) string {
	if value == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case r < ' ', strings.ContainsRune(`*#_/\|~^=+<>{}[]`, r):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	cleaned := strings.Join(strings.Fields(b.String()), " ")
	cleaned = strings.TrimLeftFunc(cleaned, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '(' && r != '"' && r != '«'
	})
	cleaned = strings.TrimRightFunc(cleaned, func(r rune) bool {
		return !unicode.IsLetter(r) && r != ')' && r != '"' && r != '»'
	})
	return strings.TrimSpace(cleaned)
}

// cleanupHandler is the final tidy pass: trims every value, drops empty
// slots and merges the short-English locale into preferred English when the
// values coincide.
type cleanupHandler struct{}

func (h *cleanupHandler) Name() string            { return "Cleanup" }
func (h *cleanupHandler) Order() int              { return orderCleanup }
func (h *cleanupHandler) CanHandle(*Context) bool { return true }

func (h *cleanupHandler) Handle(c *Context) {
	for _, field := range gedmatch.NameFields {
		value := c.Primary(field)
		if trimmed := strings.TrimSpace(value); trimmed != value {
			c.SetPrimary(h.Name(), field, trimmed, "trimmed whitespace")
		}
	}

	for _, field := range gedmatch.NameFields {
		short := c.Locale(gedmatch.LocaleEnglishShort, field)
		if short == "" {
			continue
		}
		preferred := c.Locale(gedmatch.LocaleEnglish, field)
		switch {
		case preferred == short:
			c.RemoveLocale(h.Name(), gedmatch.LocaleEnglishShort, field, "merged short English into preferred English")
		case preferred == "":
			c.SetLocale(h.Name(), gedmatch.LocaleEnglish, field, short, "promoted short English value")
			c.RemoveLocale(h.Name(), gedmatch.LocaleEnglishShort, field, "merged short English into preferred English")
		}
	}

	// Drop empty slots and empty locale maps without recording changes:
	// an empty value carries no information to audit.
	for locale, fields := range c.locales {
		for field, value := range fields {
			if strings.TrimSpace(value) == "" {
				delete(fields, field)
			} else if trimmed := strings.TrimSpace(value); trimmed != value {
				fields[field] = trimmed
			}
		}
		if len(fields) == 0 {
			delete(c.locales, locale)
		}
	}
}
