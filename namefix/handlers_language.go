package namefix

import (
	"github.com/makhin/gedsync-go/gedmatch"
	"github.com/makhin/gedsync-go/script"
)

// languageDetectHandler scans primary fields and every locale slot for
// content matching one language's detection rules and copies (never moves)
// matching values into that language's locale slot when it is still empty.
// Guesses below script.MinConfidence are ignored.
type languageDetectHandler struct {
	name   string
	order  int
	locale gedmatch.Locale
}

func newLanguageDetect(name string, order int, locale gedmatch.Locale) *languageDetectHandler {
	return &languageDetectHandler{name: name, order: order, locale: locale}
}

func (h *languageDetectHandler) Name() string            { return h.name }
func (h *languageDetectHandler) Order() int              { return h.order }
func (h *languageDetectHandler) CanHandle(*Context) bool { return true }

func (h *languageDetectHandler) Handle(c *Context) {
	for _, field := range textFields {
		if c.Locale(h.locale, field) != "" {
			continue
		}
		for _, candidate := range h.candidates(c, field) {
			if candidate == "" {
				continue
			}
			guess := script.GuessLanguage(candidate)
			if !guess.Usable() || guess.Locale != h.locale {
				continue
			}
			c.SetLocale(h.name, h.locale, field, candidate, "detected "+string(h.locale)+" content")
			break
		}
	}
}

func (h *languageDetectHandler) candidates(c *Context, field gedmatch.Field) []string {
	values := []string{c.Primary(field)}
	for _, locale := range c.PresentLocales() {
		if locale == h.locale {
			continue
		}
		values = append(values, c.Locale(locale, field))
	}
	return values
}

// hebrewDetectHandler copies purely Hebrew values into the Hebrew locale
// slot when it is empty.
type hebrewDetectHandler struct{}

func (h *hebrewDetectHandler) Name() string            { return "HebrewDetect" }
func (h *hebrewDetectHandler) Order() int              { return orderHebrewDetect }
func (h *hebrewDetectHandler) CanHandle(*Context) bool { return true }

func (h *hebrewDetectHandler) Handle(c *Context) {
	for _, field := range textFields {
		if c.Locale(gedmatch.LocaleHebrew, field) != "" {
			continue
		}
		candidates := []string{c.Primary(field)}
		for _, locale := range c.PresentLocales() {
			if locale == gedmatch.LocaleHebrew {
				continue
			}
			candidates = append(candidates, c.Locale(locale, field))
		}
		for _, candidate := range candidates {
			if candidate == "" || !script.IsHebrew(candidate) {
				continue
			}
			c.SetLocale(h.Name(), gedmatch.LocaleHebrew, field, candidate, "detected Hebrew content")
			break
		}
	}
}
