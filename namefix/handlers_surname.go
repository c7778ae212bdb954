package namefix

import (
	"github.com/makhin/gedsync-go/gedmatch"
	"github.com/makhin/gedsync-go/surname"
)

// feminineSurnameHandler substitutes the expected feminine surname form for
// female records whose surname carries a masculine suffix, in the primary
// fields and the Russian and English locale slots. Invariant surname
// families (-ко, -ук, -ич, …) are left alone.
type feminineSurnameHandler struct{}

func (h *feminineSurnameHandler) Name() string { return "FeminineSurname" }
func (h *feminineSurnameHandler) Order() int   { return orderFeminineSurname }

func (h *feminineSurnameHandler) CanHandle(c *Context) bool {
	return c.Gender == gedmatch.GenderFemale
}

func (h *feminineSurnameHandler) Handle(c *Context) {
	for _, field := range []gedmatch.Field{gedmatch.FieldLastName, gedmatch.FieldMaidenName} {
		if fixed, ok := expectedFeminine(c.Primary(field)); ok {
			c.SetPrimary(h.Name(), field, fixed, "feminine surname form for female record")
		}
	}
	for _, locale := range []gedmatch.Locale{gedmatch.LocaleRussian, gedmatch.LocaleEnglish} {
		for _, field := range []gedmatch.Field{gedmatch.FieldLastName, gedmatch.FieldMaidenName} {
			if fixed, ok := expectedFeminine(c.Locale(locale, field)); ok {
				c.SetLocale(h.Name(), locale, field, fixed, "feminine surname form for female record")
			}
		}
	}
}

// expectedFeminine returns the feminine form when value is a masculine
// Slavic surname missing its feminine suffix.
func expectedFeminine(value string) (string, bool) {
	if value == "" || surname.IsInvariant(value) {
		return "", false
	}
	// Already feminine: normalization would change it.
	if surname.Normalize(value) != value {
		return "", false
	}
	feminine := surname.Feminize(value)
	if feminine == value {
		return "", false
	}
	return feminine, true
}

// marriedSurnameHandler resolves which of last name and maiden name is the
// married surname. With a spouse-surname hint: when the maiden name matches
// the spouse's surname but the last name does not, the two fields are
// swapped (the current surname is, by definition, the one matching the
// spouse). Without a hint, an empty maiden name defaults to the current
// last name.
type marriedSurnameHandler struct{}

func (h *marriedSurnameHandler) Name() string            { return "MarriedSurname" }
func (h *marriedSurnameHandler) Order() int              { return orderMarriedSurname }
func (h *marriedSurnameHandler) CanHandle(c *Context) bool { return c.LastName != "" }

func (h *marriedSurnameHandler) Handle(c *Context) {
	if c.SpouseSurname == "" {
		if c.MaidenName == "" {
			const reason = "birth name defaults to current surname without marriage evidence"
			c.SetPrimary(h.Name(), gedmatch.FieldMaidenName, c.LastName, reason)
			for _, locale := range c.PresentLocales() {
				last := c.Locale(locale, gedmatch.FieldLastName)
				if last != "" && c.Locale(locale, gedmatch.FieldMaidenName) == "" {
					c.SetLocale(h.Name(), locale, gedmatch.FieldMaidenName, last, reason)
				}
			}
		}
		return
	}
	if c.MaidenName == "" {
		return
	}
	// Both fields must be feminine surname forms for the swap heuristic
	// to apply.
	if surname.Normalize(c.LastName) == c.LastName || surname.Normalize(c.MaidenName) == c.MaidenName {
		return
	}
	if !surname.AreEquivalent(c.MaidenName, c.SpouseSurname) || surname.AreEquivalent(c.LastName, c.SpouseSurname) {
		return
	}
	const reason = "maiden name matches spouse surname; fields swapped"
	last, maiden := c.LastName, c.MaidenName
	c.SetPrimary(h.Name(), gedmatch.FieldLastName, maiden, reason)
	c.SetPrimary(h.Name(), gedmatch.FieldMaidenName, last, reason)
	// The locale renderings describe the same two names, so they swap too.
	for _, locale := range c.PresentLocales() {
		localeLast := c.Locale(locale, gedmatch.FieldLastName)
		localeMaiden := c.Locale(locale, gedmatch.FieldMaidenName)
		if localeLast == localeMaiden {
			continue
		}
		if localeMaiden == "" {
			c.RemoveLocale(h.Name(), locale, gedmatch.FieldLastName, reason)
		} else {
			c.SetLocale(h.Name(), locale, gedmatch.FieldLastName, localeMaiden, reason)
		}
		if localeLast == "" {
			c.RemoveLocale(h.Name(), locale, gedmatch.FieldMaidenName, reason)
		} else {
			c.SetLocale(h.Name(), locale, gedmatch.FieldMaidenName, localeLast, reason)
		}
	}
}
