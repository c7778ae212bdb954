package namefix

import (
	"strings"
	"unicode"

	"github.com/makhin/gedsync-go/gedmatch"
)

// surnameParticlesHandler normalizes nobiliary and surname particles:
// always-lowercase particles (van, von, de, …), capitalized prefixes (O',
// Mc, Mac), and compound particles ("van der"). Non-particle tokens of an
// all-caps or all-lowercase surname are title-cased in the same pass so the
// later capitalization handler does not mistake the result for curated
// mixed case.
type surnameParticlesHandler struct{}

var lowercaseParticles = map[string]struct{}{
	"van": {}, "von": {}, "der": {}, "den": {}, "de": {}, "la": {},
	"le": {}, "du": {}, "ten": {}, "ter": {}, "zu": {}, "zur": {},
	"af": {}, "av": {}, "di": {}, "da": {}, "del": {}, "della": {},
	"dos": {}, "und": {},
}

func (h *surnameParticlesHandler) Name() string            { return "SurnameParticles" }
func (h *surnameParticlesHandler) Order() int              { return orderSurnameParticles }
func (h *surnameParticlesHandler) CanHandle(*Context) bool { return true }

func (h *surnameParticlesHandler) Handle(c *Context) {
	for _, field := range []gedmatch.Field{gedmatch.FieldLastName, gedmatch.FieldMaidenName} {
		value := c.Primary(field)
		if fixed := fixParticles(value); fixed != value {
			c.SetPrimary(h.Name(), field, fixed, "normalized surname particles")
		}
		for _, locale := range c.PresentLocales() {
			value := c.Locale(locale, field)
			if value == "" {
				continue
			}
			if fixed := fixParticles(value); fixed != value {
				c.SetLocale(h.Name(), locale, field, fixed, "normalized surname particles")
			}
		}
	}
}

func fixParticles(value string) string {
	tokens := strings.Fields(value)
	if len(tokens) == 0 {
		return value
	}
	curated := isMixedCase(value)
	for i, token := range tokens {
		lower := strings.ToLower(token)
		if _, ok := lowercaseParticles[lower]; ok && len(tokens) > 1 && i < len(tokens)-1 {
			// A particle as the final token is the surname itself.
			tokens[i] = lower
			continue
		}
		if fixed, ok := fixPrefix(token); ok {
			tokens[i] = fixed
			continue
		}
		if !curated {
			tokens[i] = titleCaseName(token)
		}
	}
	return strings.Join(tokens, " ")
}

// fixPrefix handles capitalized surname prefixes joined to the name.
func fixPrefix(token string) (string, bool) {
	lower := strings.ToLower(token)
	switch {
	case strings.HasPrefix(lower, "o'") && len(lower) > 2:
		return "O'" + titleCaseName(lower[2:]), true
	case strings.HasPrefix(lower, "o’") && len(lower) > len("o’"):
		return "O’" + titleCaseName(lower[len("o’"):]), true
	case strings.HasPrefix(lower, "mc") && len(lower) > 3:
		return "Mc" + titleCaseName(lower[2:]), true
	case strings.HasPrefix(lower, "mac") && len(lower) > 5:
		return "Mac" + titleCaseName(lower[3:]), true
	case strings.HasPrefix(lower, "al-") && len(lower) > 3:
		return "al-" + titleCaseName(lower[3:]), true
	default:
		return "", false
	}
}

// capitalizationHandler corrects all-caps and all-lowercase values to title
// case on every primary field and locale slot. Mixed-case values are
// assumed already correct (surname particles are handled separately).
type capitalizationHandler struct{}

func (h *capitalizationHandler) Name() string            { return "Capitalization" }
func (h *capitalizationHandler) Order() int              { return orderCapitalization }
func (h *capitalizationHandler) CanHandle(*Context) bool { return true }

func (h *capitalizationHandler) Handle(c *Context) {
	for _, field := range gedmatch.NameFields {
		value := c.Primary(field)
		if fixed, ok := fixCase(value); ok {
			c.SetPrimary(h.Name(), field, fixed, "corrected capitalization")
		}
	}
	for _, locale := range c.PresentLocales() {
		for _, field := range gedmatch.NameFields {
			value := c.Locale(locale, field)
			if fixed, ok := fixCase(value); ok {
				c.SetLocale(h.Name(), locale, field, fixed, "corrected capitalization")
			}
		}
	}
	for i, nick := range c.Nicknames {
		if fixed, ok := fixCase(nick); ok {
			c.Changes = append(c.Changes, Change{
				Field:    string(gedmatch.FieldNickname),
				OldValue: nick,
				NewValue: fixed,
				Reason:   "corrected capitalization",
				Handler:  h.Name(),
			})
			c.Nicknames[i] = fixed
		}
	}
}

func fixCase(value string) (string, bool) {
	if value == "" || isMixedCase(value) {
		return "", false
	}
	fixed := titleCaseName(value)
	if fixed == value {
		return "", false
	}
	return fixed, true
}

// isMixedCase reports whether value already carries both upper and lower
// case letters.
func isMixedCase(value string) bool {
	var hasUpper, hasLower bool
	for _, r := range value {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	return hasUpper && hasLower
}

// titleCaseName title-cases a name, treating spaces, hyphens and
// apostrophes as component boundaries: "anna-maria o'brien" becomes
// "Anna-Maria O'Brien". Caseless scripts pass through unchanged.
func titleCaseName(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	startOfWord := true
	for _, r := range value {
		if unicode.IsLetter(r) {
			if startOfWord {
				b.WriteRune(unicode.ToUpper(r))
			} else {
				b.WriteRune(unicode.ToLower(r))
			}
			startOfWord = false
			continue
		}
		b.WriteRune(r)
		if r == ' ' || r == '-' || r == '\'' || r == '’' {
			startOfWord = true
		}
	}
	return b.String()
}
