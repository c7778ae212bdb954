package namefix

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/makhin/gedsync-go/gedmatch"
)

// titleExtractHandler moves leading honorific titles (Dr., Prof., князь, …)
// from the first or last name into the title field. Surname-first records
// carry the title in the last name ("князь Голицын").
type titleExtractHandler struct{}

var titlePattern = regexp.MustCompile(`^(?i)(dr|prof|professor|rabbi|rev|sir|mr|mrs|ms|князь|граф|барон|княгиня|графиня|баронесса)\.?\s+`)

func (h *titleExtractHandler) Name() string            { return "TitleExtract" }
func (h *titleExtractHandler) Order() int              { return orderTitleExtract }
func (h *titleExtractHandler) CanHandle(*Context) bool { return true }

func (h *titleExtractHandler) Handle(c *Context) {
	for _, field := range []gedmatch.Field{gedmatch.FieldFirstName, gedmatch.FieldLastName} {
		value := c.Primary(field)
		var titles []string
		for {
			match := titlePattern.FindStringSubmatch(value)
			if match == nil {
				break
			}
			titles = append(titles, match[1])
			value = strings.TrimSpace(value[len(match[0]):])
		}
		if len(titles) == 0 {
			continue
		}
		c.SetPrimary(h.Name(), field, value, "extracted honorific title")
		title := strings.Join(titles, " ")
		if c.Title != "" {
			title = c.Title + " " + title
		}
		c.SetPrimary(h.Name(), gedmatch.FieldTitle, title, "extracted honorific title from "+string(field))
	}
}

// suffixExtractHandler moves trailing generational/professional suffixes
// (Jr., III, Ph.D., …) from the last or first name into the suffix field.
type suffixExtractHandler struct{}

var suffixPattern = regexp.MustCompile(`(?i)[,\s]+(jr|sr|ii|iii|iv|phd|ph\.d|md|m\.d|esq)\.?\s*$`)

func (h *suffixExtractHandler) Name() string            { return "SuffixExtract" }
func (h *suffixExtractHandler) Order() int              { return orderSuffixExtract }
func (h *suffixExtractHandler) CanHandle(*Context) bool { return true }

func (h *suffixExtractHandler) Handle(c *Context) {
	for _, field := range []gedmatch.Field{gedmatch.FieldLastName, gedmatch.FieldFirstName} {
		value := c.Primary(field)
		var suffixes []string
		for {
			match := suffixPattern.FindStringSubmatch(value)
			if match == nil {
				break
			}
			suffixes = append([]string{match[1]}, suffixes...)
			value = strings.TrimRight(strings.TrimSpace(value[:len(value)-len(match[0])]), ",")
		}
		if len(suffixes) == 0 {
			continue
		}
		c.SetPrimary(h.Name(), field, value, "extracted name suffix")
		suffix := strings.Join(suffixes, " ")
		if c.Suffix != "" {
			suffix = c.Suffix + " " + suffix
		}
		c.SetPrimary(h.Name(), gedmatch.FieldSuffix, suffix, "extracted trailing suffix from "+string(field))
	}
}

// maidenNameExtractHandler pulls maiden-name patterns ("née X", "урожд. X",
// or a parenthetical that plausibly is a surname) out of the last name.
type maidenNameExtractHandler struct{}

// The marker must start at the beginning of the value or after a
// separator: "born"/"nee"/"geb" occur inside legitimate surnames
// (Osborn, Renee).
var maidenPattern = regexp.MustCompile(`(?i)(?:^|[\s,(])(?:née|nee|born|урожд(?:\.|енная|ённая)?|geb\.?)\s+([^\s).,]+)\)?`)
var parentheticalPattern = regexp.MustCompile(`\s*\(([^)]*)\)`)

func (h *maidenNameExtractHandler) Name() string            { return "MaidenNameExtract" }
func (h *maidenNameExtractHandler) Order() int              { return orderMaidenExtract }
func (h *maidenNameExtractHandler) CanHandle(c *Context) bool { return c.LastName != "" }

func (h *maidenNameExtractHandler) Handle(c *Context) {
	value := c.LastName

	if match := maidenPattern.FindStringSubmatch(value); match != nil {
		maiden := strings.TrimSpace(match[1])
		remaining := strings.TrimSpace(strings.Replace(value, match[0], " ", 1))
		remaining = strings.Join(strings.Fields(remaining), " ")
		h.apply(c, remaining, maiden, "extracted maiden name marker")
		return
	}

	if match := parentheticalPattern.FindStringSubmatch(value); match != nil {
		content := strings.TrimSpace(match[1])
		if looksLikeSurname(content) {
			remaining := strings.TrimSpace(strings.Replace(value, match[0], " ", 1))
			remaining = strings.Join(strings.Fields(remaining), " ")
			h.apply(c, remaining, content, "extracted parenthetical maiden name")
		}
	}
}

func (h *maidenNameExtractHandler) apply(c *Context, lastName, maiden, reason string) {
	c.SetPrimary(h.Name(), gedmatch.FieldLastName, lastName, reason)
	if c.MaidenName == "" {
		c.SetPrimary(h.Name(), gedmatch.FieldMaidenName, maiden, reason)
		return
	}
	if !strings.EqualFold(c.MaidenName, maiden) {
		c.Warn(h.Name(), string(gedmatch.FieldMaidenName), c.MaidenName, maiden,
			"extracted maiden name differs from existing value")
	}
}

// looksLikeSurname reports whether a parenthetical plausibly holds a
// surname rather than a note: one token, letters with optional hyphen or
// apostrophe, leading capital, at least three letters.
func looksLikeSurname(s string) bool {
	runes := []rune(s)
	if len(runes) < 3 {
		return false
	}
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) && r != '-' && r != '\'' && r != '’' {
			return false
		}
	}
	return true
}

// nicknameExtractHandler collects parenthetical or quoted nicknames from
// the first name, supporting comma-separated lists: «Александр (Саша,
// Шура)» yields nicknames Саша and Шура.
type nicknameExtractHandler struct{}

var quotedPatterns = []*regexp.Regexp{
	parentheticalPattern,
	regexp.MustCompile(`\s*"([^"]*)"`),
	regexp.MustCompile(`\s*«([^»]*)»`),
}

func (h *nicknameExtractHandler) Name() string            { return "NicknameExtract" }
func (h *nicknameExtractHandler) Order() int              { return orderNicknameExtract }
func (h *nicknameExtractHandler) CanHandle(c *Context) bool { return c.FirstName != "" }

func (h *nicknameExtractHandler) Handle(c *Context) {
	value := c.FirstName
	var extracted []string
	for _, pattern := range quotedPatterns {
		for {
			match := pattern.FindStringSubmatch(value)
			if match == nil {
				break
			}
			if content := strings.TrimSpace(match[1]); content != "" {
				extracted = append(extracted, content)
			}
			value = strings.Join(strings.Fields(strings.Replace(value, match[0], " ", 1)), " ")
		}
	}
	if len(extracted) == 0 {
		return
	}
	c.SetPrimary(h.Name(), gedmatch.FieldFirstName, value, "extracted nickname")
	for _, group := range extracted {
		for _, nick := range strings.Split(group, ",") {
			c.AddNickname(h.Name(), nick, "nickname extracted from first name")
		}
	}
}
