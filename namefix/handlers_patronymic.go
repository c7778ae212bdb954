package namefix

import (
	"strings"

	"github.com/makhin/gedsync-go/gedmatch"
	"github.com/makhin/gedsync-go/namedict"
)

// patronymicHandler recognizes Slavic patronymics. A combined "First
// Patronymic [Last]" first name is split into first/middle/last; a
// patronymic erroneously stored as the last name moves to the middle name.
//
// Male -ич/-ович endings double as real surnames (Рабинович), so the
// last-name relocation consults the surname dictionary and only fires for
// names it does not know.
type patronymicHandler struct {
	dict *namedict.Dictionary
}

var malePatronymicSuffixes = []string{"ович", "евич", "ьич", "ич", "ovich", "evich", "ich"}
var femalePatronymicSuffixes = []string{"инична", "ична", "овна", "евна", "ichna", "ovna", "evna"}

// Strong endings are unambiguous enough to relocate a whole last name.
var strongMaleSuffixes = []string{"ович", "евич", "ovich", "evich"}
var strongFemaleSuffixes = []string{"инична", "ична", "овна", "евна", "ichna", "ovna", "evna"}

func (h *patronymicHandler) Name() string            { return "Patronymic" }
func (h *patronymicHandler) Order() int              { return orderPatronymic }
func (h *patronymicHandler) CanHandle(*Context) bool { return true }

func (h *patronymicHandler) Handle(c *Context) {
	h.splitCombinedFirstName(c)
	h.relocateLastName(c)
}

func (h *patronymicHandler) splitCombinedFirstName(c *Context) {
	tokens := strings.Fields(c.FirstName)
	if len(tokens) < 2 || len(tokens) > 3 {
		return
	}
	if !isPatronymic(tokens[1], c.Gender, false) {
		return
	}
	c.SetPrimary(h.Name(), gedmatch.FieldFirstName, tokens[0], "split combined name on patronymic")
	if c.MiddleName == "" {
		c.SetPrimary(h.Name(), gedmatch.FieldMiddleName, tokens[1], "patronymic from combined first name")
	} else if !strings.EqualFold(c.MiddleName, tokens[1]) {
		c.Warn(h.Name(), string(gedmatch.FieldMiddleName), c.MiddleName, tokens[1],
			"patronymic in first name differs from existing middle name")
	}
	if len(tokens) == 3 && c.LastName == "" {
		c.SetPrimary(h.Name(), gedmatch.FieldLastName, tokens[2], "surname from combined first name")
	}
}

func (h *patronymicHandler) relocateLastName(c *Context) {
	if c.LastName == "" || c.MiddleName != "" {
		return
	}
	if !isPatronymic(c.LastName, c.Gender, true) {
		return
	}
	// A name the surname dictionary knows is a surname, not a misfiled
	// patronymic.
	if h.dict != nil {
		if _, known := h.dict.Canonical(namedict.Surnames, c.LastName); known {
			return
		}
	}
	patronymic := c.LastName
	c.SetPrimary(h.Name(), gedmatch.FieldLastName, "", "patronymic relocated to middle name")
	c.SetPrimary(h.Name(), gedmatch.FieldMiddleName, patronymic, "patronymic relocated from last name")
}

// isPatronymic reports whether a single token carries a patronymic ending
// consistent with the person's gender. strict limits the check to the
// unambiguous long endings.
func isPatronymic(token string, gender gedmatch.Gender, strict bool) bool {
	lower := strings.ToLower(strings.TrimSpace(token))
	if len([]rune(lower)) < 5 {
		return false
	}
	male := strongMaleSuffixes
	female := strongFemaleSuffixes
	if !strict {
		male = malePatronymicSuffixes
		female = femalePatronymicSuffixes
	}
	if gender != gedmatch.GenderFemale && hasAnySuffix(lower, male) {
		return true
	}
	if gender != gedmatch.GenderMale && hasAnySuffix(lower, female) {
		return true
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if len(s) > len(suffix) && strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
