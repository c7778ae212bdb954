package namefix

import (
	"github.com/agnivade/levenshtein"

	"github.com/makhin/gedsync-go/gedmatch"
	"github.com/makhin/gedsync-go/namedict"
)

// variantSuggestHandler looks the cleaned names up in the variant
// dictionary and records a warning when the canonical spelling is an edit
// or two away from the current value. Suggestions are advisory only and
// never applied; genuine variants (diminutives, translations) are further
// than two edits from their canonical form and stay silent.
type variantSuggestHandler struct {
	dict *namedict.Dictionary
}

func (h *variantSuggestHandler) Name() string            { return "VariantSuggest" }
func (h *variantSuggestHandler) Order() int              { return orderVariantSuggest }
func (h *variantSuggestHandler) CanHandle(*Context) bool { return h.dict != nil }

func (h *variantSuggestHandler) Handle(c *Context) {
	h.suggest(c, gedmatch.FieldFirstName, namedict.GivenNames, c.FirstName)
	h.suggest(c, gedmatch.FieldLastName, namedict.Surnames, c.LastName)
	h.suggest(c, gedmatch.FieldMaidenName, namedict.Surnames, c.MaidenName)
}

func (h *variantSuggestHandler) suggest(c *Context, field gedmatch.Field, kind namedict.Kind, value string) {
	if value == "" {
		return
	}
	canonical, ok := h.dict.Canonical(kind, value)
	if !ok || canonical == "" {
		return
	}
	key, canonicalKey := namedict.Key(value), namedict.Key(canonical)
	if key == canonicalKey {
		return
	}
	distance := levenshtein.ComputeDistance(key, canonicalKey)
	if distance < 1 || distance > 2 {
		return
	}
	c.Warn(h.Name(), string(field), value, canonical,
		"name is close to the canonical spelling "+canonical)
}
