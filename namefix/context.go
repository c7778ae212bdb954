// Package namefix cleans and restructures raw genealogical name data. An
// ordered pipeline of single-responsibility handlers runs exactly once over
// a mutable per-person Context, normalizing scripts, extracting embedded
// titles, suffixes, maiden names and nicknames, filling per-locale name
// slots and recording every mutation in an append-only change log.
//
// Example usage:
//
//	ctx := namefix.NewContext(record)
//	namefix.New(nil).Run(ctx)
//	for _, change := range ctx.Changes {
//	    fmt.Printf("%s: %q -> %q (%s)\n", change.Field, change.OldValue, change.NewValue, change.Reason)
//	}
//	cleaned := ctx.Apply(record)
//
// A Context is owned by one pipeline run and must never be shared across
// goroutines. Handlers are total functions: missing data means "nothing to
// do", never an error.
package namefix

import (
	"strings"

	"github.com/makhin/gedsync-go/gedmatch"
)

// Change is one entry in the audit trail: a single field mutation (or, when
// IsWarning is set, an advisory suggestion that was not applied).
type Change struct {
	Field     string
	OldValue  string
	NewValue  string
	Reason    string
	Handler   string
	IsWarning bool
}

// Changes is the ordered audit trail of a pipeline run.
type Changes []Change

// Warnings returns only the advisory entries.
func (cs Changes) Warnings() Changes {
	var out Changes
	for _, c := range cs {
		if c.IsWarning {
			out = append(out, c)
		}
	}
	return out
}

// ByHandler returns the entries recorded by the named handler.
func (cs Changes) ByHandler(name string) Changes {
	var out Changes
	for _, c := range cs {
		if c.Handler == name {
			out = append(out, c)
		}
	}
	return out
}

// Context is the mutable working copy of one person's name data during a
// pipeline run. It is created from a PersonRecord immediately before the
// run and materialized back (or discarded) immediately after.
type Context struct {
	FirstName  string
	LastName   string
	MaidenName string
	MiddleName string
	Suffix     string
	Title      string
	Nicknames  []string

	Gender gedmatch.Gender

	// SpouseSurname is an optional hint (the spouse's standard surname)
	// used by the married-surname resolution handler. Callers set it
	// before running the pipeline when family data is available.
	SpouseSurname string

	locales map[gedmatch.Locale]map[gedmatch.Field]string

	Changes Changes
}

// textFields are the name fields handlers iterate over.
var textFields = []gedmatch.Field{
	gedmatch.FieldFirstName,
	gedmatch.FieldLastName,
	gedmatch.FieldMaidenName,
	gedmatch.FieldMiddleName,
}

// NewContext builds a working context from a record, deep-copying the
// locale map. A nil record yields an empty context.
func NewContext(rec *gedmatch.PersonRecord) *Context {
	c := &Context{
		locales: map[gedmatch.Locale]map[gedmatch.Field]string{},
	}
	if rec == nil {
		return c
	}
	c.FirstName = rec.FirstName
	c.LastName = rec.LastName
	c.MaidenName = rec.MaidenName
	c.MiddleName = rec.MiddleName
	c.Suffix = rec.Suffix
	c.Title = rec.Title
	c.Gender = rec.Gender
	for _, nick := range strings.Split(rec.Nickname, ",") {
		if nick = strings.TrimSpace(nick); nick != "" {
			c.Nicknames = append(c.Nicknames, nick)
		}
	}
	for locale, fields := range rec.LocaleNames {
		copied := make(map[gedmatch.Field]string, len(fields))
		for field, value := range fields {
			copied[field] = value
		}
		c.locales[locale] = copied
	}
	return c
}

// Apply materializes the cleaned context into a copy of rec, leaving rec
// itself untouched. A nil rec produces a fresh record.
func (c *Context) Apply(rec *gedmatch.PersonRecord) *gedmatch.PersonRecord {
	var out gedmatch.PersonRecord
	if rec != nil {
		out = *rec
	}
	out.FirstName = c.FirstName
	out.LastName = c.LastName
	out.MaidenName = c.MaidenName
	out.MiddleName = c.MiddleName
	out.Suffix = c.Suffix
	out.Title = c.Title
	out.Nickname = strings.Join(c.Nicknames, ", ")
	out.Gender = c.Gender
	out.LocaleNames = map[gedmatch.Locale]map[gedmatch.Field]string{}
	for locale, fields := range c.locales {
		if len(fields) == 0 {
			continue
		}
		copied := make(map[gedmatch.Field]string, len(fields))
		for field, value := range fields {
			copied[field] = value
		}
		out.LocaleNames[locale] = copied
	}
	return &out
}

// Primary returns the value of a primary name field.
func (c *Context) Primary(field gedmatch.Field) string {
	ptr := c.primaryPtr(field)
	if ptr == nil {
		return ""
	}
	return *ptr
}

// SetPrimary updates a primary field, recording the change. A no-op when
// the value is unchanged.
func (c *Context) SetPrimary(handler string, field gedmatch.Field, value, reason string) {
	ptr := c.primaryPtr(field)
	if ptr == nil || *ptr == value {
		return
	}
	c.Changes = append(c.Changes, Change{
		Field:    string(field),
		OldValue: *ptr,
		NewValue: value,
		Reason:   reason,
		Handler:  handler,
	})
	*ptr = value
}

// Locale returns the value of a field in a locale slot, or "".
func (c *Context) Locale(locale gedmatch.Locale, field gedmatch.Field) string {
	fields, ok := c.locales[locale]
	if !ok {
		return ""
	}
	return fields[field]
}

// SetLocale updates a locale slot, recording the change.
func (c *Context) SetLocale(handler string, locale gedmatch.Locale, field gedmatch.Field, value, reason string) {
	fields, ok := c.locales[locale]
	if !ok {
		fields = map[gedmatch.Field]string{}
		c.locales[locale] = fields
	}
	old := fields[field]
	if old == value {
		return
	}
	c.Changes = append(c.Changes, Change{
		Field:    localeFieldRef(locale, field),
		OldValue: old,
		NewValue: value,
		Reason:   reason,
		Handler:  handler,
	})
	fields[field] = value
}

// RemoveLocale clears a locale slot, recording the change.
func (c *Context) RemoveLocale(handler string, locale gedmatch.Locale, field gedmatch.Field, reason string) {
	fields, ok := c.locales[locale]
	if !ok {
		return
	}
	old, ok := fields[field]
	if !ok || old == "" {
		delete(fields, field)
		return
	}
	c.Changes = append(c.Changes, Change{
		Field:    localeFieldRef(locale, field),
		OldValue: old,
		Reason:   reason,
		Handler:  handler,
	})
	delete(fields, field)
}

// Warn records an advisory change without applying it. Duplicate warnings
// (same field, value and suggestion) are suppressed so re-running the
// pipeline stays convergent.
func (c *Context) Warn(handler, field, oldValue, suggested, reason string) {
	for _, existing := range c.Changes {
		if existing.IsWarning && existing.Field == field &&
			existing.OldValue == oldValue && existing.NewValue == suggested {
			return
		}
	}
	c.Changes = append(c.Changes, Change{
		Field:     field,
		OldValue:  oldValue,
		NewValue:  suggested,
		Reason:    reason,
		Handler:   handler,
		IsWarning: true,
	})
}

// PresentLocales returns the locales that currently hold any value, in
// priority order.
func (c *Context) PresentLocales() []gedmatch.Locale {
	var out []gedmatch.Locale
	for _, locale := range gedmatch.AllLocales {
		if fields, ok := c.locales[locale]; ok && len(fields) > 0 {
			out = append(out, locale)
		}
	}
	return out
}

// AddNickname appends a nickname, skipping case-insensitive duplicates, and
// records the change.
func (c *Context) AddNickname(handler, nick, reason string) {
	nick = strings.TrimSpace(nick)
	if nick == "" {
		return
	}
	for _, existing := range c.Nicknames {
		if strings.EqualFold(existing, nick) {
			return
		}
	}
	c.Changes = append(c.Changes, Change{
		Field:    string(gedmatch.FieldNickname),
		NewValue: nick,
		Reason:   reason,
		Handler:  handler,
	})
	c.Nicknames = append(c.Nicknames, nick)
}

func (c *Context) primaryPtr(field gedmatch.Field) *string {
	switch field {
	case gedmatch.FieldFirstName:
		return &c.FirstName
	case gedmatch.FieldLastName:
		return &c.LastName
	case gedmatch.FieldMaidenName:
		return &c.MaidenName
	case gedmatch.FieldMiddleName:
		return &c.MiddleName
	case gedmatch.FieldSuffix:
		return &c.Suffix
	case gedmatch.FieldTitle:
		return &c.Title
	default:
		return nil
	}
}

func localeFieldRef(locale gedmatch.Locale, field gedmatch.Field) string {
	return string(locale) + "." + string(field)
}
