package namefix

import (
	"sort"

	"github.com/makhin/gedsync-go/gedmatch"
	"github.com/makhin/gedsync-go/namedict"
)

// Handler is one transformation step of the pipeline. Handlers declare an
// Order; the pipeline runs them strictly ascending, exactly once each.
// Handle must tolerate partially-cleaned output of earlier handlers and
// must not fail on missing data.
type Handler interface {
	Name() string
	Order() int
	CanHandle(*Context) bool
	Handle(*Context)
}

// Handler orders. Values are spaced so a fork can insert steps between
// existing ones without renumbering; only the relative order is a contract.
const (
	orderSpecialChars      = 100
	orderScriptSplit       = 110
	orderCyrillicToRussian = 120
	orderTitleExtract      = 130
	orderSuffixExtract     = 140
	orderMaidenExtract     = 150
	orderNicknameExtract   = 160
	orderPatronymic        = 170
	orderUkrainianDetect   = 200
	orderLithuanianDetect  = 210
	orderEstonianDetect    = 220
	orderLatvianDetect     = 230
	orderPolishDetect      = 240
	orderGermanDetect      = 250
	orderHebrewDetect      = 260
	orderTransliterate     = 300
	orderEnglishGuarantee  = 310
	orderFeminineSurname   = 320
	orderMarriedSurname    = 330
	orderSurnameParticles  = 340
	orderCapitalization    = 350
	orderLocaleDedupe      = 400
	orderCleanup           = 410
	orderVariantSuggest    = 500
)

// Options configures pipeline construction.
type Options struct {
	// Dictionary backs the patronymic disambiguation and the advisory
	// variant-suggestion handler. nil disables both lookups.
	Dictionary *namedict.Dictionary

	// Suggest enables the warning-only typo/variant suggestion handler.
	Suggest bool
}

// DefaultOptions returns the default pipeline options: the seeded built-in
// dictionary with suggestions enabled.
func DefaultOptions() *Options {
	return &Options{
		Dictionary: namedict.New(),
		Suggest:    true,
	}
}

// Pipeline is a fixed, ordered list of handlers. A Pipeline is immutable
// after construction and safe to share; the Context it runs over is not.
type Pipeline struct {
	handlers []Handler
}

// New builds the standard pipeline. nil opts means DefaultOptions.
func New(opts *Options) *Pipeline {
	if opts == nil {
		opts = DefaultOptions()
	}
	handlers := []Handler{
		&specialCharsHandler{},
		&scriptSplitHandler{},
		&cyrillicToRussianHandler{},
		&titleExtractHandler{},
		&suffixExtractHandler{},
		&maidenNameExtractHandler{},
		&nicknameExtractHandler{},
		&patronymicHandler{dict: opts.Dictionary},
		newLanguageDetect("UkrainianDetect", orderUkrainianDetect, gedmatch.LocaleUkrainian),
		newLanguageDetect("LithuanianDetect", orderLithuanianDetect, gedmatch.LocaleLithuanian),
		newLanguageDetect("EstonianDetect", orderEstonianDetect, gedmatch.LocaleEstonian),
		newLanguageDetect("LatvianDetect", orderLatvianDetect, gedmatch.LocaleLatvian),
		newLanguageDetect("PolishDetect", orderPolishDetect, gedmatch.LocalePolish),
		newLanguageDetect("GermanDetect", orderGermanDetect, gedmatch.LocaleGerman),
		&hebrewDetectHandler{},
		&transliterateHandler{},
		&englishGuaranteeHandler{},
		&feminineSurnameHandler{},
		&marriedSurnameHandler{},
		&surnameParticlesHandler{},
		&capitalizationHandler{},
		&localeDedupeHandler{},
		&cleanupHandler{},
	}
	if opts.Suggest && opts.Dictionary != nil {
		handlers = append(handlers, &variantSuggestHandler{dict: opts.Dictionary})
	}
	return NewPipeline(handlers...)
}

// NewPipeline builds a pipeline from an explicit handler list, sorted by
// Order (stable, so equal orders keep argument order).
func NewPipeline(handlers ...Handler) *Pipeline {
	sorted := make([]Handler, len(handlers))
	copy(sorted, handlers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})
	return &Pipeline{handlers: sorted}
}

// Handlers returns the handlers in execution order.
func (p *Pipeline) Handlers() []Handler {
	out := make([]Handler, len(p.handlers))
	copy(out, p.handlers)
	return out
}

// Run executes every handler once, in ascending order, over ctx. A nil
// context is a no-op.
func (p *Pipeline) Run(ctx *Context) {
	if ctx == nil {
		return
	}
	if ctx.locales == nil {
		ctx.locales = map[gedmatch.Locale]map[gedmatch.Field]string{}
	}
	for _, handler := range p.handlers {
		if !handler.CanHandle(ctx) {
			continue
		}
		handler.Handle(ctx)
	}
}
