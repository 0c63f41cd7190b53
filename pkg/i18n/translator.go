package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no WithDefaultLanguage option is given.
const DefaultLanguage = "en"

// Translator resolves translation keys for a fixed set of languages.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logger        *slog.Logger

	langs   []string // default language first
	matcher language.Matcher
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when a request matches nothing.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key for missing
// translations. Enabled by default; when disabled T returns "".
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

// WithLogger sets the logger used to report missing translations at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTranslator loads translations from adapter. Every language code must be a
// valid BCP 47 tag and the default language must be present.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}
	if _, ok := translations[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefaultNotLoaded, t.defaultLang)
	}

	others := make([]string, 0, len(translations)-1)
	for lang := range translations {
		if lang != t.defaultLang {
			others = append(others, lang)
		}
	}
	slices.Sort(others)
	t.langs = append([]string{t.defaultLang}, others...)

	tags := make([]language.Tag, len(t.langs))
	for i, lang := range t.langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidLanguage, lang, err)
		}
		tags[i] = tag
	}

	t.translations = translations
	t.matcher = language.NewMatcher(tags)
	return t, nil
}

// SupportedLanguages returns the loaded language codes, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// Match picks the supported language closest to the given preferences. Each
// preference may be a language code or a full Accept-Language value.
// Unparsable or unsupported preferences yield the default language.
func (t *Translator) Match(preferred ...string) string {
	var tags []language.Tag
	for _, p := range preferred {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

// HasTranslation reports whether key resolves to a string in lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key into lang, replacing %{name} placeholders from args given as
// name/value pairs:
//
//	tr.T("sv", "bank_error", "bank", "Nordea", "message", msg)
//
// Keys missing in lang are looked up in the default language before falling
// back to the key itself.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok && lang != t.defaultLang {
		tmpl, ok = t.lookup(t.defaultLang, key)
	}
	if !ok {
		t.logger.Debug("translation not found", slog.String("lang", lang), slog.String("key", key))
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return namedSprintf(tmpl, args)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}

	switch v := current[parts[len(parts)-1]].(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf substitutes %{name} placeholders; unknown names are kept as is.
func namedSprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
