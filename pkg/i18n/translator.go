package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no other language is configured or matched.
const DefaultLanguage = "en"

// Translator resolves translation keys for a language.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	adapter        TranslationAdapter

	// Languages in matcher order: the default first, then the rest sorted.
	matchLangs []string
	matcher    language.Matcher

	mu sync.RWMutex
}

// NewTranslator loads translations from adapter and returns a ready Translator.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		adapter:       adapter,
	}

	for _, option := range options {
		option(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload fetches translations from the adapter again and swaps them in
// atomically. On error the previous translations stay in place.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	if err := validateTranslations(translations); err != nil {
		return err
	}

	langs, matcher := buildMatcher(translations, t.defaultLang)

	t.mu.Lock()
	t.translations = translations
	t.matchLangs = langs
	t.matcher = matcher
	t.mu.Unlock()

	if len(translations) == 0 {
		t.logger.WarnContext(ctx, "No translations provided")
	}
	t.logger.DebugContext(ctx, "Translations loaded", "languages", langs)
	return nil
}

func validateTranslations(trans map[string]map[string]any) error {
	for lang, translations := range trans {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidTranslations)
		}
		if translations == nil {
			return fmt.Errorf("%w: nil translations for language %q", ErrInvalidTranslations, lang)
		}
	}
	return nil
}

// buildMatcher returns the languages that parse as BCP 47 tags together with
// a matcher over them. The default language leads so that it wins when
// nothing matches.
func buildMatcher(trans map[string]map[string]any, defaultLang string) ([]string, language.Matcher) {
	langs := slices.Sorted(maps.Keys(trans))
	if i := slices.Index(langs, defaultLang); i > 0 {
		langs = slices.Insert(slices.Delete(langs, i, i+1), 0, defaultLang)
	}

	matchLangs := make([]string, 0, len(langs))
	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		matchLangs = append(matchLangs, lang)
		tags = append(tags, tag)
	}

	if len(tags) == 0 {
		return nil, nil
	}
	return matchLangs, language.NewMatcher(tags)
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.translations))
}

// DefaultLanguage returns the language used when matching fails.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the best supported language for the requested BCP 47 tags, in
// order of preference. Regional variants fall back to their base language, so
// "de-CH" matches "de". Unparseable tags are ignored. Without a confident
// match the default language is returned.
func (t *Translator) Match(requested ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.matcher == nil {
		return t.defaultLang
	}

	tags := make([]language.Tag, 0, len(requested))
	for _, r := range requested {
		tag, err := language.Parse(strings.TrimSpace(r))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return t.defaultLang
	}

	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.defaultLang
	}
	return t.matchLangs[index]
}

// getTranslation traverses a nested map using dot-separated keys.
// For example, key "validation.email" reads m["validation"]["email"].
func getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// lookup returns the string translation of key, if any.
func (t *Translator) lookup(lang, key string) (string, bool) {
	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := getTranslation(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Translation not found", "lang", lang, "key", key)
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		if t.missingLogMode {
			t.logger.Warn("Translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", v))
		}
		return "", false
	}
}

// HasTranslation reports whether lang has a string translation for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	val, ok := getTranslation(langMap, key)
	if !ok {
		return false
	}
	_, isString := val.(string)
	return isString
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes %{name} placeholders from key, value pairs. Unknown
// placeholders are kept; a trailing odd argument is ignored.
func sprintf(tmpl string, args []string) string {
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

// T translates key for lang, substituting key, value pairs from args:
//
//	tr.T("en", "validation.required", "field", "Address")
//	// "Address is required"
//
// A missing translation yields the key itself, or "" when fallback to key is
// disabled.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td translates key for lang and uses defaultValue as the template when the
// translation is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if tmpl, ok := t.lookup(lang, key); ok {
		return sprintf(tmpl, args)
	}
	return sprintf(defaultValue, args)
}

// Tc translates key for the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}
