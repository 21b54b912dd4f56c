package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMissingTranslator is reported to MissingTranslationHandler when no
// Translator has been configured.
var ErrMissingTranslator = errors.New("render: missing translator")

// Translator resolves a message key for a locale. Args carry positional
// substitutions referenced as {0}, {1}, ... in the resolved message.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a plain function to the Translator interface.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler decides which string is returned when a key
// cannot be resolved. err is ErrMissingTranslator when t is nil.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// MapTranslator is an in-memory catalog keyed by locale then message key.
// Lookups fall back to the base language ("en" for "en-IN") and then to the
// "" locale.
type MapTranslator map[string]map[string]string

func (m MapTranslator) Translate(locale, key string, args ...any) (string, error) {
	for _, candidate := range localeChain(locale) {
		catalog, ok := m[candidate]
		if !ok {
			continue
		}
		if msg, ok := catalog[key]; ok && strings.TrimSpace(msg) != "" {
			return Format(msg, args...), nil
		}
	}
	return "", fmt.Errorf("render: no translation for %q (locale %q)", key, locale)
}

// Translate resolves key through t, formatting positional args into the
// result. Missing translators or keys are routed through onMissing; a nil
// onMissing formats the key itself so source strings double as messages.
func Translate(t Translator, onMissing MissingTranslationHandler, locale, key string, args ...any) string {
	if strings.TrimSpace(key) == "" {
		return ""
	}
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	if t == nil {
		return onMissing(locale, key, args, ErrMissingTranslator)
	}
	msg, err := t.Translate(locale, key, args...)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(locale, key, args, err)
	}
	return msg
}

// Format replaces {n} placeholders in msg with the matching positional arg.
// Placeholders without a matching arg, or that are not numeric, are kept.
func Format(msg string, args ...any) string {
	if len(args) == 0 || !strings.Contains(msg, "{") {
		return msg
	}

	var b strings.Builder
	b.Grow(len(msg))
	for i := 0; i < len(msg); i++ {
		if msg[i] != '{' {
			b.WriteByte(msg[i])
			continue
		}
		end := strings.IndexByte(msg[i:], '}')
		if end < 0 {
			b.WriteString(msg[i:])
			break
		}
		idx, err := strconv.Atoi(msg[i+1 : i+end])
		if err != nil || idx < 0 || idx >= len(args) {
			b.WriteString(msg[i : i+end+1])
			i += end
			continue
		}
		b.WriteString(anyToString(args[idx]))
		i += end
	}
	return b.String()
}

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	return Format(key, args...)
}

func localeChain(locale string) []string {
	locale = strings.TrimSpace(locale)
	chain := make([]string, 0, 3)
	if locale != "" {
		chain = append(chain, locale)
		if base, _, ok := strings.Cut(locale, "-"); ok && base != "" {
			chain = append(chain, base)
		}
	}
	return append(chain, "")
}

func anyToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
