package i18n_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/i18n"
)

func newMapTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"greeting": "Hello, %{name}!",
			"fields": map[string]any{
				"phone": "Phone",
			},
			"nested": map[any]any{
				"deep": "from any map",
			},
			"count": 3,
		},
		"de": {
			"greeting": "Hallo, %{name}!",
		},
		"pt-BR": {
			"greeting": "Olá, %{name}!",
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
			"": {"a": "b"},
		}})
		assert.ErrorIs(t, err, i18n.ErrInvalidTranslations)
	})

	t.Run("nil translations", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
			"en": nil,
		}})
		assert.ErrorIs(t, err, i18n.ErrInvalidTranslations)
	})

	t.Run("empty adapter", func(t *testing.T) {
		t.Parallel()
		tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, tr.SupportedLanguages())
		assert.Equal(t, "en", tr.Match("de"))
		assert.Equal(t, "key", tr.T("en", "key"))
	})

	t.Run("supported languages are sorted", func(t *testing.T) {
		t.Parallel()
		tr := newMapTranslator(t)
		assert.Equal(t, []string{"de", "en", "pt-BR"}, tr.SupportedLanguages())
		assert.Equal(t, "en", tr.DefaultLanguage())
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)

	assert.Equal(t, "Hello, John!", tr.T("en", "greeting", "name", "John"))
	assert.Equal(t, "Hallo, John!", tr.T("de", "greeting", "name", "John"))
	assert.Equal(t, "Phone", tr.T("en", "fields.phone"))
	assert.Equal(t, "from any map", tr.T("en", "nested.deep"))

	t.Run("unknown placeholders are kept", func(t *testing.T) {
		assert.Equal(t, "Hello, %{name}!", tr.T("en", "greeting"))
		assert.Equal(t, "Hello, %{name}!", tr.T("en", "greeting", "other", "x"))
		assert.Equal(t, "Hello, %{name}!", tr.T("en", "greeting", "name"))
	})

	t.Run("missing translation falls back to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", tr.T("en", "missing.key"))
		assert.Equal(t, "greeting", tr.T("fr", "greeting"))
		assert.Equal(t, "fields", tr.T("en", "fields"), "maps are not translations")
		assert.Equal(t, "count", tr.T("en", "count"), "numbers are not translations")
		assert.Equal(t, "fields.phone.more", tr.T("en", "fields.phone.more"))
	})

	t.Run("fallback disabled", func(t *testing.T) {
		strict := newMapTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, strict.T("en", "missing.key"))
		assert.Empty(t, strict.T("fr", "greeting"))
	})
}

func TestTranslator_Td(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)
	assert.Equal(t, "Hello, Ann!", tr.Td("en", "greeting", "Hi", "name", "Ann"))
	assert.Equal(t, "Hi Ann", tr.Td("en", "missing", "Hi %{name}", "name", "Ann"))
	assert.Equal(t, "Hi", tr.Td("fr", "greeting", "Hi"))
}

func TestTranslator_Tc(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)
	ctx := i18n.SetLocale(context.Background(), "de")
	assert.Equal(t, "Hallo, Eva!", tr.Tc(ctx, "greeting", "name", "Eva"))
	assert.Equal(t, "Hello, Eva!", tr.Tc(context.Background(), "greeting", "name", "Eva"))
}

func TestTranslator_HasTranslation(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)
	assert.True(t, tr.HasTranslation("en", "greeting"))
	assert.True(t, tr.HasTranslation("en", "fields.phone"))
	assert.False(t, tr.HasTranslation("en", "fields"))
	assert.False(t, tr.HasTranslation("de", "fields.phone"))
	assert.False(t, tr.HasTranslation("fr", "greeting"))
}

func TestTranslator_Match(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)

	tests := []struct {
		name      string
		requested []string
		want      string
	}{
		{"exact", []string{"de"}, "de"},
		{"regional variant", []string{"de-CH"}, "de"},
		{"english variant", []string{"en-GB"}, "en"},
		{"preference order", []string{"fr", "de"}, "de"},
		{"region specific", []string{"pt-BR"}, "pt-BR"},
		{"unsupported", []string{"ja"}, "en"},
		{"garbage ignored", []string{"not a tag!", "de"}, "de"},
		{"nothing requested", nil, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.requested...))
		})
	}

	t.Run("custom default", func(t *testing.T) {
		german := newMapTranslator(t, i18n.WithDefaultLanguage("de"))
		assert.Equal(t, "de", german.Match("ja"))
		assert.Equal(t, "en", german.Match("en-US"))
	})
}

type flakyAdapter struct {
	data map[string]map[string]any
	err  error
}

func (a *flakyAdapter) Load(context.Context) (map[string]map[string]any, error) {
	return a.data, a.err
}

func TestTranslator_Reload(t *testing.T) {
	t.Parallel()

	adapter := &flakyAdapter{data: map[string]map[string]any{"en": {"k": "v1"}}}
	tr, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)
	assert.Equal(t, "v1", tr.T("en", "k"))

	adapter.data = map[string]map[string]any{"en": {"k": "v2"}, "de": {"k": "w2"}}
	require.NoError(t, tr.Reload(context.Background()))
	assert.Equal(t, "v2", tr.T("en", "k"))
	assert.Equal(t, "de", tr.Match("de-AT"))

	adapter.err = errors.New("boom")
	require.Error(t, tr.Reload(context.Background()))
	assert.Equal(t, "v2", tr.T("en", "k"), "failed reload keeps previous translations")
}

func TestTranslator_MissingTranslationsLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	tr := newMapTranslator(t, i18n.WithLogger(logger), i18n.WithMissingTranslationsLogging(true))
	tr.T("en", "missing.key")
	tr.T("fr", "greeting")

	assert.Contains(t, buf.String(), "Translation not found")
	assert.Contains(t, buf.String(), "missing.key")
	assert.Contains(t, buf.String(), "Language not supported")

	buf.Reset()
	quiet := newMapTranslator(t, i18n.WithLogger(logger), i18n.WithNoLogging())
	quiet.T("en", "missing.key")
	assert.Empty(t, buf.String())
}

func TestTranslator_Concurrency(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t)
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.Equal(t, "Hello, X!", tr.T("en", "greeting", "name", "X"))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, tr.Reload(context.Background()))
		}()
	}
	wg.Wait()
}
