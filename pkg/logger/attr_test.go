package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("check", logger.Field("email"), logger.Kind("invalid_format"))
	require.Equal(t, "check", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "field", g[0].Key)
	assert.Equal(t, "kind", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
		val  string
	}{
		{logger.Component("cli"), "component", "cli"},
		{logger.Field("phone"), "field", "phone"},
		{logger.Value("+******5432"), "value", "+******5432"},
		{logger.Locale("de"), "locale", "de"},
		{logger.Kind("nil"), "kind", "nil"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.attr.Key)
		assert.Equal(t, tt.val, tt.attr.Value.String())
	}
}

func TestViolations(t *testing.T) {
	attr := logger.Violations([]string{"validation.phone", "validation.phone_digits"})
	require.Equal(t, "violations", attr.Key)
	assert.Equal(t, []string{"validation.phone", "validation.phone_digits"}, attr.Value.Any())

	assert.True(t, logger.Violations(nil).Equal(slog.Attr{}))
}
