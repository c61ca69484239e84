package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactkit/pkg/validator"
)

func TestValidUTCOffset(t *testing.T) {
	valid := []string{"+00:00", "-00:00", "+05:30", "+14:00", "+15:00", "-99:00", "+08:60"}
	for _, v := range valid {
		assert.True(t, validator.Valid(validator.ValidUTCOffset("offset", v)), "lexically valid: %q", v)
	}

	invalid := []string{
		"08:00", "+8:00", "+0800", "+08-00", "abc", "", "   ",
		"++08:00", "+ +08:00", "+-08:00", "-+08:00", "08:+00", "08:00+", "8+00",
		"+", "+:00", "+08:+00", "+08:0+0", "--08:00", "-", "-:00",
		" +08:00", "+08:00 ", "+0A:00", "UTC+08:00", "+123:00", "+01:000",
		"+09:0", "+09:", "+08::00", "+08",
	}
	for _, v := range invalid {
		assert.False(t, validator.Valid(validator.ValidUTCOffset("offset", v)), "lexically invalid: %q", v)
	}
}

func TestUTCOffsetInRange(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"+00:00", true},
		{"-00:00", true},
		{"+05:45", true},
		{"+14:00", true},
		{"-12:00", true},
		{"+13:59", true},
		{"+14:01", false},
		{"+15:00", false},
		{"-12:01", false},
		{"-13:00", false},
		{"-99:00", false},
		{"+08:60", false},
		{"-02:99", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.valid, validator.Valid(validator.UTCOffsetInRange("offset", tt.value)))
		})
	}
}

func TestUTCOffsetInRange_ErrorMetadata(t *testing.T) {
	verrs := validator.ExtractValidationErrors(validator.Apply(validator.UTCOffsetInRange("offset", "-12:01")))
	if assert.Len(t, verrs, 1) {
		assert.Equal(t, "validation.utc_offset_range", verrs[0].TranslationKey)
		assert.Equal(t, "-12:00", verrs[0].TranslationValues["min"])
		assert.Equal(t, "+14:00", verrs[0].TranslationValues["max"])
	}
}
