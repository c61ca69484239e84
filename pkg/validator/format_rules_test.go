package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Run("valid emails", func(t *testing.T) {
		validEmails := []string{
			"PeterJack_1190@example.com",
			"PeterJack.1190@example.com",
			"PeterJack+1190@example.com",
			"PeterJack-1190@example.com",
			"a@bc",
			"test@localhost",
			"123@145",
			"a1+be.d@example1.com",
			"peter_jack@very-very-very-long-example.com",
			"if.you.dream.it_you.can.do.it@example.com",
			"e1234567@u.nus.edu",
			"alice@example-subdomain.example.com",
			"alice@123.com",
			"üser@example.com",
			"admin@mailserver1",
			"example@s.solutions",
			"_______@example.com",
			"disposable.style.email.with+symbol@example.com",
		}

		for _, email := range validEmails {
			assert.NoError(t, validator.Apply(validator.ValidEmail("email", email)), "email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalidEmails := []string{
			"",
			" ",
			"@example.com",
			"peterjackexample.com",
			"peterjack@",
			"peterjack@-",
			"peterjack@exam_ple.com",
			"peter jack@example.com",
			"peterjack@exam ple.com",
			" peterjack@example.com",
			"peterjack@example.com ",
			"peterjack@@example.com",
			"peter@jack@example.com",
			"-peterjack@example.com",
			"peterjack-@example.com",
			"peterjack@example@com",
			"peterjack@.example.com",
			"peterjack@example.com.",
			"peterjack@-example.com",
			"peterjack@example.com-",
			"peterjack@example.c",
			".alice@example.com",
			"alice.@example.com",
			"alice..bob@example.com",
			"alice@example-.com",
			"alice@ex..ample.com",
			"alice@exam\tple.com",
			"alice@\nexample.com",
			"user@xn--example-9ta.com",
			"A@b@c@example.com",
			`a"b(c)d,e:f;g<h>i[j\k]l@example.com`,
			`just"not"right@example.com`,
			`this is"not\allowed@example.com`,
			"i_like_underscore@but_its_not_allowed_in_this_part.example.com",
			"bad\xffbyte@example.com",
		}

		for _, email := range invalidEmails {
			err := validator.Apply(validator.ValidEmail("email", email))
			require.Error(t, err, "email should be invalid: %q", email)
			assert.Equal(t, "validation.email", validator.ExtractValidationErrors(err)[0].TranslationKey)
		}
	})

	t.Run("local part length boundary", func(t *testing.T) {
		assert.True(t, validator.Valid(validator.ValidEmail("email", strings.Repeat("a", 64)+"@example.com")))
		assert.False(t, validator.Valid(validator.ValidEmail("email", strings.Repeat("a", 65)+"@example.com")))
	})

	t.Run("long local part under total limit", func(t *testing.T) {
		// 244 + 1 + 9 = 254 fits the address limit but not the local-part limit.
		assert.False(t, validator.Valid(validator.ValidEmail("email", strings.Repeat("a", 244)+"@test.com")))
	})

	t.Run("total length boundary", func(t *testing.T) {
		// 64 + 1 + 189 = 254
		domain := strings.Repeat("b", 60) + "." + strings.Repeat("c", 60) + "." + strings.Repeat("d", 63) + ".com"
		require.Len(t, domain, 189)
		local := strings.Repeat("a", 64)

		assert.True(t, validator.Valid(validator.ValidEmail("email", local+"@"+domain)))
		assert.False(t, validator.Valid(validator.ValidEmail("email", local+"@x"+domain)))
	})

	t.Run("domain length", func(t *testing.T) {
		assert.True(t, validator.Valid(validator.ValidEmail("email", strings.Repeat("a", 64)+"@"+strings.Repeat("b", 63)+".com")))
		assert.False(t, validator.Valid(validator.ValidEmail("email", "a@"+strings.Repeat("b", 256)+".com")))
	})
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"911",
		"93121534",
		"124293842033123",
		"9312 1534",
		"123-456-7890",
		"+1 123-456-7890",
		"(123) 456-7890",
		"+65 (123) 456 7890",
		"+6598765432",
		"+65 9",
		"123  456  7890",
		"+65 98-76 5432",
		"0123456789",
		"006598765432",
	}
	for _, phone := range valid {
		assert.True(t, validator.Valid(validator.ValidPhone("phone", phone)), "structure should be valid: %q", phone)
	}

	invalid := []string{
		"",
		"phone",
		"9011p041",
		"+65@12345678",
		"+A123456",
		"++6512345678",
		"+-6512345678",
		"+--1234567",
		"123+456789",
		"123456+",
		"+65+98765432",
		"123/456/7890",
		"123_456_7890",
		"123,456,7890",
		"*1234567",
		"#98765432",
		"+",
	}
	for _, phone := range invalid {
		err := validator.Apply(validator.ValidPhone("phone", phone))
		require.Error(t, err, "structure should be invalid: %q", phone)
		assert.Equal(t, "validation.phone", validator.ExtractValidationErrors(err)[0].TranslationKey)
	}
}

func TestValidPhoneDigits(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"91", false},
		{"+65", false},
		{"911", true},
		{"+65 9", true},
		{"123456789012345", true},
		{"+651234567890123", true},
		{"1234567890123456", false},
		{"+6512345678901234", false},
		{"1234 5678 9012 345", true},
		{"1234 5678 9012 3456", false},
		{" ", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.valid, validator.Valid(validator.ValidPhoneDigits("phone", tt.phone)))
		})
	}

	verrs := validator.ExtractValidationErrors(validator.Apply(validator.ValidPhoneDigits("phone", "12")))
	require.Len(t, verrs, 1)
	assert.Equal(t, "validation.phone_digits", verrs[0].TranslationKey)
	assert.Equal(t, 3, verrs[0].TranslationValues["min"])
	assert.Equal(t, 15, verrs[0].TranslationValues["max"])
}
