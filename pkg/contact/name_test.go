package contact_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactkit/pkg/contact"
	"github.com/dmitrymomot/contactkit/pkg/validator"
)

func TestIsValidName(t *testing.T) {
	t.Parallel()

	t.Run("valid names", func(t *testing.T) {
		t.Parallel()
		valid := []string{
			"peter jack",
			"12345",
			"peter the 2nd",
			"Capital Tan",
			"David Roger Jackson Ray Jr 2nd",
			"A",
			"O",
			"X  A12",
			"John   Smith",
			"John ",
			"jOhN dOe",
			"A1 B2 C3",
			"Zoë Ñúñez",
			"李小龙",
			"José",
			strings.Repeat("a", contact.MaxNameLength),
		}
		for _, name := range valid {
			assert.True(t, contact.IsValidName(name), "name should be valid: %q", name)
		}
	})

	t.Run("invalid names", func(t *testing.T) {
		t.Parallel()
		invalid := []string{
			"",
			" ",
			"^",
			"peter*",
			"  John",
			" John",
			"John@",
			"John*Doe",
			"123!",
			"A1! B2?",
			"Jean-Luc",
			"O'Neill",
			"John\tSmith",
			strings.Repeat("a", contact.MaxNameLength+1),
		}
		for _, name := range invalid {
			assert.False(t, contact.IsValidName(name), "name should be invalid: %q", name)
		}
	})

	t.Run("length counts characters", func(t *testing.T) {
		t.Parallel()
		assert.True(t, contact.IsValidName(strings.Repeat("é", 70)))
		assert.False(t, contact.IsValidName(strings.Repeat("é", 71)))
	})
}

func TestNewName(t *testing.T) {
	t.Parallel()

	t.Run("stores the raw value", func(t *testing.T) {
		t.Parallel()
		name, err := contact.NewName("John  Smith ")
		require.NoError(t, err)
		assert.Equal(t, "John  Smith ", name.Value())
		assert.Equal(t, "John  Smith ", name.String())
		assert.False(t, name.IsZero())
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		_, err := contact.NewName("peter*")
		require.Error(t, err)
		assert.ErrorIs(t, err, contact.ErrInvalidFormat)
		assert.NotErrorIs(t, err, contact.ErrNilValue)

		var formatErr *contact.InvalidFormatError
		require.True(t, errors.As(err, &formatErr))
		assert.Equal(t, "name", formatErr.Field)
		assert.Equal(t, "peter*", formatErr.Value)
		assert.Equal(t, []string{"validation.person_name"}, formatErr.Violations.TranslationKeys())
	})

	t.Run("empty value reports every broken rule", func(t *testing.T) {
		t.Parallel()
		_, err := contact.NewName("")
		keys := validator.ExtractValidationErrors(err).TranslationKeys()
		assert.Equal(t, []string{"validation.length_between", "validation.person_name"}, keys)
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()
		_, err := contact.NewName(strings.Repeat("a", 71))
		keys := validator.ExtractValidationErrors(err).TranslationKeys()
		assert.Equal(t, []string{"validation.length_between"}, keys)
	})

	t.Run("new succeeds iff valid", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{"", " ", "Alice", "Bob!", "Jean-Luc", "John "} {
			_, err := contact.NewName(raw)
			assert.Equal(t, contact.IsValidName(raw), err == nil, "raw %q", raw)
		}
	})
}

func TestName_Equality(t *testing.T) {
	t.Parallel()

	alice := contact.Must(contact.NewName("Alice Bob"))

	assert.True(t, alice.Equal(contact.Must(contact.NewName("Alice Bob"))))
	assert.True(t, alice == contact.Must(contact.NewName("Alice Bob")))
	assert.False(t, alice.Equal(contact.Must(contact.NewName("alice bob"))))
	assert.False(t, alice.Equal(contact.Must(contact.NewName("Alice  Bob"))))
	assert.False(t, alice.Equal(contact.Must(contact.NewName("Alice Bob "))))

	t.Run("hash follows equality", func(t *testing.T) {
		assert.Equal(t, alice.Hash(), contact.Must(contact.NewName("Alice Bob")).Hash())
		assert.Equal(t, alice.Hash(), alice.Hash())
		assert.NotEqual(t, alice.Hash(), contact.Must(contact.NewName("Alice Bobb")).Hash())
	})

	t.Run("fold is explicit", func(t *testing.T) {
		assert.True(t, alice.EqualFold(contact.Must(contact.NewName("ALICE bob"))))
		assert.True(t, contact.Must(contact.NewName("Ærø")).EqualFold(contact.Must(contact.NewName("ÆRØ"))))
		assert.False(t, alice.EqualFold(contact.Must(contact.NewName("Alice  Bob"))))
	})

	t.Run("usable as map key", func(t *testing.T) {
		seen := map[contact.Name]int{}
		seen[alice]++
		seen[contact.Must(contact.NewName("Alice Bob"))]++
		seen[contact.Must(contact.NewName("alice bob"))]++
		assert.Len(t, seen, 2)
		assert.Equal(t, 2, seen[alice])
	})
}
