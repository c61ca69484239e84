package contact

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	playground "github.com/go-playground/validator/v10"
)

// Struct tags understood by RegisterValidations, mapped to their predicates.
var structTags = map[string]func(string) bool{
	"contact_name":         IsValidName,
	"contact_phone":        IsValidPhone,
	"contact_email":        IsValidEmail,
	"contact_address":      IsValidAddress,
	"contact_note":         IsValidNote,
	"contact_organisation": IsValidOrganisation,
	"utc_offset":           IsValidOffset,
}

// StructTags lists the tags registered by RegisterValidations, sorted.
func StructTags() []string {
	return slices.Sorted(maps.Keys(structTags))
}

// RegisterValidations registers the contact field tags on v. Tags apply to
// string and *string fields; a nil pointer fails unless the field is also
// tagged omitempty or omitnil.
//
//	type CreateContact struct {
//		Name  string  `validate:"required,contact_name"`
//		Phone *string `validate:"omitnil,contact_phone"`
//	}
func RegisterValidations(v *playground.Validate) error {
	for _, tag := range StructTags() {
		valid := structTags[tag]
		err := v.RegisterValidation(tag, func(fl playground.FieldLevel) bool {
			return validField(fl.Field(), valid)
		})
		if err != nil {
			return fmt.Errorf("contact: register %s: %w", tag, err)
		}
	}
	return nil
}

// NewStructValidator returns a go-playground validator with the contact tags
// registered.
func NewStructValidator() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	if err := RegisterValidations(v); err != nil {
		// Tags are static identifiers; registration only fails on programmer error.
		panic(err)
	}
	return v
}

func validField(field reflect.Value, valid func(string) bool) bool {
	for field.Kind() == reflect.Pointer {
		if field.IsNil() {
			return false
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return false
	}
	return valid(field.String())
}
