package i18n

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/contactkit/pkg/validator"
)

// FieldName translates a field identifier through "fields.<field>", falling
// back to the identifier itself.
func (t *Translator) FieldName(lang, field string) string {
	return t.Td(lang, "fields."+field, field)
}

// ValidationMessage renders one validation error in lang. Translation values
// become template parameters and the field is replaced by its translated
// name. Without a translation the error's own message is used.
func (t *Translator) ValidationMessage(lang string, ve validator.ValidationError) string {
	args := make([]string, 0, 2*len(ve.TranslationValues)+2)
	hasField := false

	for _, k := range slices.Sorted(maps.Keys(ve.TranslationValues)) {
		v := fmt.Sprint(ve.TranslationValues[k])
		if k == "field" {
			hasField = true
			v = t.FieldName(lang, v)
		}
		args = append(args, k, v)
	}
	if !hasField {
		args = append(args, "field", t.FieldName(lang, ve.Field))
	}

	return t.Td(lang, ve.TranslationKey, "%{field} "+ve.Message, args...)
}

// Localize renders every validation error carried by err, in order. Errors
// that carry no validation errors are returned as their Error text. A nil err
// yields nil.
func (t *Translator) Localize(lang string, err error) []string {
	if err == nil {
		return nil
	}

	verrs := validator.ExtractValidationErrors(err)
	if len(verrs) == 0 {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		messages = append(messages, t.ValidationMessage(lang, ve))
	}
	return messages
}
