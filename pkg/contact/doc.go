// Package contact provides validated, immutable field types for a contact
// record: Name, Phone, Email, Address, Note, Organisation, Remark and Offset.
//
// Every type is validated eagerly by its constructor. A constructed value is
// guaranteed to be valid for its whole lifetime and is never mutated. Values
// are small comparable structs, so == and map keys follow the exact stored
// string: comparison is case-sensitive and whitespace-sensitive, and the raw
// input is stored without trimming.
//
//	name, err := contact.NewName("Peter Jack")
//	if err != nil {
//		// errors.Is(err, contact.ErrInvalidFormat)
//	}
//
// # Absent values
//
// Go strings cannot be nil. Absence is represented by a nil *string or a JSON
// null and is reported as ErrNilValue, before any content validation:
//
//	phone, err := contact.FromPointer(req.Phone, contact.NewPhone)
//	if errors.Is(err, contact.ErrNilValue) {
//		// field missing
//	}
//
// ErrNilValue and ErrInvalidFormat never match each other.
//
// The zero value of Name, Phone, Email, Address and Offset was never
// constructed, so it encodes as JSON null and MarshalText fails with
// ErrNilValue. Use pointer fields for optional values. Note, Organisation and
// Remark accept the empty string and encode it as "".
//
// # Validation errors
//
// InvalidFormatError carries the rejected value and the validator rules that
// failed, each with a translation key such as "validation.person_name":
//
//	violations := validator.ExtractValidationErrors(err)
//
// # Phone numbers
//
// A phone number with a leading "+" carries a calling code detected by
// longest-prefix match:
//
//	p := contact.Must(contact.NewPhone("+358 40 123 4567"))
//	p.CountryCode() // "358"
//	p.String()      // "+358 40 123 4567 (358)"
//
// # UTC offsets
//
// Offset stores the canonical "±HH:MM" string and its signed minute value.
// Ordering is numeric while equality is by string, so "-00:00" and "+00:00"
// compare equal with Compare but are different values.
//
// # Struct tags
//
// RegisterValidations adds contact_name, contact_phone, contact_email,
// contact_address, contact_note, contact_organisation and utc_offset tags to
// a go-playground validator.
package contact
