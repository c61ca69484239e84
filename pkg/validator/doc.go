// Package validator provides a composable set of validation rules for contact
// fields: person names, phone numbers, e-mail addresses, free-text fields with
// length bounds, and fixed UTC offsets.
//
// The package promotes declarative validation by letting you build small Rule
// values that encapsulate a boolean Check function together with rich,
// translation-friendly error metadata. Rules are evaluated with the Apply
// helper which aggregates any failures into a ValidationErrors slice that
// satisfies the error interface, or with Valid when only a yes/no answer is
// needed.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `pattern_rules.go`, `format_rules.go`, `date_rules.go`). Every exported
// validation function simply constructs and returns a Rule instance; there is
// no hidden global state besides pre-compiled regular expressions, therefore
// the package is stateless and goroutine-safe.
//
// Core building blocks:
//   - Rule              – lightweight struct containing Check func and error meta
//   - ValidationError   – describes a single failure and supports i18n keys
//   - ValidationErrors  – slice type that implements the error interface
//
// Length rules count characters (Unicode code points), not bytes, so a
// 70-character limit means the same thing for "Alice" and "你好".
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("address", address),
//	    validator.MaxLenString("address", address, 255),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages or translate them
//	    }
//	}
//
//	ok := validator.Valid(validator.ValidPhone("phone", raw), validator.ValidPhoneDigits("phone", raw))
//
// # Error Handling
//
// ValidationErrors works with `errors.As`, so you can detect validation
// problems while preserving rich details. Individual field errors can be
// inspected with the helper methods Has, Get, GetErrors and Fields.
package validator
