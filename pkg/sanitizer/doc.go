// Package sanitizer provides small, stateless helpers for cleaning and masking
// contact input before it is validated, stored or logged.
//
// The functions are grouped into a few areas:
//
//   - Strings – trimming and whitespace normalisation for free-text input
//     coming from a terminal or a form.
//
//   - Phone – digit extraction used to count the significant digits of a phone
//     number and to find the digit run that follows a leading "+".
//
//   - Masking – renderings of phone numbers and e-mail addresses that hide
//     personal data so they can be written to logs.
//
// None of the helpers validate. Validation lives in the validator package and
// always runs on the raw value; sanitizing is an explicit, opt-in step taken by
// the caller. The Apply and Compose helpers build reusable pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeWhitespace,
//	)
//
//	name := clean("  Alice    Tan \n") // "Alice Tan"
//
// # Error handling
//
// None of the helpers returns an error. Malformed input is returned unchanged
// (or as an empty string when nothing usable is left).
//
// # Concurrency
//
// There is no package state besides pre-compiled regular expressions, so every
// helper is safe for concurrent use.
package sanitizer
