// Package callingcode detects the international calling code of a phone number.
//
// The table of ITU-T E.164 country calling codes comes from the metadata of
// github.com/nyaruka/phonenumbers. Only geographic codes are kept; global
// services such as +800 are not. The table is indexed once at package
// initialisation and is never modified, so every function is safe for
// concurrent use without coordination.
//
// # Detection
//
// Detect performs a longest-prefix match over a run of digits. Three-digit
// codes are tried before two-digit codes, and two-digit codes before the
// single-digit ones, so "358401234567" resolves to Finland ("358") rather than
// to "35" or "3":
//
//	code, known := callingcode.Detect("358401234567") // "358", true
//	code, known = callingcode.Detect("14155552671")   // "1", true
//
// When no table entry matches, Detect still returns a code: the first digit of
// the run, reported with known set to false. Callers that only need a display
// value can ignore the flag.
//
// FromNumber works on a raw phone string. It requires a leading "+" and
// ignores spaces, hyphens and parentheses:
//
//	code, _ := callingcode.FromNumber("+65 (0) 9876 5432") // "65"
//
// # Lookup
//
// Lookup returns the table entry of a code, including the ISO 3166-1 regions
// that share it. Codes lists every known code, longest first.
package callingcode
