package callingcode

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/dmitrymomot/contactkit/pkg/sanitizer"
)

// MaxCodeLen is the length of the longest calling code in the table.
const MaxCodeLen = 3

var (
	index = lo.KeyBy(loadEntries(), func(e Entry) string { return e.Code })

	// Longest first, then lexicographic
	sortedCodes = func() []string {
		codes := lo.Keys(index)
		slices.SortFunc(codes, func(a, b string) int {
			if c := cmp.Compare(len(b), len(a)); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
		return codes
	}()
)

// Detect returns the calling code that prefixes digits.
//
// Prefixes of length 3, 2 and 1 are tried in that order and the first one
// present in the table wins. When none is known, the first digit is returned
// with known set to false. An empty input yields ("", false).
func Detect(digits string) (code string, known bool) {
	if digits == "" {
		return "", false
	}

	for n := min(MaxCodeLen, len(digits)); n > 0; n-- {
		if _, ok := index[digits[:n]]; ok {
			return digits[:n], true
		}
	}

	return digits[:1], false
}

// FromNumber detects the calling code of a raw phone number such as
// "+44 (0)20 7946 0958". Numbers without a leading "+" are domestic and yield
// ("", false).
func FromNumber(raw string) (code string, known bool) {
	if !strings.HasPrefix(raw, "+") {
		return "", false
	}
	return Detect(sanitizer.ExtractPhoneDigits(raw))
}

// Lookup returns the table entry of code.
func Lookup(code string) (Entry, bool) {
	e, ok := index[code]
	if !ok {
		return Entry{}, false
	}
	e.Regions = slices.Clone(e.Regions)
	return e, true
}

// Codes returns every known calling code, longest first and then in
// lexicographic order.
func Codes() []string {
	return slices.Clone(sortedCodes)
}
