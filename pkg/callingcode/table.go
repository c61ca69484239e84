package callingcode

import (
	"slices"
	"strconv"

	"github.com/nyaruka/phonenumbers"
	"github.com/samber/lo"
)

// nonGeographicRegion is the region libphonenumber assigns to global
// services such as +800 and +882.
const nonGeographicRegion = "001"

// Entry is one row of the calling-code table.
type Entry struct {
	// Code is the calling code without the leading "+".
	Code string
	// Regions lists the ISO 3166-1 alpha-2 regions served by the code. The
	// first region is the primary one.
	Regions []string
}

// loadEntries reads the geographic calling codes from the libphonenumber
// metadata. Non-geographic services are left out.
func loadEntries() []Entry {
	entries := make([]Entry, 0, len(phonenumbers.GetSupportedCallingCodes()))
	for cc := range phonenumbers.GetSupportedCallingCodes() {
		regions := lo.Without(phonenumbers.GetRegionCodesForCountryCode(cc), nonGeographicRegion, phonenumbers.UNKNOWN_REGION)
		if len(regions) == 0 {
			continue
		}
		entries = append(entries, Entry{Code: strconv.Itoa(cc), Regions: slices.Clone(regions)})
	}
	return entries
}
