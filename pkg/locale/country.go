package locale

import (
	"strings"
)

const (
	DefaultTimezone = "UTC"
	DefaultRegion   = "US"
)

type Country struct {
	Code      string   // ISO 3166-1 alpha-2 country code (e.g., "IL", "US")
	Name      string   // Human-readable country name
	Timezones []string // IANA zones that map to this country
}

var (
	Countries = map[string]Country{
		"IL": {
			Code:      "IL",
			Name:      "Israel",
			Timezones: []string{"Asia/Jerusalem", "Israel", "Asia/Tel_Aviv"},
		},
		"US": {
			Code: "US",
			Name: "United States",
			Timezones: []string{
				"America/New_York", "America/Chicago", "America/Denver",
				"America/Los_Angeles", "America/Phoenix", "US/Eastern", "US/Pacific",
			},
		},
		"GB": {
			Code:      "GB",
			Name:      "United Kingdom",
			Timezones: []string{"Europe/London", "GB"},
		},
		"CA": {
			Code:      "CA",
			Name:      "Canada",
			Timezones: []string{"America/Toronto", "America/Vancouver", "America/Montreal"},
		},
		"DE": {
			Code:      "DE",
			Name:      "Germany",
			Timezones: []string{"Europe/Berlin"},
		},
	}
)

// RegionForTimezone maps an IANA zone to the region national phone numbers
// are read in. Unknown zones fall back to DefaultRegion.
func RegionForTimezone(tz string) string {
	tz = strings.TrimSpace(tz)
	for code, country := range Countries {
		for _, z := range country.Timezones {
			if strings.EqualFold(tz, z) {
				return code
			}
		}
	}
	return DefaultRegion
}

// RegionForAcceptLanguage picks the region subtag of the first language tag
// that names one ("he-IL,he;q=0.9" gives "IL"), or fallback.
func RegionForAcceptLanguage(header, fallback string) string {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		_, region, ok := strings.Cut(tag, "-")
		if !ok || len(region) != 2 {
			continue
		}
		region = strings.ToUpper(region)
		if _, known := Countries[region]; known {
			return region
		}
	}
	return fallback
}
