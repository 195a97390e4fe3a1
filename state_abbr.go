package uszipcode

import (
	"sort"
	"strings"
	"sync"
)

// StateAbbrShortToLong maps US state and territory abbreviations to full names.
var StateAbbrShortToLong = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"FL": "Florida", "GA": "Georgia", "HI": "Hawaii", "ID": "Idaho",
	"IL": "Illinois", "IN": "Indiana", "IA": "Iowa", "KS": "Kansas",
	"KY": "Kentucky", "LA": "Louisiana", "ME": "Maine", "MD": "Maryland",
	"MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota", "MS": "Mississippi",
	"MO": "Missouri", "MT": "Montana", "NE": "Nebraska", "NV": "Nevada",
	"NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico", "NY": "New York",
	"NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio", "OK": "Oklahoma",
	"OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island", "SC": "South Carolina",
	"SD": "South Dakota", "TN": "Tennessee", "TX": "Texas", "UT": "Utah",
	"VT": "Vermont", "VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming",
	// Territories
	"AS": "American Samoa", "DC": "District of Columbia",
	"FM": "Federated States of Micronesia", "GU": "Guam",
	"MH": "Marshall Islands", "MP": "Northern Mariana Islands",
	"PW": "Palau", "PR": "Puerto Rico", "VI": "Virgin Islands",
	// Armed Forces
	"AA": "Armed Forces Americas", "AE": "Armed Forces Europe", "AP": "Armed Forces Pacific",
}

// StateAbbrLongToShort is the inverse of StateAbbrShortToLong.
var StateAbbrLongToShort = func() map[string]string {
	m := make(map[string]string, len(StateAbbrShortToLong))
	for short, long := range StateAbbrShortToLong {
		m[long] = short
	}
	return m
}()

// sortedStateNames returns the full state names sorted alphabetically.
// The fuzzy resolver scores against this list, so the order decides ties.
var sortedStateNames = sync.OnceValue(func() []string {
	names := make([]string, 0, len(StateAbbrLongToShort))
	for long := range StateAbbrLongToShort {
		names = append(names, long)
	}
	sort.Strings(names)
	return names
})

// IsStateAbbr reports whether s is a known two letter code, ignoring case.
func IsStateAbbr(s string) bool {
	_, ok := StateAbbrShortToLong[strings.ToUpper(strings.TrimSpace(s))]
	return ok
}

// StateLongName returns the full name for a state code, or "" if unknown.
func StateLongName(short string) string {
	return StateAbbrShortToLong[strings.ToUpper(short)]
}

// StateShortName returns the code for an exact (case-insensitive) full name,
// or "" if unknown.
func StateShortName(long string) string {
	for name, short := range StateAbbrLongToShort {
		if strings.EqualFold(name, strings.TrimSpace(long)) {
			return short
		}
	}
	return ""
}
