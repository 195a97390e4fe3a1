package uszipcode

import "errors"

var (
	// ErrParamConflict is returned when query parameters that exclude each
	// other are set together, e.g. an exact zipcode and a prefix.
	ErrParamConflict = errors.New("conflicting query parameters")

	// ErrInvalidParam is returned for a single out-of-domain parameter value,
	// e.g. a latitude above 90 or a negative result count.
	ErrInvalidParam = errors.New("invalid query parameter")

	// ErrUnresolvableName is returned by the fuzzy resolver when no city or
	// state clears the similarity floor.
	ErrUnresolvableName = errors.New("unresolvable name")

	// ErrMalformedRange is returned for a numeric range without any bound or
	// with a lower bound above its upper bound.
	ErrMalformedRange = errors.New("malformed numeric range")

	// ErrEmptyZipcode is returned when an empty (not found) Zipcode takes part
	// in an ordering comparison.
	ErrEmptyZipcode = errors.New("empty zipcode does not support comparison")

	// ErrUnknownSortKey is returned when a sort key name is not one of the
	// sortable attributes.
	ErrUnknownSortKey = errors.New("unknown sort key")
)
