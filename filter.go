package uszipcode

import (
	"fmt"
	"strings"
)

// zipcodeWidth is the fixed width of a zipcode.
const zipcodeWidth = 5

// Range bounds a numeric attribute. A nil bound is open, but at least one
// bound must be set.
type Range struct {
	Lower *float64
	Upper *float64
}

// Between is the closed range [lower, upper].
func Between(lower, upper float64) *Range {
	return &Range{Lower: &lower, Upper: &upper}
}

// AtLeast is the range [lower, +inf).
func AtLeast(lower float64) *Range {
	return &Range{Lower: &lower}
}

// AtMost is the range (-inf, upper].
func AtMost(upper float64) *Range {
	return &Range{Upper: &upper}
}

func (r *Range) validate(name string) error {
	if r.Lower == nil && r.Upper == nil {
		return fmt.Errorf("%w: %s has neither lower nor upper bound", ErrMalformedRange, name)
	}
	if r.Lower != nil && r.Upper != nil && *r.Lower > *r.Upper {
		return fmt.Errorf("%w: %s lower bound %v above upper bound %v", ErrMalformedRange, name, *r.Lower, *r.Upper)
	}
	return nil
}

func (r *Range) predicates(col Column) []Predicate {
	var preds []Predicate
	if r.Lower != nil {
		preds = append(preds, Predicate{Column: col, Op: OpGte, Value: *r.Lower})
	}
	if r.Upper != nil {
		preds = append(preds, Predicate{Column: col, Op: OpLte, Value: *r.Upper})
	}
	return preds
}

// QueryParams holds every optional filter of a search. The zero value
// selects all records of any type, ordered by zipcode, without a limit.
type QueryParams struct {
	// At most one of Zipcode, Prefix and Pattern may be set. Zipcode is
	// zero padded to five digits. A Pattern with * or ? is a glob over the
	// whole code, otherwise it matches codes containing it.
	Zipcode string
	Prefix  string
	Pattern string

	// City and State are resolved fuzzily; State accepts codes and names.
	City  string
	State string

	// Lat, Lng and Radius (miles) must be set together.
	Lat    *float64 `validate:"omitempty,gte=-90,lte=90"`
	Lng    *float64 `validate:"omitempty,gte=-180,lte=180"`
	Radius *float64

	Population            *Range
	PopulationDensity     *Range
	LandArea              *Range
	WaterArea             *Range
	HousingUnits          *Range
	OccupiedHousingUnits  *Range
	MedianHomeValue       *Range
	MedianHouseholdIncome *Range

	ZipcodeType ZipcodeType `validate:"zipcode_type"`

	// SortBy defaults to the zipcode, or to the distance for radius queries.
	SortBy     SortKey
	Descending bool
	// Returns caps the result count; 0 returns every match.
	Returns int `validate:"gte=0"`
}

func (p QueryParams) hasRadius() bool {
	return p.Lat != nil || p.Lng != nil || p.Radius != nil
}

func (p QueryParams) ranges() []struct {
	col Column
	r   *Range
} {
	return []struct {
		col Column
		r   *Range
	}{
		{ColPopulation, p.Population},
		{ColPopulationDensity, p.PopulationDensity},
		{ColLandArea, p.LandArea},
		{ColWaterArea, p.WaterArea},
		{ColHousingUnits, p.HousingUnits},
		{ColOccupiedHousingUnits, p.OccupiedHousingUnits},
		{ColMedianHomeValue, p.MedianHomeValue},
		{ColMedianHouseholdIncome, p.MedianHouseholdIncome},
	}
}

// validateParams rejects conflicting and out-of-domain parameters. It runs
// before any storage access.
func validateParams(p QueryParams) error {
	set := 0
	for _, s := range []string{p.Zipcode, p.Prefix, p.Pattern} {
		if s != "" {
			set++
		}
	}
	if set > 1 {
		return fmt.Errorf("%w: only one of zipcode, prefix and pattern can be set", ErrParamConflict)
	}

	if p.hasRadius() && (p.Lat == nil || p.Lng == nil || p.Radius == nil) {
		return fmt.Errorf("%w: lat, lng and radius must be set together", ErrParamConflict)
	}
	if !p.SortBy.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownSortKey, p.SortBy)
	}
	if p.SortBy == SortByDistance && !p.hasRadius() {
		return fmt.Errorf("%w: sort by distance requires lat, lng and radius", ErrParamConflict)
	}

	if err := validateStruct(p); err != nil {
		return err
	}
	if p.Radius != nil && !(*p.Radius > 0) {
		return fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidParam, *p.Radius)
	}

	for _, rg := range p.ranges() {
		if rg.r == nil {
			continue
		}
		if err := rg.r.validate(string(rg.col)); err != nil {
			return err
		}
	}
	return nil
}

// radiusSpec is the exact distance cut of a radius query.
type radiusSpec struct {
	Lat, Lng, Miles float64
}

// compiledQuery is a Statement for the store plus the Go-side work that
// follows it.
type compiledQuery struct {
	stmt       Statement
	radius     *radiusSpec
	byDistance bool
	descending bool
	limit      int
}

// buildQuery turns validated params with resolved city and state into a
// compiled query. city and state are canonical values, "" for none.
func buildQuery(p QueryParams, city, state string) compiledQuery {
	var where []Predicate
	if state != "" {
		where = append(where, Predicate{Column: ColState, Op: OpEq, Value: state})
	}
	if city != "" {
		where = append(where, Predicate{Column: ColMajorCity, Op: OpEq, Value: city})
	}

	switch {
	case p.Zipcode != "":
		where = append(where, Predicate{Column: ColZipcode, Op: OpEq, Value: PadZipcode(p.Zipcode)})
	case p.Prefix != "":
		where = append(where, Predicate{Column: ColZipcode, Op: OpPrefix, Value: p.Prefix})
	case p.Pattern != "":
		where = append(where, Predicate{Column: ColZipcode, Op: OpLike, Value: patternToLike(p.Pattern)})
	}

	if p.ZipcodeType != AnyZipcodeType {
		where = append(where, Predicate{Column: ColZipcodeType, Op: OpEq, Value: string(p.ZipcodeType)})
	}

	for _, rg := range p.ranges() {
		if rg.r != nil {
			where = append(where, rg.r.predicates(rg.col)...)
		}
	}

	q := compiledQuery{descending: p.Descending, limit: p.Returns}
	sortKey := p.SortBy

	if p.hasRadius() {
		q.radius = &radiusSpec{Lat: *p.Lat, Lng: *p.Lng, Miles: *p.Radius}
		where = append(where, radiusBox(*p.Lat, *p.Lng, *p.Radius).predicates()...)
		if sortKey == SortDefault {
			sortKey = SortByDistance
		}
		q.byDistance = sortKey == SortByDistance
	} else if sortKey == SortDefault {
		sortKey = SortByZipcode
	}

	q.stmt.Where = where
	if col, ok := sortKey.Column(); ok {
		q.stmt.OrderBy = &Order{Column: col, Descending: p.Descending}
	}
	// Radius queries cut by exact distance after the store returns, so the
	// limit can only be applied afterwards.
	if q.radius == nil {
		q.stmt.Limit = p.Returns
	}
	return q
}

// PadZipcode left pads a short code with zeros to five characters.
func PadZipcode(code string) string {
	code = strings.TrimSpace(code)
	if len(code) >= zipcodeWidth {
		return code
	}
	return strings.Repeat("0", zipcodeWidth-len(code)) + code
}

// patternToLike converts a glob (* and ?) to an anchored LIKE pattern. A
// plain pattern matches anywhere in the code.
func patternToLike(pattern string) string {
	if !strings.ContainsAny(pattern, "*?") {
		return "%" + escapeLike(pattern) + "%"
	}
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteByte('%')
		case '?':
			b.WriteByte('_')
		case '%', '_', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
