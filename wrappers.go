package uszipcode

import "errors"

type searchOptions struct {
	zipcodeType ZipcodeType
	sortBy      SortKey
	descending  bool
	returns     int
}

// SearchOption adjusts the defaults of a By* search: STANDARD zipcodes only,
// five results, and a per-search sort order.
type SearchOption func(*searchOptions)

// WithZipcodeType restricts results to one zipcode type; AnyZipcodeType
// lifts the restriction.
func WithZipcodeType(t ZipcodeType) SearchOption {
	return func(o *searchOptions) {
		o.zipcodeType = t
	}
}

// WithSortBy sets the sort attribute.
func WithSortBy(k SortKey) SearchOption {
	return func(o *searchOptions) {
		o.sortBy = k
	}
}

// WithAscending sets the sort direction.
func WithAscending(ascending bool) SearchOption {
	return func(o *searchOptions) {
		o.descending = !ascending
	}
}

// WithReturns caps the result count; 0 returns every match.
func WithReturns(n int) SearchOption {
	return func(o *searchOptions) {
		o.returns = n
	}
}

func applySearchOptions(p *QueryParams, sortBy SortKey, descending bool, opts []SearchOption) {
	o := searchOptions{
		zipcodeType: Standard,
		sortBy:      sortBy,
		descending:  descending,
		returns:     DefaultLimit,
	}
	for _, opt := range opts {
		opt(&o)
	}
	p.ZipcodeType = o.zipcodeType
	p.SortBy = o.sortBy
	p.Descending = o.descending
	p.Returns = o.returns
}

func (e *SearchEngine) search(p QueryParams, sortBy SortKey, descending bool, opts []SearchOption) ([]Zipcode, error) {
	applySearchOptions(&p, sortBy, descending, opts)
	return e.Query(p)
}

// searchByName is search for the fuzzy name searches, where a name nothing
// resembles yields no results rather than an error.
func (e *SearchEngine) searchByName(p QueryParams, opts []SearchOption) ([]Zipcode, error) {
	res, err := e.search(p, SortByZipcode, false, opts)
	if errors.Is(err, ErrUnresolvableName) {
		e.logger.Debug("query.unresolved_name", "city", p.City, "state", p.State, "err", err)
		return nil, nil
	}
	return res, err
}

// ByPrefix searches zipcodes starting with prefix.
func (e *SearchEngine) ByPrefix(prefix string, opts ...SearchOption) ([]Zipcode, error) {
	return e.search(QueryParams{Prefix: prefix}, SortByZipcode, false, opts)
}

// ByPattern searches zipcodes matching a glob (* and ?), or containing
// pattern when it has no wildcard.
func (e *SearchEngine) ByPattern(pattern string, opts ...SearchOption) ([]Zipcode, error) {
	return e.search(QueryParams{Pattern: pattern}, SortByZipcode, false, opts)
}

// ByCity searches zipcodes of a fuzzily matched city.
func (e *SearchEngine) ByCity(city string, opts ...SearchOption) ([]Zipcode, error) {
	return e.searchByName(QueryParams{City: city}, opts)
}

// ByState searches zipcodes of a state given by code or fuzzy name.
func (e *SearchEngine) ByState(state string, opts ...SearchOption) ([]Zipcode, error) {
	return e.searchByName(QueryParams{State: state}, opts)
}

// ByCityAndState searches zipcodes of a city within a state.
func (e *SearchEngine) ByCityAndState(city, state string, opts ...SearchOption) ([]Zipcode, error) {
	return e.searchByName(QueryParams{City: city, State: state}, opts)
}

// ByCoordinates searches zipcodes whose center lies within radius miles of
// (lat, lng), nearest first. A radius of 0 uses DefaultSearchRadius.
func (e *SearchEngine) ByCoordinates(lat, lng, radius float64, opts ...SearchOption) ([]Zipcode, error) {
	if radius == 0 {
		radius = DefaultSearchRadius
	}
	p := QueryParams{Lat: &lat, Lng: &lng, Radius: &radius}
	return e.search(p, SortByDistance, false, opts)
}

// The range searches below return the largest values first by default. A
// nil range matches every recorded value of the attribute.

// recorded is the range of every non-negative value. Records without a
// value for the attribute fall outside it.
func recorded(r *Range) *Range {
	if r == nil {
		return AtLeast(-1)
	}
	return r
}

func (e *SearchEngine) ByPopulation(r *Range, opts ...SearchOption) ([]Zipcode, error) {
	return e.search(QueryParams{Population: recorded(r)}, SortByPopulation, true, opts)
}

func (e *SearchEngine) ByPopulationDensity(r *Range, opts ...SearchOption) ([]Zipcode, error) {
	return e.search(QueryParams{PopulationDensity: recorded(r)}, SortByPopulationDensity, true, opts)
}

func (e *SearchEngine) ByLandArea(r *Range, opts ...SearchOption) ([]Zipcode, error) {
	return e.search(QueryParams{LandArea: recorded(r)}, SortByLandArea, true, opts)
}

func (e *SearchEngine) ByWaterArea(r *Range, opts ...SearchOption) ([]Zipcode, error) {
	return e.search(QueryParams{WaterArea: recorded(r)}, SortByWaterArea, true, opts)
}

func (e *SearchEngine) ByHousingUnits(r *Range, opts ...SearchOption) ([]Zipcode, error) {
	return e.search(QueryParams{HousingUnits: recorded(r)}, SortByHousingUnits, true, opts)
}

func (e *SearchEngine) ByOccupiedHousingUnits(r *Range, opts ...SearchOption) ([]Zipcode, error) {
	return e.search(QueryParams{OccupiedHousingUnits: recorded(r)}, SortByOccupiedHousingUnits, true, opts)
}

func (e *SearchEngine) ByMedianHomeValue(r *Range, opts ...SearchOption) ([]Zipcode, error) {
	return e.search(QueryParams{MedianHomeValue: recorded(r)}, SortByMedianHomeValue, true, opts)
}

func (e *SearchEngine) ByMedianHouseholdIncome(r *Range, opts ...SearchOption) ([]Zipcode, error) {
	return e.search(QueryParams{MedianHouseholdIncome: recorded(r)}, SortByMedianHouseholdIncome, true, opts)
}
