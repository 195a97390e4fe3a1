package uszipcode

import (
	"fmt"
	"strings"
)

// Column names a stored column of the zipcode table.
type Column string

const (
	ColZipcode               Column = "zipcode"
	ColZipcodeType           Column = "zipcode_type"
	ColMajorCity             Column = "major_city"
	ColPostOfficeCity        Column = "post_office_city"
	ColCommonCityList        Column = "common_city_list"
	ColCounty                Column = "county"
	ColState                 Column = "state"
	ColLat                   Column = "lat"
	ColLng                   Column = "lng"
	ColTimezone              Column = "timezone"
	ColRadiusInMiles         Column = "radius_in_miles"
	ColAreaCodeList          Column = "area_code_list"
	ColPopulation            Column = "population"
	ColPopulationDensity     Column = "population_density"
	ColLandArea              Column = "land_area_in_sqmi"
	ColWaterArea             Column = "water_area_in_sqmi"
	ColHousingUnits          Column = "housing_units"
	ColOccupiedHousingUnits  Column = "occupied_housing_units"
	ColMedianHomeValue       Column = "median_home_value"
	ColMedianHouseholdIncome Column = "median_household_income"
	ColBoundsWest            Column = "bounds_west"
	ColBoundsEast            Column = "bounds_east"
	ColBoundsNorth           Column = "bounds_north"
	ColBoundsSouth           Column = "bounds_south"
)

// simpleColumns lists the columns shared by both dataset variants, in table
// order. Stores select them in this order and ToMap reports them by name.
var simpleColumns = []Column{
	ColZipcode, ColZipcodeType, ColMajorCity, ColPostOfficeCity, ColCommonCityList,
	ColCounty, ColState, ColLat, ColLng, ColTimezone, ColRadiusInMiles, ColAreaCodeList,
	ColPopulation, ColPopulationDensity, ColLandArea, ColWaterArea,
	ColHousingUnits, ColOccupiedHousingUnits, ColMedianHomeValue, ColMedianHouseholdIncome,
	ColBoundsWest, ColBoundsEast, ColBoundsNorth, ColBoundsSouth,
}

// comprehensiveColumns are the compressed JSON statistic blobs that only the
// comprehensive dataset carries. They are decoded into Zipcode.Details and
// cannot be filtered or sorted on.
var comprehensiveColumns = []string{
	"polygon",
	"population_by_year",
	"population_by_age",
	"population_by_gender",
	"population_by_race",
	"head_of_household_by_age",
	"families_vs_singles",
	"households_with_kids",
	"children_by_age",
	"housing_type",
	"year_housing_was_built",
	"housing_occupancy",
	"vacancy_reason",
	"owner_occupied_home_values",
	"rental_properties_by_number_of_rooms",
	"monthly_rent_including_utilities_studio_apt",
	"monthly_rent_including_utilities_1_b",
	"monthly_rent_including_utilities_2_b",
	"monthly_rent_including_utilities_3plus_b",
	"employment_status",
	"average_household_income_over_time",
	"household_income",
	"annual_individual_earnings",
	"sources_of_household_income____percent_of_households_receiving_income",
	"sources_of_household_income____average_income_per_household_by_income_source",
	"household_investment_income____percent_of_households_receiving_investment_income",
	"household_investment_income____average_income_per_household_by_income_source",
	"household_retirement_income____percent_of_households_receiving_retirement_incom",
	"household_retirement_income____average_income_per_household_by_income_source",
	"source_of_earnings",
	"means_of_transportation_to_work_for_workers_16_and_over",
	"travel_time_to_work_in_minutes",
	"educational_attainment_for_population_25_and_over",
	"school_enrollment_age_3_to_17",
}

// SortKey is the closed set of attributes a query result can be ordered by.
// SortByDistance is a computed pseudo-column only legal for radius queries.
type SortKey int

const (
	// SortDefault orders by zipcode, or by distance for radius queries.
	SortDefault SortKey = iota
	SortByZipcode
	SortByZipcodeType
	SortByMajorCity
	SortByCounty
	SortByState
	SortByLat
	SortByLng
	SortByRadiusInMiles
	SortByPopulation
	SortByPopulationDensity
	SortByLandArea
	SortByWaterArea
	SortByHousingUnits
	SortByOccupiedHousingUnits
	SortByMedianHomeValue
	SortByMedianHouseholdIncome
	SortByDistance
)

// distanceSortName is the name of the distance pseudo-column.
const distanceSortName = "dist"

var sortKeyColumns = map[SortKey]Column{
	SortByZipcode:               ColZipcode,
	SortByZipcodeType:           ColZipcodeType,
	SortByMajorCity:             ColMajorCity,
	SortByCounty:                ColCounty,
	SortByState:                 ColState,
	SortByLat:                   ColLat,
	SortByLng:                   ColLng,
	SortByRadiusInMiles:         ColRadiusInMiles,
	SortByPopulation:            ColPopulation,
	SortByPopulationDensity:     ColPopulationDensity,
	SortByLandArea:              ColLandArea,
	SortByWaterArea:             ColWaterArea,
	SortByHousingUnits:          ColHousingUnits,
	SortByOccupiedHousingUnits:  ColOccupiedHousingUnits,
	SortByMedianHomeValue:       ColMedianHomeValue,
	SortByMedianHouseholdIncome: ColMedianHouseholdIncome,
}

// Column returns the stored column behind k. It reports false for
// SortDefault, SortByDistance and out-of-range values.
func (k SortKey) Column() (Column, bool) {
	c, ok := sortKeyColumns[k]
	return c, ok
}

// Valid reports whether k is a member of the enumeration.
func (k SortKey) Valid() bool {
	return k >= SortDefault && k <= SortByDistance
}

func (k SortKey) String() string {
	switch k {
	case SortDefault:
		return "default"
	case SortByDistance:
		return distanceSortName
	}
	if c, ok := k.Column(); ok {
		return string(c)
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// ParseSortKey maps a column name (or "dist") to its SortKey.
func ParseSortKey(s string) (SortKey, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return SortDefault, nil
	}
	if name == distanceSortName {
		return SortByDistance, nil
	}
	for k, c := range sortKeyColumns {
		if string(c) == name {
			return k, nil
		}
	}
	return SortDefault, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// fieldValue is a nullable column value used for Go-side ordering and
// predicate evaluation.
type fieldValue struct {
	null  bool
	isStr bool
	str   string
	num   float64
}

func nullValue() fieldValue         { return fieldValue{null: true} }
func strValue(s string) fieldValue  { return fieldValue{isStr: true, str: s} }
func numValue(f float64) fieldValue { return fieldValue{num: f} }

func floatPtrValue(f *float64) fieldValue {
	if f == nil {
		return nullValue()
	}
	return numValue(*f)
}

func intPtrValue(i *int64) fieldValue {
	if i == nil {
		return nullValue()
	}
	return numValue(float64(*i))
}

// compareValues orders NULL before any value, matching SQLite's ordering.
func compareValues(a, b fieldValue) int {
	switch {
	case a.null && b.null:
		return 0
	case a.null:
		return -1
	case b.null:
		return 1
	}
	if a.isStr || b.isStr {
		return strings.Compare(a.str, b.str)
	}
	switch {
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	}
	return 0
}
