package uszipcode

import (
	"encoding/json"
	"fmt"
	"strings"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/umahmood/haversine"
)

// ZipcodeType classifies a zipcode by the kind of delivery it serves.
type ZipcodeType string

const (
	// AnyZipcodeType lifts the zipcode type restriction of a query.
	AnyZipcodeType ZipcodeType = ""
	Standard       ZipcodeType = "STANDARD"
	POBox          ZipcodeType = "PO BOX"
	Unique         ZipcodeType = "UNIQUE"
	Military       ZipcodeType = "MILITARY"
)

// ParseZipcodeType accepts the stored type names case-insensitively.
// "any" and "" map to AnyZipcodeType.
func ParseZipcodeType(s string) (ZipcodeType, error) {
	switch t := ZipcodeType(strings.ToUpper(strings.TrimSpace(s))); t {
	case AnyZipcodeType, "ANY":
		return AnyZipcodeType, nil
	case Standard, POBox, Unique, Military:
		return t, nil
	case "POBOX", "PO_BOX":
		return POBox, nil
	}
	return AnyZipcodeType, fmt.Errorf("%w: zipcode type %q", ErrInvalidParam, s)
}

// Zipcode is a single zipcode record. Both dataset variants share this type:
// the comprehensive variant fills Details with its decoded statistic blobs.
//
// The zero value is the not-found marker returned by ByZipcode; check it with
// IsEmpty. Numeric attributes are nil when the dataset has no value.
type Zipcode struct {
	Zipcode               string      `json:"zipcode"`
	ZipcodeType           ZipcodeType `json:"zipcode_type"`
	MajorCity             string      `json:"major_city"`
	PostOfficeCity        string      `json:"post_office_city"`
	CommonCityList        []string    `json:"common_city_list"`
	County                string      `json:"county"`
	State                 string      `json:"state"`
	Lat                   *float64    `json:"lat"`
	Lng                   *float64    `json:"lng"`
	Timezone              string      `json:"timezone"`
	RadiusInMiles         *float64    `json:"radius_in_miles"`
	AreaCodeList          []string    `json:"area_code_list"`
	Population            *int64      `json:"population"`
	PopulationDensity     *float64    `json:"population_density"`
	LandAreaInSqmi        *float64    `json:"land_area_in_sqmi"`
	WaterAreaInSqmi       *float64    `json:"water_area_in_sqmi"`
	HousingUnits          *int64      `json:"housing_units"`
	OccupiedHousingUnits  *int64      `json:"occupied_housing_units"`
	MedianHomeValue       *int64      `json:"median_home_value"`
	MedianHouseholdIncome *int64      `json:"median_household_income"`
	BoundsWest            *float64    `json:"bounds_west"`
	BoundsEast            *float64    `json:"bounds_east"`
	BoundsNorth           *float64    `json:"bounds_north"`
	BoundsSouth           *float64    `json:"bounds_south"`

	Details map[string]any `json:"details,omitempty"`
}

// Float returns a pointer to v, for optional query and record fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int64) *int64 { return &v }

// IsEmpty reports whether z is the not-found marker.
func (z Zipcode) IsEmpty() bool {
	return z.Zipcode == ""
}

// Compare orders two records by zipcode. Empty records cannot be ordered.
func (z Zipcode) Compare(other Zipcode) (int, error) {
	if z.IsEmpty() || other.IsEmpty() {
		return 0, ErrEmptyZipcode
	}
	return strings.Compare(z.Zipcode, other.Zipcode), nil
}

// Equal reports whether both records carry the same zipcode.
func (z Zipcode) Equal(other Zipcode) bool {
	return z.Zipcode == other.Zipcode
}

// City is an alias of MajorCity.
func (z Zipcode) City() string {
	return z.MajorCity
}

// StateAbbr returns the two letter state code in upper case.
func (z Zipcode) StateAbbr() string {
	return strings.ToUpper(z.State)
}

// StateLong returns the full state name, or "" for unknown codes.
func (z Zipcode) StateLong() string {
	return StateLongName(z.State)
}

// Bounds is the bounding box of a zipcode's area.
type Bounds struct {
	West  *float64 `json:"west"`
	East  *float64 `json:"east"`
	North *float64 `json:"north"`
	South *float64 `json:"south"`
}

func (z Zipcode) Bounds() Bounds {
	return Bounds{West: z.BoundsWest, East: z.BoundsEast, North: z.BoundsNorth, South: z.BoundsSouth}
}

// HasCoordinates reports whether the record has a center point.
func (z Zipcode) HasCoordinates() bool {
	return z.Lat != nil && z.Lng != nil
}

// DistFrom returns the great-circle distance in miles between the record's
// center and the given point. ok is false when the record has no center.
func (z Zipcode) DistFrom(lat, lng float64) (miles float64, ok bool) {
	if !z.HasCoordinates() {
		return 0, false
	}
	mi, _ := haversine.Distance(
		haversine.Coord{Lat: *z.Lat, Lon: *z.Lng},
		haversine.Coord{Lat: lat, Lon: lng},
	)
	return mi, true
}

// Geohash encodes the record's center, or returns "" without coordinates.
func (z Zipcode) Geohash() string {
	if !z.HasCoordinates() {
		return ""
	}
	return geohash.Encode(*z.Lat, *z.Lng)
}

// ToMap returns the record as a column name to value mapping. Null columns
// map to nil and comprehensive statistics are merged in under their names.
func (z Zipcode) ToMap() map[string]any {
	m := make(map[string]any, len(simpleColumns)+len(z.Details))
	for _, c := range simpleColumns {
		m[string(c)] = z.mapValue(c)
	}
	for k, v := range z.Details {
		m[k] = v
	}
	return m
}

func (z Zipcode) mapValue(c Column) any {
	switch c {
	case ColZipcodeType:
		return string(z.ZipcodeType)
	case ColCommonCityList:
		return listValue(z.CommonCityList)
	case ColAreaCodeList:
		return listValue(z.AreaCodeList)
	}
	v := z.value(c)
	switch {
	case v.null:
		return nil
	case v.isStr:
		return v.str
	}
	switch c {
	case ColPopulation, ColHousingUnits, ColOccupiedHousingUnits, ColMedianHomeValue, ColMedianHouseholdIncome:
		return int64(v.num)
	}
	return v.num
}

func listValue(list []string) any {
	if list == nil {
		return nil
	}
	return list
}

// ToJSON renders the record as an indented JSON document.
func (z Zipcode) ToJSON() (string, error) {
	b, err := json.MarshalIndent(z, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode zipcode %s: %w", z.Zipcode, err)
	}
	return string(b), nil
}

func (z Zipcode) String() string {
	if z.IsEmpty() {
		return "Zipcode(empty)"
	}
	return fmt.Sprintf("Zipcode(%s, %s, %s, %s)", z.Zipcode, z.ZipcodeType, z.MajorCity, z.State)
}

// value returns a sortable or filterable column of the record.
func (z Zipcode) value(c Column) fieldValue {
	switch c {
	case ColZipcode:
		return strValue(z.Zipcode)
	case ColZipcodeType:
		return strValue(string(z.ZipcodeType))
	case ColMajorCity:
		return strValue(z.MajorCity)
	case ColPostOfficeCity:
		return strValue(z.PostOfficeCity)
	case ColCounty:
		return strValue(z.County)
	case ColState:
		return strValue(z.State)
	case ColTimezone:
		return strValue(z.Timezone)
	case ColLat:
		return floatPtrValue(z.Lat)
	case ColLng:
		return floatPtrValue(z.Lng)
	case ColRadiusInMiles:
		return floatPtrValue(z.RadiusInMiles)
	case ColPopulation:
		return intPtrValue(z.Population)
	case ColPopulationDensity:
		return floatPtrValue(z.PopulationDensity)
	case ColLandArea:
		return floatPtrValue(z.LandAreaInSqmi)
	case ColWaterArea:
		return floatPtrValue(z.WaterAreaInSqmi)
	case ColHousingUnits:
		return intPtrValue(z.HousingUnits)
	case ColOccupiedHousingUnits:
		return intPtrValue(z.OccupiedHousingUnits)
	case ColMedianHomeValue:
		return intPtrValue(z.MedianHomeValue)
	case ColMedianHouseholdIncome:
		return intPtrValue(z.MedianHouseholdIncome)
	case ColBoundsWest:
		return floatPtrValue(z.BoundsWest)
	case ColBoundsEast:
		return floatPtrValue(z.BoundsEast)
	case ColBoundsNorth:
		return floatPtrValue(z.BoundsNorth)
	case ColBoundsSouth:
		return floatPtrValue(z.BoundsSouth)
	}
	return nullValue()
}
