package uszipcode

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// Variant selects one of the two dataset files.
type Variant int

const (
	// SimpleDataset carries the flat attribute columns only.
	SimpleDataset Variant = iota
	// ComprehensiveDataset adds the demographic statistic blobs.
	ComprehensiveDataset
)

func (v Variant) table() string {
	if v == ComprehensiveDataset {
		return "comprehensive_zipcode"
	}
	return "simple_zipcode"
}

func (v Variant) String() string {
	if v == ComprehensiveDataset {
		return "comprehensive"
	}
	return "simple"
}

// SQLiteStore reads zipcode records from a SQLite database file.
type SQLiteStore struct {
	db      *sql.DB
	variant Variant
	columns []string
	path    string
}

// OpenSQLite opens the dataset database at path. The store keeps one
// connection for its whole lifetime.
func OpenSQLite(path string, variant Variant) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return newSQLiteStore(db, path, variant), nil
}

// OpenSQLiteMemory opens an empty in-memory database. Call CreateSchema and
// InsertZipcodes to fill it.
func OpenSQLiteMemory(variant Variant) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open memory db: %w", err)
	}
	return newSQLiteStore(db, ":memory:", variant), nil
}

func newSQLiteStore(db *sql.DB, path string, variant Variant) *SQLiteStore {
	// A second pooled connection to ":memory:" would see a different database.
	db.SetMaxOpenConns(1)
	cols := make([]string, 0, len(simpleColumns)+len(comprehensiveColumns))
	for _, c := range simpleColumns {
		cols = append(cols, string(c))
	}
	if variant == ComprehensiveDataset {
		cols = append(cols, comprehensiveColumns...)
	}
	return &SQLiteStore{db: db, variant: variant, columns: cols, path: path}
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateSchema creates the zipcode table of the store's variant and its
// indexes if they do not exist yet.
func (s *SQLiteStore) CreateSchema() error {
	table := s.variant.table()
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", table)
	for i, c := range s.columns {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "\t%s %s", c, columnType(c))
	}
	b.WriteString("\n)")
	if _, err := s.db.Exec(b.String()); err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}

	indexed := []Column{
		ColZipcodeType, ColMajorCity, ColState, ColLat, ColLng,
		ColPopulation, ColPopulationDensity, ColLandArea, ColWaterArea,
		ColHousingUnits, ColOccupiedHousingUnits, ColMedianHomeValue, ColMedianHouseholdIncome,
	}
	for _, c := range indexed {
		stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s(%s)", table, c, table, c)
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("create index on %s: %w", c, err)
		}
	}
	return nil
}

func columnType(c string) string {
	switch Column(c) {
	case ColZipcode:
		return "TEXT PRIMARY KEY NOT NULL"
	case ColZipcodeType, ColMajorCity, ColPostOfficeCity, ColCounty, ColState, ColTimezone:
		return "TEXT"
	case ColPopulation, ColHousingUnits, ColOccupiedHousingUnits, ColMedianHomeValue, ColMedianHouseholdIncome:
		return "INTEGER"
	case ColLat, ColLng, ColRadiusInMiles, ColPopulationDensity, ColLandArea, ColWaterArea,
		ColBoundsWest, ColBoundsEast, ColBoundsNorth, ColBoundsSouth:
		return "REAL"
	}
	return "BLOB"
}

// InsertZipcodes writes records in a single transaction, replacing rows with
// the same zipcode.
func (s *SQLiteStore) InsertZipcodes(records []Zipcode) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(s.columns)), ",")
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		s.variant.table(), strings.Join(s.columns, ", "), placeholders))
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, z := range records {
		args, err := s.rowArgs(z)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		if _, err := stmt.Exec(args...); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert zipcode %s: %w", z.Zipcode, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) rowArgs(z Zipcode) ([]any, error) {
	args := make([]any, 0, len(s.columns))
	for _, c := range simpleColumns {
		switch c {
		case ColCommonCityList, ColAreaCodeList:
			list := z.CommonCityList
			if c == ColAreaCodeList {
				list = z.AreaCodeList
			}
			b, err := encodeStringList(list)
			if err != nil {
				return nil, err
			}
			args = append(args, blobArg(b))
		default:
			args = append(args, z.mapValue(c))
		}
	}
	if s.variant == ComprehensiveDataset {
		for _, name := range comprehensiveColumns {
			v, ok := z.Details[name]
			if !ok || v == nil {
				args = append(args, nil)
				continue
			}
			b, err := encodeBlob(v)
			if err != nil {
				return nil, err
			}
			args = append(args, b)
		}
	}
	return args, nil
}

// blobArg binds an empty blob as NULL.
func blobArg(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}

// Select runs st against the zipcode table.
func (s *SQLiteStore) Select(st Statement) ([]Zipcode, error) {
	query, args := s.buildSelect(st)
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("select zipcodes: %w", err)
	}
	defer rows.Close()

	var out []Zipcode
	for rows.Next() {
		z, err := s.scanZipcode(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select zipcodes: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) buildSelect(st Statement) (string, []any) {
	var conditions []string
	var args []any
	for _, p := range st.Where {
		switch p.Op {
		case OpEq:
			conditions = append(conditions, string(p.Column)+" = ?")
			args = append(args, p.Value)
		case OpGte:
			conditions = append(conditions, string(p.Column)+" >= ?")
			args = append(args, p.Value)
		case OpLte:
			conditions = append(conditions, string(p.Column)+" <= ?")
			args = append(args, p.Value)
		case OpPrefix:
			conditions = append(conditions, string(p.Column)+` LIKE ? ESCAPE '\'`)
			args = append(args, escapeLike(fmt.Sprint(p.Value))+"%")
		case OpLike:
			conditions = append(conditions, string(p.Column)+` LIKE ? ESCAPE '\'`)
			args = append(args, p.Value)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(s.columns, ", "), s.variant.table())
	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}
	if st.OrderBy != nil {
		dir := "ASC"
		if st.OrderBy.Descending {
			dir = "DESC"
		}
		fmt.Fprintf(&b, " ORDER BY %s %s", st.OrderBy.Column, dir)
		if st.OrderBy.Column != ColZipcode {
			b.WriteString(", zipcode ASC")
		}
	}
	if st.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, st.Limit)
	}
	return b.String(), args
}

// escapeLike escapes LIKE wildcards so value matches literally.
func escapeLike(value string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return r.Replace(value)
}

// Get looks up a single record by zipcode.
func (s *SQLiteStore) Get(code string) (Zipcode, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE zipcode = ?", strings.Join(s.columns, ", "), s.variant.table())
	rows, err := s.db.Query(query, code)
	if err != nil {
		return Zipcode{}, fmt.Errorf("get zipcode %s: %w", code, err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return Zipcode{}, fmt.Errorf("get zipcode %s: %w", code, err)
		}
		return Zipcode{}, nil
	}
	return s.scanZipcode(rows)
}

// CityStatePairs returns the distinct major city and state pairs.
func (s *SQLiteStore) CityStatePairs() ([]CityState, error) {
	rows, err := s.db.Query(fmt.Sprintf(
		"SELECT DISTINCT major_city, state FROM %s WHERE major_city IS NOT NULL AND major_city != '' AND state IS NOT NULL AND state != ''",
		s.variant.table()))
	if err != nil {
		return nil, fmt.Errorf("select city state pairs: %w", err)
	}
	defer rows.Close()

	var out []CityState
	for rows.Next() {
		var cs CityState
		if err := rows.Scan(&cs.City, &cs.State); err != nil {
			return nil, fmt.Errorf("scan city state pair: %w", err)
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *SQLiteStore) scanZipcode(row rowScanner) (Zipcode, error) {
	var (
		code, ztype, majorCity, poCity, county, state, timezone sql.NullString
		lat, lng, radius, density, land, water                  sql.NullFloat64
		west, east, north, south                                sql.NullFloat64
		population, housing, occupied, homeValue, income        sql.NullInt64
		commonCities, areaCodes                                 []byte
	)
	dest := []any{
		&code, &ztype, &majorCity, &poCity, &commonCities,
		&county, &state, &lat, &lng, &timezone, &radius, &areaCodes,
		&population, &density, &land, &water,
		&housing, &occupied, &homeValue, &income,
		&west, &east, &north, &south,
	}
	blobs := make([][]byte, len(comprehensiveColumns))
	if s.variant == ComprehensiveDataset {
		for i := range blobs {
			dest = append(dest, &blobs[i])
		}
	}
	if err := row.Scan(dest...); err != nil {
		return Zipcode{}, fmt.Errorf("scan zipcode: %w", err)
	}
	if !code.Valid {
		return Zipcode{}, errors.New("scan zipcode: null zipcode in stored row")
	}

	z := Zipcode{
		Zipcode:               code.String,
		ZipcodeType:           ZipcodeType(ztype.String),
		MajorCity:             majorCity.String,
		PostOfficeCity:        poCity.String,
		County:                county.String,
		State:                 state.String,
		Lat:                   nullFloat(lat),
		Lng:                   nullFloat(lng),
		Timezone:              timezone.String,
		RadiusInMiles:         nullFloat(radius),
		Population:            nullInt(population),
		PopulationDensity:     nullFloat(density),
		LandAreaInSqmi:        nullFloat(land),
		WaterAreaInSqmi:       nullFloat(water),
		HousingUnits:          nullInt(housing),
		OccupiedHousingUnits:  nullInt(occupied),
		MedianHomeValue:       nullInt(homeValue),
		MedianHouseholdIncome: nullInt(income),
		BoundsWest:            nullFloat(west),
		BoundsEast:            nullFloat(east),
		BoundsNorth:           nullFloat(north),
		BoundsSouth:           nullFloat(south),
	}
	var err error
	if z.CommonCityList, err = decodeStringList(commonCities); err != nil {
		return Zipcode{}, fmt.Errorf("zipcode %s common_city_list: %w", z.Zipcode, err)
	}
	if z.AreaCodeList, err = decodeStringList(areaCodes); err != nil {
		return Zipcode{}, fmt.Errorf("zipcode %s area_code_list: %w", z.Zipcode, err)
	}
	if s.variant == ComprehensiveDataset {
		z.Details = make(map[string]any, len(blobs))
		for i, b := range blobs {
			var v any
			if err := decodeBlob(b, &v); err != nil {
				return Zipcode{}, fmt.Errorf("zipcode %s %s: %w", z.Zipcode, comprehensiveColumns[i], err)
			}
			z.Details[comprehensiveColumns[i]] = v
		}
	}
	return z, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nullInt(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}
