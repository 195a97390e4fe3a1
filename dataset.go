package uszipcode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// ReadRecords decodes a JSON array of zipcode records keyed by column name,
// such as the command line search output. Short codes are zero padded.
func ReadRecords(r io.Reader) ([]Zipcode, error) {
	var records []Zipcode
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	for i, z := range records {
		if z.IsEmpty() {
			return nil, fmt.Errorf("%w: record %d has no zipcode", ErrInvalidParam, i)
		}
		records[i].Zipcode = PadZipcode(z.Zipcode)
	}
	return records, nil
}

// BuildDataset writes records to a new dataset file at path. An existing
// file is replaced only once the new one is complete.
func BuildDataset(path string, variant Variant, records []Zipcode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	tmp := path + ".build"
	if err := os.Remove(tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing stale %s: %w", tmp, err)
	}

	s, err := OpenSQLite(tmp, variant)
	if err != nil {
		return err
	}
	success := false
	defer func() {
		if !success {
			s.Close()
			os.Remove(tmp)
		}
	}()

	if err := s.CreateSchema(); err != nil {
		return err
	}
	if err := s.InsertZipcodes(records); err != nil {
		return err
	}
	if err := s.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("moving %s into place: %w", tmp, err)
	}
	success = true
	return nil
}

// KnownZipcode is a record a complete dataset must contain.
type KnownZipcode struct {
	Zipcode string
	City    string
	State   string
}

// KnownZipcodes are long-lived zipcodes of the published dataset.
var KnownZipcodes = []KnownZipcode{
	{"10001", "New York", "NY"},
	{"20500", "Washington", "DC"},
	{"60601", "Chicago", "IL"},
	{"73301", "Austin", "TX"},
	{"94301", "Palo Alto", "CA"},
	{"99546", "Adak", "AK"},
}

// MinDatasetRecords is the record count below which a published dataset is
// considered truncated.
const MinDatasetRecords = 40000

// ValidateDataset checks that the engine's dataset holds at least
// minRecords records, that every known zipcode resolves to its city and
// state, and that a radius search around each known zipcode finds it again.
func (e *SearchEngine) ValidateDataset(minRecords int, known []KnownZipcode) error {
	all, err := e.Query(QueryParams{})
	if err != nil {
		return fmt.Errorf("counting records: %w", err)
	}
	if len(all) < minRecords {
		return fmt.Errorf("record count too low: got %d, want >= %d", len(all), minRecords)
	}
	e.logger.Info("dataset.validate", "records", len(all))

	for _, k := range known {
		z, err := e.ByZipcode(k.Zipcode)
		if err != nil {
			return fmt.Errorf("zipcode %s: %w", k.Zipcode, err)
		}
		if z.IsEmpty() {
			return fmt.Errorf("zipcode %s missing", k.Zipcode)
		}
		if z.MajorCity != k.City || z.State != k.State {
			return fmt.Errorf("zipcode %s = %s, %s, want %s, %s", k.Zipcode, z.MajorCity, z.State, k.City, k.State)
		}
		if !z.HasCoordinates() {
			continue
		}
		near, err := e.Query(QueryParams{Lat: z.Lat, Lng: z.Lng, Radius: Float(1)})
		if err != nil {
			return fmt.Errorf("radius search around %s: %w", k.Zipcode, err)
		}
		if !slices.ContainsFunc(near, z.Equal) {
			return fmt.Errorf("radius search around %s misses it", k.Zipcode)
		}
	}
	e.logger.Info("dataset.validate", "known_zipcodes", len(known))
	return nil
}
