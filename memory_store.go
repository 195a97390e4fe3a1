package uszipcode

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// pointExtent is the side length of the degenerate rectangle a record center
// occupies in the spatial index.
const pointExtent = 1e-9

// MemoryStore keeps records in memory and indexes their centers in an R-tree,
// so latitude/longitude range predicates only visit nearby records. It
// evaluates the remaining predicates in Go with the same semantics as
// SQLiteStore, including NULL ordering.
type MemoryStore struct {
	records []Zipcode
	byCode  map[string]int
	tree    *rtreego.Rtree
}

type indexedCenter struct {
	idx  int
	rect rtreego.Rect
}

func (c *indexedCenter) Bounds() rtreego.Rect {
	return c.rect
}

// NewMemoryStore indexes records. Records keep their given order, which is
// the order of unsorted selections.
func NewMemoryStore(records []Zipcode) (*MemoryStore, error) {
	s := &MemoryStore{
		records: make([]Zipcode, 0, len(records)),
		byCode:  make(map[string]int, len(records)),
		tree:    rtreego.NewTree(2, 25, 50),
	}
	for _, z := range records {
		if z.IsEmpty() {
			return nil, fmt.Errorf("%w: record without zipcode", ErrInvalidParam)
		}
		if _, dup := s.byCode[z.Zipcode]; dup {
			return nil, fmt.Errorf("%w: duplicate zipcode %s", ErrInvalidParam, z.Zipcode)
		}
		idx := len(s.records)
		s.records = append(s.records, z)
		s.byCode[z.Zipcode] = idx
		if !z.HasCoordinates() {
			continue
		}
		rect, err := rtreego.NewRect(rtreego.Point{*z.Lng, *z.Lat}, []float64{pointExtent, pointExtent})
		if err != nil {
			return nil, fmt.Errorf("index zipcode %s: %w", z.Zipcode, err)
		}
		s.tree.Insert(&indexedCenter{idx: idx, rect: rect})
	}
	return s, nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

// Get looks up a single record by zipcode.
func (s *MemoryStore) Get(code string) (Zipcode, error) {
	idx, ok := s.byCode[code]
	if !ok {
		return Zipcode{}, nil
	}
	return s.records[idx], nil
}

// CityStatePairs returns the distinct major city and state pairs.
func (s *MemoryStore) CityStatePairs() ([]CityState, error) {
	seen := make(map[CityState]bool)
	var out []CityState
	for _, z := range s.records {
		if z.MajorCity == "" || z.State == "" {
			continue
		}
		cs := CityState{City: z.MajorCity, State: z.State}
		if !seen[cs] {
			seen[cs] = true
			out = append(out, cs)
		}
	}
	return out, nil
}

// Select evaluates st over the in-memory records.
func (s *MemoryStore) Select(st Statement) ([]Zipcode, error) {
	candidates, err := s.candidates(st.Where)
	if err != nil {
		return nil, err
	}

	var out []Zipcode
	for _, idx := range candidates {
		z := s.records[idx]
		match := true
		for _, p := range st.Where {
			ok, err := evalPredicate(z, p)
			if err != nil {
				return nil, err
			}
			if !ok {
				match = false
				break
			}
		}
		if match {
			out = append(out, z)
		}
	}

	if st.OrderBy != nil {
		col, desc := st.OrderBy.Column, st.OrderBy.Descending
		sort.SliceStable(out, func(i, j int) bool {
			c := compareValues(out[i].value(col), out[j].value(col))
			if desc {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
			return out[i].Zipcode < out[j].Zipcode
		})
	}
	if st.Limit > 0 && len(out) > st.Limit {
		out = out[:st.Limit]
	}
	return out, nil
}

// candidates narrows the scan with the spatial index when the statement
// bounds latitude or longitude.
func (s *MemoryStore) candidates(where []Predicate) ([]int, error) {
	minLat, maxLat, minLng, maxLng := -90.0, 90.0, -180.0, 180.0
	spatial := false
	for _, p := range where {
		if p.Column != ColLat && p.Column != ColLng {
			continue
		}
		v, ok := numericArg(p.Value)
		if !ok {
			continue
		}
		switch {
		case p.Column == ColLat && p.Op == OpGte:
			minLat, spatial = max(minLat, v), true
		case p.Column == ColLat && p.Op == OpLte:
			maxLat, spatial = min(maxLat, v), true
		case p.Column == ColLng && p.Op == OpGte:
			minLng, spatial = max(minLng, v), true
		case p.Column == ColLng && p.Op == OpLte:
			maxLng, spatial = min(maxLng, v), true
		}
	}

	if !spatial {
		all := make([]int, len(s.records))
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	if minLat > maxLat || minLng > maxLng {
		return nil, nil
	}

	bb, err := rtreego.NewRect(
		rtreego.Point{minLng - pointExtent, minLat - pointExtent},
		[]float64{maxLng - minLng + 2*pointExtent, maxLat - minLat + 2*pointExtent},
	)
	if err != nil {
		return nil, fmt.Errorf("search rect: %w", err)
	}
	hits := s.tree.SearchIntersect(bb)
	idx := make([]int, 0, len(hits))
	for _, h := range hits {
		idx = append(idx, h.(*indexedCenter).idx)
	}
	sort.Ints(idx)
	return idx, nil
}

func numericArg(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func evalPredicate(z Zipcode, p Predicate) (bool, error) {
	v := z.value(p.Column)
	if v.null {
		return false, nil
	}
	switch p.Op {
	case OpPrefix, OpLike:
		arg, ok := p.Value.(string)
		if !ok {
			return false, fmt.Errorf("%w: %s needs a string argument", ErrInvalidParam, p)
		}
		if p.Op == OpPrefix {
			arg = escapeLike(arg) + "%"
		}
		return likeMatch(arg, v.str), nil
	}

	var arg fieldValue
	if str, ok := p.Value.(string); ok {
		arg = strValue(str)
	} else if n, ok := numericArg(p.Value); ok {
		arg = numValue(n)
	} else {
		return false, fmt.Errorf("%w: unsupported argument in %s", ErrInvalidParam, p)
	}

	c := compareValues(v, arg)
	switch p.Op {
	case OpEq:
		return c == 0, nil
	case OpGte:
		return c >= 0, nil
	case OpLte:
		return c <= 0, nil
	}
	return false, fmt.Errorf("%w: unknown operator %s", ErrInvalidParam, p.Op)
}
