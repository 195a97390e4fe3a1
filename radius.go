package uszipcode

import (
	"container/heap"
	"math"
	"sort"

	"github.com/golang/geo/s2"
)

// milesPerDegree is the length of one degree of latitude in miles. A degree
// of longitude shrinks by cos(latitude).
const milesPerDegree = 69.172

// largeRadiusMiles is the radius above which a search scans enough rows to
// be slow; such searches are logged.
const largeRadiusMiles = 250

// inflationCoefficient widens the pre-filter box so no record within the
// true radius falls outside of it. Larger radii need more slack.
func inflationCoefficient(radius float64) float64 {
	switch {
	case radius <= 50:
		return 1.05
	case radius <= 100:
		return 1.10
	case radius <= 250:
		return 1.25
	case radius <= 500:
		return 1.5
	}
	return 2.0
}

// geoBox is the latitude/longitude pre-filter of a radius search. When the
// longitude span wraps the antimeridian or covers the globe, only latitude
// is constrained.
type geoBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
	AnyLng         bool
}

// radiusBox computes the inflated pre-filter box around a center point.
func radiusBox(lat, lng, radius float64) geoBox {
	coef := inflationCoefficient(radius)
	latSpan := radius * coef / milesPerDegree
	lngSpan := radius * coef / (math.Cos(lat*math.Pi/180) * milesPerDegree)

	rect := s2.RectFromCenterSize(
		s2.LatLngFromDegrees(lat, lng),
		s2.LatLngFromDegrees(2*latSpan, 2*lngSpan),
	)
	box := geoBox{
		MinLat: rect.Lo().Lat.Degrees(),
		MaxLat: rect.Hi().Lat.Degrees(),
		MinLng: rect.Lo().Lng.Degrees(),
		MaxLng: rect.Hi().Lng.Degrees(),
	}
	// A circle reaching a pole spans every longitude.
	if rect.Lng.IsFull() || rect.Lng.IsInverted() || rect.Lat.Hi >= math.Pi/2 || rect.Lat.Lo <= -math.Pi/2 {
		box.AnyLng = true
	}
	return box
}

func (b geoBox) predicates() []Predicate {
	preds := []Predicate{
		{Column: ColLat, Op: OpGte, Value: b.MinLat},
		{Column: ColLat, Op: OpLte, Value: b.MaxLat},
	}
	if !b.AnyLng {
		preds = append(preds,
			Predicate{Column: ColLng, Op: OpGte, Value: b.MinLng},
			Predicate{Column: ColLng, Op: OpLte, Value: b.MaxLng},
		)
	}
	return preds
}

type rankedZipcode struct {
	zipcode Zipcode
	dist    float64
}

// rankBefore orders by distance, nearest first unless farthest is set, and
// breaks ties by zipcode.
func rankBefore(a, b rankedZipcode, farthest bool) bool {
	if a.dist != b.dist {
		if farthest {
			return a.dist > b.dist
		}
		return a.dist < b.dist
	}
	return a.zipcode.Zipcode < b.zipcode.Zipcode
}

// worstFirst is a heap whose root is the lowest ranked record kept so far.
type worstFirst struct {
	items    []rankedZipcode
	farthest bool
}

func (h *worstFirst) Len() int { return len(h.items) }
func (h *worstFirst) Less(i, j int) bool {
	return rankBefore(h.items[j], h.items[i], h.farthest)
}
func (h *worstFirst) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *worstFirst) Push(x any)   { h.items = append(h.items, x.(rankedZipcode)) }
func (h *worstFirst) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}

// topByDistance selects the limit best ranked records, in rank order.
func topByDistance(in []rankedZipcode, limit int, farthest bool) []rankedZipcode {
	h := &worstFirst{items: make([]rankedZipcode, 0, limit), farthest: farthest}
	for _, r := range in {
		if h.Len() < limit {
			heap.Push(h, r)
			continue
		}
		if rankBefore(r, h.items[0], farthest) {
			h.items[0] = r
			heap.Fix(h, 0)
		}
	}
	out := make([]rankedZipcode, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(rankedZipcode)
	}
	return out
}

// radiusFilter drops candidates farther than radius miles from the center.
// With byDistance the survivors are ranked by distance (descending ranks the
// farthest first); otherwise they keep their input order. limit 0 keeps all.
func radiusFilter(candidates []Zipcode, lat, lng, radius float64, byDistance, descending bool, limit int) []Zipcode {
	inside := make([]rankedZipcode, 0, len(candidates))
	for _, z := range candidates {
		d, ok := z.DistFrom(lat, lng)
		if !ok || d > radius {
			continue
		}
		inside = append(inside, rankedZipcode{zipcode: z, dist: d})
	}

	if byDistance {
		if limit > 0 && limit < len(inside) {
			inside = topByDistance(inside, limit, descending)
		} else {
			sort.Slice(inside, func(i, j int) bool {
				return rankBefore(inside[i], inside[j], descending)
			})
		}
	} else if limit > 0 && len(inside) > limit {
		inside = inside[:limit]
	}

	out := make([]Zipcode, len(inside))
	for i, r := range inside {
		out[i] = r.zipcode
	}
	return out
}
