package uszipcode

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// nameCorpus holds the city and state names the fuzzy resolver scores
// against. State keys are upper case codes.
type nameCorpus struct {
	cities        []string
	stateToCities map[string][]string
	cityToStates  map[string][]string
}

func buildCorpus(pairs []CityState) *nameCorpus {
	stateCities := make(map[string]map[string]bool)
	cityStates := make(map[string]map[string]bool)
	for _, p := range pairs {
		state := strings.ToUpper(p.State)
		if stateCities[state] == nil {
			stateCities[state] = make(map[string]bool)
		}
		stateCities[state][p.City] = true
		if cityStates[p.City] == nil {
			cityStates[p.City] = make(map[string]bool)
		}
		cityStates[p.City][state] = true
	}

	c := &nameCorpus{
		stateToCities: make(map[string][]string, len(stateCities)),
		cityToStates:  make(map[string][]string, len(cityStates)),
	}
	for state, set := range stateCities {
		c.stateToCities[state] = sortedKeys(set)
	}
	for city, set := range cityStates {
		c.cityToStates[city] = sortedKeys(set)
		c.cities = append(c.cities, city)
	}
	sort.Strings(c.cities)
	return c
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// names returns the corpus, scanning the store on first use. The corpus
// lives until Close.
func (e *SearchEngine) names() (*nameCorpus, error) {
	if e.corpus != nil {
		return e.corpus, nil
	}
	pairs, err := e.store.CityStatePairs()
	if err != nil {
		return nil, fmt.Errorf("load name corpus: %w", err)
	}
	e.corpus = buildCorpus(pairs)
	e.logger.Debug("corpus.built", "city_count", len(e.corpus.cities), "state_count", len(e.corpus.stateToCities))
	return e.corpus, nil
}

// CityList returns every distinct major city name, sorted.
func (e *SearchEngine) CityList() ([]string, error) {
	c, err := e.names()
	if err != nil {
		return nil, err
	}
	return slices.Clone(c.cities), nil
}

// StateList returns every full state name the resolver knows, sorted.
func (e *SearchEngine) StateList() []string {
	return slices.Clone(sortedStateNames())
}

// StateToCities returns the sorted major cities of a state code.
func (e *SearchEngine) StateToCities(state string) ([]string, error) {
	c, err := e.names()
	if err != nil {
		return nil, err
	}
	return slices.Clone(c.stateToCities[strings.ToUpper(strings.TrimSpace(state))]), nil
}

// CityToStates returns the sorted state codes having a major city of that
// exact name.
func (e *SearchEngine) CityToStates(city string) ([]string, error) {
	c, err := e.names()
	if err != nil {
		return nil, err
	}
	return slices.Clone(c.cityToStates[city]), nil
}

// FindState resolves free text to state codes. A two letter code is taken
// as is. Otherwise names are matched fuzzily: bestMatch returns the single
// best state, else every close candidate. No candidate above the similarity
// floor is ErrUnresolvableName.
func (e *SearchEngine) FindState(state string, bestMatch bool) ([]string, error) {
	if IsStateAbbr(state) {
		return []string{strings.ToUpper(strings.TrimSpace(state))}, nil
	}
	var out []string
	for _, long := range resolveName(state, sortedStateNames(), bestMatch, e.cfg.MinSimilarity) {
		out = append(out, StateAbbrLongToShort[long])
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: state %q", ErrUnresolvableName, state)
	}
	return out, nil
}

// FindCity resolves free text to major city names, optionally among the
// cities of one state (itself resolved with FindState).
func (e *SearchEngine) FindCity(city, state string, bestMatch bool) ([]string, error) {
	c, err := e.names()
	if err != nil {
		return nil, err
	}
	pool := c.cities
	if state != "" {
		short, err := e.FindState(state, true)
		if err != nil {
			return nil, err
		}
		pool = c.stateToCities[short[0]]
	}
	out := resolveName(city, pool, bestMatch, e.cfg.MinSimilarity)
	if len(out) == 0 {
		if state != "" {
			return nil, fmt.Errorf("%w: city %q in state %q", ErrUnresolvableName, city, state)
		}
		return nil, fmt.Errorf("%w: city %q", ErrUnresolvableName, city)
	}
	return out, nil
}

// resolveCityState maps the free text city and state filters of a query to
// stored values. Empty inputs resolve to "".
func (e *SearchEngine) resolveCityState(city, state string) (string, string, error) {
	city, state = strings.TrimSpace(city), strings.TrimSpace(state)
	var resolvedState, resolvedCity string
	if state != "" {
		states, err := e.FindState(state, true)
		if err != nil {
			return "", "", err
		}
		resolvedState = states[0]
	}
	if city != "" {
		cities, err := e.FindCity(city, resolvedState, true)
		if err != nil {
			return "", "", err
		}
		resolvedCity = cities[0]
	}
	return resolvedCity, resolvedState, nil
}
