package uszipcode

import (
	"fmt"
	"strings"
)

// Store is the tabular storage the search engine reads from. A Store is owned
// by a single engine and is not safe for concurrent use.
type Store interface {
	// Select returns the records matching every predicate of st, ordered
	// and limited as st requests.
	Select(st Statement) ([]Zipcode, error)
	// Get looks a record up by its five digit code. A miss returns the
	// empty Zipcode and a nil error.
	Get(code string) (Zipcode, error)
	// CityStatePairs returns every distinct (major city, state) pair.
	CityStatePairs() ([]CityState, error)
	Close() error
}

// CityState is one distinct (major city, state) combination of the dataset.
type CityState struct {
	City  string
	State string
}

// Op is a predicate operator.
type Op int

const (
	OpEq Op = iota
	OpGte
	OpLte
	// OpPrefix matches string columns starting with Value.
	OpPrefix
	// OpLike matches string columns against a SQL LIKE pattern.
	OpLike
)

func (o Op) String() string {
	switch o {
	case OpEq:
		return "="
	case OpGte:
		return ">="
	case OpLte:
		return "<="
	case OpPrefix:
		return "PREFIX"
	case OpLike:
		return "LIKE"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Predicate compares one column with a value. Value is a string for string
// columns and a float64 for numeric columns.
type Predicate struct {
	Column Column
	Op     Op
	Value  any
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s %s %v", p.Column, p.Op, p.Value)
}

// Order is a stored-column ordering.
type Order struct {
	Column     Column
	Descending bool
}

// Statement is a compiled selection: the AND of its predicates, an optional
// ordering and a row limit where 0 means all rows.
type Statement struct {
	Where   []Predicate
	OrderBy *Order
	Limit   int
}

func (st Statement) String() string {
	var b strings.Builder
	b.WriteString("SELECT")
	for i, p := range st.Where {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(p.String())
	}
	if st.OrderBy != nil {
		fmt.Fprintf(&b, " ORDER BY %s", st.OrderBy.Column)
		if st.OrderBy.Descending {
			b.WriteString(" DESC")
		}
	}
	if st.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", st.Limit)
	}
	return b.String()
}

// likeMatch evaluates a LIKE pattern (% and _ wildcards, \ escape) the way
// SQLite does for ASCII text, ignoring case.
func likeMatch(pattern, s string) bool {
	p := []rune(strings.ToLower(pattern))
	r := []rune(strings.ToLower(s))
	return likeMatchRunes(p, r)
}

func likeMatchRunes(p, s []rune) bool {
	for len(p) > 0 {
		switch p[0] {
		case '%':
			for len(p) > 0 && p[0] == '%' {
				p = p[1:]
			}
			if len(p) == 0 {
				return true
			}
			for i := 0; i <= len(s); i++ {
				if likeMatchRunes(p, s[i:]) {
					return true
				}
			}
			return false
		case '_':
			if len(s) == 0 {
				return false
			}
			p, s = p[1:], s[1:]
		default:
			c := p[0]
			if c == '\\' && len(p) > 1 {
				p = p[1:]
				c = p[0]
			}
			if len(s) == 0 || s[0] != c {
				return false
			}
			p, s = p[1:], s[1:]
		}
	}
	return len(s) == 0
}
