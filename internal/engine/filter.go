package engine

import (
	"strings"

	"github.com/anandsingh-fin/restaurant-dashboard/internal/models"
)

// Selection is one user's filter state, rebuilt from scratch on every
// request and never stored. Empty slices mean "no constraint".
type Selection struct {
	States   []string
	Cities   []string
	Cuisines []string
	PriceMin float64
	PriceMax float64
}

// HasCategorical reports whether any of the state/city/cuisine filters
// is active.
func (s Selection) HasCategorical() bool {
	return len(s.States) > 0 || len(s.Cities) > 0 || len(s.Cuisines) > 0
}

// Filter returns the rows matching the selection, in table order.
//
// When no categorical filter is active the whole table is returned and
// the price bounds are ignored. This mirrors the dashboard's reference
// behavior and is pinned by tests; price bounds only apply once at least
// one of the state/city/cuisine filters is set.
//
// The cuisine test is substring containment against the raw food-type
// field, not an exact token match, so selecting "Chinese" also admits
// rows listing "South Chinese". Also reference behavior, kept as is.
func (t *Table) Filter(sel Selection) []models.Restaurant {
	if !sel.HasCategorical() {
		return t.Rows
	}

	states := toSet(sel.States)
	cities := toSet(sel.Cities)

	out := make([]models.Restaurant, 0)
	for _, row := range t.Rows {
		if row.Price < sel.PriceMin || row.Price > sel.PriceMax {
			continue
		}
		if len(states) > 0 && !states[row.State] {
			continue
		}
		if len(cities) > 0 && !cities[row.City] {
			continue
		}
		if len(sel.Cuisines) > 0 && !containsAny(row.FoodType, sel.Cuisines) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func containsAny(foodType string, cuisines []string) bool {
	for _, c := range cuisines {
		if strings.Contains(foodType, c) {
			return true
		}
	}
	return false
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
