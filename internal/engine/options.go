package engine

import "sort"

// CitiesFor returns the sorted distinct cities among rows whose state is
// selected. With no states selected it returns an empty list: the city
// dropdown cascades from the state dropdown and offers nothing until a
// state is chosen.
//
// Only the state selection is consulted — the city options are a one-way
// dependency and ignore the city/cuisine/price filters.
func (t *Table) CitiesFor(states []string) []string {
	cities := make([]string, 0)
	if len(states) == 0 {
		return cities
	}

	selected := toSet(states)
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		if selected[row.State] && !seen[row.City] {
			seen[row.City] = true
			cities = append(cities, row.City)
		}
	}
	sort.Strings(cities)
	return cities
}
