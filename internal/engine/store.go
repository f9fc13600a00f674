package engine

import "github.com/anandsingh-fin/restaurant-dashboard/internal/models"

// Table is the immutable restaurant dataset plus the option data derived
// from it at load time. It is built once by Load before the server starts
// accepting requests and is never written again, so request handlers may
// read it concurrently without locking.
type Table struct {
	Rows []models.Restaurant

	// Derived once from Rows, used only to populate selection inputs.
	States   []string // sorted distinct states
	Cuisines []string // sorted distinct cuisine tokens
	PriceMin float64
	PriceMax float64
}
