package models

// Restaurant is one validated listing row from the source CSV.
type Restaurant struct {
	Name      string  `json:"name"`
	State     string  `json:"state"`
	City      string  `json:"city"`
	Price     float64 `json:"price"`
	AvgRating float64 `json:"avg_rating"`
	FoodType  string  `json:"food_type"` // raw comma-joined cuisine list, e.g. "Pizza, Burger"
}

// DashboardData carries the three chart datasets for one filtered view.
type DashboardData struct {
	TopCities   []CountItem    `json:"top_cities"`
	TopCuisines []CountItem    `json:"top_cuisines"`
	Scatter     []ScatterPoint `json:"scatter"`
	Total       int            `json:"total"`
}

// CountItem is a labelled count for bar/pie charts.
type CountItem struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ScatterPoint is one price/rating point, one per restaurant.
type ScatterPoint struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
}

// FilterOptions populates the dashboard's selection inputs.
type FilterOptions struct {
	States   []string   `json:"states"`
	Cuisines []string   `json:"cuisines"`
	Price    PriceRange `json:"price"`
}

// PriceRange is the inclusive price span of the loaded dataset.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
