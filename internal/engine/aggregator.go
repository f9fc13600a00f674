package engine

import (
	"sort"

	"github.com/anandsingh-fin/restaurant-dashboard/internal/models"
)

// topN bounds the city and cuisine rankings.
const topN = 10

// BuildDashboard computes the three chart datasets from a filtered view.
// An empty view produces empty (non-nil) datasets, never an error.
func BuildDashboard(rows []models.Restaurant) *models.DashboardData {
	return &models.DashboardData{
		TopCities:   TopCities(rows),
		TopCuisines: TopCuisines(rows),
		Scatter:     ScatterPoints(rows),
		Total:       len(rows),
	}
}

// TopCities counts rows per city and returns the ten largest counts in
// descending order.
func TopCities(rows []models.Restaurant) []models.CountItem {
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.City
	}
	return countTop(labels, topN)
}

// TopCuisines re-explodes every row's food-type field into cuisine tokens
// and returns the ten most frequent in descending order.
func TopCuisines(rows []models.Restaurant) []models.CountItem {
	var labels []string
	for _, row := range rows {
		labels = append(labels, cuisineTokens(row.FoodType)...)
	}
	return countTop(labels, topN)
}

// ScatterPoints passes each row through as one price/rating point, no
// aggregation and no deduplication.
func ScatterPoints(rows []models.Restaurant) []models.ScatterPoint {
	points := make([]models.ScatterPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, models.ScatterPoint{
			Name:   row.Name,
			Price:  row.Price,
			Rating: row.AvgRating,
		})
	}
	return points
}

// countTop tallies label frequencies and keeps the n highest, descending
// by count. Ties keep first-encountered order: entries are collected in
// the order each label first appears and the sort is stable.
func countTop(labels []string, n int) []models.CountItem {
	counts := make(map[string]int, len(labels))
	order := make([]string, 0)
	for _, label := range labels {
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	}

	items := make([]models.CountItem, 0, len(order))
	for _, label := range order {
		items = append(items, models.CountItem{Label: label, Count: counts[label]})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}
