package engine

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/anandsingh-fin/restaurant-dashboard/internal/models"
)

// ErrDataUnavailable marks a dataset that cannot be read at all. Startup
// must abort on it; there is no retry path.
var ErrDataUnavailable = errors.New("dataset unavailable")

// Column headers expected in the source CSV, matched case-insensitively
// after normalization. Extra columns are ignored.
const (
	colName     = "restaurant"
	colState    = "state"
	colCity     = "city"
	colPrice    = "price"
	colRating   = "avg_ratings"
	colFoodType = "food_type"
)

// Load reads the restaurant CSV at path into an immutable Table.
//
// Rows with a non-numeric price or rating, or an empty state, city, or
// food type, are dropped silently; only the aggregate counts are logged.
// A missing or unreadable file returns ErrDataUnavailable.
func Load(path string) (*Table, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading header: %v", ErrDataUnavailable, path, err)
	}

	idx, err := mapColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, path, err)
	}

	var rows []models.Restaurant
	dropped := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			dropped++
			continue
		}
		row, ok := parseRow(rec, idx)
		if !ok {
			dropped++
			continue
		}
		rows = append(rows, row)
	}

	table := &Table{Rows: rows}
	deriveOptions(table)

	slog.Info("dataset loaded",
		"path", path,
		"rows", len(rows),
		"dropped", dropped,
		"took", time.Since(start),
	)
	return table, nil
}

// columnIndex maps each required column to its position in the header.
type columnIndex struct {
	name, state, city, price, rating, foodType int
}

func mapColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[normalizeHeader(h)] = i
	}
	idx := columnIndex{}
	for _, col := range []struct {
		key  string
		dest *int
	}{
		{colName, &idx.name},
		{colState, &idx.state},
		{colCity, &idx.city},
		{colPrice, &idx.price},
		{colRating, &idx.rating},
		{colFoodType, &idx.foodType},
	} {
		i, ok := pos[col.key]
		if !ok {
			return idx, fmt.Errorf("missing column %q", col.key)
		}
		*col.dest = i
	}
	return idx, nil
}

// normalizeHeader converts "Avg ratings" → "avg_ratings".
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

// parseRow validates one CSV record. ok is false when the row must be
// excluded from the table.
func parseRow(rec []string, idx columnIndex) (models.Restaurant, bool) {
	max := idx.name
	for _, i := range []int{idx.state, idx.city, idx.price, idx.rating, idx.foodType} {
		if i > max {
			max = i
		}
	}
	if len(rec) <= max {
		return models.Restaurant{}, false
	}

	state := strings.TrimSpace(rec[idx.state])
	city := strings.TrimSpace(rec[idx.city])
	foodType := strings.TrimSpace(rec[idx.foodType])
	if state == "" || city == "" || foodType == "" {
		return models.Restaurant{}, false
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(rec[idx.price]), 64)
	if err != nil || price < 0 {
		return models.Restaurant{}, false
	}
	rating, err := strconv.ParseFloat(strings.TrimSpace(rec[idx.rating]), 64)
	if err != nil {
		return models.Restaurant{}, false
	}

	return models.Restaurant{
		Name:      strings.TrimSpace(rec[idx.name]),
		State:     state,
		City:      city,
		Price:     price,
		AvgRating: rating,
		FoodType:  foodType,
	}, true
}

// deriveOptions fills the Table's selection-input data: sorted distinct
// states, the exploded cuisine vocabulary, and the price bounds.
func deriveOptions(t *Table) {
	stateSeen := make(map[string]bool)
	cuisineSeen := make(map[string]bool)
	t.States = make([]string, 0)
	t.Cuisines = make([]string, 0)

	for i, row := range t.Rows {
		if !stateSeen[row.State] {
			stateSeen[row.State] = true
			t.States = append(t.States, row.State)
		}
		for _, c := range cuisineTokens(row.FoodType) {
			if !cuisineSeen[c] {
				cuisineSeen[c] = true
				t.Cuisines = append(t.Cuisines, c)
			}
		}
		if i == 0 || row.Price < t.PriceMin {
			t.PriceMin = row.Price
		}
		if i == 0 || row.Price > t.PriceMax {
			t.PriceMax = row.Price
		}
	}
	sort.Strings(t.States)
	sort.Strings(t.Cuisines)
}

// cuisineTokens explodes a raw food-type field ("Pizza, Burger") into
// trimmed cuisine names, skipping empty tokens.
func cuisineTokens(foodType string) []string {
	parts := strings.Split(foodType, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
