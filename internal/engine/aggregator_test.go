package engine

import (
	"fmt"
	"testing"

	"github.com/anandsingh-fin/restaurant-dashboard/internal/models"
)

func TestBuildDashboardEndToEnd(t *testing.T) {
	table := testTable()

	rows := table.Filter(Selection{
		States:   []string{"Maharashtra"},
		PriceMin: 0,
		PriceMax: 1000,
	})
	data := BuildDashboard(rows)

	if data.Total != 2 {
		t.Fatalf("expected total 2, got %d", data.Total)
	}

	// Cities: Pune and Mumbai tie at 1, first-encountered order wins.
	if len(data.TopCities) != 2 {
		t.Fatalf("expected 2 city entries, got %d", len(data.TopCities))
	}
	if data.TopCities[0].Label != "Pune" || data.TopCities[1].Label != "Mumbai" {
		t.Errorf("city tie-break order wrong: %+v", data.TopCities)
	}

	// Cuisines: Pizza, Burger, Biryani all count 1, encounter order.
	wantCuisines := []string{"Pizza", "Burger", "Biryani"}
	if len(data.TopCuisines) != 3 {
		t.Fatalf("expected 3 cuisine entries, got %+v", data.TopCuisines)
	}
	for i, want := range wantCuisines {
		if data.TopCuisines[i].Label != want || data.TopCuisines[i].Count != 1 {
			t.Errorf("cuisine %d: got %+v, want {%s 1}", i, data.TopCuisines[i], want)
		}
	}

	// Scatter: one point per row, pass-through.
	if len(data.Scatter) != 2 {
		t.Fatalf("expected 2 scatter points, got %d", len(data.Scatter))
	}
	if data.Scatter[0].Name != "A" || data.Scatter[0].Price != 300 || data.Scatter[0].Rating != 4.2 {
		t.Errorf("scatter point 0 wrong: %+v", data.Scatter[0])
	}
}

func TestTopCitiesBoundAndOrder(t *testing.T) {
	// 15 cities, city-i appears i+1 times.
	var rows []models.Restaurant
	for i := 0; i < 15; i++ {
		for n := 0; n <= i; n++ {
			rows = append(rows, models.Restaurant{
				Name: "r", State: "S", City: fmt.Sprintf("city-%02d", i),
				Price: 100, AvgRating: 4, FoodType: "F",
			})
		}
	}

	got := TopCities(rows)
	if len(got) != 10 {
		t.Fatalf("expected top list capped at 10, got %d", len(got))
	}
	if got[0].Label != "city-14" || got[0].Count != 15 {
		t.Errorf("top entry wrong: %+v", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Count > got[i-1].Count {
			t.Errorf("counts not descending at %d: %+v", i, got)
		}
	}
	// Smallest surviving count is 6 (cities 0..4 fall off).
	if got[9].Count != 6 {
		t.Errorf("expected cutoff count 6, got %+v", got[9])
	}
}

func TestTopCuisinesExplodesTokens(t *testing.T) {
	rows := []models.Restaurant{
		{Name: "1", FoodType: "Pizza, Burger"},
		{Name: "2", FoodType: "Pizza,Chinese"},
		{Name: "3", FoodType: " Pizza "},
	}

	got := TopCuisines(rows)
	if len(got) != 3 {
		t.Fatalf("expected 3 cuisine entries, got %+v", got)
	}
	if got[0].Label != "Pizza" || got[0].Count != 3 {
		t.Errorf("expected Pizza x3 first, got %+v", got[0])
	}
	// Burger and Chinese tie at 1; Burger was seen first.
	if got[1].Label != "Burger" || got[2].Label != "Chinese" {
		t.Errorf("tie-break order wrong: %+v", got)
	}
}

func TestAggregateEmptyView(t *testing.T) {
	data := BuildDashboard(nil)

	if data.Total != 0 {
		t.Errorf("expected total 0, got %d", data.Total)
	}
	if data.TopCities == nil || len(data.TopCities) != 0 {
		t.Errorf("expected empty (non-nil) top cities, got %#v", data.TopCities)
	}
	if data.TopCuisines == nil || len(data.TopCuisines) != 0 {
		t.Errorf("expected empty (non-nil) top cuisines, got %#v", data.TopCuisines)
	}
	if data.Scatter == nil || len(data.Scatter) != 0 {
		t.Errorf("expected empty (non-nil) scatter, got %#v", data.Scatter)
	}
}
