package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/anandsingh-fin/restaurant-dashboard/internal/engine"
	"github.com/anandsingh-fin/restaurant-dashboard/internal/models"
)

// Handler serves the dashboard API from the immutable dataset table.
// Every endpoint is a pure function of the table and the request's query
// parameters; no per-session state exists anywhere.
type Handler struct {
	table *engine.Table
}

func NewHandler(table *engine.Table) *Handler {
	return &Handler{table: table}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/filters", h.GetFilterOptions)
	api.GET("/cities", h.GetCities)
	api.GET("/dashboard", h.GetDashboard)
	e.GET("/healthz", h.Healthz)
}

// GetFilterOptions returns the selectable states, the cuisine vocabulary,
// and the dataset's price bounds for the initial dropdown/slider setup.
func (h *Handler) GetFilterOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, models.FilterOptions{
		States:   h.table.States,
		Cuisines: h.table.Cuisines,
		Price: models.PriceRange{
			Min: h.table.PriceMin,
			Max: h.table.PriceMax,
		},
	})
}

// GetCities returns the city options for the selected states (repeated
// "state" params). No states selected yields an empty array.
func (h *Handler) GetCities(c echo.Context) error {
	states := c.QueryParams()["state"]
	return c.JSON(http.StatusOK, h.table.CitiesFor(states))
}

// GetDashboard recomputes all three chart datasets for the current filter
// selection. Multi-select filters arrive as repeated "state", "city", and
// "cuisine" params; price bounds default to the dataset's own span when
// absent or unparseable.
func (h *Handler) GetDashboard(c echo.Context) error {
	sel := h.selectionFromQuery(c)
	rows := h.table.Filter(sel)
	return c.JSON(http.StatusOK, engine.BuildDashboard(rows))
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
		"rows":   len(h.table.Rows),
	})
}

func (h *Handler) selectionFromQuery(c echo.Context) engine.Selection {
	q := c.QueryParams()
	sel := engine.Selection{
		States:   q["state"],
		Cities:   q["city"],
		Cuisines: q["cuisine"],
		PriceMin: h.table.PriceMin,
		PriceMax: h.table.PriceMax,
	}
	if v, err := strconv.ParseFloat(c.QueryParam("min_price"), 64); err == nil {
		sel.PriceMin = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("max_price"), 64); err == nil {
		sel.PriceMax = v
	}
	return sel
}
