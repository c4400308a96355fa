package http

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/dates"
	"weather-dashboard/internal/models"
)

var validate = validator.New()

// HistoryResponse echoes the effective parameters alongside the records so
// the dashboard can label its charts without re-deriving defaults.
type HistoryResponse struct {
	Latitude  float64              `json:"latitude" example:"9.0765"`
	Longitude float64              `json:"longitude" example:"7.3986"`
	StartDate string               `json:"start_date" example:"2024-03-04"`
	EndDate   string               `json:"end_date" example:"2024-03-10"`
	Records   []models.ChartRecord `json:"records"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"start date must not be after end date"`
}

// GetHistory godoc
// @Summary Load historical daily weather
// @Description Fetches daily max/min temperature and precipitation for a location and date range and returns chart-ready records
// @Tags Weather
// @Produce json
// @Param lat query number false "Latitude (-90 to 90, default from config)" minimum(-90) maximum(90) example(9.0765)
// @Param lon query number false "Longitude (-180 to 180, default from config)" minimum(-180) maximum(180) example(7.3986)
// @Param start query string false "Start date YYYY-MM-DD (default: today minus 6 days)" example(2024-03-04)
// @Param end query string false "End date YYYY-MM-DD (default: today)" example(2024-03-10)
// @Success 200 {object} HistoryResponse "Settled load with records"
// @Failure 400 {object} ErrorResponse "Invalid parameters or date range"
// @Failure 502 {object} ErrorResponse "Upstream weather API failure"
// @Router /api/v1/history [get]
func (r *routes) handleHistory(c *fiber.Ctx) error {
	lat := r.cnf.Weather.DefaultLat
	if v := c.Query("lat"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Invalid latitude format",
			})
		}
		lat = parsed
	}

	lon := r.cnf.Weather.DefaultLon
	if v := c.Query("lon"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Invalid longitude format",
			})
		}
		lon = parsed
	}

	end := c.Query("end")
	if end == "" {
		end = dates.Today()
	}
	start := c.Query("start")
	if start == "" {
		start = dates.DaysAgo(r.cnf.Weather.DefaultRangeDays)
	}

	req := models.HistoryRequest{
		Lat:       lat,
		Lon:       lon,
		StartDate: start,
		EndDate:   end,
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	// Range validation is a separate error channel from fetch errors: an
	// invalid range never reaches the fetch client.
	if !dates.IsValidRange(req.StartDate, req.EndDate) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "start date must not be after end date",
		})
	}

	settled, err := r.service.Load(c.Context(), req)
	if err != nil {
		r.l.Error(err, map[string]any{
			"params": req.RequestParams(),
		})

		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: settled.ErrorMessage,
		})
	}

	return c.JSON(HistoryResponse{
		Latitude:  req.Lat,
		Longitude: req.Lon,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Records:   settled.Records,
	})
}

// GetState godoc
// @Summary Read the current load state
// @Description Returns the controller state the dashboard renders from: records, loading flag, or error message
// @Tags Weather
// @Produce json
// @Success 200 {object} history.State
// @Router /api/v1/state [get]
func (r *routes) handleState(c *fiber.Ctx) error {
	return c.JSON(r.service.State())
}
