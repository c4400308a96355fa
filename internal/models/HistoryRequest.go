package models

import "fmt"

// HistoryRequest carries the parameters of one history load. Coordinates are
// structurally parameters, never constants of the fetch client.
type HistoryRequest struct {
	Lat       float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon       float64 `json:"lon" validate:"gte=-180,lte=180"`
	StartDate string  `json:"start_date" validate:"required"`
	EndDate   string  `json:"end_date" validate:"required"`
}

func (r HistoryRequest) RequestParams() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f start: %s end: %s", r.Lat, r.Lon, r.StartDate, r.EndDate)
}
