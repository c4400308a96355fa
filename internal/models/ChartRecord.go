package models

// ChartRecord is one row-oriented day of weather, reshaped from the columnar
// archive payload. Records keep the upstream ascending date order.
type ChartRecord struct {
	Date          string  `json:"date" example:"2024-01-01"`
	TempMax       float64 `json:"temp_max" example:"30.0"`
	TempMin       float64 `json:"temp_min" example:"20.0"`
	Precipitation float64 `json:"precipitation" example:"0.0"`
}
