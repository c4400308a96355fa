package models

// DailySeries holds the columnar daily arrays returned by the Open-Meteo
// archive endpoint. All four slices describe the same calendar days: index i
// of each slice belongs to day Time[i].
type DailySeries struct {
	Time             []string  `json:"time"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
}

// ArchivePayload is the raw archive response. Location echo, units, and
// timezone metadata are decoded for completeness but not consumed.
type ArchivePayload struct {
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Timezone  string            `json:"timezone"`
	Units     map[string]string `json:"daily_units"`
	Daily     DailySeries       `json:"daily"`
}
