package repositories

import (
	"context"
	"net/http"

	"weather-dashboard/internal/models"
)

// HTTPClient is the outbound transport contract, satisfied by *http.Client
// and by test doubles.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HistoryRepository fetches historical daily weather for a coordinate pair
// and an inclusive date range, already reshaped into chart records.
type HistoryRepository interface {
	Name() string
	FetchHistory(ctx context.Context, req models.HistoryRequest) ([]models.ChartRecord, error)
}
