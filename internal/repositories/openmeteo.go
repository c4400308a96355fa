package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/logger"
)

const (
	OpenMeteoArchiveURL = "https://archive-api.open-meteo.com/v1/archive"

	dailyFields = "temperature_2m_max,temperature_2m_min,precipitation_sum"
)

// ErrSeriesMismatch is returned when the daily arrays in an archive payload
// do not all have the same length. Index i must describe the same calendar
// day in every series, so a mismatch makes the whole payload unusable.
var ErrSeriesMismatch = errors.New("daily series lengths do not match")

type OpenMeteoRepository struct {
	baseURL    string
	httpClient HTTPClient
	l          *logger.Logger
}

// NewOpenMeteoRepository builds an archive client. An empty baseURL selects
// the public endpoint.
func NewOpenMeteoRepository(baseURL string, l *logger.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	if baseURL == "" {
		baseURL = OpenMeteoArchiveURL
	}
	return &OpenMeteoRepository{
		baseURL:    baseURL,
		httpClient: httpClient,
		l:          l,
	}
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo-archive"
}

// openMeteoError is the body shape Open-Meteo uses for failed requests.
type openMeteoError struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// FetchHistory performs a single GET against the archive endpoint and returns
// the reshaped daily records. Every failure mode is mapped to a descriptive
// error: API-reported failures carry the upstream reason, other non-success
// statuses carry the status line, and transport or decode failures carry the
// underlying cause.
func (o *OpenMeteoRepository) FetchHistory(ctx context.Context, hreq models.HistoryRequest) ([]models.ChartRecord, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(hreq.Lat, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(hreq.Lon, 'f', -1, 64))
	values.Set("daily", dailyFields)
	values.Set("timezone", "auto")
	values.Set("start_date", hreq.StartDate)
	values.Set("end_date", hreq.EndDate)

	requestURL := o.baseURL + "?" + values.Encode()

	o.l.Info("making archive API request", map[string]any{
		"params": hreq.RequestParams(),
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	o.l.Info("received archive API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr openMeteoError
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Reason != "" {
			return nil, fmt.Errorf("API Error: %s", apiErr.Reason)
		}
		return nil, fmt.Errorf("failed to fetch weather data: %s", resp.Status)
	}

	var payload models.ArchivePayload
	if err = json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	records, err := TransformDaily(payload.Daily)
	if err != nil {
		return nil, err
	}

	o.l.Info("parsed archive API response", map[string]any{
		"days": len(records),
	})

	return records, nil
}

// TransformDaily reshapes the columnar daily series into one record per day,
// pairing same-index values. The four series must have equal lengths; a
// mismatch is a decoding error, never a silent truncation.
func TransformDaily(daily models.DailySeries) ([]models.ChartRecord, error) {
	n := len(daily.Time)
	if len(daily.Temperature2mMax) != n || len(daily.Temperature2mMin) != n || len(daily.PrecipitationSum) != n {
		return nil, fmt.Errorf("%w: time=%d max=%d min=%d precipitation=%d",
			ErrSeriesMismatch, n, len(daily.Temperature2mMax), len(daily.Temperature2mMin), len(daily.PrecipitationSum))
	}

	records := make([]models.ChartRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, models.ChartRecord{
			Date:          daily.Time[i],
			TempMax:       daily.Temperature2mMax[i],
			TempMin:       daily.Temperature2mMin[i],
			Precipitation: daily.PrecipitationSum[i],
		})
	}

	return records, nil
}
