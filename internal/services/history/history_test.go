package history_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/observability"
	"weather-dashboard/internal/services/history"
	"weather-dashboard/pkg/logger"
)

// mockRepository implements repositories.HistoryRepository with per-call
// behavior, so tests can script overlapping loads.
type mockRepository struct {
	mu    sync.Mutex
	calls int
	fetch func(call int, ctx context.Context, req models.HistoryRequest) ([]models.ChartRecord, error)
}

func (m *mockRepository) Name() string { return "mock" }

func (m *mockRepository) FetchHistory(ctx context.Context, req models.HistoryRequest) ([]models.ChartRecord, error) {
	m.mu.Lock()
	m.calls++
	call := m.calls
	m.mu.Unlock()
	return m.fetch(call, ctx, req)
}

func newService(repo *mockRepository) *history.HistoryService {
	l := logger.NewZapLogger("test-app", io.Discard)
	return history.NewHistoryService(repo, l, observability.NewMetricsForTesting())
}

func testRequest() models.HistoryRequest {
	return models.HistoryRequest{Lat: 9.0765, Lon: 7.3986, StartDate: "2024-01-01", EndDate: "2024-01-07"}
}

func TestHistoryService_Load_Success(t *testing.T) {
	records := []models.ChartRecord{
		{Date: "2024-01-01", TempMax: 30, TempMin: 20, Precipitation: 0},
		{Date: "2024-01-02", TempMax: 31, TempMin: 19, Precipitation: 5},
	}
	repo := &mockRepository{fetch: func(int, context.Context, models.HistoryRequest) ([]models.ChartRecord, error) {
		return records, nil
	}}

	svc := newService(repo)

	settled, err := svc.Load(context.Background(), testRequest())
	require.NoError(t, err)

	assert.False(t, settled.Loading)
	assert.Equal(t, records, settled.Records)
	assert.Empty(t, settled.ErrorMessage)

	// Shared state matches the settled result.
	assert.Equal(t, settled, svc.State())
}

func TestHistoryService_Load_Failure(t *testing.T) {
	repo := &mockRepository{fetch: func(int, context.Context, models.HistoryRequest) ([]models.ChartRecord, error) {
		return nil, errors.New("API Error: bad coordinates")
	}}

	svc := newService(repo)

	settled, err := svc.Load(context.Background(), testRequest())
	require.Error(t, err)

	assert.False(t, settled.Loading)
	assert.Nil(t, settled.Records)
	assert.Equal(t, "API Error: bad coordinates", settled.ErrorMessage)
	assert.Equal(t, settled, svc.State())
}

// After any load settles, loading is false and exactly one of records/error
// is populated.
func TestHistoryService_Load_SettledInvariant(t *testing.T) {
	cases := []struct {
		name    string
		records []models.ChartRecord
		err     error
	}{
		{"success", []models.ChartRecord{{Date: "2024-01-01"}}, nil},
		{"empty success", []models.ChartRecord{}, nil},
		{"failure", nil, errors.New("failed to fetch weather data: 500 Internal Server Error")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockRepository{fetch: func(int, context.Context, models.HistoryRequest) ([]models.ChartRecord, error) {
				return tc.records, tc.err
			}}
			svc := newService(repo)

			_, _ = svc.Load(context.Background(), testRequest())

			st := svc.State()
			assert.False(t, st.Loading)

			hasData := st.Records != nil
			hasError := st.ErrorMessage != ""
			assert.True(t, hasData != hasError, "exactly one of records/error must be populated, got records=%v error=%q", st.Records, st.ErrorMessage)
		})
	}
}

func TestHistoryService_Load_Idempotent(t *testing.T) {
	records := []models.ChartRecord{{Date: "2024-01-01", TempMax: 30, TempMin: 20}}
	repo := &mockRepository{fetch: func(int, context.Context, models.HistoryRequest) ([]models.ChartRecord, error) {
		return records, nil
	}}

	svc := newService(repo)

	first, err := svc.Load(context.Background(), testRequest())
	require.NoError(t, err)
	second, err := svc.Load(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, first.Records, second.Records)
	assert.Equal(t, 2, repo.calls)
}

// A load that settles after a newer load was issued must not overwrite the
// newer result, regardless of settle order.
func TestHistoryService_Load_StaleResultDropped(t *testing.T) {
	staleStarted := make(chan struct{})
	release := make(chan struct{})

	slow := []models.ChartRecord{{Date: "2024-01-01", TempMax: 10}}
	fast := []models.ChartRecord{{Date: "2024-01-01", TempMax: 99}}

	repo := &mockRepository{fetch: func(call int, ctx context.Context, req models.HistoryRequest) ([]models.ChartRecord, error) {
		if call == 1 {
			close(staleStarted)
			<-release
			return slow, nil
		}
		return fast, nil
	}}

	svc := newService(repo)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = svc.Load(context.Background(), testRequest())
	}()

	select {
	case <-staleStarted:
	case <-time.After(time.Second):
		t.Fatal("first load never reached the repository")
	}

	// Second load supersedes the first while it is still in flight.
	settled, err := svc.Load(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, fast, settled.Records)

	// Let the stale load settle; its result must be dropped.
	close(release)
	wg.Wait()

	assert.Equal(t, fast, svc.State().Records)
}

func TestHistoryService_Load_LoadingVisibleWhileInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	repo := &mockRepository{fetch: func(int, context.Context, models.HistoryRequest) ([]models.ChartRecord, error) {
		close(started)
		<-release
		return []models.ChartRecord{}, nil
	}}

	svc := newService(repo)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = svc.Load(context.Background(), testRequest())
	}()

	<-started
	st := svc.State()
	assert.True(t, st.Loading)
	assert.Nil(t, st.Records)
	assert.Empty(t, st.ErrorMessage)

	close(release)
	wg.Wait()
	assert.False(t, svc.State().Loading)
}
