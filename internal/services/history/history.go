package history

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/observability"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/pkg/logger"
)

// State is the tri-state view the presentation layer renders from. At most
// one of Records and ErrorMessage is populated; Loading excludes both.
type State struct {
	Records      []models.ChartRecord `json:"records,omitempty"`
	Loading      bool                 `json:"loading"`
	ErrorMessage string               `json:"error_message,omitempty"`
}

// HistoryService is the data-state controller. It owns one State record and
// exposes a single mutation entry point, Load. Overlapping loads are resolved
// by a generation counter: only the most recently issued load may commit its
// result, so a stale response can never overwrite a newer one.
type HistoryService struct {
	repo repositories.HistoryRepository
	l    *logger.Logger
	m    *observability.Metrics

	mu         sync.Mutex
	generation uint64
	state      State
}

func NewHistoryService(repo repositories.HistoryRepository, l *logger.Logger, m *observability.Metrics) *HistoryService {
	return &HistoryService{
		repo: repo,
		l:    l,
		m:    m,
	}
}

// Load clears any previous data and error, marks the state as loading, and
// fetches the requested range. The returned State is the settled result of
// this call: on success it carries the records, on failure the mapped error
// message, and Loading is always false. The shared state is updated only if
// no newer load was issued in the meantime.
func (s *HistoryService) Load(ctx context.Context, req models.HistoryRequest) (State, error) {
	gen := s.begin()

	s.l.Info("starting history load", map[string]any{
		"params":     req.RequestParams(),
		"generation": gen,
	})

	s.m.LoadsInFlight.Inc()
	start := time.Now()
	records, err := s.repo.FetchHistory(ctx, req)
	s.m.FetchDuration.Observe(time.Since(start).Seconds())
	s.m.LoadsInFlight.Dec()

	var settled State
	if err != nil {
		settled = State{ErrorMessage: err.Error()}
		s.m.LoadsTotal.WithLabelValues("error").Inc()
	} else {
		if records == nil {
			records = []models.ChartRecord{}
		}
		settled = State{Records: records}
		s.m.LoadsTotal.WithLabelValues("success").Inc()
	}

	if !s.commit(gen, settled) {
		s.m.StaleDropped.Inc()
		s.l.Warning("dropping superseded load result", map[string]any{
			"generation": gen,
		})
	}

	if err != nil {
		return settled, errors.Wrap(err, "history load failed")
	}

	s.l.Info("completed history load", map[string]any{
		"generation": gen,
		"days":       len(settled.Records),
	})

	return settled, nil
}

// State returns the current shared state.
func (s *HistoryService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// begin resets the shared state for a new load and returns its generation.
func (s *HistoryService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = State{Loading: true}
	return s.generation
}

// commit stores the settled state iff gen is still the latest load.
func (s *HistoryService) commit(gen uint64, settled State) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.state = settled
	return true
}
