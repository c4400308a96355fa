package dates

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func frozen(t *testing.T, day string) {
	t.Helper()
	ts, err := time.Parse(DayLayout, day)
	if err != nil {
		t.Fatalf("bad test date %s: %v", day, err)
	}
	SetClock(clockwork.NewFakeClockAt(ts))
	t.Cleanup(func() { SetClock(nil) })
}

func TestToday(t *testing.T) {
	frozen(t, "2024-03-10")
	assert.Equal(t, "2024-03-10", Today())
}

func TestDaysAgo(t *testing.T) {
	frozen(t, "2024-03-10")
	assert.Equal(t, "2024-03-04", DaysAgo(6))
	assert.Equal(t, "2024-03-10", DaysAgo(0))
}

func TestDaysAgo_MonthRollover(t *testing.T) {
	frozen(t, "2024-03-02")
	assert.Equal(t, "2024-02-25", DaysAgo(6))
}

func TestDaysAgo_YearRollover(t *testing.T) {
	frozen(t, "2025-01-03")
	assert.Equal(t, "2024-12-28", DaysAgo(6))
}

func TestDaysAgo_LeapDay(t *testing.T) {
	frozen(t, "2024-03-01")
	assert.Equal(t, "2024-02-29", DaysAgo(1))
}

func TestIsValidRange(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"start before end", "2024-01-01", "2024-01-07", true},
		{"equal dates", "2024-01-01", "2024-01-01", true},
		{"start after end", "2024-01-08", "2024-01-07", false},
		{"across years", "2023-12-31", "2024-01-01", true},
		{"malformed start", "01/01/2024", "2024-01-07", false},
		{"malformed end", "2024-01-01", "not-a-date", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidRange(tt.start, tt.end))
		})
	}
}
