package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-03-15")
	assert.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)
}

func TestInclusiveDays(t *testing.T) {
	t.Run("SameDay", func(t *testing.T) {
		days, err := InclusiveDays(date("2026-03-15"), date("2026-03-15"))
		assert.NoError(t, err)
		assert.Equal(t, int32(1), days)
	})

	t.Run("ConsecutiveDays", func(t *testing.T) {
		days, err := InclusiveDays(date("2026-03-15"), date("2026-03-16"))
		assert.NoError(t, err)
		assert.Equal(t, int32(2), days)
	})

	t.Run("FullWeek", func(t *testing.T) {
		days, err := InclusiveDays(date("2026-03-01"), date("2026-03-07"))
		assert.NoError(t, err)
		assert.Equal(t, int32(7), days)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		_, err := InclusiveDays(date("2026-03-16"), date("2026-03-15"))
		assert.Error(t, err)
	})

	t.Run("IgnoresTimeOfDay", func(t *testing.T) {
		start := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
		end := time.Date(2026, 3, 16, 0, 1, 0, 0, time.UTC)
		days, err := InclusiveDays(start, end)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), days)
	})
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 15000.0, Total(3, 5000))
	assert.Equal(t, 5000.0, Total(1, 5000))
}

func TestBuildQuote(t *testing.T) {
	week := 30000.0
	month := 100000.0

	t.Run("AllTiers", func(t *testing.T) {
		q, err := BuildQuote(date("2026-03-01"), date("2026-03-07"), 5000, &week, &month)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), q.Days)
		assert.Equal(t, 35000.0, q.Total)
		assert.NotNil(t, q.WeeklyEquiv)
		assert.InDelta(t, 30000, *q.WeeklyEquiv, 1e-9)
		assert.NotNil(t, q.MonthlyEquiv)
	})

	t.Run("DailyOnly", func(t *testing.T) {
		q, err := BuildQuote(date("2026-03-01"), date("2026-03-03"), 5000, nil, nil)
		assert.NoError(t, err)
		assert.Equal(t, 15000.0, q.Total)
		assert.Nil(t, q.WeeklyEquiv)
		assert.Nil(t, q.MonthlyEquiv)
	})

	t.Run("InvalidRange", func(t *testing.T) {
		_, err := BuildQuote(date("2026-03-05"), date("2026-03-01"), 5000, nil, nil)
		assert.Error(t, err)
	})
}
