// Package pricing computes reservation durations and totals.
package pricing

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Quote is the cost breakdown returned before a reservation is
// committed. Total is authoritative (inclusive days times the daily
// rate); the weekly/monthly equivalents are informational and only set
// when the equipment carries those tiers.
type Quote struct {
	Days           int32    `json:"days"`
	PricePerDay    float64  `json:"price_per_day"`
	Total          float64  `json:"total"`
	WeeklyEquiv    *float64 `json:"weekly_equivalent,omitempty"`
	MonthlyEquiv   *float64 `json:"monthly_equivalent,omitempty"`
}

// ParseDate parses a yyyy-mm-dd formatted string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", s)
	}
	return t, nil
}

// InclusiveDays counts the days between start and end, including both
// endpoints: same day is 1 day, consecutive days are 2.
func InclusiveDays(start, end time.Time) (int32, error) {
	start = truncate(start)
	end = truncate(end)
	if end.Before(start) {
		return 0, fmt.Errorf("end date must be on or after start date")
	}
	return int32(end.Sub(start).Hours()/24) + 1, nil
}

// Total is the authoritative reservation price: inclusive days times
// the daily rate.
func Total(days int32, pricePerDay float64) float64 {
	return float64(days) * pricePerDay
}

// BuildQuote assembles the breakdown for a date range against the
// given tiers.
func BuildQuote(start, end time.Time, perDay float64, perWeek, perMonth *float64) (*Quote, error) {
	days, err := InclusiveDays(start, end)
	if err != nil {
		return nil, err
	}
	q := &Quote{
		Days:        days,
		PricePerDay: perDay,
		Total:       Total(days, perDay),
	}
	if perWeek != nil {
		w := float64(days) / 7 * *perWeek
		q.WeeklyEquiv = &w
	}
	if perMonth != nil {
		m := float64(days) / 30 * *perMonth
		q.MonthlyEquiv = &m
	}
	return q, nil
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
