package ratesync

import (
	"time"

	"github.com/SscSPs/networth_backend/internal/core/domain"
)

// Window is the result of planning a single year.
type Window struct {
	Year              int
	EarliestOpenMonth time.Month
	HasOpenMonth      bool
}

// PlanWindow finds the earliest reachable month of year that still lacks a finalized
// rate for at least one foreign currency. Months after today's month are not
// reachable and end the scan. Without an open month the window starts in January.
func PlanWindow(year int, today time.Time, foreign []string, home string, snapshot RateSnapshot) Window {
	w := Window{Year: year, EarliestOpenMonth: time.January}
	todayYear, todayMonth, _ := today.Date()

	for month := time.January; month <= time.December; month++ {
		if year > todayYear || (year == todayYear && month > todayMonth) {
			break
		}
		if !monthClosed(year, month, foreign, home, snapshot) {
			w.EarliestOpenMonth = month
			w.HasOpenMonth = true
			break
		}
	}
	return w
}

// SkipYear reports whether no request is needed: every reachable month is finalized
// and the year lies strictly before today's year. The current year is always fetched.
func (w Window) SkipYear(today time.Time) bool {
	return !w.HasOpenMonth && w.Year < today.Year()
}

// StartDate is the first day of the window.
func (w Window) StartDate() time.Time {
	return time.Date(w.Year, w.EarliestOpenMonth, 1, 0, 0, 0, 0, time.UTC)
}

// EndDate is December 31 of the window's year. The provider clamps future dates.
func (w Window) EndDate() time.Time {
	return LastDayOf(w.Year, time.December)
}

func monthClosed(year int, month time.Month, foreign []string, home string, snapshot RateSnapshot) bool {
	for _, cur := range foreign {
		key := domain.RateKey{Year: year, Month: month, FromCurrency: cur, ToCurrency: home}
		if !IsFinalized(snapshot.Get(key), year, month) {
			return false
		}
	}
	return true
}
