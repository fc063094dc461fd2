package domain

import "fmt"

// Statistic labels are stable identifiers; translation happens in the
// presentation layer, not here.
const (
	StatisticLowest  = "Lowest"
	StatisticHighest = "Highest"
	StatisticAverage = "Average"
)

// StatisticSummary is one derived statistic over a record list. It is
// recomputed on demand and never persisted.
type StatisticSummary struct {
	Name    string  `json:"name"`
	Summary float64 `json:"summary"`
}

// TimeWindow names a relative date-range filter applied to the history list
// before statistics are derived.
type TimeWindow string

const (
	WindowSevenDays    TimeWindow = "sevenDays"
	WindowFourteenDays TimeWindow = "fourteenDays"
	WindowThirtyDays   TimeWindow = "thirtyDays"
	WindowAllTime      TimeWindow = "allTime"
)

// ParseTimeWindow validates a window identifier. The empty string maps to
// all-time, matching the behaviour before any preference has been stored.
func ParseTimeWindow(s string) (TimeWindow, error) {
	switch TimeWindow(s) {
	case WindowSevenDays, WindowFourteenDays, WindowThirtyDays, WindowAllTime:
		return TimeWindow(s), nil
	case "":
		return WindowAllTime, nil
	}
	return "", fmt.Errorf("unknown time window %q", s)
}
