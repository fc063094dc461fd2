package services

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/SscSPs/currency_converter_app/internal/utils"
)

// StatisticsService derives lowest/highest/average summaries over a record
// list and implements the time-window selection. Everything here is pure.
//
// The window filters intentionally reproduce the arithmetic of the original
// converter: the day and month parts of the DD/MM/YYYY creation date are
// compared as plain numbers, and a month difference of exactly one uses
// (30 - dayInterval) as the day-distance threshold. That is an approximation
// of calendar wraparound, not real calendar arithmetic; it is kept for
// compatibility with persisted histories.
type StatisticsService struct{}

// NewStatisticsService creates a new StatisticsService.
func NewStatisticsService() *StatisticsService {
	return &StatisticsService{}
}

// Lowest returns the minimum computed rate, or 0 for an empty list.
func (s *StatisticsService) Lowest(records []domain.ConversionRecord) float64 {
	rates := sortedRates(records)
	if len(rates) == 0 {
		return 0
	}
	return rates[0]
}

// Highest returns the maximum computed rate, or 0 for an empty list.
func (s *StatisticsService) Highest(records []domain.ConversionRecord) float64 {
	rates := sortedRates(records)
	if len(rates) == 0 {
		return 0
	}
	return rates[len(rates)-1]
}

// Average returns the mean computed rate rounded to 5 decimal places, or 0
// for an empty list.
func (s *StatisticsService) Average(records []domain.ConversionRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.PureExchangeRate
	}
	return utils.RoundTo(sum/float64(len(records)), 5)
}

// Summaries derives the Lowest/Highest/Average triple for a record list.
func (s *StatisticsService) Summaries(records []domain.ConversionRecord) []domain.StatisticSummary {
	return []domain.StatisticSummary{
		{Name: domain.StatisticLowest, Summary: s.Lowest(records)},
		{Name: domain.StatisticHighest, Summary: s.Highest(records)},
		{Name: domain.StatisticAverage, Summary: s.Average(records)},
	}
}

// WindowByDays selects records whose creation date lies within dayInterval
// days of ref. When the record and reference months differ by exactly one,
// the day distance must be at least 30-dayInterval (the wraparound rule);
// when the months match, the day distance must be at most dayInterval; any
// larger month difference excludes the record.
func (s *StatisticsService) WindowByDays(records []domain.ConversionRecord, ref time.Time, dayInterval int) []domain.ConversionRecord {
	refDay, refMonth := dayMonth(utils.FormatDate(ref, "/"))
	var out []domain.ConversionRecord
	for _, r := range records {
		day, month := dayMonth(r.CreationDate)
		switch absInt(month - refMonth) {
		case 1:
			if absInt(day-refDay) >= 30-dayInterval {
				out = append(out, r)
			}
		case 0:
			if absInt(day-refDay) <= dayInterval {
				out = append(out, r)
			}
		}
	}
	return out
}

// WindowByMonth selects records within dayInterval days and monthInterval
// months of ref, both as raw numeric differences.
func (s *StatisticsService) WindowByMonth(records []domain.ConversionRecord, ref time.Time, dayInterval, monthInterval int) []domain.ConversionRecord {
	refDay, refMonth := dayMonth(utils.FormatDate(ref, "/"))
	var out []domain.ConversionRecord
	for _, r := range records {
		day, month := dayMonth(r.CreationDate)
		if absInt(day-refDay) <= dayInterval && absInt(month-refMonth) <= monthInterval {
			out = append(out, r)
		}
	}
	return out
}

// ApplyWindow resolves a named window to its concrete filter parameters:
// sevenDays uses a 6-day interval, fourteenDays 14 days, thirtyDays a
// 30-day/1-month filter and allTime no filtering at all.
func (s *StatisticsService) ApplyWindow(records []domain.ConversionRecord, window domain.TimeWindow, ref time.Time) []domain.ConversionRecord {
	switch window {
	case domain.WindowSevenDays:
		return s.WindowByDays(records, ref, 6)
	case domain.WindowFourteenDays:
		return s.WindowByDays(records, ref, 14)
	case domain.WindowThirtyDays:
		return s.WindowByMonth(records, ref, 30, 1)
	default:
		return records
	}
}

// sortedRates extracts the computed rates in ascending order. The sort is
// stable so ties keep their original list order.
func sortedRates(records []domain.ConversionRecord) []float64 {
	rates := make([]float64, len(records))
	for i, r := range records {
		rates[i] = r.PureExchangeRate
	}
	sort.SliceStable(rates, func(i, j int) bool { return rates[i] < rates[j] })
	return rates
}

// dayMonth pulls the numeric day and month parts out of a DD/MM/YYYY stamp.
func dayMonth(date string) (int, int) {
	parts := strings.Split(date, "/")
	if len(parts) < 2 {
		return 0, 0
	}
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	return day, month
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
