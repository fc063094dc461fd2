package services

import (
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// StatisticsSvc derives summary statistics over an arbitrary record list and
// provides the time-window selection applied before deriving them. All
// methods are pure; the reference time is passed in explicitly.
type StatisticsSvc interface {
	// Lowest returns the minimum computed rate, or 0 for an empty list.
	Lowest(records []domain.ConversionRecord) float64

	// Highest returns the maximum computed rate, or 0 for an empty list.
	Highest(records []domain.ConversionRecord) float64

	// Average returns the mean computed rate rounded to 5 decimal places,
	// or 0 for an empty list.
	Average(records []domain.ConversionRecord) float64

	// Summaries derives the Lowest/Highest/Average triple.
	Summaries(records []domain.ConversionRecord) []domain.StatisticSummary

	// WindowByDays selects records whose creation date lies within
	// dayInterval days of ref, using the legacy day/month string
	// arithmetic (see the service implementation for the exact rules).
	WindowByDays(records []domain.ConversionRecord, ref time.Time, dayInterval int) []domain.ConversionRecord

	// WindowByMonth selects records within dayInterval days and
	// monthInterval months of ref, both as raw numeric differences.
	WindowByMonth(records []domain.ConversionRecord, ref time.Time, dayInterval, monthInterval int) []domain.ConversionRecord

	// ApplyWindow resolves a named window to its filter parameters.
	ApplyWindow(records []domain.ConversionRecord, window domain.TimeWindow, ref time.Time) []domain.ConversionRecord
}
