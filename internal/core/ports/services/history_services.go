package services

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// HistoryReaderSvc defines read operations over the conversion history.
type HistoryReaderSvc interface {
	// All returns the current record list, newest first.
	All(ctx context.Context) []domain.ConversionRecord

	// Find retrieves a single record by id.
	Find(ctx context.Context, id int64) (*domain.ConversionRecord, error)

	// Events returns the presentation rows for the history table.
	Events(ctx context.Context) []domain.HistoryEvent

	// ChartPoints returns the scatter-chart points for the history view.
	ChartPoints(ctx context.Context) []domain.ChartPoint
}

// HistoryWriterSvc defines write operations over the conversion history.
type HistoryWriterSvc interface {
	// Append inserts a record at the head of the list and persists the
	// full list. A persistence failure is returned but leaves the
	// in-memory list (including the new record) authoritative.
	Append(ctx context.Context, record domain.ConversionRecord) error

	// Remove deletes the record with the given id and persists the list.
	// Removing an absent id is a no-op.
	Remove(ctx context.Context, id int64) error
}

// HistoryPreferenceSvc persists and recalls the selected statistics window.
type HistoryPreferenceSvc interface {
	SelectWindow(ctx context.Context, window domain.TimeWindow) error
	SelectedWindow(ctx context.Context) domain.TimeWindow
}

// HistorySvcFacade combines all history-related service interfaces.
type HistorySvcFacade interface {
	HistoryReaderSvc
	HistoryWriterSvc
	HistoryPreferenceSvc
}
