package repositories

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// HistoryReader defines read operations for the persisted conversion history.
type HistoryReader interface {
	// LoadHistory returns the persisted record list, newest first.
	// An absent or unparseable stored list yields an empty slice, not an
	// error: history corruption must never block startup.
	LoadHistory(ctx context.Context) ([]domain.ConversionRecord, error)
}

// HistoryWriter defines write operations for the persisted conversion history.
type HistoryWriter interface {
	// SaveHistory persists the full record list.
	SaveHistory(ctx context.Context, records []domain.ConversionRecord) error
}

// HistoryRepositoryFacade combines all history persistence interfaces.
type HistoryRepositoryFacade interface {
	HistoryReader
	HistoryWriter
}

// PreferenceRepository persists the last-selected statistics time window.
type PreferenceRepository interface {
	SaveTimeWindow(ctx context.Context, window domain.TimeWindow) error
	// LoadTimeWindow returns the stored preference, or WindowAllTime when
	// none has been stored yet.
	LoadTimeWindow(ctx context.Context) (domain.TimeWindow, error)
}
