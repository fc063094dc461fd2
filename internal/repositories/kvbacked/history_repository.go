package kvbacked

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter_app/internal/core/ports/repositories"
)

// Storage keys, kept verbatim from the original browser app so existing
// persisted histories remain readable.
const (
	historyKey = "exchangeRates"
	windowKey  = "selectedTimeInterval"
)

// HistoryRepository persists the conversion history and the window
// preference through the key-value store port.
type HistoryRepository struct {
	kv portsrepo.KVStore
}

// NewHistoryRepository creates a KV-backed history repository.
func NewHistoryRepository(kv portsrepo.KVStore) *HistoryRepository {
	return &HistoryRepository{kv: kv}
}

// Ensure implementation matches the ports.
var (
	_ portsrepo.HistoryRepositoryFacade = (*HistoryRepository)(nil)
	_ portsrepo.PreferenceRepository    = (*HistoryRepository)(nil)
)

// LoadHistory reads the persisted record list. An absent key or a stored
// value that fails to parse yields an empty list and no error: corrupted
// history must never block startup. Hard storage failures are returned
// alongside the empty fallback.
func (r *HistoryRepository) LoadHistory(ctx context.Context) ([]domain.ConversionRecord, error) {
	var records []domain.ConversionRecord
	err := r.kv.GetObject(ctx, historyKey, &records)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrMalformed) {
			return []domain.ConversionRecord{}, nil
		}
		return []domain.ConversionRecord{}, fmt.Errorf("failed to load history: %w", err)
	}
	return records, nil
}

// SaveHistory persists the full record list.
func (r *HistoryRepository) SaveHistory(ctx context.Context, records []domain.ConversionRecord) error {
	if err := r.kv.SetObject(ctx, historyKey, records); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// SaveTimeWindow persists the selected statistics window.
func (r *HistoryRepository) SaveTimeWindow(ctx context.Context, window domain.TimeWindow) error {
	if err := r.kv.SetItem(ctx, windowKey, string(window)); err != nil {
		return fmt.Errorf("failed to save time window: %w", err)
	}
	return nil
}

// LoadTimeWindow returns the stored preference. An absent or unrecognized
// stored value falls back to all-time.
func (r *HistoryRepository) LoadTimeWindow(ctx context.Context) (domain.TimeWindow, error) {
	raw, err := r.kv.GetItem(ctx, windowKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.WindowAllTime, nil
		}
		return domain.WindowAllTime, fmt.Errorf("failed to load time window: %w", err)
	}
	window, err := domain.ParseTimeWindow(raw)
	if err != nil {
		return domain.WindowAllTime, nil
	}
	return window, nil
}

// NewRepositoryProvider bundles the KV-backed repositories for the service
// container.
func NewRepositoryProvider(kv portsrepo.KVStore) *portsrepo.RepositoryProvider {
	repo := NewHistoryRepository(kv)
	return &portsrepo.RepositoryProvider{
		HistoryRepo:    repo,
		PreferenceRepo: repo,
	}
}
