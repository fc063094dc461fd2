package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portsprov "github.com/SscSPs/currency_converter_app/internal/core/ports/providers"
)

// RateService owns the session rate table. The table is produced once per
// fetch and read-only thereafter; Refresh replaces it wholesale.
type RateService struct {
	mu       sync.RWMutex
	table    *domain.RateTable
	provider portsprov.RateProvider
	alerter  portsprov.Alerter
	base     string
	logger   *slog.Logger
}

// NewRateService creates a new RateService fetching rates for the given base
// currency. No fetch happens here; the table is absent until the first
// successful Refresh.
func NewRateService(provider portsprov.RateProvider, alerter portsprov.Alerter, base string, logger *slog.Logger) *RateService {
	return &RateService{
		provider: provider,
		alerter:  alerter,
		base:     base,
		logger:   logger,
	}
}

// Refresh fetches the rate table from the external source. On failure the
// previous table (if any) is kept and the failure reason is pushed through
// the alerting surface; the caller decides whether to retry.
func (s *RateService) Refresh(ctx context.Context) error {
	table, err := s.provider.FetchRates(ctx, s.base)
	if err != nil {
		s.logger.Error("Failed to fetch exchange rates", slog.String("base", s.base), slog.String("error", err.Error()))
		s.alerter.Error(fmt.Sprintf("Error: %s", err.Error()))
		return fmt.Errorf("failed to refresh rates: %w", err)
	}

	s.mu.Lock()
	s.table = table
	s.mu.Unlock()

	s.logger.Info("Exchange rates fetched", slog.String("base", table.Base), slog.Int("count", len(table.Rates)))
	return nil
}

// Table returns the current rate table, or apperrors.ErrNotFound before the
// first successful fetch.
func (s *RateService) Table(ctx context.Context) (*domain.RateTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == nil {
		return nil, fmt.Errorf("%w: rate table not fetched yet", apperrors.ErrNotFound)
	}
	return s.table, nil
}

// Lookup returns the rate entry for a currency code (case-insensitive).
func (s *RateService) Lookup(ctx context.Context, code string) (domain.CurrencyRate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == nil {
		return domain.CurrencyRate{}, fmt.Errorf("%w: rate table not fetched yet", apperrors.ErrNotFound)
	}
	rate, ok := s.table.Lookup(strings.ToUpper(code))
	if !ok {
		return domain.CurrencyRate{}, fmt.Errorf("%w: currency %q", apperrors.ErrNotFound, code)
	}
	return rate, nil
}

// Codes returns the known currency codes in sorted order; empty before the
// first successful fetch.
func (s *RateService) Codes(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == nil {
		return nil
	}
	return s.table.Codes()
}

// Fetched reports whether a rate table is available.
func (s *RateService) Fetched(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table != nil
}
