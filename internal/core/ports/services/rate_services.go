package services

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// RateReaderSvc defines read operations over the fetched rate table.
type RateReaderSvc interface {
	// Table returns the last fetched rate table.
	// Returns apperrors.ErrNotFound before the first successful fetch.
	Table(ctx context.Context) (*domain.RateTable, error)

	// Lookup returns the rate entry for a currency code.
	Lookup(ctx context.Context, code string) (domain.CurrencyRate, error)

	// Codes returns the known currency codes, sorted. Empty before the
	// first successful fetch.
	Codes(ctx context.Context) []string

	// Fetched reports whether a rate table is available.
	Fetched(ctx context.Context) bool
}

// RateRefresherSvc re-fetches the rate table from the external source.
type RateRefresherSvc interface {
	// Refresh fetches and replaces the rate table. On failure the
	// previous table (if any) is kept and the error is also surfaced
	// through the alerting surface.
	Refresh(ctx context.Context) error
}

// RateSvcFacade combines all rate-table service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
	RateRefresherSvc
}
