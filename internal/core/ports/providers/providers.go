package providers

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// RateProvider fetches the exchange rate table from the external source.
type RateProvider interface {
	// FetchRates requests all rates for the given base currency and maps
	// them into a code-sorted table.
	FetchRates(ctx context.Context, base string) (*domain.RateTable, error)
}

// Alerter is the fire-and-forget user-visible notification surface.
type Alerter interface {
	Error(message string)
}
