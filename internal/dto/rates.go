package dto

import (
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// CurrencyRateResponse is one rate table entry.
type CurrencyRateResponse struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// RateTableResponse is the fetched rate table.
type RateTableResponse struct {
	Base      string                 `json:"base"`
	FetchedAt time.Time              `json:"fetchedAt"`
	Rates     []CurrencyRateResponse `json:"rates"`
}

// AlertResponse is one retained user alert.
type AlertResponse struct {
	Message string `json:"message"`
	At      string `json:"at"`
}

// ToRateTableResponse converts a domain.RateTable.
func ToRateTableResponse(table *domain.RateTable) RateTableResponse {
	out := RateTableResponse{
		Base:      table.Base,
		FetchedAt: table.FetchedAt,
		Rates:     make([]CurrencyRateResponse, len(table.Rates)),
	}
	for i, r := range table.Rates {
		out.Rates[i] = CurrencyRateResponse{Currency: r.Currency, Rate: r.Rate}
	}
	return out
}

// ToListAlertResponse converts the retained alerts.
func ToListAlertResponse(alerts []domain.Alert) []AlertResponse {
	out := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = AlertResponse{Message: a.Message, At: a.At}
	}
	return out
}
