package domain

import "time"

// CurrencyRate is a single entry of the fetched rate table: a 3-letter
// uppercase currency code and its rate relative to the base currency.
type CurrencyRate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// RateTable is the rate set mapped from the external provider response,
// sorted by currency code. It is immutable between fetches.
type RateTable struct {
	Base      string         `json:"base"`
	Rates     []CurrencyRate `json:"rates"`
	FetchedAt time.Time      `json:"fetchedAt"`
}

// Lookup returns the rate entry for the given code, if present.
func (t *RateTable) Lookup(code string) (CurrencyRate, bool) {
	for _, r := range t.Rates {
		if r.Currency == code {
			return r, true
		}
	}
	return CurrencyRate{}, false
}

// Codes returns the currency codes of the table, in table (sorted) order.
func (t *RateTable) Codes() []string {
	codes := make([]string, len(t.Rates))
	for i, r := range t.Rates {
		codes[i] = r.Currency
	}
	return codes
}
