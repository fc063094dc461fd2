package domain

import "fmt"

// ConversionRecord is one committed conversion. Records are created by the
// converter workflow, inserted at the head of the history list (newest first)
// and never mutated afterwards; they leave the list only through an explicit
// delete.
type ConversionRecord struct {
	ID int64 `json:"id"`
	// Date is the display stamp "DD/MM/YYYY\n@HH:MM:SS".
	Date string `json:"date"`
	// Time is "HH:MM:SS" at creation.
	Time string `json:"time"`
	// ExchangeRate is the display pair stamp "FROM → TO\n0.85000".
	ExchangeRate string `json:"exchangeRate"`
	// PureExchangeRate is toRate/fromRate rounded to 5 decimal places.
	PureExchangeRate float64 `json:"pureExchangeRate"`
	// CreationDate is "DD/MM/YYYY"; the window filters operate on it.
	CreationDate string `json:"creationDate"`
	FromCurrency string `json:"fromCurrency"`
	ToCurrency   string `json:"toCurrency"`
	Amount       int64  `json:"amount"`
	// Result is amount*rate rendered with 3 decimal places.
	Result string `json:"result"`
}

// HistoryEvent is the presentation row derived from a record for the
// history table.
type HistoryEvent struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Event   string `json:"event"`
	Actions string `json:"actions"`
}

// ChartPoint is one scatter-chart point: the record's display date against
// its event description.
type ChartPoint struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// Event renders the history event description for a record.
func (r ConversionRecord) Event() string {
	return fmt.Sprintf("Converted an amount of %d from %s to %s", r.Amount, r.FromCurrency, r.ToCurrency)
}

// ToHistoryEvent derives the history table row for a record.
func (r ConversionRecord) ToHistoryEvent() HistoryEvent {
	return HistoryEvent{
		ID:    r.ID,
		Date:  r.Date,
		Event: r.Event(),
	}
}

// ToChartPoint derives the scatter-chart point for a record.
func (r ConversionRecord) ToChartPoint() ChartPoint {
	return ChartPoint{X: r.Date, Y: r.Event()}
}
