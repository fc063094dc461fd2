package dto

import "github.com/SscSPs/currency_converter_app/internal/core/domain"

// ConversionRecordResponse defines the data returned for one history record.
type ConversionRecordResponse struct {
	ID               int64   `json:"id"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	ExchangeRate     string  `json:"exchangeRate"`
	PureExchangeRate float64 `json:"pureExchangeRate"`
	CreationDate     string  `json:"creationDate"`
	FromCurrency     string  `json:"fromCurrency"`
	ToCurrency       string  `json:"toCurrency"`
	Amount           int64   `json:"amount"`
	Result           string  `json:"result"`
}

// HistoryResponse is the windowed history list together with the window it
// was filtered by.
type HistoryResponse struct {
	Window  string                     `json:"window"`
	Records []ConversionRecordResponse `json:"records"`
}

// HistoryEventResponse is one row of the history events table.
type HistoryEventResponse struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Event   string `json:"event"`
	Actions string `json:"actions"`
}

// ChartPointResponse is one scatter-chart point.
type ChartPointResponse struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// ToConversionRecordResponse converts a domain.ConversionRecord.
func ToConversionRecordResponse(record *domain.ConversionRecord) ConversionRecordResponse {
	return ConversionRecordResponse{
		ID:               record.ID,
		Date:             record.Date,
		Time:             record.Time,
		ExchangeRate:     record.ExchangeRate,
		PureExchangeRate: record.PureExchangeRate,
		CreationDate:     record.CreationDate,
		FromCurrency:     record.FromCurrency,
		ToCurrency:       record.ToCurrency,
		Amount:           record.Amount,
		Result:           record.Result,
	}
}

// ToListConversionRecordResponse converts a record slice.
func ToListConversionRecordResponse(records []domain.ConversionRecord) []ConversionRecordResponse {
	out := make([]ConversionRecordResponse, len(records))
	for i, record := range records {
		out[i] = ToConversionRecordResponse(&record)
	}
	return out
}

// ToListHistoryEventResponse converts the derived event rows.
func ToListHistoryEventResponse(events []domain.HistoryEvent) []HistoryEventResponse {
	out := make([]HistoryEventResponse, len(events))
	for i, ev := range events {
		out[i] = HistoryEventResponse{ID: ev.ID, Date: ev.Date, Event: ev.Event, Actions: ev.Actions}
	}
	return out
}

// ToListChartPointResponse converts the derived chart points.
func ToListChartPointResponse(points []domain.ChartPoint) []ChartPointResponse {
	out := make([]ChartPointResponse, len(points))
	for i, p := range points {
		out[i] = ChartPointResponse{X: p.X, Y: p.Y}
	}
	return out
}
