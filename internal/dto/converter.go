package dto

import "github.com/SscSPs/currency_converter_app/internal/core/domain"

// EditFieldRequest is the tagged edit event for a single converter field.
type EditFieldRequest struct {
	Field string `json:"field" binding:"required,oneof=amount from to"`
	Value string `json:"value"`
}

// ConverterFormResponse is the form snapshot returned to the client.
type ConverterFormResponse struct {
	State           string   `json:"state"`
	Amount          string   `json:"amount"`
	From            string   `json:"from"`
	To              string   `json:"to"`
	FromSuggestions []string `json:"fromSuggestions,omitempty"`
	ToSuggestions   []string `json:"toSuggestions,omitempty"`
}

// ConvertResponse carries the committed conversion and its display result.
type ConvertResponse struct {
	Record ConversionRecordResponse `json:"record"`
	Result string                   `json:"result"`
}

// ToConverterFormResponse converts a domain.ConverterForm snapshot.
func ToConverterFormResponse(form domain.ConverterForm) ConverterFormResponse {
	return ConverterFormResponse{
		State:           string(form.State),
		Amount:          form.Amount,
		From:            form.From,
		To:              form.To,
		FromSuggestions: form.FromSuggestions,
		ToSuggestions:   form.ToSuggestions,
	}
}

// ToConvertResponse converts a committed record.
func ToConvertResponse(record *domain.ConversionRecord) ConvertResponse {
	return ConvertResponse{
		Record: ToConversionRecordResponse(record),
		Result: record.Result,
	}
}
