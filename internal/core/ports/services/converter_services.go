package services

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// ConverterSvcFacade is the conversion workflow: a single form state machine
// over the three inputs (amount, from, to), gating the convert action on
// cross-field validity against the current rate table.
type ConverterSvcFacade interface {
	// Form returns the current form snapshot. When a referral is pending
	// (the form was pre-populated from a history entry) this runs the
	// one-shot validity re-check first.
	Form(ctx context.Context) domain.ConverterForm

	// EditField applies a single field edit: amount edits clamp negative
	// values to 0, currency edits run autocomplete against the known
	// code set. Returns apperrors.ErrValidation while the form is
	// disabled.
	EditField(ctx context.Context, edit domain.FieldEdited) (domain.ConverterForm, error)

	// Swap exchanges the from/to field values and re-validates; the form
	// state is otherwise unchanged.
	Swap(ctx context.Context) (domain.ConverterForm, error)

	// Convert commits the conversion: computes the cross rate and the
	// display result, appends the record to the history and returns the
	// form to its editable state. Returns apperrors.ErrValidation unless
	// the form is currently valid.
	Convert(ctx context.Context) (*domain.ConversionRecord, error)

	// LoadReferral pre-populates the form from a history record and arms
	// the one-shot re-check performed by the next Form call.
	LoadReferral(ctx context.Context, record domain.ConversionRecord)
}
