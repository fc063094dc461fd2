package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_converter_app/internal/core/ports/services"
	"github.com/SscSPs/currency_converter_app/internal/utils"
)

// ConverterService is the conversion workflow: one application-wide form over
// amount/from/to, disabled until rates are available, validated on every edit
// and committed through Convert. The service is the single writer of the form
// fields; handlers only receive snapshots.
type ConverterService struct {
	mu      sync.Mutex
	rates   portssvc.RateSvcFacade
	history portssvc.HistorySvcFacade
	logger  *slog.Logger
	now     func() time.Time

	amount string
	from   string
	to     string
	// nextID is seeded from epoch millis at construction and bumped on
	// every conversion and swap, so ids are session-unique and strictly
	// increasing.
	nextID   int64
	referral bool
}

// ConverterOption customizes a ConverterService.
type ConverterOption func(*ConverterService)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) ConverterOption {
	return func(s *ConverterService) {
		s.now = now
	}
}

// NewConverterService creates the workflow service.
func NewConverterService(rates portssvc.RateSvcFacade, history portssvc.HistorySvcFacade, logger *slog.Logger, opts ...ConverterOption) *ConverterService {
	s := &ConverterService{
		rates:   rates,
		history: history,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.nextID = s.now().UnixMilli()
	return s
}

// Form returns the current form snapshot. A pending referral triggers the
// one-shot re-check: currency values loaded from a history record are matched
// against the current code set and canonicalized before validity is derived.
func (s *ConverterService) Form(ctx context.Context) domain.ConverterForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.referral {
		s.referral = false
		s.from = s.commitOnLoad(ctx, s.from)
		s.to = s.commitOnLoad(ctx, s.to)
	}
	return s.snapshotLocked(ctx)
}

// EditField applies a single tagged field edit.
func (s *ConverterService) EditField(ctx context.Context, edit domain.FieldEdited) (domain.ConverterForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.rates.Fetched(ctx) {
		return s.snapshotLocked(ctx), fmt.Errorf("%w: form is disabled until rates are available", apperrors.ErrValidation)
	}

	switch edit.Field {
	case domain.FieldAmount:
		s.amount = clampAmount(edit.Value)
	case domain.FieldFrom:
		s.from = s.autocomplete(ctx, edit.Value)
	case domain.FieldTo:
		s.to = s.autocomplete(ctx, edit.Value)
	default:
		return s.snapshotLocked(ctx), fmt.Errorf("%w: unknown form field %q", apperrors.ErrValidation, edit.Field)
	}

	form := s.snapshotLocked(ctx)
	switch edit.Field {
	case domain.FieldFrom:
		form.FromSuggestions = s.suggestions(ctx, s.from)
	case domain.FieldTo:
		form.ToSuggestions = s.suggestions(ctx, s.to)
	}
	return form, nil
}

// Swap exchanges the from/to values. The id counter is bumped here as well,
// matching the original workflow where rebuilding the swapped form consumed
// an id.
func (s *ConverterService) Swap(ctx context.Context) (domain.ConverterForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.rates.Fetched(ctx) {
		return s.snapshotLocked(ctx), fmt.Errorf("%w: form is disabled until rates are available", apperrors.ErrValidation)
	}

	s.from, s.to = s.to, s.from
	s.nextID++
	return s.snapshotLocked(ctx), nil
}

// Convert commits the conversion currently described by the form. The amount
// is floored to a whole number, the cross rate is toRate/fromRate rounded to
// 5 decimal places and the display result carries 3. The record is appended
// to the history; a persistence failure is logged but does not fail the
// conversion, since the in-memory history remains authoritative.
func (s *ConverterService) Convert(ctx context.Context) (*domain.ConversionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.validLocked(ctx) {
		return nil, fmt.Errorf("%w: form is not valid for conversion", apperrors.ErrValidation)
	}

	fromRate, err := s.rates.Lookup(ctx, s.from)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve from currency: %w", err)
	}
	toRate, err := s.rates.Lookup(ctx, s.to)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve to currency: %w", err)
	}

	parsed, _ := strconv.ParseFloat(s.amount, 64)
	amount := math.Floor(parsed)
	crossRate := toRate.Rate / fromRate.Rate

	now := s.now()
	s.nextID++

	record := domain.ConversionRecord{
		ID:               s.nextID,
		Date:             utils.FormatDate(now, "/") + "\n@" + utils.FormatClock(now, ":"),
		Time:             utils.FormatClock(now, ":"),
		ExchangeRate:     fmt.Sprintf("%s → %s\n%s", fromRate.Currency, toRate.Currency, utils.FixedString(crossRate, 5)),
		PureExchangeRate: utils.RoundTo(crossRate, 5),
		CreationDate:     utils.FormatDate(now, "/"),
		FromCurrency:     fromRate.Currency,
		ToCurrency:       toRate.Currency,
		Amount:           int64(amount),
		Result:           utils.FixedString(amount*crossRate, 3),
	}

	if err := s.history.Append(ctx, record); err != nil {
		s.logger.Warn("Conversion recorded in memory only", slog.Int64("id", record.ID), slog.String("error", err.Error()))
	}
	return &record, nil
}

// LoadReferral pre-populates the form from a history record and arms the
// one-shot re-check performed by the next Form call.
func (s *ConverterService) LoadReferral(ctx context.Context, record domain.ConversionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.amount = strconv.FormatInt(record.Amount, 10)
	s.from = record.FromCurrency
	s.to = record.ToCurrency
	s.referral = true
}

// autocomplete matches free-text currency input against the known code set:
// the input is uppercased and the first code containing it wins, but the
// canonical code is only committed once the input is a full 3-letter match.
// Otherwise the raw text stays in the field (and fails validation).
func (s *ConverterService) autocomplete(ctx context.Context, value string) string {
	written := strings.ToUpper(value)
	matched := firstMatch(s.rates.Codes(ctx), written)
	if len(written) == 3 && matched != "" {
		return matched
	}
	return value
}

// commitOnLoad is the referral variant of autocomplete: it canonicalizes an
// exact-length value against the current code set without uppercasing first,
// mirroring the original on-load re-check.
func (s *ConverterService) commitOnLoad(ctx context.Context, value string) string {
	matched := firstMatch(s.rates.Codes(ctx), value)
	if len(value) == 3 && matched != "" {
		return matched
	}
	return value
}

// suggestions lists the codes containing the current field text,
// case-insensitively, in sorted code order.
func (s *ConverterService) suggestions(ctx context.Context, value string) []string {
	needle := strings.ToLower(value)
	var out []string
	for _, code := range s.rates.Codes(ctx) {
		if strings.Contains(strings.ToLower(code), needle) {
			out = append(out, code)
		}
	}
	return out
}

func (s *ConverterService) snapshotLocked(ctx context.Context) domain.ConverterForm {
	form := domain.ConverterForm{
		State:  domain.FormEditable,
		Amount: s.amount,
		From:   s.from,
		To:     s.to,
	}
	if !s.rates.Fetched(ctx) {
		form.State = domain.FormDisabled
	} else if s.validLocked(ctx) {
		form.State = domain.FormValid
	}
	return form
}

// validLocked checks the three cross-field conditions: a positive amount and
// both currency fields exactly matching a known code (case-insensitively).
func (s *ConverterService) validLocked(ctx context.Context) bool {
	if !s.rates.Fetched(ctx) {
		return false
	}
	amount, err := strconv.ParseFloat(s.amount, 64)
	if err != nil || amount <= 0 {
		return false
	}
	codes := s.rates.Codes(ctx)
	return exactMatch(codes, s.from) && exactMatch(codes, s.to)
}

// clampAmount normalizes negative amount input to 0 on entry. This is a
// side effect of editing, not a validation error.
func clampAmount(value string) string {
	if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed < 0 {
		return "0"
	}
	return value
}

func firstMatch(codes []string, written string) string {
	for _, code := range codes {
		if strings.Contains(code, written) {
			return code
		}
	}
	return ""
}

func exactMatch(codes []string, value string) bool {
	upper := strings.ToUpper(value)
	for _, code := range codes {
		if code == upper {
			return true
		}
	}
	return false
}
