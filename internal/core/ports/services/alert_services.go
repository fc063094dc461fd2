package services

import (
	"context"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// AlertReaderSvc exposes the most recent user-visible notifications emitted
// through the alerting surface.
type AlertReaderSvc interface {
	Recent(ctx context.Context) []domain.Alert
}
