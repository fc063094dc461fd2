package alerting

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
)

// maxRecent bounds the in-memory alert buffer.
const maxRecent = 20

// Service is the alerting surface: fire-and-forget user-visible error
// notifications. Alerts are logged and the most recent ones are retained so
// the client can poll them.
type Service struct {
	mu     sync.Mutex
	recent []domain.Alert
	logger *slog.Logger
	now    func() time.Time
}

// New creates the alerting service.
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
		now:    time.Now,
	}
}

// Error emits a user-visible error notification. No return value: the caller
// never waits on the alerting surface.
func (s *Service) Error(message string) {
	s.logger.Error("User alert raised", slog.String("message", message))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = append([]domain.Alert{{
		Message: message,
		At:      s.now().Format(time.RFC3339),
	}}, s.recent...)
	if len(s.recent) > maxRecent {
		s.recent = s.recent[:maxRecent]
	}
}

// Recent returns the retained alerts, newest first.
func (s *Service) Recent(ctx context.Context) []domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Alert, len(s.recent))
	copy(out, s.recent)
	return out
}
