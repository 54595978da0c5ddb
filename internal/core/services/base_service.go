package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bankroll_app/internal/core/domain"
	"github.com/SscSPs/bankroll_app/internal/events"
	"github.com/SscSPs/bankroll_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Events events.Publisher
	Clock  func() time.Time
}

// ServiceOption is a functional option for configuring a service
type ServiceOption func(*BaseService)

// WithEventPublisher makes the service publish lifecycle events to p.
func WithEventPublisher(p events.Publisher) ServiceOption {
	return func(s *BaseService) {
		s.Events = p
	}
}

// WithClock overrides the time source, mostly for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

func newBaseService(options []ServiceOption) BaseService {
	base := BaseService{Events: events.NopPublisher{}, Clock: time.Now}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current time truncated to microseconds, the precision Postgres stores.
func (s *BaseService) Now() time.Time {
	return s.Clock().UTC().Truncate(time.Microsecond)
}

// Publish sends a change notification for an entity.
func (s *BaseService) Publish(name events.Name, kind, id string, payload any) {
	s.Events.Publish(events.Event{Name: name, EntityKind: kind, EntityID: id, OccurredAt: s.Now(), Payload: payload})
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

const (
	kindPlatform = "platform"
	kindLive     = string(domain.KindLive)
	kindOnline   = string(domain.KindOnline)
)
