package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/office-admin-service/internal/events"
)

// AuditService turns entity events into structured audit log lines.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService builds the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.With(zap.String("component", "audit")),
	}
}

// RegisterHandlers subscribes the audit log to every entity event type.
func (s *AuditService) RegisterHandlers() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Subscribe(events.EventEntityCreated, s.Record)
	s.dispatcher.Subscribe(events.EventEntityUpdated, s.Record)
	s.dispatcher.Subscribe(events.EventEntityDeleted, s.Record)
}

// Record writes one audit entry for an entity event.
func (s *AuditService) Record(_ context.Context, event events.Event) error {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("kind", string(event.Kind)),
		zap.Stringer("entity_id", event.EntityID),
		zap.String("actor", event.Actor),
		zap.Time("at", event.Timestamp),
	}
	switch payload := event.Payload.(type) {
	case events.EntitySavedPayload:
		fields = append(fields,
			zap.String("name", payload.Name),
			zap.String("status", payload.Status),
			zap.Int("index", payload.Index))
	case events.EntityDeletedPayload:
		if payload.Name != "" {
			fields = append(fields, zap.String("name", payload.Name))
		}
	}
	s.logger.Info("entity change", fields...)
	return nil
}
