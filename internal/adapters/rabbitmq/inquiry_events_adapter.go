package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"househunt-service/internal/constants"
	"househunt-service/internal/contextkeys"
	"househunt-service/internal/contracts"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// InquiryEventsAdapter публикует события по обращениям в обменник
type InquiryEventsAdapter struct {
	publisher messagePublisher
}

func NewInquiryEventsAdapter(publisher messagePublisher) (*InquiryEventsAdapter, error) {
	if publisher == nil {
		return nil, fmt.Errorf("rabbitmq adapter: publisher cannot be nil")
	}
	return &InquiryEventsAdapter{publisher: publisher}, nil
}

func (a *InquiryEventsAdapter) PublishInquiryCreated(ctx context.Context, event domain.InquiryCreatedEvent) error {
	return a.publish(ctx, contracts.InquiryCreatedEvent, constants.RoutingKeyInquiryCreated, event.InquiryID.String(), event)
}

func (a *InquiryEventsAdapter) PublishInquiryStatusChanged(ctx context.Context, event domain.InquiryStatusChangedEvent) error {
	return a.publish(ctx, contracts.InquiryStatusChangedEvent, constants.RoutingKeyInquiryStatusChanged, event.InquiryID.String(), event)
}

func (a *InquiryEventsAdapter) publish(ctx context.Context, eventType, routingKey, inquiryID string, event interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "InquiryEventsAdapter",
		"routing_key": routingKey,
		"inquiry_id":  inquiryID,
	})

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal %s: %w", eventType, err)
	}
	if err := contracts.ValidateEvent(eventType, contracts.V1, body); err != nil {
		adapterLogger.Error("Event does not match its contract", err, nil)
		return fmt.Errorf("rabbitmq adapter: invalid %s: %w", eventType, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Type:         eventType,
		Headers: amqp.Table{
			constants.HeaderEventType:    eventType,
			constants.HeaderEventVersion: contracts.V1,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers[constants.HeaderTraceID] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.publisher.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish %s for inquiry %s: %w", eventType, inquiryID, err)
	}

	adapterLogger.Info("Event published", nil)
	return nil
}

// NoopInquiryEvents используется, когда RabbitMQ выключен
type NoopInquiryEvents struct{}

func (NoopInquiryEvents) PublishInquiryCreated(ctx context.Context, event domain.InquiryCreatedEvent) error {
	contextkeys.LoggerFromContext(ctx).Debug("Event publishing disabled, dropping event", port.Fields{
		"event": contracts.InquiryCreatedEvent, "inquiry_id": event.InquiryID.String(),
	})
	return nil
}

func (NoopInquiryEvents) PublishInquiryStatusChanged(ctx context.Context, event domain.InquiryStatusChangedEvent) error {
	contextkeys.LoggerFromContext(ctx).Debug("Event publishing disabled, dropping event", port.Fields{
		"event": contracts.InquiryStatusChangedEvent, "inquiry_id": event.InquiryID.String(),
	})
	return nil
}
