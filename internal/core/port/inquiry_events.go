package port

import (
	"context"

	"househunt-service/internal/core/domain"
)

// InquiryEventsPort сообщает о новых обращениях и сменах статуса.
// Ошибка публикации не отменяет уже выполненную запись.
type InquiryEventsPort interface {
	PublishInquiryCreated(ctx context.Context, event domain.InquiryCreatedEvent) error
	PublishInquiryStatusChanged(ctx context.Context, event domain.InquiryStatusChangedEvent) error
}
