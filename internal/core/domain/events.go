package domain

import (
	"time"

	"github.com/google/uuid"
)

// События по обращениям, которые уходят в брокер после успешной записи

type InquiryCreatedEvent struct {
	InquiryID  uuid.UUID     `json:"inquiry_id"`
	PropertyID uuid.UUID     `json:"property_id"`
	RenterID   uuid.UUID     `json:"renter_id"`
	Status     InquiryStatus `json:"status"`
	OccurredAt time.Time     `json:"occurred_at"`
}

type InquiryStatusChangedEvent struct {
	InquiryID  uuid.UUID     `json:"inquiry_id"`
	PropertyID uuid.UUID     `json:"property_id"`
	ChangedBy  uuid.UUID     `json:"changed_by"`
	Status     InquiryStatus `json:"status"`
	OccurredAt time.Time     `json:"occurred_at"`
}
