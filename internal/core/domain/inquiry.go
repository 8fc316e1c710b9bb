package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type InquiryStatus string

const (
	InquiryStatusPending   InquiryStatus = "pending"
	InquiryStatusApproved  InquiryStatus = "approved"
	InquiryStatusRejected  InquiryStatus = "rejected"
	InquiryStatusContacted InquiryStatus = "contacted"
)

var InquiryStatuses = []InquiryStatus{
	InquiryStatusPending,
	InquiryStatusApproved,
	InquiryStatusRejected,
	InquiryStatusContacted,
}

func (s InquiryStatus) IsValid() bool {
	for _, known := range InquiryStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Inquiry - обращение арендатора к владельцу объявления
type Inquiry struct {
	ID          uuid.UUID     `json:"id"`
	PropertyID  uuid.UUID     `json:"propertyId"`
	RenterID    uuid.UUID     `json:"renterId"`
	RenterName  string        `json:"renterName"`
	RenterEmail string        `json:"renterEmail"`
	Phone       string        `json:"phone"`
	Message     string        `json:"message"`
	Status      InquiryStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type NewInquiry struct {
	PropertyID uuid.UUID `json:"propertyId"`
	Message    string    `json:"message"`
	Phone      string    `json:"phone"`
}

func (i NewInquiry) Validate() error {
	if i.PropertyID == uuid.Nil {
		return fmt.Errorf("%w: propertyId is required", ErrInvalidInput)
	}
	if i.Message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	return nil
}
