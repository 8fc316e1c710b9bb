package usecases_port

import (
	"context"

	"househunt-service/internal/core/domain"

	"github.com/google/uuid"
)

type CreateInquiryUseCase interface {
	Execute(ctx context.Context, identity domain.Identity, input domain.NewInquiry) (*domain.Inquiry, error)
}

type UpdateInquiryStatusUseCase interface {
	Execute(ctx context.Context, identity domain.Identity, inquiryID uuid.UUID, status domain.InquiryStatus) (*domain.Inquiry, error)
}

type FetchInquiriesUseCase interface {
	Execute(ctx context.Context, identity domain.Identity) ([]domain.Inquiry, error)
}
