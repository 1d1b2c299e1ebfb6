package services

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/store"
	"github.com/SscSPs/bizdash/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	FetchPayments(ctx context.Context, params dto.ListParams) ([]domain.Payment, error)
	FetchPayment(ctx context.Context, id domain.ID) (domain.Payment, error)
	PaymentState() store.Slice[domain.Payment]
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	CreatePayment(ctx context.Context, in domain.PaymentInput) (domain.Payment, error)
	UpdatePayment(ctx context.Context, id domain.ID, patch domain.PaymentPatch) (domain.Payment, error)
	DeletePayment(ctx context.Context, id domain.ID) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
