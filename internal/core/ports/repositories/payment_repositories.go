package repositories

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	ListPayments(ctx context.Context, params dto.ListParams) ([]domain.Payment, error)
	FindPaymentByID(ctx context.Context, id domain.ID) (domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	CreatePayment(ctx context.Context, in domain.PaymentInput) (domain.Payment, error)
	UpdatePayment(ctx context.Context, id domain.ID, patch domain.PaymentPatch) (domain.Payment, error)
	DeletePayment(ctx context.Context, id domain.ID) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
