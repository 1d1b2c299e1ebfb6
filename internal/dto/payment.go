package dto

import (
	"time"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentRecord is a payment as rendered by /api/dashboard/business/payments/.
// The read path names the relation "business"; older responses use "business_id".
type PaymentRecord struct {
	ID            ForeignKey      `json:"id"`
	Business      ForeignKey      `json:"business"`
	BusinessID    ForeignKey      `json:"business_id"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   domain.Date     `json:"payment_date"`
	Note          string          `json:"note"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreatePaymentRequest is the POST body. The backend expects business_id here.
type CreatePaymentRequest struct {
	BusinessID    int64           `json:"business_id"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   domain.Date     `json:"payment_date"`
	Note          string          `json:"note,omitempty"`
}

// UpdatePaymentRequest is the PATCH body.
type UpdatePaymentRequest struct {
	AmountPaid    *decimal.Decimal `json:"amount_paid,omitempty"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	PaymentDate   *domain.Date     `json:"payment_date,omitempty"`
	Note          *string          `json:"note,omitempty"`
}
