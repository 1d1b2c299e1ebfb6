package mapping

import (
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// ToDomainPayment converts a wire PaymentRecord to a domain Payment.
func ToDomainPayment(r dto.PaymentRecord) domain.Payment {
	return domain.Payment{
		ID:            r.ID.ID(),
		BusinessID:    dto.First(r.Business, r.BusinessID),
		AmountPaid:    r.AmountPaid,
		PaymentMethod: domain.NormalizePaymentMethod(r.PaymentMethod),
		PaymentDate:   r.PaymentDate,
		Note:          r.Note,
		AuditFields:   domain.AuditFields{CreatedAt: r.CreatedAt},
	}
}

// ToDomainPaymentSlice converts a slice of records.
func ToDomainPaymentSlice(rs []dto.PaymentRecord) []domain.Payment {
	out := make([]domain.Payment, len(rs))
	for i, r := range rs {
		out[i] = ToDomainPayment(r)
	}
	return out
}

// ToCreatePaymentRequest builds the create body.
func ToCreatePaymentRequest(in domain.PaymentInput) dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		BusinessID:    int64(in.BusinessID),
		AmountPaid:    in.AmountPaid,
		PaymentMethod: string(in.PaymentMethod),
		PaymentDate:   in.PaymentDate,
		Note:          in.Note,
	}
}

// ToUpdatePaymentRequest builds the patch body.
func ToUpdatePaymentRequest(p domain.PaymentPatch) dto.UpdatePaymentRequest {
	return dto.UpdatePaymentRequest{
		AmountPaid:    p.AmountPaid,
		PaymentMethod: string(p.PaymentMethod),
		PaymentDate:   p.PaymentDate,
		Note:          p.Note,
	}
}
