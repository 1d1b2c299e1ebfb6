package domain

import "github.com/shopspring/decimal"

// PaymentMethod is the canonical set of payment methods.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCheck        PaymentMethod = "check"
	PaymentOther        PaymentMethod = "other"
)

// PaymentMethods lists the methods in display order.
var PaymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentCreditCard,
	PaymentBankTransfer,
	PaymentCheck,
	PaymentOther,
}

// NormalizePaymentMethod maps legacy values onto the canonical set.
// "card" was used by older edit forms for credit cards.
func NormalizePaymentMethod(s string) PaymentMethod {
	if s == "card" {
		return PaymentCreditCard
	}
	return PaymentMethod(s)
}

// Payment records money received from a business.
type Payment struct {
	ID            ID              `json:"id"`
	BusinessID    ID              `json:"businessID"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	PaymentDate   Date            `json:"paymentDate"`
	Note          string          `json:"note,omitempty"`
	AuditFields
}

// GetID implements store.Entity.
func (p Payment) GetID() ID { return p.ID }
