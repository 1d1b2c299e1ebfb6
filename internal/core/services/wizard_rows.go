package services

import (
	"strings"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClientDraft is an editable client row. Fields stay raw until submission.
type ClientDraft struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AdminDraft is an editable admin row.
type AdminDraft struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PaymentDraft is an editable payment row. Amount and date are parsed on submit.
type PaymentDraft struct {
	AmountPaid    string `json:"amount_paid"`
	PaymentMethod string `json:"payment_method"`
	PaymentDate   string `json:"payment_date"`
	Note          string `json:"note"`
}

// BusinessDraft is a whole wizard run: the business form and its child rows.
type BusinessDraft struct {
	Business domain.BusinessForm `json:"business"`
	Clients  []ClientDraft       `json:"clients"`
	Admins   []AdminDraft        `json:"admins"`
	Payments []PaymentDraft      `json:"payments"`
}

func filled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// ValidClientDrafts keeps rows with name, email and phone filled in.
func ValidClientDrafts(rows []ClientDraft) []ClientDraft {
	out := make([]ClientDraft, 0, len(rows))
	for _, r := range rows {
		if filled(r.Name, r.Email, r.Phone) {
			out = append(out, r)
		}
	}
	return out
}

// ValidAdminDrafts keeps rows with full name, email and password filled in.
func ValidAdminDrafts(rows []AdminDraft) []AdminDraft {
	out := make([]AdminDraft, 0, len(rows))
	for _, r := range rows {
		if filled(r.FullName, r.Email) && r.Password != "" {
			out = append(out, r)
		}
	}
	return out
}

// ValidPaymentDrafts keeps rows with amount, method and date filled in.
func ValidPaymentDrafts(rows []PaymentDraft) []PaymentDraft {
	out := make([]PaymentDraft, 0, len(rows))
	for _, r := range rows {
		if filled(r.AmountPaid, r.PaymentMethod, r.PaymentDate) {
			out = append(out, r)
		}
	}
	return out
}

func (d ClientDraft) Input(businessID domain.ID) domain.ClientInput {
	return domain.ClientInput{
		BusinessID: businessID,
		Name:       strings.TrimSpace(d.Name),
		Email:      strings.TrimSpace(d.Email),
		Phone:      strings.TrimSpace(d.Phone),
	}
}

func (d AdminDraft) Input(businessID domain.ID) domain.AdminInput {
	return domain.AdminInput{
		BusinessID: businessID,
		FullName:   strings.TrimSpace(d.FullName),
		Email:      strings.TrimSpace(d.Email),
		Password:   d.Password,
	}
}

// Input parses the amount and date. The legacy "card" method is normalised.
func (d PaymentDraft) Input(businessID domain.ID) (domain.PaymentInput, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(d.AmountPaid))
	if err != nil {
		return domain.PaymentInput{}, apperrors.NewValidationError("amount_paid", "must be a number")
	}
	date, err := domain.ParseDate(d.PaymentDate)
	if err != nil {
		return domain.PaymentInput{}, apperrors.NewValidationError("payment_date", "must be a date (YYYY-MM-DD)")
	}
	return domain.PaymentInput{
		BusinessID:    businessID,
		AmountPaid:    amount,
		PaymentMethod: domain.NormalizePaymentMethod(strings.TrimSpace(d.PaymentMethod)),
		PaymentDate:   date,
		Note:          strings.TrimSpace(d.Note),
	}, nil
}
