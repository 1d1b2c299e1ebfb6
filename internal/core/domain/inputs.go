package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BusinessForm carries the business fields collected by the create and edit
// forms. Empty strings mean "not supplied".
type BusinessForm struct {
	NameEn                   string           `json:"nameEn" validate:"required"`
	NameAr                   string           `json:"nameAr"`
	LegalNameEn              string           `json:"legalNameEn"`
	LegalNameAr              string           `json:"legalNameAr"`
	TaxNumber                string           `json:"taxNumber"`
	CommercialRegisterNumber string           `json:"commercialRegisterNumber"`
	DomainURL                string           `json:"domainURL" validate:"omitempty,url"`
	Country                  string           `json:"country"`
	City                     string           `json:"city"`
	Address                  string           `json:"address"`
	Category                 BusinessCategory `json:"category" validate:"omitempty,oneof=finance retail healthcare education technology manufacturing services"`
	MaxAdmins                int              `json:"maxAdmins" validate:"omitempty,min=1,max=100"`
}

// Trimmed returns f with surrounding whitespace removed from every text
// field, so a blank name fails the required check.
func (f BusinessForm) Trimmed() BusinessForm {
	for _, p := range []*string{
		&f.NameEn, &f.NameAr, &f.LegalNameEn, &f.LegalNameAr, &f.TaxNumber,
		&f.CommercialRegisterNumber, &f.DomainURL, &f.Country, &f.City, &f.Address,
	} {
		*p = strings.TrimSpace(*p)
	}
	return f
}

// BusinessFormFrom prefills an edit form from an existing record.
func BusinessFormFrom(b Business) BusinessForm {
	return BusinessForm{
		NameEn:                   b.NameEn,
		NameAr:                   b.NameAr,
		LegalNameEn:              b.LegalNameEn,
		LegalNameAr:              b.LegalNameAr,
		TaxNumber:                b.TaxNumber,
		CommercialRegisterNumber: b.CommercialRegisterNumber,
		DomainURL:                b.DomainURL,
		Country:                  b.Country,
		City:                     b.City,
		Address:                  b.Address,
		Category:                 b.Category,
		MaxAdmins:                b.MaxAdmins,
	}
}

// ClientInput creates a client under BusinessID.
type ClientInput struct {
	BusinessID ID     `json:"businessID" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
}

// ClientPatch updates a client. The business association cannot be changed.
type ClientPatch struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

// AdminInput creates an admin under BusinessID.
type AdminInput struct {
	BusinessID ID     `json:"businessID" validate:"required"`
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"-" validate:"required,min=6"`
}

// AdminPatch updates an admin addressed by ID.
type AdminPatch struct {
	ID       ID     `json:"id" validate:"required"`
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"-" validate:"omitempty,min=6"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// PaymentInput records a payment for BusinessID.
type PaymentInput struct {
	BusinessID    ID              `json:"businessID" validate:"required"`
	AmountPaid    decimal.Decimal `json:"amountPaid" validate:"gte=0"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" validate:"required,oneof=cash credit_card bank_transfer check other"`
	PaymentDate   Date            `json:"paymentDate"`
	Note          string          `json:"note"`
}

// PaymentPatch updates a payment. Nil fields are left untouched.
type PaymentPatch struct {
	AmountPaid    *decimal.Decimal `json:"amountPaid,omitempty" validate:"omitempty,gte=0"`
	PaymentMethod PaymentMethod    `json:"paymentMethod,omitempty" validate:"omitempty,oneof=cash credit_card bank_transfer check other"`
	PaymentDate   *Date            `json:"paymentDate,omitempty"`
	Note          *string          `json:"note,omitempty"`
}

// AnswerInput is one answer in a bulk create. Exactly one of Text/Boolean is set.
type AnswerInput struct {
	QuestionID ID      `json:"questionID"`
	Text       *string `json:"text,omitempty"`
	Boolean    *bool   `json:"boolean,omitempty"`
}

// AnswerPatch updates the meaningful field of an existing answer.
type AnswerPatch struct {
	Text    *string `json:"text,omitempty"`
	Boolean *bool   `json:"boolean,omitempty"`
}

// UploadFile is a document to upload to a knowledge base.
type UploadFile struct {
	Name    string
	Content []byte
}
