package dto

import "time"

// BusinessRecord is a business as rendered by /api/dashboard/business/.
type BusinessRecord struct {
	ID                       ForeignKey `json:"id"`
	NameEn                   string     `json:"name_en"`
	NameAr                   string     `json:"name_ar"`
	LegalNameEn              string     `json:"legal_name_en"`
	LegalNameAr              string     `json:"legal_name_ar"`
	TaxNumber                string     `json:"tax_number"`
	CommercialRegisterNumber string     `json:"commercial_register_number"`
	DomainURL                string     `json:"domain_url"`
	Country                  string     `json:"country"`
	City                     string     `json:"city"`
	Address                  string     `json:"address"`
	Category                 string     `json:"category"`
	MaxAdmins                int        `json:"max_admins"`
	IsActive                 *bool      `json:"is_active"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

// BusinessWriteRequest is the create/partial-update body. Empty fields are
// omitted so that a PATCH only touches what the user filled in.
type BusinessWriteRequest struct {
	NameEn                   string `json:"name_en,omitempty"`
	NameAr                   string `json:"name_ar,omitempty"`
	LegalNameEn              string `json:"legal_name_en,omitempty"`
	LegalNameAr              string `json:"legal_name_ar,omitempty"`
	TaxNumber                string `json:"tax_number,omitempty"`
	CommercialRegisterNumber string `json:"commercial_register_number,omitempty"`
	DomainURL                string `json:"domain_url,omitempty"`
	Country                  string `json:"country,omitempty"`
	City                     string `json:"city,omitempty"`
	Address                  string `json:"address,omitempty"`
	Category                 string `json:"category,omitempty"`
	MaxAdmins                int    `json:"max_admins,omitempty"`
}
