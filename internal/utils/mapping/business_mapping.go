package mapping

import (
	"strings"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// ToDomainBusiness converts a wire BusinessRecord to a domain Business.
func ToDomainBusiness(r dto.BusinessRecord) domain.Business {
	return domain.Business{
		ID:                       r.ID.ID(),
		NameEn:                   r.NameEn,
		NameAr:                   r.NameAr,
		LegalNameEn:              r.LegalNameEn,
		LegalNameAr:              r.LegalNameAr,
		TaxNumber:                r.TaxNumber,
		CommercialRegisterNumber: r.CommercialRegisterNumber,
		DomainURL:                r.DomainURL,
		Country:                  r.Country,
		City:                     r.City,
		Address:                  r.Address,
		Category:                 domain.BusinessCategory(r.Category),
		MaxAdmins:                r.MaxAdmins,
		IsActive:                 r.IsActive,
		AuditFields:              ToDomainAudit(r.CreatedAt, r.UpdatedAt),
	}
}

// ToDomainBusinessSlice converts a slice of records.
func ToDomainBusinessSlice(rs []dto.BusinessRecord) []domain.Business {
	out := make([]domain.Business, len(rs))
	for i, r := range rs {
		out[i] = ToDomainBusiness(r)
	}
	return out
}

// ToBusinessCreateRequest builds the create body, applying the default admin limit.
func ToBusinessCreateRequest(f domain.BusinessForm) dto.BusinessWriteRequest {
	req := ToBusinessPatchRequest(f)
	if req.MaxAdmins == 0 {
		req.MaxAdmins = domain.DefaultMaxAdmins
	}
	return req
}

// ToBusinessPatchRequest builds a body carrying only the non-empty fields.
func ToBusinessPatchRequest(f domain.BusinessForm) dto.BusinessWriteRequest {
	return dto.BusinessWriteRequest{
		NameEn:                   strings.TrimSpace(f.NameEn),
		NameAr:                   strings.TrimSpace(f.NameAr),
		LegalNameEn:              strings.TrimSpace(f.LegalNameEn),
		LegalNameAr:              strings.TrimSpace(f.LegalNameAr),
		TaxNumber:                strings.TrimSpace(f.TaxNumber),
		CommercialRegisterNumber: strings.TrimSpace(f.CommercialRegisterNumber),
		DomainURL:                strings.TrimSpace(f.DomainURL),
		Country:                  strings.TrimSpace(f.Country),
		City:                     strings.TrimSpace(f.City),
		Address:                  strings.TrimSpace(f.Address),
		Category:                 string(f.Category),
		MaxAdmins:                f.MaxAdmins,
	}
}
