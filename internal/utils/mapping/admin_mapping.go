package mapping

import (
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// ToDomainAdmin converts a wire AdminRecord to a domain Admin.
// A missing is_active flag is reported as active.
func ToDomainAdmin(r dto.AdminRecord) domain.Admin {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return domain.Admin{
		ID:          r.ID.ID(),
		FullName:    r.FullName,
		Email:       r.Email,
		BusinessID:  r.Business.ID(),
		IsActive:    active,
		AuditFields: domain.AuditFields{CreatedAt: r.CreatedAt},
	}
}

// ToDomainAdminSlice converts a slice of records.
func ToDomainAdminSlice(rs []dto.AdminRecord) []domain.Admin {
	out := make([]domain.Admin, len(rs))
	for i, r := range rs {
		out[i] = ToDomainAdmin(r)
	}
	return out
}

// ToCreateAdminRequest builds the create body.
func ToCreateAdminRequest(in domain.AdminInput) dto.CreateAdminRequest {
	return dto.CreateAdminRequest{
		FullName: in.FullName,
		Email:    in.Email,
		Password: in.Password,
		Business: int64(in.BusinessID),
	}
}

// ToUpdateAdminRequest builds the manage body.
func ToUpdateAdminRequest(p domain.AdminPatch) dto.UpdateAdminRequest {
	return dto.UpdateAdminRequest{
		ID:       int64(p.ID),
		FullName: p.FullName,
		Email:    p.Email,
		Password: p.Password,
		IsActive: p.IsActive,
	}
}
