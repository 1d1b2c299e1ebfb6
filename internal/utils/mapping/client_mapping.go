package mapping

import (
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// ToDomainClient converts a wire ClientRecord to a domain Client.
func ToDomainClient(r dto.ClientRecord) domain.Client {
	return domain.Client{
		ID:          r.ID.ID(),
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		BusinessID:  dto.First(r.Business, r.BusinessID),
		IsActive:    r.IsActive,
		AuditFields: ToDomainAudit(r.CreatedAt, r.UpdatedAt),
	}
}

// ToDomainClientSlice converts a slice of records.
func ToDomainClientSlice(rs []dto.ClientRecord) []domain.Client {
	out := make([]domain.Client, len(rs))
	for i, r := range rs {
		out[i] = ToDomainClient(r)
	}
	return out
}

// ToCreateClientRequest builds the create body.
func ToCreateClientRequest(in domain.ClientInput) dto.CreateClientRequest {
	return dto.CreateClientRequest{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		BusinessID: int64(in.BusinessID),
	}
}

// ToUpdateClientRequest builds the patch body.
func ToUpdateClientRequest(p domain.ClientPatch) dto.UpdateClientRequest {
	return dto.UpdateClientRequest{Name: p.Name, Email: p.Email, Phone: p.Phone}
}
