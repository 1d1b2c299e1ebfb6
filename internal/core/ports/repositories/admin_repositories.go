package repositories

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// AdminReader defines read operations for admin data. The backend offers no
// admin detail endpoint.
type AdminReader interface {
	ListAdmins(ctx context.Context, params dto.ListParams) ([]domain.Admin, error)
}

// AdminWriter defines write operations for admin data
type AdminWriter interface {
	CreateAdmin(ctx context.Context, in domain.AdminInput) (domain.Admin, error)
	UpdateAdmin(ctx context.Context, patch domain.AdminPatch) (domain.Admin, error)
	DeleteAdmin(ctx context.Context, id domain.ID) error
}

// AdminRepositoryFacade combines all admin-related repository interfaces
type AdminRepositoryFacade interface {
	AdminReader
	AdminWriter
}
