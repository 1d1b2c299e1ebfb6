package services

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/store"
	"github.com/SscSPs/bizdash/internal/dto"
)

// AdminReaderSvc defines read operations for admin data
type AdminReaderSvc interface {
	FetchAdmins(ctx context.Context, params dto.ListParams) ([]domain.Admin, error)
	// CountAdminsForBusiness counts cached admins of businessID.
	CountAdminsForBusiness(businessID domain.ID) int
	AdminState() store.Slice[domain.Admin]
}

// AdminWriterSvc defines write operations for admin data
type AdminWriterSvc interface {
	CreateAdmin(ctx context.Context, in domain.AdminInput) (domain.Admin, error)
	UpdateAdmin(ctx context.Context, patch domain.AdminPatch) (domain.Admin, error)
	DeleteAdmin(ctx context.Context, id domain.ID) error
}

// AdminSvcFacade combines all admin-related service interfaces
type AdminSvcFacade interface {
	AdminReaderSvc
	AdminWriterSvc
}
