package repositories

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// BusinessReader defines read operations for business data
type BusinessReader interface {
	ListBusinesses(ctx context.Context, params dto.ListParams) ([]domain.Business, error)
	FindBusinessByID(ctx context.Context, id domain.ID) (domain.Business, error)
}

// BusinessWriter defines write operations for business data
type BusinessWriter interface {
	// CreateBusiness submits a new business. The backend does not always echo
	// the created record, in which case the returned ID is zero.
	CreateBusiness(ctx context.Context, form domain.BusinessForm) (domain.Business, error)
	// UpdateBusiness sends a partial update carrying only non-empty fields.
	UpdateBusiness(ctx context.Context, id domain.ID, form domain.BusinessForm) (domain.Business, error)
	DeleteBusiness(ctx context.Context, id domain.ID) error
}

// BusinessRepositoryFacade combines all business-related repository interfaces
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
}
