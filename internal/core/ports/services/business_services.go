package services

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/store"
	"github.com/SscSPs/bizdash/internal/dto"
)

// BusinessReaderSvc defines read operations for business data
type BusinessReaderSvc interface {
	// FetchBusinesses replaces the cached list with the backend's.
	FetchBusinesses(ctx context.Context, params dto.ListParams) ([]domain.Business, error)
	// FetchBusiness fills the current-business slot.
	FetchBusiness(ctx context.Context, id domain.ID) (domain.Business, error)
	BusinessState() store.Slice[domain.Business]
}

// BusinessWriterSvc defines write operations for business data
type BusinessWriterSvc interface {
	CreateBusiness(ctx context.Context, form domain.BusinessForm) (domain.Business, error)
	UpdateBusiness(ctx context.Context, id domain.ID, form domain.BusinessForm) (domain.Business, error)
	DeleteBusiness(ctx context.Context, id domain.ID) error
}

// BusinessSvcFacade combines all business-related service interfaces
type BusinessSvcFacade interface {
	BusinessReaderSvc
	BusinessWriterSvc
}
