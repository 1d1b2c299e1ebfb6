package services

import (
	"context"
	"strings"

	"github.com/SscSPs/bizdash/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/core/store"
	"github.com/SscSPs/bizdash/internal/dto"
)

// BusinessService caches businesses and drives their CRUD calls.
type BusinessService struct {
	BaseService
	repo  portsrepo.BusinessRepositoryFacade
	store *store.EntityStore[domain.Business]
}

// NewBusinessService creates a new BusinessService with an empty cache.
func NewBusinessService(repo portsrepo.BusinessRepositoryFacade) *BusinessService {
	return &BusinessService{repo: repo, store: store.New[domain.Business]()}
}

var _ portssvc.BusinessSvcFacade = (*BusinessService)(nil)

func (s *BusinessService) FetchBusinesses(ctx context.Context, params dto.ListParams) ([]domain.Business, error) {
	return runFetchAll(ctx, s.store, "businesses", func(ctx context.Context) ([]domain.Business, error) {
		return s.repo.ListBusinesses(ctx, params)
	})
}

func (s *BusinessService) FetchBusiness(ctx context.Context, id domain.ID) (domain.Business, error) {
	return runFetchOne(ctx, s.store, "business", id, func(ctx context.Context) (domain.Business, error) {
		return s.repo.FindBusinessByID(ctx, id)
	})
}

// CreateBusiness returns a zero ID when the backend did not echo the record.
func (s *BusinessService) CreateBusiness(ctx context.Context, form domain.BusinessForm) (domain.Business, error) {
	form = form.Trimmed()
	return runCreate(ctx, s.store, "business", form, func(ctx context.Context) (domain.Business, error) {
		return s.repo.CreateBusiness(ctx, form)
	})
}

// UpdateBusiness sends only the non-empty fields of form.
func (s *BusinessService) UpdateBusiness(ctx context.Context, id domain.ID, form domain.BusinessForm) (domain.Business, error) {
	form = form.Trimmed()
	return runUpdate(ctx, s.store, "business", id, form, func(ctx context.Context) (domain.Business, error) {
		updated, err := s.repo.UpdateBusiness(ctx, id, form)
		if err != nil || updated.ID != 0 {
			return updated, err
		}
		return applyBusinessForm(s.cached(id), form), nil
	})
}

func (s *BusinessService) DeleteBusiness(ctx context.Context, id domain.ID) error {
	return runDelete[domain.Business](ctx, s.store, "business", id, func(ctx context.Context) error {
		return s.repo.DeleteBusiness(ctx, id)
	})
}

func (s *BusinessService) BusinessState() store.Slice[domain.Business] {
	return s.store.Snapshot()
}

// cached returns the list entry or current record for id, or a bare record.
func (s *BusinessService) cached(id domain.ID) domain.Business {
	snap := s.store.Snapshot()
	if b, ok := snap.Find(id); ok {
		return b
	}
	if snap.Current != nil && snap.Current.ID == id {
		return *snap.Current
	}
	return domain.Business{ID: id}
}

// applyBusinessForm overlays the non-empty fields of f onto b.
func applyBusinessForm(b domain.Business, f domain.BusinessForm) domain.Business {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&b.NameEn, f.NameEn)
	set(&b.NameAr, f.NameAr)
	set(&b.LegalNameEn, f.LegalNameEn)
	set(&b.LegalNameAr, f.LegalNameAr)
	set(&b.TaxNumber, f.TaxNumber)
	set(&b.CommercialRegisterNumber, f.CommercialRegisterNumber)
	set(&b.DomainURL, f.DomainURL)
	set(&b.Country, f.Country)
	set(&b.City, f.City)
	set(&b.Address, f.Address)
	if f.Category != "" {
		b.Category = f.Category
	}
	if f.MaxAdmins != 0 {
		b.MaxAdmins = f.MaxAdmins
	}
	return b
}
