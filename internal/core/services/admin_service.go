package services

import (
	"context"
	"strings"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/core/store"
	"github.com/SscSPs/bizdash/internal/dto"
)

// AdminService caches business admins and drives their CRUD calls.
type AdminService struct {
	BaseService
	repo  portsrepo.AdminRepositoryFacade
	store *store.EntityStore[domain.Admin]
}

func NewAdminService(repo portsrepo.AdminRepositoryFacade) *AdminService {
	return &AdminService{repo: repo, store: store.New[domain.Admin]()}
}

var _ portssvc.AdminSvcFacade = (*AdminService)(nil)

func (s *AdminService) FetchAdmins(ctx context.Context, params dto.ListParams) ([]domain.Admin, error) {
	return runFetchAll(ctx, s.store, "admins", func(ctx context.Context) ([]domain.Admin, error) {
		return s.repo.ListAdmins(ctx, params)
	})
}

func (s *AdminService) CountAdminsForBusiness(businessID domain.ID) int {
	n := 0
	for _, a := range s.store.Snapshot().Items {
		if a.BusinessID == businessID {
			n++
		}
	}
	return n
}

func (s *AdminService) CreateAdmin(ctx context.Context, in domain.AdminInput) (domain.Admin, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	return runCreate(ctx, s.store, "admin", in, func(ctx context.Context) (domain.Admin, error) {
		return s.repo.CreateAdmin(ctx, in)
	})
}

// UpdateAdmin addresses the admin by patch.ID. A blank password is not sent.
func (s *AdminService) UpdateAdmin(ctx context.Context, patch domain.AdminPatch) (domain.Admin, error) {
	if patch.ID == 0 {
		return domain.Admin{}, apperrors.NewValidationError("id", "is required")
	}
	return runUpdate(ctx, s.store, "admin", patch.ID, patch, func(ctx context.Context) (domain.Admin, error) {
		updated, err := s.repo.UpdateAdmin(ctx, patch)
		if err != nil || updated.ID != 0 {
			return updated, err
		}
		a, ok := s.store.Snapshot().Find(patch.ID)
		if !ok {
			a = domain.Admin{ID: patch.ID, IsActive: true}
		}
		if patch.FullName != "" {
			a.FullName = patch.FullName
		}
		if patch.Email != "" {
			a.Email = patch.Email
		}
		if patch.IsActive != nil {
			a.IsActive = *patch.IsActive
		}
		return a, nil
	})
}

func (s *AdminService) DeleteAdmin(ctx context.Context, id domain.ID) error {
	return runDelete[domain.Admin](ctx, s.store, "admin", id, func(ctx context.Context) error {
		return s.repo.DeleteAdmin(ctx, id)
	})
}

func (s *AdminService) AdminState() store.Slice[domain.Admin] {
	return s.store.Snapshot()
}
