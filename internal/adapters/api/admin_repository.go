package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/utils/mapping"
)

const (
	adminsPath      = "/api/dashboard/admins"
	adminCreatePath = "/api/dashboard/admin/create/"
	adminManagePath = "/api/dashboard/admin/manage/"
)

type AdminRepository struct {
	client *Client
}

var _ repositories.AdminRepositoryFacade = (*AdminRepository)(nil)

func NewAdminRepository(c *Client) *AdminRepository {
	return &AdminRepository{client: c}
}

func (r *AdminRepository) ListAdmins(ctx context.Context, params dto.ListParams) ([]domain.Admin, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, adminsPath, params.Values("business"), nil)
	if err != nil {
		return nil, err
	}
	recs, err := decodeList[dto.AdminRecord](raw)
	if err != nil {
		return nil, err
	}
	admins := mapping.ToDomainAdminSlice(recs)
	if params.Business != 0 {
		for i := range admins {
			if admins[i].BusinessID == 0 {
				admins[i].BusinessID = domain.ID(params.Business)
			}
		}
	}
	return admins, nil
}

func (r *AdminRepository) CreateAdmin(ctx context.Context, in domain.AdminInput) (domain.Admin, error) {
	raw, err := r.client.Do(ctx, http.MethodPost, adminCreatePath, nil, mapping.ToCreateAdminRequest(in))
	if err != nil {
		return domain.Admin{}, err
	}
	a := mapping.ToDomainAdmin(decodeLenient[dto.AdminRecord](raw))
	if a.BusinessID == 0 {
		a.BusinessID = in.BusinessID
	}
	if a.FullName == "" && a.Email == "" {
		a.FullName, a.Email = in.FullName, in.Email
	}
	return a, nil
}

// UpdateAdmin addresses the admin by the id carried in the body.
func (r *AdminRepository) UpdateAdmin(ctx context.Context, patch domain.AdminPatch) (domain.Admin, error) {
	raw, err := r.client.Do(ctx, http.MethodPut, adminManagePath, nil, mapping.ToUpdateAdminRequest(patch))
	if err != nil {
		return domain.Admin{}, err
	}
	return mapping.ToDomainAdmin(decodeLenient[dto.AdminRecord](raw)), nil
}

// DeleteAdmin sends the id as a multipart form field; this endpoint does not
// take the id in the path.
func (r *AdminRepository) DeleteAdmin(ctx context.Context, id domain.ID) error {
	fields := map[string]string{"id": strconv.FormatInt(int64(id), 10)}
	_, err := r.client.DoMultipart(ctx, http.MethodDelete, adminManagePath, fields, nil)
	return err
}
