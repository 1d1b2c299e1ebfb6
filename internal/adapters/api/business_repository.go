package api

import (
	"context"
	"net/http"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/utils/mapping"
)

const businessPath = "/api/dashboard/business/"

type BusinessRepository struct {
	client *Client
}

var _ repositories.BusinessRepositoryFacade = (*BusinessRepository)(nil)

func NewBusinessRepository(c *Client) *BusinessRepository {
	return &BusinessRepository{client: c}
}

func (r *BusinessRepository) ListBusinesses(ctx context.Context, params dto.ListParams) ([]domain.Business, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, businessPath, params.Values("business"), nil)
	if err != nil {
		return nil, err
	}
	recs, err := decodeList[dto.BusinessRecord](raw)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainBusinessSlice(recs), nil
}

func (r *BusinessRepository) FindBusinessByID(ctx context.Context, id domain.ID) (domain.Business, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, idPath(businessPath, id), nil, nil)
	if err != nil {
		return domain.Business{}, err
	}
	rec, err := decode[dto.BusinessRecord](raw)
	if err != nil {
		return domain.Business{}, err
	}
	return mapping.ToDomainBusiness(rec), nil
}

// CreateBusiness returns the echoed record. Some deployments answer with a
// message body only, in which case the result carries the submitted fields
// and a zero ID.
func (r *BusinessRepository) CreateBusiness(ctx context.Context, form domain.BusinessForm) (domain.Business, error) {
	req := mapping.ToBusinessCreateRequest(form)
	raw, err := r.client.Do(ctx, http.MethodPost, businessPath, nil, req)
	if err != nil {
		return domain.Business{}, err
	}
	rec := decodeLenient[dto.BusinessRecord](raw)
	if rec.ID == 0 {
		b := mapping.ToDomainBusiness(dto.BusinessRecord{
			NameEn:                   req.NameEn,
			NameAr:                   req.NameAr,
			LegalNameEn:              req.LegalNameEn,
			LegalNameAr:              req.LegalNameAr,
			TaxNumber:                req.TaxNumber,
			CommercialRegisterNumber: req.CommercialRegisterNumber,
			DomainURL:                req.DomainURL,
			Country:                  req.Country,
			City:                     req.City,
			Address:                  req.Address,
			Category:                 req.Category,
			MaxAdmins:                req.MaxAdmins,
		})
		return b, nil
	}
	return mapping.ToDomainBusiness(rec), nil
}

func (r *BusinessRepository) UpdateBusiness(ctx context.Context, id domain.ID, form domain.BusinessForm) (domain.Business, error) {
	raw, err := r.client.Do(ctx, http.MethodPatch, idPath(businessPath, id), nil, mapping.ToBusinessPatchRequest(form))
	if err != nil {
		return domain.Business{}, err
	}
	// a zero ID tells the caller the backend did not echo the record
	return mapping.ToDomainBusiness(decodeLenient[dto.BusinessRecord](raw)), nil
}

func (r *BusinessRepository) DeleteBusiness(ctx context.Context, id domain.ID) error {
	_, err := r.client.Do(ctx, http.MethodDelete, idPath(businessPath, id), nil, nil)
	return err
}
