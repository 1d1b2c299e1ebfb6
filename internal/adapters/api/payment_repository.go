package api

import (
	"context"
	"net/http"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/utils/mapping"
)

const paymentsPath = "/api/dashboard/business/payments/"

type PaymentRepository struct {
	client *Client
}

var _ repositories.PaymentRepositoryFacade = (*PaymentRepository)(nil)

func NewPaymentRepository(c *Client) *PaymentRepository {
	return &PaymentRepository{client: c}
}

func (r *PaymentRepository) ListPayments(ctx context.Context, params dto.ListParams) ([]domain.Payment, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, paymentsPath, params.Values("business"), nil)
	if err != nil {
		return nil, err
	}
	recs, err := decodeList[dto.PaymentRecord](raw)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainPaymentSlice(recs), nil
}

func (r *PaymentRepository) FindPaymentByID(ctx context.Context, id domain.ID) (domain.Payment, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, idPath(paymentsPath, id), nil, nil)
	if err != nil {
		return domain.Payment{}, err
	}
	rec, err := decode[dto.PaymentRecord](raw)
	if err != nil {
		return domain.Payment{}, err
	}
	return mapping.ToDomainPayment(rec), nil
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, in domain.PaymentInput) (domain.Payment, error) {
	raw, err := r.client.Do(ctx, http.MethodPost, paymentsPath, nil, mapping.ToCreatePaymentRequest(in))
	if err != nil {
		return domain.Payment{}, err
	}
	p := mapping.ToDomainPayment(decodeLenient[dto.PaymentRecord](raw))
	if p.BusinessID == 0 {
		p.BusinessID = in.BusinessID
	}
	return p, nil
}

func (r *PaymentRepository) UpdatePayment(ctx context.Context, id domain.ID, patch domain.PaymentPatch) (domain.Payment, error) {
	raw, err := r.client.Do(ctx, http.MethodPatch, idPath(paymentsPath, id), nil, mapping.ToUpdatePaymentRequest(patch))
	if err != nil {
		return domain.Payment{}, err
	}
	return mapping.ToDomainPayment(decodeLenient[dto.PaymentRecord](raw)), nil
}

func (r *PaymentRepository) DeletePayment(ctx context.Context, id domain.ID) error {
	_, err := r.client.Do(ctx, http.MethodDelete, idPath(paymentsPath, id), nil, nil)
	return err
}
