package api

import (
	"context"
	"net/http"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/utils/mapping"
)

const clientsPath = "/api/dashboard/clients/"

type ClientRepository struct {
	client *Client
}

var _ repositories.ClientRepositoryFacade = (*ClientRepository)(nil)

func NewClientRepository(c *Client) *ClientRepository {
	return &ClientRepository{client: c}
}

func (r *ClientRepository) ListClients(ctx context.Context, params dto.ListParams) ([]domain.Client, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, clientsPath, params.Values("business"), nil)
	if err != nil {
		return nil, err
	}
	recs, err := decodeList[dto.ClientRecord](raw)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainClientSlice(recs), nil
}

func (r *ClientRepository) FindClientByID(ctx context.Context, id domain.ID) (domain.Client, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, idPath(clientsPath, id), nil, nil)
	if err != nil {
		return domain.Client{}, err
	}
	rec, err := decode[dto.ClientRecord](raw)
	if err != nil {
		return domain.Client{}, err
	}
	return mapping.ToDomainClient(rec), nil
}

func (r *ClientRepository) CreateClient(ctx context.Context, in domain.ClientInput) (domain.Client, error) {
	raw, err := r.client.Do(ctx, http.MethodPost, clientsPath, nil, mapping.ToCreateClientRequest(in))
	if err != nil {
		return domain.Client{}, err
	}
	c := mapping.ToDomainClient(decodeLenient[dto.ClientRecord](raw))
	if c.BusinessID == 0 {
		c.BusinessID = in.BusinessID
	}
	return c, nil
}

func (r *ClientRepository) UpdateClient(ctx context.Context, id domain.ID, patch domain.ClientPatch) (domain.Client, error) {
	raw, err := r.client.Do(ctx, http.MethodPatch, idPath(clientsPath, id), nil, mapping.ToUpdateClientRequest(patch))
	if err != nil {
		return domain.Client{}, err
	}
	return mapping.ToDomainClient(decodeLenient[dto.ClientRecord](raw)), nil
}

func (r *ClientRepository) DeleteClient(ctx context.Context, id domain.ID) error {
	_, err := r.client.Do(ctx, http.MethodDelete, idPath(clientsPath, id), nil, nil)
	return err
}
