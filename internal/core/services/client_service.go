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

// ClientService caches clients and drives their CRUD calls.
type ClientService struct {
	BaseService
	repo  portsrepo.ClientRepositoryFacade
	store *store.EntityStore[domain.Client]
}

func NewClientService(repo portsrepo.ClientRepositoryFacade) *ClientService {
	return &ClientService{repo: repo, store: store.New[domain.Client]()}
}

var _ portssvc.ClientSvcFacade = (*ClientService)(nil)

func (s *ClientService) FetchClients(ctx context.Context, params dto.ListParams) ([]domain.Client, error) {
	return runFetchAll(ctx, s.store, "clients", func(ctx context.Context) ([]domain.Client, error) {
		return s.repo.ListClients(ctx, params)
	})
}

func (s *ClientService) FetchClient(ctx context.Context, id domain.ID) (domain.Client, error) {
	return runFetchOne(ctx, s.store, "client", id, func(ctx context.Context) (domain.Client, error) {
		return s.repo.FindClientByID(ctx, id)
	})
}

func (s *ClientService) CreateClient(ctx context.Context, in domain.ClientInput) (domain.Client, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	return runCreate(ctx, s.store, "client", in, func(ctx context.Context) (domain.Client, error) {
		return s.repo.CreateClient(ctx, in)
	})
}

// UpdateClient never moves a client to another business.
func (s *ClientService) UpdateClient(ctx context.Context, id domain.ID, patch domain.ClientPatch) (domain.Client, error) {
	return runUpdate(ctx, s.store, "client", id, patch, func(ctx context.Context) (domain.Client, error) {
		updated, err := s.repo.UpdateClient(ctx, id, patch)
		if err != nil || updated.ID != 0 {
			return updated, err
		}
		c := s.cached(id)
		if patch.Name != "" {
			c.Name = patch.Name
		}
		if patch.Email != "" {
			c.Email = patch.Email
		}
		if patch.Phone != "" {
			c.Phone = patch.Phone
		}
		return c, nil
	})
}

func (s *ClientService) DeleteClient(ctx context.Context, id domain.ID) error {
	return runDelete[domain.Client](ctx, s.store, "client", id, func(ctx context.Context) error {
		return s.repo.DeleteClient(ctx, id)
	})
}

func (s *ClientService) ClientState() store.Slice[domain.Client] {
	return s.store.Snapshot()
}

func (s *ClientService) cached(id domain.ID) domain.Client {
	snap := s.store.Snapshot()
	if c, ok := snap.Find(id); ok {
		return c
	}
	if snap.Current != nil && snap.Current.ID == id {
		return *snap.Current
	}
	return domain.Client{ID: id}
}
