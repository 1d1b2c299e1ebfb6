package repositories

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	ListClients(ctx context.Context, params dto.ListParams) ([]domain.Client, error)
	FindClientByID(ctx context.Context, id domain.ID) (domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	CreateClient(ctx context.Context, in domain.ClientInput) (domain.Client, error)
	UpdateClient(ctx context.Context, id domain.ID, patch domain.ClientPatch) (domain.Client, error)
	DeleteClient(ctx context.Context, id domain.ID) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
