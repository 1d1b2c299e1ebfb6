package services

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/store"
	"github.com/SscSPs/bizdash/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	FetchClients(ctx context.Context, params dto.ListParams) ([]domain.Client, error)
	FetchClient(ctx context.Context, id domain.ID) (domain.Client, error)
	ClientState() store.Slice[domain.Client]
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, in domain.ClientInput) (domain.Client, error)
	UpdateClient(ctx context.Context, id domain.ID, patch domain.ClientPatch) (domain.Client, error)
	DeleteClient(ctx context.Context, id domain.ID) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
