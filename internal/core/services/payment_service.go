package services

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/core/store"
	"github.com/SscSPs/bizdash/internal/dto"
)

// PaymentService caches payments and drives their CRUD calls.
type PaymentService struct {
	BaseService
	repo  portsrepo.PaymentRepositoryFacade
	store *store.EntityStore[domain.Payment]
}

func NewPaymentService(repo portsrepo.PaymentRepositoryFacade) *PaymentService {
	return &PaymentService{repo: repo, store: store.New[domain.Payment]()}
}

var _ portssvc.PaymentSvcFacade = (*PaymentService)(nil)

func (s *PaymentService) FetchPayments(ctx context.Context, params dto.ListParams) ([]domain.Payment, error) {
	return runFetchAll(ctx, s.store, "payments", func(ctx context.Context) ([]domain.Payment, error) {
		return s.repo.ListPayments(ctx, params)
	})
}

func (s *PaymentService) FetchPayment(ctx context.Context, id domain.ID) (domain.Payment, error) {
	return runFetchOne(ctx, s.store, "payment", id, func(ctx context.Context) (domain.Payment, error) {
		return s.repo.FindPaymentByID(ctx, id)
	})
}

// CreatePayment accepts the legacy "card" method and stores it as credit_card.
func (s *PaymentService) CreatePayment(ctx context.Context, in domain.PaymentInput) (domain.Payment, error) {
	in.PaymentMethod = domain.NormalizePaymentMethod(string(in.PaymentMethod))
	return runCreate(ctx, s.store, "payment", in, func(ctx context.Context) (domain.Payment, error) {
		return s.repo.CreatePayment(ctx, in)
	})
}

func (s *PaymentService) UpdatePayment(ctx context.Context, id domain.ID, patch domain.PaymentPatch) (domain.Payment, error) {
	if patch.PaymentMethod != "" {
		patch.PaymentMethod = domain.NormalizePaymentMethod(string(patch.PaymentMethod))
	}
	return runUpdate(ctx, s.store, "payment", id, patch, func(ctx context.Context) (domain.Payment, error) {
		updated, err := s.repo.UpdatePayment(ctx, id, patch)
		if err != nil || updated.ID != 0 {
			return updated, err
		}
		p, ok := s.store.Snapshot().Find(id)
		if !ok {
			p = domain.Payment{ID: id}
		}
		if patch.AmountPaid != nil {
			p.AmountPaid = *patch.AmountPaid
		}
		if patch.PaymentMethod != "" {
			p.PaymentMethod = patch.PaymentMethod
		}
		if patch.PaymentDate != nil {
			p.PaymentDate = *patch.PaymentDate
		}
		if patch.Note != nil {
			p.Note = *patch.Note
		}
		return p, nil
	})
}

// DeletePayment leaves the cache untouched when id is not in it.
func (s *PaymentService) DeletePayment(ctx context.Context, id domain.ID) error {
	return runDelete[domain.Payment](ctx, s.store, "payment", id, func(ctx context.Context) error {
		return s.repo.DeletePayment(ctx, id)
	})
}

func (s *PaymentService) PaymentState() store.Slice[domain.Payment] {
	return s.store.Snapshot()
}
