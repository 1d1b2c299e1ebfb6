package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/bizdash/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// NewRecordWindow bounds the "new in the last period" counters.
	NewRecordWindow = 30 * 24 * time.Hour
	// RecentActivityLimit caps the aggregated activity feed.
	RecentActivityLimit = 10
)

// DashboardService builds the overview figures, preferring the backend's
// aggregate endpoints and computing them from the entity lists otherwise.
type DashboardService struct {
	BaseService
	dashboard  portsrepo.DashboardRepository
	businesses portsrepo.BusinessReader
	clients    portsrepo.ClientReader
	payments   portsrepo.PaymentReader
	now        func() time.Time
}

func NewDashboardService(repos portsrepo.RepositoryProvider) *DashboardService {
	return &DashboardService{
		dashboard:  repos.DashboardRepo,
		businesses: repos.BusinessRepo,
		clients:    repos.ClientRepo,
		payments:   repos.PaymentRepo,
		now:        time.Now,
	}
}

var _ portssvc.DashboardSvc = (*DashboardService)(nil)

// Stats falls back to aggregation on any failure of the stats endpoint.
// Admin totals stay zero in that case: admins can only be listed per business.
func (s *DashboardService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	stats, err := s.dashboard.FetchStats(ctx)
	if err == nil {
		return stats, nil
	}
	s.LogWarn(ctx, "Stats endpoint unavailable, aggregating from entity lists", zap.Error(err))

	var (
		businesses []domain.Business
		clients    []domain.Client
		payments   []domain.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		businesses, err = s.businesses.ListBusinesses(gctx, dto.ListParams{})
		return err
	})
	g.Go(func() (err error) {
		clients, err = s.clients.ListClients(gctx, dto.ListParams{})
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.payments.ListPayments(gctx, dto.ListParams{})
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to aggregate dashboard stats")
		return domain.DashboardStats{}, fmt.Errorf("failed to aggregate dashboard stats: %w", err)
	}

	cutoff := s.now().Add(-NewRecordWindow)
	out := domain.DashboardStats{
		TotalBusinesses:     len(businesses),
		TotalClients:        len(clients),
		TotalPayments:       len(payments),
		TotalPaymentsAmount: decimal.Zero,
	}
	for _, b := range businesses {
		if b.Active() {
			out.ActiveBusinesses++
		}
		if b.CreatedAt.After(cutoff) {
			out.NewBusinesses++
		}
	}
	for _, c := range clients {
		if c.Active() {
			out.ActiveClients++
		}
		if c.CreatedAt.After(cutoff) {
			out.NewClients++
		}
	}
	for _, p := range payments {
		out.TotalPaymentsAmount = out.TotalPaymentsAmount.Add(p.AmountPaid)
		created := p.CreatedAt
		if created.IsZero() {
			created = p.PaymentDate.Time
		}
		if created.After(cutoff) {
			out.NewPayments++
		}
	}
	return out, nil
}

// RecentActivities falls back to merging payments and clients, newest first.
func (s *DashboardService) RecentActivities(ctx context.Context, params dto.ListParams) ([]domain.Activity, error) {
	activities, err := s.dashboard.FetchActivities(ctx, params)
	if err == nil {
		return activities, nil
	}
	s.LogWarn(ctx, "Activities endpoint unavailable, merging payments and clients", zap.Error(err))

	var (
		clients  []domain.Client
		payments []domain.Payment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		payments, err = s.payments.ListPayments(gctx, dto.ListParams{})
		return err
	})
	g.Go(func() (err error) {
		clients, err = s.clients.ListClients(gctx, dto.ListParams{})
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to build recent activities")
		return nil, fmt.Errorf("failed to build recent activities: %w", err)
	}
	return mergeActivities(payments, clients), nil
}

func mergeActivities(payments []domain.Payment, clients []domain.Client) []domain.Activity {
	out := make([]domain.Activity, 0, len(payments)+len(clients))
	for _, p := range payments {
		if p.CreatedAt.IsZero() {
			continue
		}
		amount := p.AmountPaid
		desc := p.Note
		if desc == "" {
			method := string(p.PaymentMethod)
			if method == "" {
				method = "N/A"
			}
			desc = "Payment via " + method
		}
		out = append(out, domain.Activity{
			ID:          fmt.Sprintf("payment-%d", p.ID),
			Type:        domain.ActivityPayment,
			Title:       "Payment of $" + amount.StringFixed(2),
			Description: desc,
			Date:        p.CreatedAt,
			Amount:      &amount,
		})
	}
	for _, c := range clients {
		if c.CreatedAt.IsZero() {
			continue
		}
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("Client #%d", c.ID)
		}
		desc := c.Email
		if desc == "" {
			desc = c.Phone
		}
		out = append(out, domain.Activity{
			ID:          fmt.Sprintf("client-%d", c.ID),
			Type:        domain.ActivityClient,
			Title:       "New client: " + name,
			Description: desc,
			Date:        c.CreatedAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > RecentActivityLimit {
		out = out[:RecentActivityLimit]
	}
	return out
}
