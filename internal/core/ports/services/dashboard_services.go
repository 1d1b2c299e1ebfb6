package services

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// DashboardSvc builds the overview page data.
type DashboardSvc interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
	RecentActivities(ctx context.Context, params dto.ListParams) ([]domain.Activity, error)
}
