package repositories

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// DashboardRepository reads the optional aggregate endpoints. Backends that
// do not offer them answer 404.
type DashboardRepository interface {
	FetchStats(ctx context.Context) (domain.DashboardStats, error)
	FetchActivities(ctx context.Context, params dto.ListParams) ([]domain.Activity, error)
}
