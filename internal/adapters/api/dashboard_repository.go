package api

import (
	"context"
	"net/http"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/utils/mapping"
)

const (
	statsPath      = "/api/dashboard/stats/"
	activitiesPath = "/api/dashboard/activities/"
)

type DashboardRepository struct {
	client *Client
}

var _ repositories.DashboardRepository = (*DashboardRepository)(nil)

func NewDashboardRepository(c *Client) *DashboardRepository {
	return &DashboardRepository{client: c}
}

func (r *DashboardRepository) FetchStats(ctx context.Context) (domain.DashboardStats, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, statsPath, nil, nil)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	resp, err := decode[dto.StatsResponse](raw)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return mapping.ToDomainStats(resp), nil
}

func (r *DashboardRepository) FetchActivities(ctx context.Context, params dto.ListParams) ([]domain.Activity, error) {
	raw, err := r.client.Do(ctx, http.MethodGet, activitiesPath, params.Values("business"), nil)
	if err != nil {
		return nil, err
	}
	recs, err := decodeList[dto.ActivityRecord](raw)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainActivitySlice(recs), nil
}
