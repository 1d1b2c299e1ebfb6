package mapping

import (
	"fmt"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/dto"
)

// ToDomainStats converts the stats endpoint body.
func ToDomainStats(r dto.StatsResponse) domain.DashboardStats {
	return domain.DashboardStats{
		TotalBusinesses:     r.TotalBusinesses,
		TotalClients:        r.TotalClients,
		TotalAdmins:         r.TotalAdmins,
		TotalPayments:       r.TotalPayments,
		TotalPaymentsAmount: r.TotalPaymentsAmount,
		ActiveBusinesses:    r.ActiveBusinesses,
		ActiveClients:       r.ActiveClients,
		NewBusinesses:       r.NewBusinesses,
		NewClients:          r.NewClients,
		NewPayments:         r.NewPayments,
	}
}

// ToDomainActivitySlice converts activity feed records.
func ToDomainActivitySlice(rs []dto.ActivityRecord) []domain.Activity {
	out := make([]domain.Activity, len(rs))
	for i, r := range rs {
		out[i] = domain.Activity{
			ID:          fmt.Sprint(r.ID),
			Type:        domain.ActivityType(r.Type),
			Title:       r.Title,
			Description: r.Description,
			Date:        r.Date,
			Amount:      r.Amount,
		}
	}
	return out
}
