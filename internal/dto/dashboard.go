package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatsResponse is the body of /api/dashboard/stats/ when the backend offers it.
type StatsResponse struct {
	TotalBusinesses     int             `json:"totalBusinesses"`
	TotalClients        int             `json:"totalClients"`
	TotalAdmins         int             `json:"totalAdmins"`
	TotalPayments       int             `json:"totalPayments"`
	TotalPaymentsAmount decimal.Decimal `json:"totalPaymentsAmount"`
	ActiveBusinesses    int             `json:"activeBusinesses"`
	ActiveClients       int             `json:"activeClients"`
	NewBusinesses       int             `json:"newBusinesses"`
	NewClients          int             `json:"newClients"`
	NewPayments         int             `json:"newPayments"`
}

// ActivityRecord is one entry of /api/dashboard/activities/.
type ActivityRecord struct {
	ID          any              `json:"id"`
	Type        string           `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}
