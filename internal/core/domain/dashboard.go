package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats summarises platform-wide counts for the overview page.
type DashboardStats struct {
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

// ActivityType identifies the source of a recent activity entry.
type ActivityType string

const (
	ActivityPayment ActivityType = "payment"
	ActivityClient  ActivityType = "client"
)

// Activity is one line in the recent activity feed.
type Activity struct {
	ID          string           `json:"id"`
	Type        ActivityType     `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}
