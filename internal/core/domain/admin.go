package domain

// MinPasswordLength is the shortest admin password accepted client-side.
const MinPasswordLength = 6

// Admin is a business-scoped operator account. The password is write-only and
// never read back from the backend.
type Admin struct {
	ID         ID     `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	BusinessID ID     `json:"businessID"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}

// GetID implements store.Entity.
func (a Admin) GetID() ID { return a.ID }

// AdminCapacity is the admission-control view of a business admin limit.
// Remaining is not clamped so that an overflow stays visible.
type AdminCapacity struct {
	Max       int  `json:"max"`
	Current   int  `json:"current"`
	Pending   int  `json:"pending"`
	Remaining int  `json:"remaining"`
	CanAdd    bool `json:"canAdd"`
	// Rows has one entry per pending admin row, in row order.
	Rows []AdminRowCapacity `json:"rows"`
}

// AdminRowCapacity tells whether a pending admin row still fits the limit.
type AdminRowCapacity struct {
	Disabled bool `json:"disabled"`
	Warning  bool `json:"warning"`
}

// NewAdminCapacity projects rows pending admins onto a business with current
// admins and limit. Row i is disabled once current+i+1 exceeds limit.
func NewAdminCapacity(limit, current, rows int) AdminCapacity {
	c := AdminCapacity{
		Max:       limit,
		Current:   current,
		Pending:   rows,
		Remaining: limit - current - rows,
		CanAdd:    current+rows < limit,
		Rows:      make([]AdminRowCapacity, rows),
	}
	for i := range c.Rows {
		over := current+i+1 > limit
		c.Rows[i] = AdminRowCapacity{Disabled: over, Warning: over}
	}
	return c
}
