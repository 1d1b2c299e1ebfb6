package domain

// Client is an end customer that belongs to exactly one business. The
// business association is fixed once the client exists.
type Client struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BusinessID ID     `json:"businessID"`
	IsActive   *bool  `json:"isActive,omitempty"`
	AuditFields
}

// GetID implements store.Entity.
func (c Client) GetID() ID { return c.ID }

// Active treats an unreported flag as active.
func (c Client) Active() bool {
	return c.IsActive == nil || *c.IsActive
}
