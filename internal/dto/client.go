package dto

import "time"

// ClientRecord is a client as rendered by /api/dashboard/clients/.
type ClientRecord struct {
	ID         ForeignKey `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Business   ForeignKey `json:"business"`
	BusinessID ForeignKey `json:"business_id"`
	IsActive   *bool      `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CreateClientRequest is the POST body. The backend expects business_id here.
type CreateClientRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BusinessID int64  `json:"business_id"`
}

// UpdateClientRequest is the PATCH body. The business association is immutable.
type UpdateClientRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
