package dto

import "time"

// AdminRecord is an admin as rendered by /api/dashboard/admins.
type AdminRecord struct {
	ID        ForeignKey `json:"id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Business  ForeignKey `json:"business"`
	IsActive  *bool      `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateAdminRequest is the POST body for /api/dashboard/admin/create/.
// The backend expects the relation under "business" here.
type CreateAdminRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Business int64  `json:"business"`
}

// UpdateAdminRequest is the PUT body for /api/dashboard/admin/manage/; the
// admin is addressed by the id inside the body.
type UpdateAdminRequest struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
}
