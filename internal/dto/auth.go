package dto

// LoginRequest is the superuser login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenPair is the login response.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LogoutRequest is the superuser logout body.
type LogoutRequest struct {
	Refresh string `json:"refresh"`
}
