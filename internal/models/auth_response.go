package models

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Email string `json:"email"`
	Token string `json:"token"` // JWT token
}
