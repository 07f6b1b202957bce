package models

// AuthRequest is the body of both POST /v1/register and POST /v1/login
type AuthRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=32"`
}
