package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fitbyte-be/internal/jwt"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header
// and stores the caller's id and email on the gin context.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, jwt.ErrMissingToken)
			return
		}
		if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
			abortUnauthorized(c, jwt.ErrInvalidToken)
			return
		}

		claims, err := jwtService.ValidateToken(header[7:])
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	message := "Invalid or missing token"
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		message = "Token has expired"
	case errors.Is(err, jwt.ErrMissingToken):
		message = "Authorization header is required"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
	})
}
