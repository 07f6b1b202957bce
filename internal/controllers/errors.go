package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitbyte-be/internal/middleware"
	"fitbyte-be/internal/service"
)

// respondError maps service errors onto HTTP statuses.
// Unknown errors are logged and reported as 500 without internals.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidActivityType),
		errors.Is(err, service.ErrInvalidDoneAt),
		errors.Is(err, service.ErrInvalidDuration),
		errors.Is(err, service.ErrFileMissing),
		errors.Is(err, service.ErrFileTooLarge),
		errors.Is(err, service.ErrUnsupportedFileType):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidPassword):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrActivityNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrEmailExists):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}

// currentUserID reads the id AuthMiddleware stored on the context.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "User ID not found in token",
		})
		return "", false
	}
	return userID, true
}
