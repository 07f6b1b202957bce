package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitbyte-be/internal/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(svc *jwt.JWTService) *gin.Engine {
	router := gin.New()
	router.GET("/me", AuthMiddleware(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(ContextUserID),
			"email":   c.GetString(ContextEmail),
		})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", time.Hour, "fitbyte")
	token, err := svc.GenerateToken("user-123", "a@fit.io")
	require.NoError(t, err)

	other := jwt.NewJWTService("other-secret", time.Hour, "fitbyte")
	forged, err := other.GenerateToken("user-123", "a@fit.io")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"foreign signature", "Bearer " + forged, http.StatusUnauthorized},
	}

	router := protectedRouter(svc)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			if tt.status == http.StatusOK {
				assert.Equal(t, "user-123", body["user_id"])
				assert.Equal(t, "a@fit.io", body["email"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}

func TestRateLimiterRejectsAfterBurst(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.LimitMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// a different client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRateLimiterEvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.Stop()
	rl.Stop()

	rl.getVisitor("10.0.0.1")
	rl.mu.Lock()
	rl.visitors["10.0.0.1"].lastSeen = time.Now().Add(-time.Hour)
	rl.mu.Unlock()
	rl.getVisitor("10.0.0.2")

	rl.evictIdle(visitorTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "10.0.0.1")
	assert.Contains(t, rl.visitors, "10.0.0.2")
}
