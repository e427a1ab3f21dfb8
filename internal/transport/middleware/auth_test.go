package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/voyago/api/internal/entity"
	"github.com/voyago/api/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	router := gin.New()
	router.Use(Identify(tokens))
	router.GET("/open", func(c *gin.Context) {
		identity := IdentityFrom(c)
		if identity == nil {
			c.JSON(http.StatusOK, gin.H{"user_id": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID})
	})
	router.GET("/private", RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, tokens
}

func TestIdentifyLeavesAnonymousRequestsAlone(t *testing.T) {
	router, _ := newAuthRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz"},
		{name: "garbage token", header: "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/open", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"user_id": ""}`, rec.Body.String())
		})
	}
}

func TestIdentifyAttachesClaims(t *testing.T) {
	router, tokens := newAuthRouter(t)

	token, err := tokens.Issue("user-42", string(entity.RoleClient))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id": "user-42"}`, rec.Body.String())
}

func TestRequireAuth(t *testing.T) {
	router, tokens := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := tokens.Issue("user-1", string(entity.RoleClient))
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	router, tokens := newAuthRouter(t)

	tests := []struct {
		name     string
		role     string
		expected int
	}{
		{name: "anonymous gets 401", role: "", expected: http.StatusUnauthorized},
		{name: "client gets 403", role: string(entity.RoleClient), expected: http.StatusForbidden},
		{name: "admin gets through", role: string(entity.RoleAdmin), expected: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.role != "" {
				token, err := tokens.Issue("user-1", tt.role)
				require.NoError(t, err)
				req.Header.Set("Authorization", "Bearer "+token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
