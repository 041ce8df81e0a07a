package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticketly/internal/shared/config"
	"ticketly/internal/shared/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: testSecret},
	}
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func accessToken(t *testing.T, role string) string {
	return signToken(t, jwt.MapClaims{
		"user_id": "11111111-1111-1111-1111-111111111111",
		"email":   "alice@example.com",
		"role":    role,
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
}

func newProtectedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append([]gin.HandlerFunc{middleware.JWTAuth(testConfig())}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("user_role"),
		})
	})
	router.GET("/protected", chain...)
	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	rec := doRequest(newProtectedRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	rec := doRequest(newProtectedRouter(), "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	rec := doRequest(newProtectedRouter(), "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expired := signToken(t, jwt.MapClaims{
		"user_id": "11111111-1111-1111-1111-111111111111",
		"role":    "user",
		"type":    "access",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	rec := doRequest(newProtectedRouter(), "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_RefreshTokenRejected(t *testing.T) {
	refresh := signToken(t, jwt.MapClaims{
		"user_id": "11111111-1111-1111-1111-111111111111",
		"role":    "user",
		"type":    "refresh",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	rec := doRequest(newProtectedRouter(), "Bearer "+refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	rec := doRequest(newProtectedRouter(), "Bearer "+accessToken(t, "user"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "11111111-1111-1111-1111-111111111111")
}

func TestRequireAdmin_ForbiddenForUser(t *testing.T) {
	router := newProtectedRouter(middleware.RequireAdmin())

	rec := doRequest(router, "Bearer "+accessToken(t, "user"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	router := newProtectedRouter(middleware.RequireAdmin())

	rec := doRequest(router, "Bearer "+accessToken(t, "admin"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_MissingRoleClaim(t *testing.T) {
	// A validly-signed access token without a role claim must be turned
	// away, not panic the handler chain.
	token := signToken(t, jwt.MapClaims{
		"user_id": "11111111-1111-1111-1111-111111111111",
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	router := newProtectedRouter(middleware.RequireAdmin())
	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoles_MissingRoleClaim(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"user_id": "11111111-1111-1111-1111-111111111111",
		"type":    "access",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	router := newProtectedRouter(middleware.RequireRoles("admin", "user"))
	rec := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoles(t *testing.T) {
	router := newProtectedRouter(middleware.RequireRoles("admin", "user"))

	rec := doRequest(router, "Bearer "+accessToken(t, "user"))
	assert.Equal(t, http.StatusOK, rec.Code)
}
