package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tohidkhanbagani/expense-tracker/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.SupabaseClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Sub:  sub,
		Role: "authenticated",
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func authRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("SUPABASE_JWT_SECRET", testSecret)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/expenses/:user_id", AuthMiddleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := authRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/expenses/user-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	router := authRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/expenses/user-1", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareAllowsOwnUser(t *testing.T) {
	router := authRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/expenses/user-1", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareForbidsOtherUser(t *testing.T) {
	router := authRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/expenses/user-2", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
