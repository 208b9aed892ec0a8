package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedApp(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Get("user_id"),
			"role":    c.Get("role"),
		})
	}, mw...)
	return e
}

func get(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingToken(t *testing.T) {
	e := protectedApp(JWTAuth(testSecret))

	assert.Equal(t, http.StatusUnauthorized, get(e, "").Code)
	// Wrong scheme counts as missing.
	assert.Equal(t, http.StatusUnauthorized, get(e, "Basic abc").Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	e := protectedApp(JWTAuth(testSecret))

	assert.Equal(t, http.StatusForbidden, get(e, "Bearer not-a-jwt").Code)

	// Wrong secret.
	tok := signToken(t, "other-secret", jwt.MapClaims{"id": "u1", "exp": time.Now().Add(time.Hour).Unix()})
	assert.Equal(t, http.StatusForbidden, get(e, "Bearer "+tok).Code)

	// Expired.
	tok = signToken(t, testSecret, jwt.MapClaims{"id": "u1", "exp": time.Now().Add(-time.Hour).Unix()})
	assert.Equal(t, http.StatusForbidden, get(e, "Bearer "+tok).Code)
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	e := protectedApp(JWTAuth(testSecret))

	tok := signToken(t, testSecret, jwt.MapClaims{
		"id": "u1", "email": "a@b.c", "role": "ADMIN",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := get(e, "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	assert.Contains(t, w.Body.String(), `"role":"ADMIN"`)
}

func TestRequireAdmin(t *testing.T) {
	e := protectedApp(JWTAuth(testSecret), RequireAdmin())

	admin := signToken(t, testSecret, jwt.MapClaims{"id": "u1", "role": "ADMIN", "exp": time.Now().Add(time.Hour).Unix()})
	assert.Equal(t, http.StatusOK, get(e, "Bearer "+admin).Code)

	user := signToken(t, testSecret, jwt.MapClaims{"id": "u2", "role": "USER", "exp": time.Now().Add(time.Hour).Unix()})
	w := get(e, "Bearer "+user)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin access required")

	// Token without any role claim.
	none := signToken(t, testSecret, jwt.MapClaims{"id": "u3", "exp": time.Now().Add(time.Hour).Unix()})
	assert.Equal(t, http.StatusForbidden, get(e, "Bearer "+none).Code)
}
