package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthybuilds/Homespired-sub000/services"
)

// identityRouter mounts a checkout-style handler behind the optional
// identity middleware and returns a token for the configured administrator.
func identityRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("ADMIN_EMAIL", "studio@homespired.ng")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$04$unused.in.these.tests")
	require.NoError(t, services.InitJWTService("test-secret"))

	token, err := services.GetJWTService().GenerateAdminJWT("studio@homespired.ng")
	require.NoError(t, err)

	r := gin.New()
	r.Use(AdminIdentityMiddleware())
	r.GET("/checkout", func(c *gin.Context) {
		if IsAdmin(c) {
			c.String(http.StatusOK, "admin")
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	return r, token
}

func TestAdminIdentityAnonymousPassesThrough(t *testing.T) {
	r, _ := identityRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "no token is not a rejection")
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestAdminIdentityRecognizesBearerToken(t *testing.T) {
	r, token := identityRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())
}

func TestAdminIdentityRecognizesCookieToken(t *testing.T) {
	r, token := identityRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.AddCookie(&http.Cookie{Name: "admin_token", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())
}

func TestAdminIdentityTreatsBadTokenAsAnonymous(t *testing.T) {
	r, _ := identityRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "a bad token is treated as no token")
	assert.Equal(t, "anonymous", w.Body.String())
}

func TestAdminAuthMiddlewareRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AdminAuthMiddleware())
	r.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
