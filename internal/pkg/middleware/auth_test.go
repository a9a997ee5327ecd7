package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"microblog/internal/pkg/config"
	"microblog/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(jwtMgr *utils.JWTManager, optional bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	guard := Auth(jwtMgr)
	if optional {
		guard = OptionalAuth(jwtMgr)
	}
	r.GET("/probe", guard, func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUserID(c))
	})
	return r
}

func testJWT() *utils.JWTManager {
	return utils.NewJWTManager(config.JWTConfig{Secret: "test-secret-key-0123456789abcdef0123", Expire: 1})
}

func TestAuth(t *testing.T) {
	jwtMgr := testJWT()

	t.Run("Valid token passes and sets user", func(t *testing.T) {
		token, _ := jwtMgr.Generate("user-1")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		newTestRouter(jwtMgr, false).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", w.Body.String())
	})

	t.Run("Missing header rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)

		newTestRouter(jwtMgr, false).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Malformed header rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Token abc")

		newTestRouter(jwtMgr, false).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Tampered token rejected", func(t *testing.T) {
		token, _ := testJWT().Generate("user-1")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")

		newTestRouter(jwtMgr, false).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	jwtMgr := testJWT()

	t.Run("Anonymous request passes with empty user", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)

		newTestRouter(jwtMgr, true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Valid token sets viewer identity", func(t *testing.T) {
		token, _ := jwtMgr.Generate("viewer-1")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		newTestRouter(jwtMgr, true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "viewer-1", w.Body.String())
	})

	t.Run("Invalid token treated as anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer garbage")

		newTestRouter(jwtMgr, true).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
