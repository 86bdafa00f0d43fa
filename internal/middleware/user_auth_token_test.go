package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/haierkeys/data-drive-service/pkg/app"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testSecretKey = "test-secret-key"

func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", UserAuthTokenWithConfig(testSecretKey), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": app.GetUID(c)})
	})
	return r
}

func TestUserAuthToken_MissingToken(t *testing.T) {
	r := newAuthTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserAuthToken_InvalidToken(t *testing.T) {
	r := newAuthTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("token", "not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserAuthToken_ValidToken(t *testing.T) {
	r := newAuthTestRouter()

	tm := app.NewTokenManager(app.TokenConfig{
		SecretKey: testSecretKey,
		Expiry:    time.Hour,
	})
	token, err := tm.Generate(42, "alice", "127.0.0.1")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"uid":42`)
}
