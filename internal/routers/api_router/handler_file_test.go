package api_router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/haierkeys/data-drive-service/internal/app"
	"github.com/haierkeys/data-drive-service/internal/dao"
	pkgapp "github.com/haierkeys/data-drive-service/pkg/app"
	"github.com/haierkeys/data-drive-service/pkg/code"

	"github.com/creasty/defaults"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newFileTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &app.AppConfig{}
	if err := defaults.Set(cfg); err != nil {
		t.Fatal(err)
	}

	db, err := dao.NewDBEngineWithConfig(dao.Database{
		Type: "sqlite",
		Path: filepath.Join(t.TempDir(), "test.db"),
	}, "test")
	if err != nil {
		t.Fatal(err)
	}

	a, err := app.NewApp(cfg, zap.NewNop(), db)
	if err != nil {
		t.Fatal(err)
	}

	h := NewFileHandler(a)
	r := gin.New()
	r.POST("/api/file", func(c *gin.Context) {
		c.Set("user_token", &pkgapp.UserEntity{UID: 1})
		h.Create(c)
	})
	return r
}

// 非 multipart 请求体应按参数错误处理，而不是按超出大小限制处理
func TestFileHandler_Create_NotMultipartBody(t *testing.T) {
	r := newFileTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/file", strings.NewReader("folderId=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res struct {
		Code int `json:"code"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, code.ErrorInvalidParams.Code(), res.Code)
	assert.NotEqual(t, code.ErrorFileTooLarge.Code(), res.Code)
}
