// Package routers 组装 HTTP 路由与中间件
package routers

import (
	"time"

	"github.com/haierkeys/data-drive-service/internal/app"
	"github.com/haierkeys/data-drive-service/internal/middleware"
	"github.com/haierkeys/data-drive-service/internal/routers/api_router"
	"github.com/haierkeys/data-drive-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/user/login",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
	limiter.BucketRule{
		Key:          "/api/user/register",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter 创建 HTTP 路由
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()
	r.NoRoute(middleware.NoFound())

	api := r.Group("/api")
	{
		api.Use(middleware.TraceMiddleware())
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		userHandler := api_router.NewUserHandler(appContainer)
		folderHandler := api_router.NewFolderHandler(appContainer)
		fileHandler := api_router.NewFileHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)

		// 公开接口
		api.POST("/user/register", userHandler.Register)
		api.POST("/user/login", userHandler.Login)
		api.GET("/health", healthHandler.Check)
		api.GET("/version", versionHandler.ServerVersion)

		// 需要认证的接口
		auth := api.Group("", middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey))
		{
			auth.POST("/user/change_password", userHandler.UserChangePassword)
			auth.GET("/user/info", userHandler.UserInfo)

			auth.POST("/folder", folderHandler.Create)
			auth.GET("/folder/:id", folderHandler.Get)
			auth.GET("/folders", folderHandler.List)
			auth.PUT("/folder/:id", folderHandler.Update)
			auth.DELETE("/folder/:id", folderHandler.Delete)

			auth.POST("/file", fileHandler.Create)
			auth.GET("/file/:id", fileHandler.Get)
			auth.GET("/file/:id/content", fileHandler.GetContent)
			auth.PUT("/file/:id", fileHandler.Update)
			auth.DELETE("/file/:id", fileHandler.Delete)
		}
	}

	return r
}
