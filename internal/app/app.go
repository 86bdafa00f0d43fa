// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"fmt"
	"time"

	"github.com/haierkeys/data-drive-service/internal/dao"
	"github.com/haierkeys/data-drive-service/internal/domain"
	"github.com/haierkeys/data-drive-service/internal/service"
	pkgapp "github.com/haierkeys/data-drive-service/pkg/app"
	"github.com/haierkeys/data-drive-service/pkg/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// Repository 层
	UserRepo   domain.UserRepository
	FolderRepo domain.FolderRepository
	FileRepo   domain.FileRepository

	// Service 层
	UserService   service.UserService
	FolderService service.FolderService
	FileService   service.FileService

	// 基础设施组件
	TokenManager pkgapp.TokenManager
	Storager     storage.Storager

	// 启动时间，供健康检查计算运行时长
	StartTime time.Time
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
// db: 数据库连接（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		DB:        db,
		StartTime: time.Now(),
	}

	// 初始化 DAO
	a.Dao = dao.New(db)

	// 初始化 TokenManager
	a.TokenManager = pkgapp.NewTokenManager(pkgapp.TokenConfig{
		SecretKey: cfg.Security.AuthTokenKey,
		Expiry:    cfg.GetTokenExpiry(),
	})

	// 初始化存储客户端
	storager, err := storage.NewClient(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("init storage client: %w", err)
	}
	a.Storager = storager

	// 初始化 Repository 层
	a.UserRepo = dao.NewUserRepository(a.Dao)
	a.FolderRepo = dao.NewFolderRepository(a.Dao)
	a.FileRepo = dao.NewFileRepository(a.Dao)

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := &service.ServiceConfig{
		User: service.UserServiceConfig{
			RegisterIsEnable: cfg.User.RegisterIsEnable,
		},
	}

	// 初始化 Service 层（依赖注入）
	a.UserService = service.NewUserService(a.UserRepo, a.TokenManager, logger, svcConfig)
	a.FolderService = service.NewFolderService(a.FolderRepo, a.FileRepo, a.Storager, logger)
	a.FileService = service.NewFileService(a.FileRepo, a.FolderRepo, a.Storager, logger)

	logger.Info("App container initialized successfully",
		zap.String("storageType", cfg.Storage.Type))

	return a, nil
}

// Close 释放应用容器持有的资源
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// GetAuthTokenKey 获取 Token 密钥
func (a *App) GetAuthTokenKey() string {
	return a.config.Security.AuthTokenKey
}

// IsProductionMode 是否为生产模式
// 根据日志配置中的 Production 字段判断
func (a *App) IsProductionMode() bool {
	return a.config.Log.Production
}
