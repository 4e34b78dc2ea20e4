package container

import (
	"sync"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"rsvp-http-service/internal/domain/services"
	"rsvp-http-service/internal/infrastructure/config"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 认证相关服务
	adminService services.InterfaceAdminService
	sessionStore services.InterfaceSessionStore

	// 业务服务
	guestService  services.InterfaceGuestService
	reportService services.InterfaceReportService

	// 命名覆盖表，测试时可以用Register替换具体实现
	overrides map[string]interface{}

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:        db,
		config:    cfg,
		redis:     redisClient,
		overrides: make(map[string]interface{}),
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 认证相关服务
	c.adminService = services.NewAdminService(c.config)
	c.sessionStore = services.NewSessionStore(c.config)

	// 业务服务
	c.guestService = services.NewGuestService(c.db)
	c.reportService = services.NewReportService()
}

// Register 按名称替换服务实现（供测试注入桩实现）
func (c *ServiceContainer) Register(name string, service interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overrides[name] = service
}

// GetService 根据名称获取服务实例
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if svc, ok := c.overrides[name]; ok {
		return svc
	}

	switch name {
	case "admin":
		return c.adminService
	case "session":
		return c.sessionStore
	case "guest":
		return c.guestService
	case "report":
		return c.reportService
	default:
		return nil
	}
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	return c.db
}

// GetRedis 获取Redis客户端（未配置时为nil）
func (c *ServiceContainer) GetRedis() *redis.Client {
	return c.redis
}
