package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"rsvp-http-service/internal/app/controllers"
	"rsvp-http-service/internal/app/middleware"
	"rsvp-http-service/internal/domain/services"
	"rsvp-http-service/internal/domain/services/container"
	"rsvp-http-service/internal/infrastructure/config"
)

// 限流阈值：登录每分钟6次/IP，API整体每分钟120次/IP
const (
	loginRateLimit   = 6
	generalRateLimit = 120
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(corsMiddleware(cfg))

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)

	// 配置了Redis时限流计数切换为共享存储
	if redisClient != nil {
		middleware.UseRedisCounter(redisClient)
	}

	// 注册路由
	RegisterRoutes(r, serviceContainer)
	return r
}

// corsMiddleware 按配置的来源设置CORS响应头
// 只有显式配置了来源（非"*"）时才允许携带凭证Cookie
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	origin := cfg.AllowedOrigin
	if origin == "" {
		origin = "*"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		if origin != "*" {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+middleware.AdminTokenHeader)
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

// RegisterRoutes 配置所有API路由
func RegisterRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// 健康检查路由，不限流，不鉴权
	r.GET("/health", controllers.HandleHealthFunc())

	// API 路由根路径，整体按IP限流
	api := r.Group("/api")
	api.Use(middleware.IPRateLimiter("api", generalRateLimit))

	// Docker健康检查的兼容别名
	api.GET("/ping", controllers.HandleHealthFunc())

	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要会话的路由
	registerProtectedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 管理员登录，单独收紧限流
	api.POST("/admin/login", middleware.IPRateLimiter("login", loginRateLimit),
		controllers.HandleAdminFunc(container, "login"))
	api.POST("/admin/logout", controllers.HandleAdminFunc(container, "logout"))

	// RSVP提交，公开接口
	api.POST("/guests", controllers.HandleGuestFunc(container, "createGuest"))
}

// registerProtectedRoutes 注册需要管理会话的路由
// 会话校验在到达存储层之前执行
func registerProtectedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	sessionStore := container.GetService("session").(services.InterfaceSessionStore)

	guestGroup := api.Group("/guests")
	guestGroup.Use(middleware.RequireAdminSession(sessionStore))
	guestGroup.GET("", controllers.HandleGuestFunc(container, "getGuests"))
	guestGroup.GET("/stats", controllers.HandleGuestFunc(container, "getGuestStats"))
	guestGroup.GET("/export", controllers.HandleGuestFunc(container, "exportGuests"))
}
