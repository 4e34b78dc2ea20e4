// @title           RSVP HTTP Service API
// @version         1.0
// @description     Event RSVP service: public attendance submission with an admin-guarded guest list, statistics and CSV export
// @host      localhost:5000
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"rsvp-http-service/internal/app/routes"
	"rsvp-http-service/internal/domain/models"
	"rsvp-http-service/internal/infrastructure/cache"
	"rsvp-http-service/internal/infrastructure/config"
	"rsvp-http-service/internal/infrastructure/database"
	Logger "rsvp-http-service/pkg/logger"
)

func main() {
	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		Logger.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.LoadConfig()

	// 管理密钥缺失不阻止启动，但要在日志里留下部署缺陷的记录
	if cfg.AdminPassword == "" {
		Logger.Warning("ADMIN_PASSWORD未配置，管理员登录将被拒绝")
	}
	if cfg.SessionMode == config.SessionModeStatic && cfg.AdminToken == "" {
		Logger.Warning("ADMIN_TOKEN未配置，所有受保护路由将被拒绝")
	}

	// 创建数据库连接池
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("无法创建数据库连接池: %v", err)
	}
	db := pool.GetDB()

	// 自动迁移：guests表只增不改，AutoMigrate足够
	if err := autoMigrate(db); err != nil {
		log.Fatalf("自动迁移失败: %v", err)
	}

	// 初始化Redis客户端（可选，未配置时为nil）
	redisClient := cache.NewRedisClient(cfg)

	// 初始化路由
	r := routes.SetupRouter(db, cfg, redisClient)

	// 打印连接池信息
	if stats, err := pool.Stats(); err == nil {
		Logger.Info("数据库连接池状态: %+v", stats)
	}

	// 启动服务器 - 监听所有接口(0.0.0.0)而不是只监听localhost
	port := cfg.ServerPort
	Logger.Info("服务器启动在: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// autoMigrate 自动迁移所有模型（只添加新列和新表）
func autoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Guest{}); err != nil {
		return err
	}

	Logger.Info("数据库迁移完成")
	return nil
}
