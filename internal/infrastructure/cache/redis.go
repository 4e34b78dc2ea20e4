package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"rsvp-http-service/internal/infrastructure/config"
	"rsvp-http-service/pkg/logger"
)

// NewRedisClient 根据配置构造Redis客户端
// 未配置Redis时返回nil，调用方据此回退到进程内实现
func NewRedisClient(cfg *config.Config) *redis.Client {
	if !cfg.RedisEnabled() {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warning("Redis连接测试失败: %v", err)
	} else {
		logger.Info("Redis连接成功: %s", cfg.GetRedisAddr())
	}
	return client
}
