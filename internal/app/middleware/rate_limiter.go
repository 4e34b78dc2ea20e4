package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"rsvp-http-service/internal/error/code"
	"rsvp-http-service/internal/error/response"
	"rsvp-http-service/pkg/logger"
)

// 固定窗口限流：每个客户端IP在一个窗口内维护一个计数器
// 计数存储默认在进程内，配置了Redis时切换为共享计数，
// 多副本部署下仍然遵守同一组阈值

// CounterStore 限流计数存储接口
type CounterStore interface {
	// Incr 递增并返回窗口内的当前计数，窗口首次创建时设置过期
	Incr(key string, window time.Duration) (int, error)
}

// memoryCounterStore 进程内计数存储
type memoryCounterStore struct {
	mu      sync.Mutex
	windows map[string]*countWindow
}

type countWindow struct {
	count   int
	resetAt time.Time
}

func newMemoryCounterStore() *memoryCounterStore {
	return &memoryCounterStore{windows: make(map[string]*countWindow)}
}

// Incr 递增计数，窗口到期后重新开窗，顺带清理过期窗口
func (s *memoryCounterStore) Incr(key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	w, exists := s.windows[key]
	if !exists || now.After(w.resetAt) {
		s.windows[key] = &countWindow{count: 1, resetAt: now.Add(window)}
		s.sweep(now)
		return 1, nil
	}

	w.count++
	return w.count, nil
}

// 清理已过期的窗口，防止IP计数表无限增长
func (s *memoryCounterStore) sweep(now time.Time) {
	for key, w := range s.windows {
		if now.After(w.resetAt) {
			delete(s.windows, key)
		}
	}
}

// redisCounterCmds 计数用到的Redis命令子集，*redis.Client满足该接口
type redisCounterCmds interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// redisCounterStore Redis计数存储，INCR加EXPIRE实现固定窗口
type redisCounterStore struct {
	client redisCounterCmds
}

func (s *redisCounterStore) Incr(key string, window time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	// 计数键必须带TTL，否则残留的键会让该IP被永久限流
	// 进程在INCR和EXPIRE之间崩溃会留下无TTL的键，后续请求检测并补设
	needTTL := count == 1
	if !needTTL {
		if ttl, err := s.client.TTL(ctx, key).Result(); err == nil && ttl < 0 {
			needTTL = true
		}
	}
	if needTTL {
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			logger.Warning("设置限流窗口过期失败: key=%s err=%v", key, err)
		}
	}
	return int(count), nil
}

// 全局计数存储，默认进程内
var (
	counterStore   CounterStore = newMemoryCounterStore()
	counterStoreMu sync.RWMutex
)

// UseRedisCounter 切换限流计数到Redis
func UseRedisCounter(client *redis.Client) {
	counterStoreMu.Lock()
	defer counterStoreMu.Unlock()
	counterStore = &redisCounterStore{client: client}
}

// ResetCounterStore 恢复进程内计数存储（测试用）
func ResetCounterStore() {
	counterStoreMu.Lock()
	defer counterStoreMu.Unlock()
	counterStore = newMemoryCounterStore()
}

func getCounterStore() CounterStore {
	counterStoreMu.RLock()
	defer counterStoreMu.RUnlock()
	return counterStore
}

// RateLimiterConfig 限流器配置
type RateLimiterConfig struct {
	Max    int           // 窗口内允许的最大请求数
	Window time.Duration // 窗口长度
	Scope  string        // 计数键前缀，区分不同限流组
}

// DefaultRateLimiterConfig 默认限流器配置：每分钟120个请求
var DefaultRateLimiterConfig = RateLimiterConfig{
	Max:    120,
	Window: time.Minute,
	Scope:  "api",
}

// RateLimiter 创建按客户端IP的固定窗口限流中间件
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	// 使用默认配置或自定义配置
	cfg := DefaultRateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Max <= 0 {
		cfg.Max = DefaultRateLimiterConfig.Max
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultRateLimiterConfig.Window
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", cfg.Scope, c.ClientIP())

		count, err := getCounterStore().Incr(key, cfg.Window)
		if err != nil {
			// 计数存储不可用时放行请求：限流是保护措施，不应成为单点故障
			logger.Warning("限流计数失败: %v", err)
			c.Next()
			return
		}

		if count > cfg.Max {
			response.AbortFail(c, code.ErrTooManyRequests)
			return
		}

		c.Next()
	}
}

// IPRateLimiter 按IP限流，每分钟最多max个请求
func IPRateLimiter(scope string, max int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Max:    max,
		Window: time.Minute,
		Scope:  scope,
	})
}
