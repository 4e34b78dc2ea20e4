package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// 会话模式
const (
	SessionModeStatic = "static" // 固定令牌会话（默认）
	SessionModeJWT    = "jwt"    // JWT签名会话
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Database
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Server
	ServerPort string

	// Redis（可选，RedisHost为空时不启用）
	RedisHost string
	RedisPort string
	RedisDB   int

	// Admin认证
	// 注意：这两项缺失时不在启动阶段报错，由凭证网关和会话中间件
	// 在请求时拒绝访问（fail closed），并返回配置错误
	AdminPassword string
	AdminToken    string

	// 会话模式: "static"(默认) 或 "jwt"
	SessionMode  string
	JWTSecretKey string

	// CORS允许的来源
	AllowedOrigin string
}

// LoadConfig loads config from environment variables based on ENV_TYPE
func LoadConfig() *Config {
	// Get environment type (default to LOCAL if not set)
	envType := strings.ToUpper(getEnv("ENV_TYPE", "LOCAL"))
	if envType != "LOCAL" && envType != "SERVER" {
		fmt.Printf("Warning: Unknown ENV_TYPE '%s', defaulting to LOCAL environment\n", envType)
		envType = "LOCAL"
	}

	fmt.Printf("Loading configuration for environment: %s\n", envType)

	return &Config{
		// Environment type
		EnvType: envType,

		// Database config
		DBHost:     getEnvRequired("DB_HOST"),
		DBUser:     getEnvRequired("DB_USER"),
		DBPassword: getEnvRequired("DB_PASSWORD"),
		DBName:     getEnvRequired("DB_NAME"),
		DBPort:     getEnv("DB_PORT", "3306"),

		// Server config
		ServerPort: getEnv("SERVER_PORT", "5000"),

		// Redis config
		RedisHost: getEnv("REDIS_HOST", ""),
		RedisPort: getEnv("REDIS_PORT", "6379"),
		RedisDB:   getEnvAsInt("REDIS_DB", 0),

		// Admin config
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminToken:    getEnv("ADMIN_TOKEN", ""),

		// Session config
		SessionMode:  getEnv("SESSION_MODE", SessionModeStatic),
		JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),

		// CORS config
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
	}
}

// IsProduction 判断是否为生产环境（影响Cookie的Secure属性和gin模式）
func (c *Config) IsProduction() bool {
	return c.EnvType == "SERVER"
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// RedisEnabled 判断是否配置了Redis
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// 要求必须提供环境变量的辅助函数
func getEnvRequired(key string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	panic(fmt.Sprintf("Required environment variable %s is not set", key))
}
