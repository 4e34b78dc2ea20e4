package services

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"rsvp-http-service/internal/infrastructure/config"
)

// InterfaceAdminService Admin凭证网关接口
type InterfaceAdminService interface {
	Authenticate(password string) error
}

// AdminService 提供管理员凭证校验
// 只负责比较逻辑，不持有会话状态（会话由SessionStore负责）
type AdminService struct {
	Config *config.Config
}

// NewAdminService 创建一个新的管理员服务
func NewAdminService(cfg *config.Config) InterfaceAdminService {
	return &AdminService{Config: cfg}
}

// Authenticate 校验提交的管理员密码
// 配置的密码是bcrypt哈希时用bcrypt比较，否则按字节恒定时间比较
// 服务端未配置密码时返回ErrMisconfigured（部署缺陷，不是密码错误）
func (s *AdminService) Authenticate(password string) error {
	configured := s.Config.AdminPassword
	if configured == "" {
		return ErrMisconfigured
	}

	if isBcryptHash(configured) {
		if err := bcrypt.CompareHashAndPassword([]byte(configured), []byte(password)); err != nil {
			return ErrInvalidCredential
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(configured)) != 1 {
		return ErrInvalidCredential
	}
	return nil
}

// 判断配置值是否为bcrypt哈希
func isBcryptHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") ||
		strings.HasPrefix(value, "$2b$") ||
		strings.HasPrefix(value, "$2y$")
}
