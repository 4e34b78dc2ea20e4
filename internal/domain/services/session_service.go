package services

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"rsvp-http-service/internal/infrastructure/config"
)

// InterfaceSessionStore 定义会话能力接口
// 当前默认实现是固定令牌（所有成功登录得到同一个令牌值），
// 接口化后以后可以替换为按用户分配的会话实现而不需要改动调用方
type InterfaceSessionStore interface {
	// Issue 签发一个会话令牌
	Issue() (string, error)
	// Verify 校验令牌，通过返回nil，否则返回ErrUnauthorized或ErrMisconfigured
	Verify(token string) error
	// Revoke 吊销令牌（对客户端表现为清除Cookie，幂等）
	Revoke(token string)
}

// NewSessionStore 根据配置选择会话实现
func NewSessionStore(cfg *config.Config) InterfaceSessionStore {
	if cfg.SessionMode == config.SessionModeJWT {
		return &JWTSessionStore{
			SecretKey: cfg.JWTSecretKey,
			Issuer:    "rsvp-http-service",
		}
	}
	return &StaticTokenStore{Token: cfg.AdminToken}
}

// StaticTokenStore 固定令牌会话：进程生命周期内令牌值不变，
// 合法性是结构性的（字符串相等），服务端不维护会话表，也不做时间过期
type StaticTokenStore struct {
	Token string
}

// Issue 返回配置的固定令牌
func (s *StaticTokenStore) Issue() (string, error) {
	if s.Token == "" {
		return "", ErrMisconfigured
	}
	return s.Token, nil
}

// Verify 以恒定时间比较令牌与配置的密钥
// 服务端未配置密钥时拒绝所有请求（fail closed），即使客户端恰好猜中值
func (s *StaticTokenStore) Verify(token string) error {
	if s.Token == "" {
		return ErrMisconfigured
	}
	if token == "" {
		return ErrUnauthorized
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// Revoke 固定令牌无服务端状态可清除
func (s *StaticTokenStore) Revoke(string) {}

// JWTSessionStore JWT签名会话：每次登录签发独立的HS256令牌，24小时过期
type JWTSessionStore struct {
	SecretKey string
	Issuer    string
}

// sessionClaims JWT令牌的声明结构
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issue 生成JWT令牌
func (s *JWTSessionStore) Issue() (string, error) {
	if s.SecretKey == "" {
		return "", ErrMisconfigured
	}

	// 令牌有效期为24小时，与Cookie的max-age一致
	now := time.Now()
	claims := &sessionClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.SecretKey))
}

// Verify 校验JWT令牌的签名和有效期
func (s *JWTSessionStore) Verify(tokenString string) error {
	if s.SecretKey == "" {
		return ErrMisconfigured
	}
	if tokenString == "" {
		return ErrUnauthorized
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return ErrUnauthorized
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.Role != "admin" {
		return ErrUnauthorized
	}
	return nil
}

// Revoke JWT会话是无状态的，吊销仅表现为客户端丢弃Cookie
func (s *JWTSessionStore) Revoke(string) {}
