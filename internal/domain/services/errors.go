package services

import "errors"

// 服务层错误分类，由控制器和中间件映射为对应的错误码响应
var (
	// ErrInvalidCredential 管理员密码不匹配
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrUnauthorized 会话令牌缺失或不等于配置的密钥
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMisconfigured 服务端缺少必要的密钥配置，必须fail closed
	// 与凭证错误区分开：这是部署缺陷，不能当作用户输错密码处理
	ErrMisconfigured = errors.New("server misconfigured")
	// ErrStore 持久层操作失败，不自动重试，对外返回通用错误消息
	ErrStore = errors.New("store failure")
)
