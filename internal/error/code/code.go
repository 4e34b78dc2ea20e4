package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrValidation - 400: 提交数据验证失败.
	ErrValidation
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 认证相关错误码 (101xxx).
const (
	// ErrInvalidCredential - 401: 管理员密码错误.
	ErrInvalidCredential int = iota + 101000
	// ErrUnauthorized - 401: 会话令牌缺失或不正确.
	ErrUnauthorized
	// ErrMisconfigured - 500: 服务端缺少必要的密钥配置.
	// 与凭证错误严格区分：这是部署缺陷，不是用户输入错误.
	ErrMisconfigured
)

// 存储相关错误码 (102xxx).
const (
	// ErrStore - 500: 持久层操作失败.
	ErrStore int = iota + 102000
)
