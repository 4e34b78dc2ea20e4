package code

// 错误码消息映射
// 消息文本是对外的HTTP响应内容，保持英文
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "ok",
	ErrUnknown:         "Internal server error",
	ErrValidation:      "Invalid input",
	ErrTooManyRequests: "Too many requests, please try again later",

	// 认证相关错误码
	ErrInvalidCredential: "Invalid password",
	ErrUnauthorized:      "Unauthorized",
	ErrMisconfigured:     "Server misconfigured",

	// 存储相关错误码
	ErrStore: "Internal server error",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrValidation:      StatusBadRequest,
	ErrTooManyRequests: StatusTooManyRequests,

	// 认证相关错误码
	ErrInvalidCredential: StatusUnauthorized,
	ErrUnauthorized:      StatusUnauthorized,
	ErrMisconfigured:     StatusInternalServerError,

	// 存储相关错误码
	ErrStore: StatusInternalServerError,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Internal server error"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
