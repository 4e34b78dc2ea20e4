package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rsvp-http-service/internal/error/code"
)

// 统一的错误响应格式：{"error": "<message>"}
// 所有错误在请求边界转换为该JSON结构，包括导出失败（不返回半截CSV）

// OK 简单成功响应：{"ok": true}
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Success 带数据的成功响应，直接返回数据本身
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Fail 按错误码返回失败响应
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), gin.H{"error": code.GetMessage(errorCode)})
}

// FailWithMessage 失败响应（自定义消息）
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), gin.H{"error": message})
}

// AbortFail 失败响应并中断后续处理（中间件使用）
func AbortFail(c *gin.Context, errorCode int) {
	c.AbortWithStatusJSON(code.GetStatus(errorCode), gin.H{"error": code.GetMessage(errorCode)})
}
