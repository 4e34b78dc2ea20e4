package controllers

import (
	"github.com/gin-gonic/gin"

	"rsvp-http-service/internal/error/response"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct{}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController() *HealthCheckController {
	return &HealthCheckController{}
}

// HandleHealthFunc 返回健康检查的Gin处理函数
func HandleHealthFunc() gin.HandlerFunc {
	controller := NewHealthCheckController()
	return func(ctx *gin.Context) {
		controller.Ping(ctx)
	}
}

// Ping 存活探针，只表示进程在运行，不检查依赖
func (h *HealthCheckController) Ping(c *gin.Context) {
	response.Success(c, gin.H{"status": "ok"})
}
