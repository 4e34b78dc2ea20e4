package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rsvp-http-service/internal/app/middleware"
	"rsvp-http-service/internal/domain/services"
	"rsvp-http-service/internal/domain/services/container"
	"rsvp-http-service/internal/error/code"
	"rsvp-http-service/internal/error/response"
	"rsvp-http-service/pkg/logger"
)

// 会话Cookie的有效期（秒），24小时
const sessionCookieMaxAge = 24 * 60 * 60

// InterfaceAdminController 定义管理员控制器接口
type InterfaceAdminController interface {
	Login()
	Logout()
}

// AdminController 管理员认证控制器
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController 创建一个新的管理员控制器
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 管理员登录请求
type LoginRequest struct {
	Password string `json:"password" example:"secret-password"`
}

// HandleAdminFunc 返回一个处理管理员认证请求的Gin处理函数
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		default:
			response.Fail(ctx, code.ErrUnknown)
		}
	}
}

// 1. Login 管理员登录
// @Summary      管理员登录
// @Description  校验共享管理密码，成功后通过HttpOnly Cookie下发会话令牌
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录凭证"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /admin/login [post]
func (c *AdminController) Login() {
	// 请求体解析失败时按空密码处理：
	// 除非服务端缺少配置（那是500），否则统一走凭证不匹配的401路径
	var req LoginRequest
	_ = c.Ctx.ShouldBindJSON(&req)

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.Authenticate(req.Password); err != nil {
		if errors.Is(err, services.ErrMisconfigured) {
			logger.Error("管理密码未配置，登录请求被拒绝")
			response.Fail(c.Ctx, code.ErrMisconfigured)
			return
		}
		response.Fail(c.Ctx, code.ErrInvalidCredential)
		return
	}

	// 凭证通过，签发会话令牌
	sessionStore := c.Container.GetService("session").(services.InterfaceSessionStore)
	token, err := sessionStore.Issue()
	if err != nil {
		logger.Error("签发会话令牌失败: %v", err)
		response.Fail(c.Ctx, code.ErrMisconfigured)
		return
	}

	c.setSessionCookie(token, sessionCookieMaxAge)
	response.OK(c.Ctx)
}

// 2. Logout 管理员登出
// @Summary      管理员登出
// @Description  无条件清除会话Cookie，幂等（没有Cookie时也返回成功）
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/logout [post]
func (c *AdminController) Logout() {
	if token, err := c.Ctx.Cookie(middleware.SessionCookieName); err == nil {
		sessionStore := c.Container.GetService("session").(services.InterfaceSessionStore)
		sessionStore.Revoke(token)
	}

	// maxAge为负即指示客户端立刻丢弃Cookie
	c.setSessionCookie("", -1)
	response.OK(c.Ctx)
}

// setSessionCookie 写会话Cookie：HttpOnly、SameSite=Lax，生产环境加Secure
func (c *AdminController) setSessionCookie(token string, maxAge int) {
	cfg := c.Container.GetConfig()
	c.Ctx.SetSameSite(http.SameSiteLaxMode)
	c.Ctx.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", cfg.IsProduction(), true)
}
