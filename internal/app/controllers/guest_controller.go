package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"rsvp-http-service/internal/domain/models"
	"rsvp-http-service/internal/domain/services"
	"rsvp-http-service/internal/domain/services/container"
	"rsvp-http-service/internal/domain/validation"
	"rsvp-http-service/internal/error/code"
	"rsvp-http-service/internal/error/response"
	"rsvp-http-service/pkg/logger"
)

// InterfaceGuestController 定义来宾控制器接口
type InterfaceGuestController interface {
	CreateGuest()
	GetGuests()
	GetGuestStats()
	ExportGuests()
}

// GuestController 来宾RSVP控制器
type GuestController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewGuestController 创建一个新的来宾控制器
func NewGuestController(ctx *gin.Context, container *container.ServiceContainer) *GuestController {
	return &GuestController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleGuestFunc 返回一个处理来宾请求的Gin处理函数
func HandleGuestFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewGuestController(ctx, container)

		switch method {
		case "createGuest":
			controller.CreateGuest()
		case "getGuests":
			controller.GetGuests()
		case "getGuestStats":
			controller.GetGuestStats()
		case "exportGuests":
			controller.ExportGuests()
		default:
			response.Fail(ctx, code.ErrUnknown)
		}
	}
}

// 1. CreateGuest 提交RSVP
// @Summary      提交RSVP
// @Description  校验并保存一条来宾出席记录，公开接口
// @Tags         Guest
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /guests [post]
func (c *GuestController) CreateGuest() {
	// 提交体按未类型化对象接收，交给验证网关做整体校验
	var input map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&input); err != nil {
		response.Fail(c.Ctx, code.ErrValidation)
		return
	}

	result := validation.ValidateGuest(input)
	if !result.Valid() {
		logger.Warning("RSVP提交校验失败: %v", result.FieldErrors)
		response.FailWithMessage(c.Ctx, code.ErrValidation, validation.FormatFieldErrors(result.FieldErrors))
		return
	}

	guestService := c.Container.GetService("guest").(services.InterfaceGuestService)
	id, err := guestService.Insert(result.Guest)
	if err != nil {
		response.Fail(c.Ctx, code.ErrStore)
		return
	}

	logger.Info("新增来宾记录: id=%d name=%s", id, result.Guest.Name)
	response.Success(c.Ctx, gin.H{"insertedId": id})
}

// 2. GetGuests 获取全部来宾记录
// @Summary      获取全部来宾记录
// @Description  按提交时间降序返回全部RSVP记录，需要管理会话
// @Tags         Guest
// @Produce      json
// @Success      200  {array}   models.Guest
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /guests [get]
// @Security     BearerAuth
func (c *GuestController) GetGuests() {
	guestService := c.Container.GetService("guest").(services.InterfaceGuestService)
	guests, err := guestService.ListAll()
	if err != nil {
		response.Fail(c.Ctx, code.ErrStore)
		return
	}
	if guests == nil {
		guests = []models.Guest{}
	}

	response.Success(c.Ctx, guests)
}

// 3. GetGuestStats 获取来宾统计
// @Summary      获取来宾统计
// @Description  每次请求从存储重新计算统计信息，需要管理会话
// @Tags         Guest
// @Produce      json
// @Success      200  {object}  models.GuestStats
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /guests/stats [get]
// @Security     BearerAuth
func (c *GuestController) GetGuestStats() {
	guestService := c.Container.GetService("guest").(services.InterfaceGuestService)
	guests, err := guestService.ListAll()
	if err != nil {
		response.Fail(c.Ctx, code.ErrStore)
		return
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)
	response.Success(c.Ctx, reportService.ComputeStats(guests))
}

// 4. ExportGuests 导出CSV
// @Summary      导出来宾CSV
// @Description  导出全部RSVP记录为CSV附件，需要管理会话
// @Tags         Guest
// @Produce      text/csv
// @Success      200  {string}  string
// @Failure      401  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /guests/export [get]
// @Security     BearerAuth
func (c *GuestController) ExportGuests() {
	// 先取数据：存储失败时返回JSON错误，而不是半截CSV
	guestService := c.Container.GetService("guest").(services.InterfaceGuestService)
	guests, err := guestService.ListAll()
	if err != nil {
		response.Fail(c.Ctx, code.ErrStore)
		return
	}

	reportService := c.Container.GetService("report").(services.InterfaceReportService)

	c.Ctx.Header("Content-Type", "text/csv")
	c.Ctx.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", reportService.ExportFilename(time.Now())))

	if err := reportService.WriteCSV(c.Ctx.Writer, guests); err != nil {
		// 响应头已经写出，只能记录错误
		logger.Error("写出CSV失败: %v", err)
	}
}
