package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rsvp-http-service/internal/domain/models"
	"rsvp-http-service/pkg/logger"
)

// 存储操作的超时上限，避免慢查询占住请求
const storeTimeout = 5 * time.Second

// InterfaceGuestService 来宾记录存储接口
// 记录只增不改：没有更新和删除操作
type InterfaceGuestService interface {
	// Insert 插入一条记录，返回分配的ID，持久层失败时返回ErrStore
	Insert(guest *models.Guest) (uint, error)
	// ListAll 返回全部记录，按created_at降序（最新在前）
	// 结果不分页：当前预期提交量很小，一场活动的来宾名单可以整体返回
	ListAll() ([]models.Guest, error)
}

// GuestService 基于GORM的来宾记录存储
type GuestService struct {
	DB *gorm.DB
}

// NewGuestService 创建一个新的来宾记录服务
func NewGuestService(db *gorm.DB) InterfaceGuestService {
	return &GuestService{DB: db}
}

// Insert 插入一条来宾记录
func (s *GuestService) Insert(guest *models.Guest) (uint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := s.DB.WithContext(ctx).Create(guest).Error; err != nil {
		logger.Error("插入来宾记录失败: %v", err)
		return 0, ErrStore
	}
	return guest.ID, nil
}

// ListAll 获取全部来宾记录
func (s *GuestService) ListAll() ([]models.Guest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	var guests []models.Guest
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&guests).Error; err != nil {
		logger.Error("查询来宾记录失败: %v", err)
		return nil, ErrStore
	}
	return guests, nil
}
