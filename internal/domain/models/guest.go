package models

import "time"

// Guest represents a single RSVP submission
// phone和message为可选字段，缺省时存储为NULL而不是空串
type Guest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null" json:"name"`
	Email     string    `gorm:"type:varchar(256);not null" json:"email"`
	Phone     *string   `gorm:"type:varchar(64)" json:"phone"`
	Adults    int       `gorm:"not null;default:1" json:"adults"`
	Children  int       `gorm:"not null;default:0" json:"children"`
	Message   *string   `gorm:"type:varchar(500)" json:"message"`
	CreatedAt time.Time `json:"created_at"` // 插入时设置，之后不可变
}

// TableName 指定表名
func (Guest) TableName() string {
	return "guests"
}

// TotalAttendees 该条记录的到场人数
func (g *Guest) TotalAttendees() int {
	return g.Adults + g.Children
}

// GuestStats 来宾统计信息（派生数据，不落库，每次请求重新计算）
type GuestStats struct {
	TotalGuests    int `json:"totalGuests"`
	TotalAdults    int `json:"totalAdults"`
	TotalChildren  int `json:"totalChildren"`
	TotalAttendees int `json:"totalAttendees"`
}
