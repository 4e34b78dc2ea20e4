package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"rsvp-http-service/internal/domain/models"
)

// CSV导出的时间格式
const csvTimeLayout = "2006-01-02 15:04:05"

// InterfaceReportService 统计与导出服务接口
type InterfaceReportService interface {
	// ComputeStats 对记录做纯聚合，结果确定且幂等
	ComputeStats(guests []models.Guest) models.GuestStats
	// WriteCSV 按输入顺序写出CSV文档（一行表头加每条记录一行）
	WriteCSV(w io.Writer, guests []models.Guest) error
	// ExportFilename 生成导出文件名，日期部分为ISO格式
	ExportFilename(now time.Time) string
}

// ReportService 来宾数据的统计与CSV序列化
type ReportService struct{}

// NewReportService 创建一个新的报表服务
func NewReportService() InterfaceReportService {
	return &ReportService{}
}

// ComputeStats 聚合来宾统计信息
// 空集合时四个字段均为0
func (s *ReportService) ComputeStats(guests []models.Guest) models.GuestStats {
	stats := models.GuestStats{TotalGuests: len(guests)}
	for _, g := range guests {
		stats.TotalAdults += g.Adults
		stats.TotalChildren += g.Children
	}
	stats.TotalAttendees = stats.TotalAdults + stats.TotalChildren
	return stats
}

// WriteCSV 序列化来宾记录为CSV
// 引号规则遵循RFC 4180：含逗号、双引号或换行的字段用双引号包裹，
// 内部双引号成对转义；数字字段不加引号；空缺字段输出空单元格
func (s *ReportService) WriteCSV(w io.Writer, guests []models.Guest) error {
	writer := csv.NewWriter(w)

	header := []string{"Name", "Email", "Phone", "Adults", "Children", "Total Guests", "Message", "RSVP Date"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, g := range guests {
		rsvpDate := ""
		if !g.CreatedAt.IsZero() {
			rsvpDate = g.CreatedAt.Format(csvTimeLayout)
		}

		row := []string{
			g.Name,
			g.Email,
			optionalCell(g.Phone),
			strconv.Itoa(g.Adults),
			strconv.Itoa(g.Children),
			strconv.Itoa(g.TotalAttendees()),
			optionalCell(g.Message),
			rsvpDate,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportFilename 导出文件名，形如 anniversary-guests-2026-08-29.csv
func (s *ReportService) ExportFilename(now time.Time) string {
	return fmt.Sprintf("anniversary-guests-%s.csv", now.UTC().Format("2006-01-02"))
}

// NULL字符串字段渲染为空单元格，而不是字面的"null"
func optionalCell(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
