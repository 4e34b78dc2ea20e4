package services

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"rsvp-http-service/internal/domain/models"
)

func strptr(s string) *string { return &s }

func TestComputeStats(t *testing.T) {
	svc := NewReportService()

	tests := []struct {
		name   string
		guests []models.Guest
		want   models.GuestStats
	}{
		{
			name:   "空集合时四个字段均为0",
			guests: nil,
			want:   models.GuestStats{},
		},
		{
			name: "单条记录",
			guests: []models.Guest{
				{Adults: 2, Children: 1},
			},
			want: models.GuestStats{TotalGuests: 1, TotalAdults: 2, TotalChildren: 1, TotalAttendees: 3},
		},
		{
			name: "多条记录求和",
			guests: []models.Guest{
				{Adults: 2, Children: 1},
				{Adults: 1, Children: 0},
				{Adults: 0, Children: 4},
			},
			want: models.GuestStats{TotalGuests: 3, TotalAdults: 3, TotalChildren: 5, TotalAttendees: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.ComputeStats(tt.guests)
			if got != tt.want {
				t.Errorf("ComputeStats = %+v, 期望 %+v", got, tt.want)
			}
			// 纯聚合，重复计算结果一致
			if again := svc.ComputeStats(tt.guests); again != got {
				t.Errorf("重复计算结果不一致: %+v vs %+v", again, got)
			}
			if got.TotalAttendees != got.TotalAdults+got.TotalChildren {
				t.Errorf("totalAttendees=%d, 应等于 adults+children=%d",
					got.TotalAttendees, got.TotalAdults+got.TotalChildren)
			}
		})
	}
}

func TestWriteCSVQuoting(t *testing.T) {
	svc := NewReportService()
	created := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)

	// message同时包含逗号和双引号
	message := `Bring the "good" plates, please`
	guests := []models.Guest{
		{
			Name:      "Asha Rao",
			Email:     "asha@example.com",
			Adults:    2,
			Children:  1,
			Message:   strptr(message),
			CreatedAt: created,
		},
	}

	var buf bytes.Buffer
	if err := svc.WriteCSV(&buf, guests); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := buf.String()

	// 含逗号和引号的字段用双引号包裹，内部引号成对转义
	if !strings.Contains(out, `"Bring the ""good"" plates, please"`) {
		t.Errorf("message字段引号转义不正确:\n%s", out)
	}

	// 数字字段不加引号
	if !strings.Contains(out, ",2,1,3,") {
		t.Errorf("数字字段不应加引号:\n%s", out)
	}

	// phone为NULL时输出空单元格，而不是字面的null
	if strings.Contains(out, "null") {
		t.Errorf("空缺字段不应输出null:\n%s", out)
	}

	// 用标准CSV规则解析回来应恢复原始字符串
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("解析生成的CSV失败: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("期望表头加1行数据，得到%d行", len(records))
	}

	header := records[0]
	wantHeader := []string{"Name", "Email", "Phone", "Adults", "Children", "Total Guests", "Message", "RSVP Date"}
	for i, col := range wantHeader {
		if header[i] != col {
			t.Errorf("表头第%d列 = %q, 期望 %q", i, header[i], col)
		}
	}

	row := records[1]
	if row[6] != message {
		t.Errorf("解析回的message = %q, 期望 %q", row[6], message)
	}
	if row[2] != "" {
		t.Errorf("phone单元格 = %q, 期望为空", row[2])
	}
	if row[5] != "3" {
		t.Errorf("Total Guests = %q, 期望 3", row[5])
	}
	if row[7] != "2026-03-14 18:30:00" {
		t.Errorf("RSVP Date = %q", row[7])
	}
}

func TestWriteCSVRowOrderAndZeroTime(t *testing.T) {
	svc := NewReportService()

	// 行顺序遵循输入顺序，不重新排序；零值时间输出空单元格
	guests := []models.Guest{
		{Name: "B", Email: "b@example.com", Adults: 1},
		{Name: "A", Email: "a@example.com", Adults: 1},
	}

	var buf bytes.Buffer
	if err := svc.WriteCSV(&buf, guests); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	if err != nil {
		t.Fatalf("解析生成的CSV失败: %v", err)
	}
	if records[1][0] != "B" || records[2][0] != "A" {
		t.Errorf("行顺序被改变: %v", records)
	}
	if records[1][7] != "" {
		t.Errorf("零值时间应输出空单元格, 得到 %q", records[1][7])
	}
}

func TestExportFilename(t *testing.T) {
	svc := NewReportService()
	now := time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)
	if got := svc.ExportFilename(now); got != "anniversary-guests-2026-08-29.csv" {
		t.Errorf("ExportFilename = %q", got)
	}
}
