package validation

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

// 从JSON文本构造未类型化的提交体，和请求边界的解码方式保持一致
func decode(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var input map[string]interface{}
	if err := json.Unmarshal([]byte(body), &input); err != nil {
		t.Fatalf("解码测试输入失败: %v", err)
	}
	return input
}

func TestValidateGuestNormalizesFullSubmission(t *testing.T) {
	input := decode(t, `{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"phone": "+91 98765 43210",
		"adults": 2,
		"children": 1,
		"message": "Looking forward to it"
	}`)

	result := ValidateGuest(input)
	if !result.Valid() {
		t.Fatalf("合法提交被拒绝: %v", result.FieldErrors)
	}

	g := result.Guest
	if g.Name != "Asha Rao" || g.Email != "asha@example.com" {
		t.Errorf("姓名或邮箱不匹配: %+v", g)
	}
	if g.Phone == nil || *g.Phone != "+91 98765 43210" {
		t.Errorf("phone = %v, 期望保留原值", g.Phone)
	}
	if g.Adults != 2 || g.Children != 1 {
		t.Errorf("adults=%d children=%d, 期望 2/1", g.Adults, g.Children)
	}
	if g.Message == nil || *g.Message != "Looking forward to it" {
		t.Errorf("message = %v, 期望保留原值", g.Message)
	}
}

func TestValidateGuestAppliesDefaults(t *testing.T) {
	// adults/children/phone/message全部缺省
	input := decode(t, `{"name": "Li Wei", "email": "li@example.com"}`)

	result := ValidateGuest(input)
	if !result.Valid() {
		t.Fatalf("合法提交被拒绝: %v", result.FieldErrors)
	}

	g := result.Guest
	if g.Adults != 1 {
		t.Errorf("adults = %d, 缺省时应为1", g.Adults)
	}
	if g.Children != 0 {
		t.Errorf("children = %d, 缺省时应为0", g.Children)
	}
	if g.Phone != nil {
		t.Errorf("phone = %v, 缺省时应归一化为NULL", *g.Phone)
	}
	if g.Message != nil {
		t.Errorf("message = %v, 缺省时应归一化为NULL", *g.Message)
	}
}

func TestValidateGuestCoercesNumericStrings(t *testing.T) {
	input := decode(t, `{"name": "N", "email": "n@example.com", "adults": "3", "children": "0"}`)

	result := ValidateGuest(input)
	if !result.Valid() {
		t.Fatalf("数字字符串应被接受: %v", result.FieldErrors)
	}
	if result.Guest.Adults != 3 || result.Guest.Children != 0 {
		t.Errorf("adults=%d children=%d, 期望 3/0", result.Guest.Adults, result.Guest.Children)
	}
}

func TestValidateGuestRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{"缺少姓名", `{"email": "a@example.com"}`, []string{"name"}},
		{"姓名为空", `{"name": "", "email": "a@example.com"}`, []string{"name"}},
		{"姓名超长", `{"name": "` + strings.Repeat("x", 121) + `", "email": "a@example.com"}`, []string{"name"}},
		{"邮箱格式非法", `{"name": "A", "email": "not-an-email"}`, []string{"email"}},
		{"邮箱缺少域名点", `{"name": "A", "email": "a@example"}`, []string{"email"}},
		{"adults为负", `{"name": "A", "email": "a@example.com", "adults": -1}`, []string{"adults"}},
		{"adults非整数", `{"name": "A", "email": "a@example.com", "adults": 1.5}`, []string{"adults"}},
		{"children非数字", `{"name": "A", "email": "a@example.com", "children": "two"}`, []string{"children"}},
		{"phone超长", `{"name": "A", "email": "a@example.com", "phone": "` + strings.Repeat("9", 65) + `"}`, []string{"phone"}},
		{"message超长", `{"name": "A", "email": "a@example.com", "message": "` + strings.Repeat("m", 501) + `"}`, []string{"message"}},
		{"多个字段同时非法", `{"email": "bad", "adults": -2}`, []string{"adults", "email", "name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateGuest(decode(t, tt.body))
			if result.Valid() {
				t.Fatalf("非法提交被接受: %s", tt.body)
			}
			if result.Guest != nil {
				t.Error("拒绝时不应产生部分接受的记录")
			}
			if !reflect.DeepEqual(result.FieldErrors, tt.fields) {
				t.Errorf("FieldErrors = %v, 期望 %v", result.FieldErrors, tt.fields)
			}
		})
	}
}

func TestValidateGuestCountsCharactersNotBytes(t *testing.T) {
	// 长度限制按字符数计算：60个汉字的姓名占180字节，但只有60字符，必须接受
	name := strings.Repeat("王", 60)
	message := strings.Repeat("贺", 500)
	input := decode(t, `{"name": "`+name+`", "email": "w@example.com", "message": "`+message+`"}`)

	result := ValidateGuest(input)
	if !result.Valid() {
		t.Fatalf("多字节文本被错误拒绝: %v", result.FieldErrors)
	}
	if result.Guest.Name != name {
		t.Errorf("姓名未保留原值")
	}
	if result.Guest.Message == nil || *result.Guest.Message != message {
		t.Errorf("留言未保留原值")
	}

	// 超过字符上限时仍然拒绝
	over := decode(t, `{"name": "`+strings.Repeat("王", 121)+`", "email": "w@example.com"}`)
	if result := ValidateGuest(over); result.Valid() {
		t.Error("121个字符的姓名应被拒绝")
	}
}

func TestValidateGuestIgnoresUnknownFields(t *testing.T) {
	input := decode(t, `{"name": "A", "email": "a@example.com", "unexpected": true}`)
	if result := ValidateGuest(input); !result.Valid() {
		t.Fatalf("未知字段不应导致拒绝: %v", result.FieldErrors)
	}
}

func TestFormatFieldErrors(t *testing.T) {
	msg := FormatFieldErrors([]string{"adults", "email"})
	if msg != "Invalid input: adults, email" {
		t.Errorf("msg = %q", msg)
	}
}
