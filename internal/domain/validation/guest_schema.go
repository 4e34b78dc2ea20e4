package validation

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"rsvp-http-service/internal/domain/models"
)

// 邮箱格式校验：本地部分@域名部分，域名至少包含一个点
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// 字段长度约束
const (
	maxNameLen    = 120
	maxEmailLen   = 256
	maxPhoneLen   = 64
	maxMessageLen = 500
)

// Result 验证结果：要么得到规范化后的完整记录，要么得到违反约束的字段列表
// 不存在部分接受：任何一个字段不合法，整条记录都被拒绝
type Result struct {
	Guest       *models.Guest
	FieldErrors []string
}

// Valid 判断验证是否通过
func (r *Result) Valid() bool {
	return len(r.FieldErrors) == 0
}

// ValidateGuest 校验未受信任的RSVP提交数据
// 输入是解码后的JSON对象，未知字段被忽略
// 规范化规则：
//   - phone/message 缺省或为空串时归一化为NULL
//   - adults 缺省时取1，children 缺省时取0
//   - adults/children 接受JSON数字或数字字符串，必须为非负整数
func ValidateGuest(input map[string]interface{}) *Result {
	var invalid []string
	guest := &models.Guest{}

	// name: 非空且不超过120字符
	// 长度限制按字符数计算而不是字节数，多字节文本（如中文姓名）不受惩罚
	name, ok := stringField(input, "name")
	if !ok || name == "" || utf8.RuneCountInString(name) > maxNameLen {
		invalid = append(invalid, "name")
	} else {
		guest.Name = name
	}

	// email: 语法合法且不超过256字符
	email, ok := stringField(input, "email")
	if !ok || email == "" || utf8.RuneCountInString(email) > maxEmailLen || !emailPattern.MatchString(email) {
		invalid = append(invalid, "email")
	} else {
		guest.Email = email
	}

	// phone: 可选，不超过64字符
	if raw, present := input["phone"]; present && raw != nil {
		phone, ok := asString(raw)
		if !ok || utf8.RuneCountInString(phone) > maxPhoneLen {
			invalid = append(invalid, "phone")
		} else if phone != "" {
			guest.Phone = &phone
		}
	}

	// adults: 非负整数，缺省为1
	adults, err := intField(input, "adults", 1)
	if err != nil {
		invalid = append(invalid, "adults")
	} else {
		guest.Adults = adults
	}

	// children: 非负整数，缺省为0
	children, err := intField(input, "children", 0)
	if err != nil {
		invalid = append(invalid, "children")
	} else {
		guest.Children = children
	}

	// message: 可选，不超过500字符
	if raw, present := input["message"]; present && raw != nil {
		message, ok := asString(raw)
		if !ok || utf8.RuneCountInString(message) > maxMessageLen {
			invalid = append(invalid, "message")
		} else if message != "" {
			guest.Message = &message
		}
	}

	if len(invalid) > 0 {
		sort.Strings(invalid)
		return &Result{FieldErrors: invalid}
	}
	return &Result{Guest: guest}
}

// FormatFieldErrors 生成列举所有非法字段的错误消息
func FormatFieldErrors(fields []string) string {
	return "Invalid input: " + strings.Join(fields, ", ")
}

// 提取字符串字段，字段缺失或为nil时返回("", false)
func stringField(input map[string]interface{}, key string) (string, bool) {
	raw, present := input[key]
	if !present || raw == nil {
		return "", false
	}
	return asString(raw)
}

func asString(raw interface{}) (string, bool) {
	s, ok := raw.(string)
	return s, ok
}

// 提取整数字段，接受JSON数字和数字字符串，缺省时返回默认值
func intField(input map[string]interface{}, key string, defaultValue int) (int, error) {
	raw, present := input[key]
	if !present || raw == nil {
		return defaultValue, nil
	}

	switch v := raw.(type) {
	case float64:
		// encoding/json将所有数字解码为float64，要求其为非负整数
		if v < 0 || v != math.Trunc(v) {
			return 0, errNotNonNegativeInt
		}
		return int(v), nil
	case string:
		if v == "" {
			return defaultValue, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, errNotNonNegativeInt
		}
		return n, nil
	default:
		return 0, errNotNonNegativeInt
	}
}

type fieldError string

func (e fieldError) Error() string { return string(e) }

const errNotNonNegativeInt = fieldError("value must be a non-negative integer")
