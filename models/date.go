package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout 记录日期格式
const DateLayout = "2006-01-02"

// Date 仅含日期部分的时间，JSON 编码为 2006-01-02
// 存储端的 date 列不带时区与时刻，这里统一按本地时区解析
type Date struct {
	time.Time
}

// ParseDate 解析 2006-01-02 格式的日期
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("日期格式错误，应为: %s", DateLayout)
	}
	return Date{t}, nil
}

// Today 当前日期
func Today() Date {
	now := time.Now()
	return Date{time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)}
}

// String 按 2006-01-02 输出
func (d Date) String() string {
	return d.Format(DateLayout)
}

// After 日期晚于 o
func (d Date) After(o Date) bool {
	return d.Time.After(o.Time)
}

// MarshalJSON 编码为 "2006-01-02"
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON 解析 "2006-01-02"，兼容存储端可能返回的时间戳后缀
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
