package schedule

import (
	"strings"
	"time"
)

// 支持的时刻格式：数据库 time 列返回 "15:04:05"，人工录入常见 "15:04" 与 "3:04 PM"
var clockLayouts = []string{
	"15:04:05",
	"15:04:05.999999",
	"15:04",
	"3:04 PM",
	"3:04PM",
	"3:04:05 PM",
}

// ParseClock 将时刻字符串解析为当日零点起的秒数
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, strings.ToUpper(s))
		if err == nil {
			return t.Hour()*3600 + t.Minute()*60 + t.Second(), true
		}
	}
	return 0, false
}

// Overlaps 判断两个时间段是否重叠：start1 < end2 且 start2 < end1
// 端点相接不算重叠；任一时刻缺失或无法解析时返回 false
func Overlaps(start1, end1, start2, end2 string) bool {
	s1, ok1 := ParseClock(start1)
	e1, ok2 := ParseClock(end1)
	s2, ok3 := ParseClock(start2)
	e2, ok4 := ParseClock(end2)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return s1 < e2 && s2 < e1
}

// FormatClock 格式化为 "3:04 PM"，无法解析时返回空串
func FormatClock(s string) string {
	sec, ok := ParseClock(s)
	if !ok {
		return ""
	}
	t := time.Date(0, 1, 1, 0, 0, sec, 0, time.UTC)
	return t.Format("3:04 PM")
}

// FormatExamTime 格式化考试时间段 "10:00 AM - 12:00 PM"
func FormatExamTime(start, end string) string {
	s, e := FormatClock(start), FormatClock(end)
	if s == "" || e == "" {
		return ""
	}
	return s + " - " + e
}

// NormalizeClock 统一为 "15:04:05"（数据库 time 列格式），无法解析时原样返回去空白后的值
func NormalizeClock(s string) string {
	sec, ok := ParseClock(s)
	if !ok {
		return strings.TrimSpace(s)
	}
	return time.Date(0, 1, 1, 0, 0, sec, 0, time.UTC).Format("15:04:05")
}
