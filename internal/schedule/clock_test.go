package schedule

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		start1, end1, s2, end2 string
		want                   bool
	}{
		{"完全重叠", "10:00:00", "12:00:00", "10:00:00", "12:00:00", true},
		{"部分重叠", "10:00", "12:00", "11:00", "13:00", true},
		{"包含", "09:00", "17:00", "11:00", "12:00", true},
		{"端点相接", "09:00:00", "11:00:00", "11:00:00", "13:00:00", false},
		{"端点相接-反向", "11:00", "13:00", "09:00", "11:00", false},
		{"不相交", "09:00", "10:00", "14:00", "16:00", false},
		{"12小时制", "10:00 AM", "12:00 PM", "11:30 am", "1:00 pm", true},
		{"混合格式", "13:30:00", "15:30:00", "2:00 PM", "3:00 PM", true},
		{"开始时间缺失", "", "12:00", "10:00", "12:00", false},
		{"结束时间缺失", "10:00", "12:00", "10:00", "", false},
		{"无法解析", "10:00", "12:00", "ten", "11:00", false},
		{"越界时刻", "25:00", "26:00", "10:00", "12:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.start1, tt.end1, tt.s2, tt.end2); got != tt.want {
				t.Errorf("Overlaps(%q,%q,%q,%q)=%v，期望 %v", tt.start1, tt.end1, tt.s2, tt.end2, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"00:00:00", 0, true},
		{"10:30:15", 10*3600 + 30*60 + 15, true},
		{"08:05", 8*3600 + 5*60, true},
		{" 9:15 PM ", 21*3600 + 15*60, true},
		{"12:00 AM", 0, true},
		{"10:00:00.000000", 10 * 3600, true},
		{"", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseClock(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseClock(%q)=(%d,%v)，期望 (%d,%v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFormatExamTime(t *testing.T) {
	tests := []struct {
		start, end, want string
	}{
		{"10:00:00", "12:00:00", "10:00 AM - 12:00 PM"},
		{"14:00", "16:30", "2:00 PM - 4:30 PM"},
		{"09:05:00", "", ""},
		{"bad", "10:00", ""},
	}
	for _, tt := range tests {
		if got := FormatExamTime(tt.start, tt.end); got != tt.want {
			t.Errorf("FormatExamTime(%q,%q)=%q，期望 %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct{ in, want string }{
		{"10:00", "10:00:00"},
		{"2:30 PM", "14:30:00"},
		{"09:15:00.000000", "09:15:00"},
		{" bad ", "bad"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeClock(tt.in); got != tt.want {
			t.Errorf("NormalizeClock(%q)=%q，期望 %q", tt.in, got, tt.want)
		}
	}
}
