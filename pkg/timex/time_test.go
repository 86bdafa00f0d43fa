package timex

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTime_UnixMethods(t *testing.T) {
	// Create a fixed time
	// 创建一个固定时间
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tt := Time(now)

	// Test Unix()
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() = %v, want %v", tt.Unix(), now.Unix())
	}

	// Test UnixMilli()
	if tt.UnixMilli() != now.UnixMilli() {
		t.Errorf("UnixMilli() = %v, want %v", tt.UnixMilli(), now.UnixMilli())
	}

	// Test UnixNano()
	if tt.UnixNano() != now.UnixNano() {
		t.Errorf("UnixNano() = %v, want %v", tt.UnixNano(), now.UnixNano())
	}

	// Verify it's not returning time.Now() by waiting a bit
	// 通过等待一会确认它不是返回 time.Now()
	time.Sleep(10 * time.Millisecond)
	if tt.Unix() != now.Unix() {
		t.Errorf("Unix() changed after sleep, it should be static. got %v, want %v", tt.Unix(), now.Unix())
	}
}

func TestTime_JSONRoundTrip(t *testing.T) {
	orig := Time(time.Date(2024, 6, 15, 8, 30, 0, 0, time.Local))

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2024-06-15 08:30:00"` {
		t.Errorf("Marshal = %s, want %q", data, "2024-06-15 08:30:00")
	}

	var parsed Time
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if parsed.Unix() != orig.Unix() {
		t.Errorf("round trip mismatch: got %v, want %v", parsed, orig)
	}
}

func TestTime_ScanString(t *testing.T) {
	var tt Time
	if err := tt.Scan("2024-01-02 03:04:05"); err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if tt.String() != "2024-01-02 03:04:05" {
		t.Errorf("Scan result = %s", tt.String())
	}

	// 空字符串表示零值
	if err := tt.Scan(""); err != nil {
		t.Fatalf("Scan empty failed: %v", err)
	}
	if !tt.IsZero() {
		t.Error("expected zero time after scanning empty string")
	}
}
