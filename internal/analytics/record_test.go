package analytics

import "testing"

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"rfc3339", "2026-03-15T09:00:00Z", true},
		{"rfc3339 with offset", "2026-03-15T09:00:00+02:00", true},
		{"rfc3339 nano", "2026-03-15T09:00:00.123456789Z", true},
		{"no zone", "2026-03-15T09:00:00", true},
		{"space separated", "2026-03-15 09:00:00", true},
		{"date only", "2026-03-15", true},
		{"padded", "  2026-03-15T09:00:00Z  ", true},
		{"empty", "", false},
		{"garbage", "not-a-date", false},
		{"out of range", "2026-13-45T99:00:00Z", false},
		{"unix seconds", "1770000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := parseTimestamp(tt.raw)
			if ok != tt.ok {
				t.Fatalf("parseTimestamp(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && parsed.IsZero() {
				t.Errorf("parseTimestamp(%q) returned zero time with ok=true", tt.raw)
			}
		})
	}
}
