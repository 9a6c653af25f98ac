package analytics

import (
	"testing"
	"time"
)

func pair(role1, role2 string, gap time.Duration) []Message {
	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	return []Message{
		{Role: role1, Content: "q", Timestamp: ts(base)},
		{Role: role2, Content: "a", Timestamp: ts(base.Add(gap))},
	}
}

func TestResponseTime(t *testing.T) {
	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		msgs []Message
		want float64
	}{
		{
			name: "single valid pair",
			msgs: pair("user", "assistant", 5*time.Second),
			want: 5000,
		},
		{
			name: "mean of two pairs",
			msgs: []Message{
				{Role: "user", Timestamp: ts(base)},
				{Role: "assistant", Timestamp: ts(base.Add(2 * time.Second))},
				{Role: "user", Timestamp: ts(base.Add(time.Minute))},
				{Role: "assistant", Timestamp: ts(base.Add(time.Minute + 6*time.Second))},
			},
			want: 4000,
		},
		{
			name: "gap over an hour is an outlier, falls back to default",
			msgs: pair("user", "assistant", 2*time.Hour),
			want: defaultResponseTimeMs,
		},
		{
			name: "exactly one hour is retained",
			msgs: pair("user", "assistant", time.Hour),
			want: 3_600_000,
		},
		{
			name: "assistant before user is not a response",
			msgs: pair("user", "assistant", -10*time.Second),
			want: defaultResponseTimeMs,
		},
		{
			name: "missing timestamps with assistant present",
			msgs: []Message{
				{Role: "user", Content: "hi"},
				{Role: "assistant", Content: "hello"},
			},
			want: defaultResponseTimeMs,
		},
		{
			name: "unparseable timestamps with assistant present",
			msgs: []Message{
				{Role: "user", Timestamp: "whenever"},
				{Role: "assistant", Timestamp: "later"},
			},
			want: defaultResponseTimeMs,
		},
		{
			name: "no assistant at all",
			msgs: []Message{
				{Role: "user", Content: "anyone?"},
				{Role: "user", Content: "hello??"},
			},
			want: 0,
		},
		{
			name: "assistant then user does not count",
			msgs: pair("assistant", "user", 5*time.Second),
			want: defaultResponseTimeMs,
		},
		{
			name: "unknown roles are neither side of a pair",
			msgs: pair("system", "tool", 5*time.Second),
			want: 0,
		},
		{
			name: "empty conversation",
			msgs: nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := responseTime(tt.msgs); got != tt.want {
				t.Errorf("responseTime = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionDuration(t *testing.T) {
	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		msgs []Message
		want float64
	}{
		{
			name: "span between first and last timestamped message",
			msgs: []Message{
				{Role: "user", Timestamp: ts(base)},
				{Role: "assistant", Timestamp: ts(base.Add(30 * time.Second))},
				{Role: "user", Timestamp: ts(base.Add(5 * time.Minute))},
			},
			want: 300_000,
		},
		{
			name: "out-of-order timestamps still span min to max",
			msgs: []Message{
				{Role: "user", Timestamp: ts(base.Add(time.Minute))},
				{Role: "assistant", Timestamp: ts(base)},
			},
			want: 60_000,
		},
		{
			name: "one timestamped message",
			msgs: []Message{
				{Role: "user", Timestamp: ts(base)},
				{Role: "assistant", Content: "no clock"},
			},
			want: 0,
		},
		{
			name: "no timestamps",
			msgs: []Message{{Role: "user"}, {Role: "assistant"}},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sessionDuration(tt.msgs); got != tt.want {
				t.Errorf("sessionDuration = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFirstResponseTime(t *testing.T) {
	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	t.Run("first user to first assistant", func(t *testing.T) {
		msgs := []Message{
			{Role: "user", Timestamp: ts(base)},
			{Role: "user", Timestamp: ts(base.Add(10 * time.Second))},
			{Role: "assistant", Timestamp: ts(base.Add(25 * time.Second))},
		}
		got, ok := firstResponseTime(msgs)
		if !ok || got != 25_000 {
			t.Errorf("firstResponseTime = %v/%v, want 25000/true", got, ok)
		}
	})

	t.Run("assistant before user does not qualify", func(t *testing.T) {
		msgs := []Message{
			{Role: "assistant", Timestamp: ts(base)},
			{Role: "user", Timestamp: ts(base.Add(10 * time.Second))},
		}
		if _, ok := firstResponseTime(msgs); ok {
			t.Error("expected no first response when assistant leads")
		}
	})

	t.Run("unparseable first user timestamp does not qualify", func(t *testing.T) {
		msgs := []Message{
			{Role: "user", Timestamp: "???"},
			{Role: "assistant", Timestamp: ts(base)},
		}
		if _, ok := firstResponseTime(msgs); ok {
			t.Error("expected no first response with unparseable user timestamp")
		}
	})
}

func TestEngagementRate(t *testing.T) {
	tests := []struct {
		users, assistants int
		want              float64
	}{
		{0, 5, 0}, // zero-user guard
		{2, 1, 50},
		{2, 2, 100},
		{1, 4, 100}, // capped
		{3, 0, 0},
	}

	for _, tt := range tests {
		if got := engagementRate(tt.users, tt.assistants); got != tt.want {
			t.Errorf("engagementRate(%d, %d) = %v, want %v",
				tt.users, tt.assistants, got, tt.want)
		}
	}
}
