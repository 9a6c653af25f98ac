package analytics

// Bucket thresholds, all in milliseconds where applicable.
const (
	fastResponseMs   = 60_000
	mediumResponseMs = 300_000

	shortConversation  = 5
	mediumConversation = 15
)

func categorizeResponseTime(ms float64) string {
	switch {
	case ms < fastResponseMs:
		return "fast"
	case ms < mediumResponseMs:
		return "medium"
	default:
		return "slow"
	}
}

func categorizeLength(messageCount int) string {
	switch {
	case messageCount <= shortConversation:
		return "short"
	case messageCount <= mediumConversation:
		return "medium"
	default:
		return "long"
	}
}

func categorizeHour(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 18:
		return "afternoon"
	case hour >= 18:
		return "evening"
	default:
		return "night"
	}
}
