// Package analytics turns raw conversation records into the metric summary
// the dashboard renders.
//
// Aggregate is a pure function: no I/O, no retained state, safe to call
// concurrently. It never returns an error; malformed input degrades to
// zeros and absent data instead. The caller reads the clock once and passes
// it in so growth windows and the 7-day series stay internally consistent.
package analytics

import (
	"strings"
	"time"
)

const (
	// defaultResponseTimeMs stands in for conversations that have an
	// assistant reply but no usable message timestamps. Many upstream
	// exports omit per-message times, so this is a deliberate
	// approximation, not a measurement.
	defaultResponseTimeMs = 30_000

	// maxResponseTimeMs rejects user->assistant gaps longer than an hour
	// as unrelated messages rather than true response latency.
	maxResponseTimeMs = 3_600_000

	trendDays = 7

	growthDaily   = 24 * time.Hour
	growthWeekly  = 7 * 24 * time.Hour
	growthMonthly = 30 * 24 * time.Hour
)

// Aggregate computes the full analytics summary for a batch of
// conversations. now anchors the growth windows and the 7-day series;
// parsed timestamps are evaluated in now's location.
func Aggregate(convs []Record, now time.Time) *Summary {
	s := &Summary{
		SourceDistribution:  make(map[string]int),
		CountryDistribution: make(map[string]int),
		Content: Content{
			TopUserQueries:             []QueryCount{},
			CommonKeywords:             []KeywordCount{},
			MessageContentDistribution: map[string]int{},
		},
	}

	loc := now.Location()
	dates := trendDates(now)
	dateIndex := make(map[string]int, len(dates))
	for i, d := range dates {
		dateIndex[d] = i
	}
	messagesByDate := make([]int, len(dates))
	trendSums := make([]float64, len(dates))
	trendCounts := make([]int, len(dates))

	var (
		responseSum   float64
		responseCount int

		sessionSum float64

		firstRespSum   float64
		firstRespCount int

		engagementSum float64
		bounces       int

		userLengthSum    float64
		userMessageCount int
		queryCounts      = make(map[string]int)
		keywordCounts    = make(map[string]int)

		customerConvs    = make(map[string]int)
		customerMessages = make(map[string]int)
	)

	for _, conv := range convs {
		msgs := conv.Messages
		s.TotalConversations++
		s.TotalMessages += len(msgs)

		if conv.Source != "" {
			s.SourceDistribution[conv.Source]++
		}
		if conv.Country != "" {
			s.CountryDistribution[conv.Country]++
		}
		if conv.Customer != "" {
			customerConvs[conv.Customer]++
			customerMessages[conv.Customer] += len(msgs)
		}

		created, createdOK := parseTimestamp(conv.CreatedAt)
		if createdOK {
			created = created.In(loc)
			if created.After(now.Add(-growthDaily)) {
				s.Growth.Daily++
			}
			if created.After(now.Add(-growthWeekly)) {
				s.Growth.Weekly++
			}
			if created.After(now.Add(-growthMonthly)) {
				s.Growth.Monthly++
			}
			if idx, ok := dateIndex[created.Format("2006-01-02")]; ok {
				messagesByDate[idx] += len(msgs)
				trendSums[idx] += responseTime(msgs)
				trendCounts[idx]++
			}
		}

		users, assistants := roleCounts(msgs)
		if users == 1 {
			bounces++
		}
		engagementSum += engagementRate(users, assistants)
		sessionSum += sessionDuration(msgs)

		if fr, ok := firstResponseTime(msgs); ok {
			firstRespSum += fr
			firstRespCount++
		}

		for _, m := range msgs {
			if m.Role != RoleUser {
				continue
			}
			userMessageCount++
			userLengthSum += float64(len([]rune(m.Content)))
			if m.Content != "" {
				queryCounts[normalizeQuery(m.Content)]++
			}
			for _, kw := range extractKeywords(m.Content) {
				keywordCounts[kw]++
			}
		}

		// The three partition distributions cover exactly the
		// conversations that carry at least one message.
		if len(msgs) == 0 {
			continue
		}

		rt := responseTime(msgs)
		responseSum += rt
		responseCount++
		bumpResponseBucket(&s.ResponseTimeDistribution, rt)
		bumpLengthBucket(&s.ConversationLengthDistribution, len(msgs))

		// An unparseable creation time still needs a bucket to keep the
		// partition exact; it lands with hour zero.
		hour := 0
		if createdOK {
			hour = created.Hour()
		}
		bumpHourBucket(&s.TimeOfDayDistribution, hour)
	}

	s.TotalUsers = len(customerConvs)
	s.AverageResponseTime = safeDiv(responseSum, float64(responseCount))

	if s.TotalUsers > 0 {
		var msgTotal, convTotal, repeat int
		for _, n := range customerConvs {
			convTotal += n
			if n > 1 {
				repeat++
			}
		}
		for _, n := range customerMessages {
			msgTotal += n
		}
		s.UserEngagement.AvgMessagesPerUser = float64(msgTotal) / float64(s.TotalUsers)
		s.UserEngagement.AvgConversationsPerUser = float64(convTotal) / float64(s.TotalUsers)
		s.UserEngagement.RepeatUserRate = float64(repeat) / float64(s.TotalUsers) * 100
	}
	if s.TotalConversations > 0 {
		total := float64(s.TotalConversations)
		s.UserEngagement.EngagementRate = engagementSum / total
		s.UserEngagement.AvgSessionDuration = sessionSum / total
		s.UserEngagement.BounceRate = float64(bounces) / total * 100
		s.Performance.SuccessRate = float64(s.TotalConversations-bounces) / total * 100
	}

	s.Content.AverageMessageLength = safeDiv(userLengthSum, float64(userMessageCount))
	s.Content.TopUserQueries = topQueries(queryCounts, topQueryCount)
	s.Content.CommonKeywords = topKeywords(keywordCounts, topKeywordCount)

	s.Performance.FirstResponseTime = safeDiv(firstRespSum, float64(firstRespCount))
	s.Performance.ResolutionTime = s.UserEngagement.AvgSessionDuration
	s.Performance.AverageResponseTime = s.AverageResponseTime
	s.Performance.HandoffRate = 0

	s.MessagesByDate = make([]DateCount, len(dates))
	s.ResponseTimeTrend = make([]DatedValue, len(dates))
	for i, d := range dates {
		s.MessagesByDate[i] = DateCount{Date: d, Count: messagesByDate[i]}
		s.ResponseTimeTrend[i] = DatedValue{
			Date:  d,
			Value: safeDiv(trendSums[i], float64(trendCounts[i])),
		}
	}

	return s
}

// responseTime returns the conversation's representative response latency
// in milliseconds: the mean gap over user->assistant message pairs with
// usable timestamps, the 30s default when the conversation has assistant
// replies but no usable pair, and 0 otherwise.
func responseTime(msgs []Message) float64 {
	var sum float64
	var count int
	hasAssistant := false

	for i := range msgs {
		if msgs[i].Role == RoleAssistant {
			hasAssistant = true
		}
		if i+1 >= len(msgs) {
			continue
		}
		if msgs[i].Role != RoleUser || msgs[i+1].Role != RoleAssistant {
			continue
		}
		asked, ok := parseTimestamp(msgs[i].Timestamp)
		if !ok {
			continue
		}
		answered, ok := parseTimestamp(msgs[i+1].Timestamp)
		if !ok || !answered.After(asked) {
			continue
		}
		delta := float64(answered.Sub(asked).Milliseconds())
		if delta <= 0 || delta > maxResponseTimeMs {
			continue
		}
		sum += delta
		count++
	}

	if count > 0 {
		return sum / float64(count)
	}
	if hasAssistant {
		return defaultResponseTimeMs
	}
	return 0
}

// sessionDuration is the span between the earliest and latest timestamped
// message, in milliseconds; 0 when fewer than two messages carry usable
// timestamps.
func sessionDuration(msgs []Message) float64 {
	var earliest, latest time.Time
	count := 0
	for _, m := range msgs {
		t, ok := parseTimestamp(m.Timestamp)
		if !ok {
			continue
		}
		if count == 0 || t.Before(earliest) {
			earliest = t
		}
		if count == 0 || t.After(latest) {
			latest = t
		}
		count++
	}
	if count < 2 {
		return 0
	}
	return float64(latest.Sub(earliest).Milliseconds())
}

// firstResponseTime is the gap between the first user message and the
// first assistant message, when both carry usable timestamps in order.
func firstResponseTime(msgs []Message) (float64, bool) {
	var userAt, assistantAt time.Time
	var userOK, assistantOK bool
	for _, m := range msgs {
		switch m.Role {
		case RoleUser:
			if !userOK {
				userAt, userOK = parseTimestamp(m.Timestamp)
			}
		case RoleAssistant:
			if !assistantOK {
				assistantAt, assistantOK = parseTimestamp(m.Timestamp)
			}
		}
		if userOK && assistantOK {
			break
		}
	}
	if !userOK || !assistantOK || !assistantAt.After(userAt) {
		return 0, false
	}
	return float64(assistantAt.Sub(userAt).Milliseconds()), true
}

// engagementRate caps assistant/user at 1 and scales to a percentage.
func engagementRate(userCount, assistantCount int) float64 {
	if userCount == 0 {
		return 0
	}
	ratio := float64(assistantCount) / float64(userCount)
	if ratio > 1 {
		ratio = 1
	}
	return ratio * 100
}

func roleCounts(msgs []Message) (users, assistants int) {
	for _, m := range msgs {
		switch m.Role {
		case RoleUser:
			users++
		case RoleAssistant:
			assistants++
		}
	}
	return users, assistants
}

// normalizeQuery lowercases only; queries group by their exact text
// otherwise, surrounding whitespace included.
func normalizeQuery(content string) string {
	return strings.ToLower(content)
}

func bumpResponseBucket(d *ResponseTimeDistribution, ms float64) {
	switch categorizeResponseTime(ms) {
	case "fast":
		d.Fast++
	case "medium":
		d.Medium++
	default:
		d.Slow++
	}
}

func bumpLengthBucket(d *LengthDistribution, messageCount int) {
	switch categorizeLength(messageCount) {
	case "short":
		d.Short++
	case "medium":
		d.Medium++
	default:
		d.Long++
	}
}

func bumpHourBucket(d *TimeOfDayDistribution, hour int) {
	switch categorizeHour(hour) {
	case "morning":
		d.Morning++
	case "afternoon":
		d.Afternoon++
	case "evening":
		d.Evening++
	default:
		d.Night++
	}
}

// trendDates lists the 7 calendar dates ending today, ascending.
func trendDates(now time.Time) []string {
	dates := make([]string, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		dates = append(dates, now.AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return dates
}

func safeDiv(sum, count float64) float64 {
	if count == 0 {
		return 0
	}
	return sum / count
}
