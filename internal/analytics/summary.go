package analytics

// Summary is the full set of derived metrics the dashboard renders.
// Every field is always populated; numeric fields are finite and >= 0
// no matter what the input looked like.
type Summary struct {
	TotalConversations  int     `json:"totalConversations"`
	TotalMessages       int     `json:"totalMessages"`
	TotalUsers          int     `json:"totalUsers"`
	AverageResponseTime float64 `json:"averageResponseTime"`

	ResponseTimeDistribution       ResponseTimeDistribution `json:"responseTimeDistribution"`
	ConversationLengthDistribution LengthDistribution       `json:"conversationLengthDistribution"`
	TimeOfDayDistribution          TimeOfDayDistribution    `json:"timeOfDayDistribution"`

	SourceDistribution  map[string]int `json:"sourceDistribution"`
	CountryDistribution map[string]int `json:"countryDistribution"`

	UserEngagement Engagement  `json:"userEngagement"`
	Content        Content     `json:"content"`
	Performance    Performance `json:"performance"`
	Growth         Growth      `json:"growth"`

	MessagesByDate    []DateCount  `json:"messagesByDate"`
	ResponseTimeTrend []DatedValue `json:"responseTimeTrend"`
}

// The three distributions below partition the conversations that have at
// least one message; empty conversations only count toward
// TotalConversations.

type ResponseTimeDistribution struct {
	Fast   int `json:"fast"`
	Medium int `json:"medium"`
	Slow   int `json:"slow"`
}

type LengthDistribution struct {
	Short  int `json:"short"`
	Medium int `json:"medium"`
	Long   int `json:"long"`
}

type TimeOfDayDistribution struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Evening   int `json:"evening"`
	Night     int `json:"night"`
}

type Engagement struct {
	AvgMessagesPerUser      float64 `json:"avgMessagesPerUser"`
	AvgConversationsPerUser float64 `json:"avgConversationsPerUser"`
	RepeatUserRate          float64 `json:"repeatUserRate"`
	EngagementRate          float64 `json:"engagementRate"`
	AvgSessionDuration      float64 `json:"avgSessionDuration"`
	BounceRate              float64 `json:"bounceRate"`
}

type Content struct {
	AverageMessageLength float64        `json:"averageMessageLength"`
	TopUserQueries       []QueryCount   `json:"topUserQueries"`
	CommonKeywords       []KeywordCount `json:"commonKeywords"`

	// MessageContentDistribution is reserved and always empty; it is kept
	// non-nil so consumers can iterate without a null check.
	MessageContentDistribution map[string]int `json:"messageContentDistribution"`
}

type Performance struct {
	FirstResponseTime   float64 `json:"firstResponseTime"`
	ResolutionTime      float64 `json:"resolutionTime"`
	AverageResponseTime float64 `json:"averageResponseTime"`

	// HandoffRate is a declared constant 0: the data model carries no
	// human-escalation signal to compute it from.
	HandoffRate float64 `json:"handoffRate"`
	SuccessRate float64 `json:"successRate"`
}

type Growth struct {
	Daily   int `json:"daily"`
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
}

type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

type DateCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type DatedValue struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
