package analytics

import (
	"sort"
	"strings"
	"unicode"
)

const (
	minKeywordLength = 4
	topQueryCount    = 10
	topKeywordCount  = 20
)

var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "at": {}, "which": {}, "on": {},
	"a": {}, "an": {}, "and": {}, "or": {}, "but": {},
}

// extractKeywords lower-cases the text, splits it on runs of non-word
// characters and keeps tokens that are at least four characters long and
// not stop words. Frequency counting only; no stemming, no language
// awareness beyond the stop-word list.
func extractKeywords(text string) []string {
	lowered := strings.ToLower(text)
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	var keywords []string
	for _, token := range fields {
		if len([]rune(token)) < minKeywordLength {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}

// topQueries returns the n most frequent entries, ties broken
// lexicographically so repeated aggregations produce identical output.
func topQueries(counts map[string]int, n int) []QueryCount {
	out := make([]QueryCount, 0, len(counts))
	for q, c := range counts {
		out = append(out, QueryCount{Query: q, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Query < out[j].Query
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func topKeywords(counts map[string]int, n int) []KeywordCount {
	out := make([]KeywordCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, KeywordCount{Keyword: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Keyword < out[j].Keyword
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
