package analytics

import (
	"reflect"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "lowercases and splits on punctuation",
			text: "Payment FAILED, card declined!",
			want: []string{"payment", "failed", "card", "declined"},
		},
		{
			name: "drops short tokens",
			text: "how do I pay",
			want: nil,
		},
		{
			name: "drops stop words",
			text: "which invoice and which receipt",
			want: []string{"invoice", "receipt"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "digits and underscores are word characters",
			text: "error_404 happened again",
			want: []string{"error_404", "happened", "again"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractKeywords(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTopQueries_SortAndLimit(t *testing.T) {
	counts := map[string]int{
		"reset password": 5,
		"cancel order":   5,
		"track package":  9,
		"other":          1,
	}

	got := topQueries(counts, 3)
	want := []QueryCount{
		{Query: "track package", Count: 9},
		{Query: "cancel order", Count: 5},
		{Query: "reset password", Count: 5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topQueries = %+v, want %+v", got, want)
	}
}

func TestTopKeywords_DeterministicTies(t *testing.T) {
	counts := map[string]int{"zebra": 2, "apple": 2, "mango": 2}

	first := topKeywords(counts, 10)
	for i := 0; i < 10; i++ {
		if again := topKeywords(counts, 10); !reflect.DeepEqual(first, again) {
			t.Fatal("tie ordering should be stable across calls")
		}
	}
	if first[0].Keyword != "apple" || first[1].Keyword != "mango" || first[2].Keyword != "zebra" {
		t.Errorf("ties should sort lexicographically, got %+v", first)
	}
}

func TestTopQueries_Empty(t *testing.T) {
	got := topQueries(map[string]int{}, 10)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}
