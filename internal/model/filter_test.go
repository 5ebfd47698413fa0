package model

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestFilterSpecNormalize_Defaults(t *testing.T) {
	f := FilterSpec{}

	err := f.Normalize()

	assert.Equal(t, nil, err)
	assert.Equal(t, DefaultPageSize, f.PageSize)
	assert.Equal(t, 1, f.Page)
}

func TestFilterSpecNormalize_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		filter FilterSpec
		wantOK bool
	}{
		{"pageSize at max", FilterSpec{PageSize: 100}, true},
		{"pageSize over max", FilterSpec{PageSize: 101}, false},
		{"pageSize negative", FilterSpec{PageSize: -1}, false},
		{"page negative", FilterSpec{Page: -1}, false},
		{"valid sortBy", FilterSpec{SortBy: SortByPopularity}, true},
		{"invalid sortBy", FilterSpec{SortBy: "newest"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Normalize()
			assert.Equal(t, tt.wantOK, err == nil)
		})
	}
}

func TestParseSummaryLength(t *testing.T) {
	got, err := ParseSummaryLength("")
	assert.Equal(t, nil, err)
	assert.Equal(t, SummaryMedium, got)

	got, err = ParseSummaryLength("short")
	assert.Equal(t, nil, err)
	assert.Equal(t, SummaryShort, got)

	_, err = ParseSummaryLength("huge")
	assert.NotEqual(t, nil, err)
}

func TestSummaryLengthSentences(t *testing.T) {
	assert.Equal(t, "1-2 sentences", SummaryShort.Sentences())
	assert.Equal(t, "3-4 sentences", SummaryMedium.Sentences())
	assert.Equal(t, "5-6 sentences", SummaryLong.Sentences())
}
