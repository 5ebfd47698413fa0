package model

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	SortByRelevancy   = "relevancy"
	SortByPopularity  = "popularity"
	SortByPublishedAt = "publishedAt"
)

// FilterSpec carries the caller's article filters. Zero values mean "absent";
// Normalize fills the documented defaults and rejects out-of-range values.
type FilterSpec struct {
	Country  string
	Category string
	Sources  []string
	Query    string
	From     string
	To       string
	SortBy   string
	PageSize int
	Page     int
}

func (f *FilterSpec) Normalize() error {
	if f.PageSize == 0 {
		f.PageSize = DefaultPageSize
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.PageSize < 1 || f.PageSize > MaxPageSize {
		return NewValidationError("pageSize must be between 1 and %d, got %d", MaxPageSize, f.PageSize)
	}
	if f.Page < 1 {
		return NewValidationError("page must be at least 1, got %d", f.Page)
	}

	switch f.SortBy {
	case "", SortByRelevancy, SortByPopularity, SortByPublishedAt:
	default:
		return NewValidationError("invalid sortBy %q", f.SortBy)
	}

	return nil
}

type SummaryLength string

const (
	SummaryShort  SummaryLength = "short"
	SummaryMedium SummaryLength = "medium"
	SummaryLong   SummaryLength = "long"
)

// ParseSummaryLength maps a request value to a length mode, defaulting to
// medium for an empty string and rejecting anything else.
func ParseSummaryLength(s string) (SummaryLength, error) {
	switch SummaryLength(s) {
	case "":
		return SummaryMedium, nil
	case SummaryShort, SummaryMedium, SummaryLong:
		return SummaryLength(s), nil
	default:
		return "", NewValidationError("invalid summaryLength %q", s)
	}
}

// Sentences returns the sentence-count instruction for the prompt.
func (l SummaryLength) Sentences() string {
	switch l {
	case SummaryShort:
		return "1-2 sentences"
	case SummaryLong:
		return "5-6 sentences"
	default:
		return "3-4 sentences"
	}
}
