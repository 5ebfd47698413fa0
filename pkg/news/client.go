package news

import "context"

// RawSource is the provider's source payload. The id is null for many
// outlets, which decodes to an empty string.
type RawSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RawArticle struct {
	Source      RawSource `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt string    `json:"publishedAt"`
	Content     string    `json:"content"`
}

type Result struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []RawArticle `json:"articles"`
}

type SourceInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Language    string `json:"language"`
	Country     string `json:"country"`
}

type HeadlinesParams struct {
	Country  string
	Category string
	Sources  []string
	Query    string
	PageSize int
	Page     int
}

type EverythingParams struct {
	Query    string
	Sources  []string
	From     string
	To       string
	SortBy   string
	PageSize int
	Page     int
}

type Provider interface {
	TopHeadlines(ctx context.Context, p HeadlinesParams) (*Result, error)
	Everything(ctx context.Context, p EverythingParams) (*Result, error)
	Sources(ctx context.Context, country, category string) ([]SourceInfo, error)
}
