package model

import "time"

// Source identifies where an article came from. Provider payloads may carry
// a null id, so ID stays optional; Name is always populated at normalization
// (placeholder when the provider sent something unusable).
type Source struct {
	ID   string
	Name string
}

type ArticleRecord struct {
	ID          string
	Title       string
	Description string
	Content     string
	URL         string
	ImageURL    string
	PublishedAt time.Time
	Source      Source
	Author      string
	Category    string
	Country     string
	AISummary   string
	CreatedAt   time.Time
}

type FeedPage struct {
	Status       string
	TotalResults int
	Articles     []ArticleRecord
}

type SourceLink struct {
	Title  string
	URL    string
	Source string
}

type TopicSummaryResult struct {
	Topic            string
	TotalArticles    int
	ArticlesAnalyzed int
	Summary          string
	SourceLinks      []SourceLink
	LastUpdated      time.Time
}
