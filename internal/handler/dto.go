package handler

import (
	"time"

	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/model"
	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/pkg/news"
)

type SourceResponse struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type ArticleResponse struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Content     string         `json:"content,omitempty"`
	URL         string         `json:"url"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	PublishedAt string         `json:"publishedAt"`
	Source      SourceResponse `json:"source"`
	Author      string         `json:"author,omitempty"`
	Category    string         `json:"category,omitempty"`
	Country     string         `json:"country,omitempty"`
	AISummary   string         `json:"aiSummary,omitempty"`
	CreatedAt   string         `json:"createdAt"`
}

type FeedResponse struct {
	Status       string            `json:"status"`
	TotalResults int               `json:"totalResults"`
	Articles     []ArticleResponse `json:"articles"`
}

type SourceInfoResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	Category    string `json:"category,omitempty"`
	Language    string `json:"language,omitempty"`
	Country     string `json:"country,omitempty"`
}

type SourcesResponse struct {
	Sources []SourceInfoResponse `json:"sources"`
}

type SummarizeItem struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description,omitempty"`
}

type SummarizeRequest struct {
	Articles      []SummarizeItem `json:"articles"`
	SummaryLength string          `json:"summaryLength,omitempty"`
}

type SummariesResponse struct {
	Summaries []string `json:"summaries"`
}

type SummarizeArticleRequest struct {
	SummaryLength string `json:"summaryLength,omitempty"`
}

type ArticleSummaryResponse struct {
	Article ArticleResponse `json:"article"`
	Summary string          `json:"summary"`
}

type TopicSummaryRequest struct {
	Topic string `json:"topic"`
}

type SourceLinkResponse struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source string `json:"source"`
}

type TopicSummaryResponse struct {
	Topic            string               `json:"topic"`
	TotalArticles    int                  `json:"totalArticles"`
	ArticlesAnalyzed int                  `json:"articlesAnalyzed"`
	Summary          string               `json:"summary"`
	SourceLinks      []SourceLinkResponse `json:"sourceLinks"`
	LastUpdated      string               `json:"lastUpdated"`
}

type VoiceQueryRequest struct {
	Transcript string `json:"transcript"`
}

type VoiceQueryResponse struct {
	Query string `json:"query"`
	Apply bool   `json:"apply"`
}

func toArticleResponse(a model.ArticleRecord) ArticleResponse {
	return ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Content:     a.Content,
		URL:         a.URL,
		ImageURL:    a.ImageURL,
		PublishedAt: a.PublishedAt.Format(time.RFC3339),
		Source:      SourceResponse{ID: a.Source.ID, Name: a.Source.Name},
		Author:      a.Author,
		Category:    a.Category,
		Country:     a.Country,
		AISummary:   a.AISummary,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}

func toFeedResponse(page *model.FeedPage) FeedResponse {
	articles := make([]ArticleResponse, 0, len(page.Articles))
	for _, a := range page.Articles {
		articles = append(articles, toArticleResponse(a))
	}
	return FeedResponse{
		Status:       page.Status,
		TotalResults: page.TotalResults,
		Articles:     articles,
	}
}

func toSourcesResponse(sources []news.SourceInfo) SourcesResponse {
	res := SourcesResponse{Sources: make([]SourceInfoResponse, 0, len(sources))}
	for _, s := range sources {
		res.Sources = append(res.Sources, SourceInfoResponse{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			URL:         s.URL,
			Category:    s.Category,
			Language:    s.Language,
			Country:     s.Country,
		})
	}
	return res
}

func toTopicSummaryResponse(r model.TopicSummaryResult) TopicSummaryResponse {
	links := make([]SourceLinkResponse, 0, len(r.SourceLinks))
	for _, l := range r.SourceLinks {
		links = append(links, SourceLinkResponse{Title: l.Title, URL: l.URL, Source: l.Source})
	}
	return TopicSummaryResponse{
		Topic:            r.Topic,
		TotalArticles:    r.TotalArticles,
		ArticlesAnalyzed: r.ArticlesAnalyzed,
		Summary:          r.Summary,
		SourceLinks:      links,
		LastUpdated:      r.LastUpdated.Format(time.RFC3339),
	}
}
