package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/model"
	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/store"
	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/pkg/news"
)

const (
	providerTimeout = 10 * time.Second

	// Applied when a headlines request names neither sources nor a country,
	// and when a search names neither a query nor sources. Prevents an
	// unconstrained fetch of the whole provider catalog.
	defaultHeadlineCountry = "us"
	defaultSearchQuery     = "news"

	unknownSourceName = "Unknown Source"
)

// Aggregator orchestrates provider calls, normalization and store writes.
type Aggregator struct {
	provider news.Provider
	store    *store.ArticleStore
}

func NewAggregator(provider news.Provider, st *store.ArticleStore) *Aggregator {
	return &Aggregator{provider: provider, store: st}
}

func (a *Aggregator) FetchHeadlines(ctx context.Context, f model.FilterSpec) (*model.FeedPage, error) {
	if err := f.Normalize(); err != nil {
		return nil, err
	}

	if len(f.Sources) == 0 && f.Country == "" {
		f.Country = defaultHeadlineCountry
	}

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	res, err := a.provider.TopHeadlines(ctx, news.HeadlinesParams{
		Country:  f.Country,
		Category: f.Category,
		Sources:  f.Sources,
		Query:    f.Query,
		PageSize: f.PageSize,
		Page:     f.Page,
	})
	if err != nil {
		return nil, err
	}

	return &model.FeedPage{
		Status:       res.Status,
		TotalResults: res.TotalResults,
		Articles:     a.ingest(res.Articles, f),
	}, nil
}

func (a *Aggregator) SearchArticles(ctx context.Context, f model.FilterSpec) (*model.FeedPage, error) {
	if err := f.Normalize(); err != nil {
		return nil, err
	}

	if f.Query == "" && len(f.Sources) == 0 {
		f.Query = defaultSearchQuery
	}

	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	res, err := a.provider.Everything(ctx, news.EverythingParams{
		Query:    f.Query,
		Sources:  f.Sources,
		From:     f.From,
		To:       f.To,
		SortBy:   f.SortBy,
		PageSize: f.PageSize,
		Page:     f.Page,
	})
	if err != nil {
		return nil, err
	}

	return &model.FeedPage{
		Status:       res.Status,
		TotalResults: res.TotalResults,
		Articles:     a.ingest(res.Articles, f),
	}, nil
}

func (a *Aggregator) ListSources(ctx context.Context, country, category string) ([]news.SourceInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	return a.provider.Sources(ctx, country, category)
}

// ingest persists the raw articles in provider order. A bad item is logged
// and skipped without aborting the rest.
func (a *Aggregator) ingest(raw []news.RawArticle, f model.FilterSpec) []model.ArticleRecord {
	records := make([]model.ArticleRecord, 0, len(raw))
	for _, r := range raw {
		draft, err := normalizeArticle(r, f)
		if err != nil {
			slog.Warn("skipping malformed provider article", "url", r.URL, "error", err)
			continue
		}
		records = append(records, a.store.Create(draft))
	}
	return records
}

// normalizeArticle maps a provider article to a canonical draft, stamping
// category and country from the request filter rather than the payload.
func normalizeArticle(r news.RawArticle, f model.FilterSpec) (model.ArticleRecord, error) {
	if r.Title == "" {
		return model.ArticleRecord{}, fmt.Errorf("missing title")
	}
	if r.URL == "" {
		return model.ArticleRecord{}, fmt.Errorf("missing url")
	}

	publishedAt, err := time.Parse(time.RFC3339, r.PublishedAt)
	if err != nil {
		return model.ArticleRecord{}, fmt.Errorf("invalid publishedAt %q: %w", r.PublishedAt, err)
	}

	sourceName := r.Source.Name
	if sourceName == "" {
		sourceName = unknownSourceName
	}

	return model.ArticleRecord{
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		URL:         r.URL,
		ImageURL:    r.URLToImage,
		PublishedAt: publishedAt,
		Source:      model.Source{ID: r.Source.ID, Name: sourceName},
		Author:      r.Author,
		Category:    f.Category,
		Country:     f.Country,
	}, nil
}
