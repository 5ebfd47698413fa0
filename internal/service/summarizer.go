package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/model"
	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/store"
	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/pkg/llm"
)

const (
	engineTimeout = 20 * time.Second

	// FallbackSummary replaces engine output whenever the call fails. The
	// summarize endpoints still succeed with this degraded text.
	FallbackSummary = "Summary unavailable due to processing error"

	// Topic synthesis embeds at most this many excerpts in the prompt to
	// keep it bounded; the rest still contribute citation links.
	maxTopicArticles = 10
)

// SummaryOutcome distinguishes a genuine summary from the degraded fallback
// while keeping both usable as plain text.
type SummaryOutcome struct {
	Text     string
	Degraded bool
	Reason   error
}

// Summarizer drives the engine for one article or a topic batch. Engine
// failures never propagate; they degrade into FallbackSummary.
type Summarizer struct {
	engine llm.Generator
	store  *store.ArticleStore
}

func NewSummarizer(engine llm.Generator, st *store.ArticleStore) *Summarizer {
	return &Summarizer{engine: engine, store: st}
}

// SummarizeArticle summarizes the stored article and persists the result as
// its aiSummary. The returned record and summary text always match.
func (s *Summarizer) SummarizeArticle(ctx context.Context, id string, length model.SummaryLength) (model.ArticleRecord, string, error) {
	article, ok := s.store.GetByID(id)
	if !ok {
		return model.ArticleRecord{}, "", model.ErrNotFound
	}

	prompt := llm.BuildArticlePrompt(llm.SummaryInput{
		Title:       article.Title,
		Content:     article.Content,
		Description: article.Description,
	}, length.Sentences())

	outcome := s.generate(ctx, prompt)
	if outcome.Degraded {
		slog.Warn("article summarization degraded", "article_id", id, "error", outcome.Reason)
	}

	updated, err := s.store.Update(id, store.Patch{AISummary: &outcome.Text})
	if err != nil {
		return model.ArticleRecord{}, "", err
	}

	return updated, outcome.Text, nil
}

// SummarizeMany summarizes ad-hoc article texts that are not in the store.
// Output order matches input order; a failed item gets the fallback text.
func (s *Summarizer) SummarizeMany(ctx context.Context, items []llm.SummaryInput, length model.SummaryLength) []string {
	summaries := make([]string, len(items))
	for i, item := range items {
		outcome := s.generate(ctx, llm.BuildArticlePrompt(item, length.Sentences()))
		if outcome.Degraded {
			slog.Warn("batch item summarization degraded", "index", i, "error", outcome.Reason)
		}
		summaries[i] = outcome.Text
	}
	return summaries
}

// TopicSummary synthesizes one narrative across the given articles with a
// single engine call. Citation links cover every input article and are
// returned even when the engine fails.
func (s *Summarizer) TopicSummary(ctx context.Context, topic string, articles []model.ArticleRecord) model.TopicSummaryResult {
	analyzed := articles
	if len(analyzed) > maxTopicArticles {
		analyzed = analyzed[:maxTopicArticles]
	}

	inputs := make([]llm.SummaryInput, len(analyzed))
	for i, a := range analyzed {
		inputs[i] = llm.SummaryInput{
			Title:       a.Title,
			Content:     a.Content,
			Description: a.Description,
		}
	}

	outcome := s.generate(ctx, llm.BuildTopicPrompt(topic, inputs))
	if outcome.Degraded {
		slog.Warn("topic summarization degraded", "topic", topic, "error", outcome.Reason)
	}

	links := make([]model.SourceLink, len(articles))
	for i, a := range articles {
		name := a.Source.Name
		if name == "" {
			name = unknownSourceName
		}
		links[i] = model.SourceLink{Title: a.Title, URL: a.URL, Source: name}
	}

	return model.TopicSummaryResult{
		Topic:            topic,
		TotalArticles:    len(articles),
		ArticlesAnalyzed: len(analyzed),
		Summary:          outcome.Text,
		SourceLinks:      links,
		LastUpdated:      time.Now(),
	}
}

// generate runs one bounded engine call, absorbing every failure mode into
// the fallback text.
func (s *Summarizer) generate(ctx context.Context, prompt string) SummaryOutcome {
	if s.engine == nil {
		return SummaryOutcome{Text: FallbackSummary, Degraded: true, Reason: fmt.Errorf("engine not configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, engineTimeout)
	defer cancel()

	text, err := s.engine.Generate(ctx, prompt)
	if err != nil {
		return SummaryOutcome{Text: FallbackSummary, Degraded: true, Reason: err}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return SummaryOutcome{Text: FallbackSummary, Degraded: true, Reason: fmt.Errorf("empty engine response")}
	}

	return SummaryOutcome{Text: text}
}
