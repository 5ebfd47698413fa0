package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/model"
	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/pkg/llm"

	"github.com/gin-gonic/gin"
)

// Candidate articles for a topic synthesis come from one search page.
const topicCandidateCount = 20

type SummaryService interface {
	SummarizeArticle(ctx context.Context, id string, length model.SummaryLength) (model.ArticleRecord, string, error)
	SummarizeMany(ctx context.Context, items []llm.SummaryInput, length model.SummaryLength) []string
	TopicSummary(ctx context.Context, topic string, articles []model.ArticleRecord) model.TopicSummaryResult
}

type SummaryHandler struct {
	service  SummaryService
	pipeline Pipeline
}

func NewSummaryHandler(service SummaryService, pipeline Pipeline) *SummaryHandler {
	return &SummaryHandler{service: service, pipeline: pipeline}
}

func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if len(req.Articles) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "articles must not be empty"})
		return
	}

	length, err := model.ParseSummaryLength(req.SummaryLength)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]llm.SummaryInput, len(req.Articles))
	for i, a := range req.Articles {
		items[i] = llm.SummaryInput{Title: a.Title, Content: a.Content, Description: a.Description}
	}

	summaries := h.service.SummarizeMany(c.Request.Context(), items, length)

	c.JSON(http.StatusOK, SummariesResponse{Summaries: summaries})
}

func (h *SummaryHandler) SummarizeArticle(c *gin.Context) {
	id := c.Param("id")

	var req SummarizeArticleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	length, err := model.ParseSummaryLength(req.SummaryLength)
	if err != nil {
		respondError(c, err)
		return
	}

	article, summary, err := h.service.SummarizeArticle(c.Request.Context(), id, length)
	if err != nil {
		slog.Error("error summarizing article", "article_id", id, "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ArticleSummaryResponse{
		Article: toArticleResponse(article),
		Summary: summary,
	})
}

func (h *SummaryHandler) TopicSummary(c *gin.Context) {
	var req TopicSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic must not be empty"})
		return
	}

	page, err := h.pipeline.SearchArticles(c.Request.Context(), model.FilterSpec{
		Query:    req.Topic,
		PageSize: topicCandidateCount,
	})
	if err != nil {
		slog.Error("error fetching topic candidates", "topic", req.Topic, "error", err)
		respondError(c, err)
		return
	}

	result := h.service.TopicSummary(c.Request.Context(), req.Topic, page.Articles)

	c.JSON(http.StatusOK, toTopicSummaryResponse(result))
}
