package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/model"
	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/pkg/news"

	"github.com/gin-gonic/gin"
)

type Pipeline interface {
	FetchHeadlines(ctx context.Context, f model.FilterSpec) (*model.FeedPage, error)
	SearchArticles(ctx context.Context, f model.FilterSpec) (*model.FeedPage, error)
	ListSources(ctx context.Context, country, category string) ([]news.SourceInfo, error)
}

type ArticleHandler struct {
	pipeline Pipeline
}

func NewArticleHandler(pipeline Pipeline) *ArticleHandler {
	return &ArticleHandler{pipeline: pipeline}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.pipeline.FetchHeadlines(c.Request.Context(), filter)
	if err != nil {
		slog.Error("error fetching headlines", "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFeedResponse(page))
}

func (h *ArticleHandler) SearchArticles(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.pipeline.SearchArticles(c.Request.Context(), filter)
	if err != nil {
		slog.Error("error searching articles", "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toFeedResponse(page))
}

func (h *ArticleHandler) GetSources(c *gin.Context) {
	sources, err := h.pipeline.ListSources(c.Request.Context(), c.Query("country"), c.Query("category"))
	if err != nil {
		slog.Error("error listing sources", "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSourcesResponse(sources))
}

func (h *ArticleHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func filterFromQuery(c *gin.Context) (model.FilterSpec, error) {
	f := model.FilterSpec{
		Country:  c.Query("country"),
		Category: c.Query("category"),
		Query:    c.Query("q"),
		From:     c.Query("from"),
		To:       c.Query("to"),
		SortBy:   c.Query("sortBy"),
	}

	if raw := c.Query("sources"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				f.Sources = append(f.Sources, s)
			}
		}
	}

	var err error
	if f.PageSize, err = queryInt(c, "pageSize"); err != nil {
		return f, err
	}
	if f.Page, err = queryInt(c, "page"); err != nil {
		return f, err
	}

	return f, nil
}

func queryInt(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewValidationError("%s must be an integer, got %q", name, raw)
	}
	return v, nil
}

// respondError maps the error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	if errors.Is(err, model.ErrTimeout) {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "News provider timed out"})
		return
	}

	var pe *model.ProviderError
	if errors.As(err, &pe) {
		status := http.StatusBadGateway
		if pe.StatusCode >= 400 && pe.StatusCode < 500 {
			status = pe.StatusCode
		}
		c.JSON(status, gin.H{"error": pe.Message, "code": pe.Code})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}
