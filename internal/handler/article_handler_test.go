package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/model"
	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/pkg/news"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakePipeline struct {
	page    *model.FeedPage
	sources []news.SourceInfo
	err     error

	gotFilter *model.FilterSpec
}

func (f *fakePipeline) FetchHeadlines(ctx context.Context, filter model.FilterSpec) (*model.FeedPage, error) {
	f.gotFilter = &filter
	return f.page, f.err
}

func (f *fakePipeline) SearchArticles(ctx context.Context, filter model.FilterSpec) (*model.FeedPage, error) {
	f.gotFilter = &filter
	return f.page, f.err
}

func (f *fakePipeline) ListSources(ctx context.Context, country, category string) ([]news.SourceInfo, error) {
	return f.sources, f.err
}

func newTestRouter(pipeline Pipeline) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewArticleHandler(pipeline)
	r.GET("/articles", h.GetArticles)
	r.GET("/articles/search", h.SearchArticles)
	r.GET("/sources", h.GetSources)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetArticles_ReturnsFeed(t *testing.T) {
	pipeline := &fakePipeline{
		page: &model.FeedPage{
			Status:       "ok",
			TotalResults: 1,
			Articles: []model.ArticleRecord{{
				ID:          "abc",
				Title:       "Test headline",
				URL:         "https://example.com/a",
				PublishedAt: time.Now(),
				Source:      model.Source{Name: "BBC News"},
				Country:     "gb",
			}},
		},
	}

	r := newTestRouter(pipeline)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles?country=gb&pageSize=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res FeedResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "ok", res.Status)
	assert.Equal(t, 1, res.TotalResults)
	assert.Equal(t, 1, len(res.Articles))
	assert.Equal(t, "Test headline", res.Articles[0].Title)
	assert.Equal(t, "BBC News", res.Articles[0].Source.Name)

	assert.Equal(t, "gb", pipeline.gotFilter.Country)
	assert.Equal(t, 5, pipeline.gotFilter.PageSize)
}

func TestGetArticles_ParsesSourcesList(t *testing.T) {
	pipeline := &fakePipeline{page: &model.FeedPage{Status: "ok"}}
	r := newTestRouter(pipeline)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles?sources=bbc-news,reuters", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"bbc-news", "reuters"}, pipeline.gotFilter.Sources)
}

func TestGetArticles_InvalidPageSize(t *testing.T) {
	pipeline := &fakePipeline{page: &model.FeedPage{Status: "ok"}}
	r := newTestRouter(pipeline)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles?pageSize=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetArticles_ValidationErrorFromPipeline(t *testing.T) {
	pipeline := &fakePipeline{err: model.NewValidationError("pageSize must be between 1 and 100, got 500")}
	r := newTestRouter(pipeline)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles?pageSize=500", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetArticles_ProviderError(t *testing.T) {
	pipeline := &fakePipeline{err: &model.ProviderError{StatusCode: 401, Code: "apiKeyInvalid", Message: "bad key"}}
	r := newTestRouter(pipeline)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetArticles_ProviderServerErrorMapsToBadGateway(t *testing.T) {
	pipeline := &fakePipeline{err: &model.ProviderError{StatusCode: 500, Message: "upstream broke"}}
	r := newTestRouter(pipeline)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetArticles_Timeout(t *testing.T) {
	pipeline := &fakePipeline{err: model.ErrTimeout}
	r := newTestRouter(pipeline)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestSearchArticles_PassesQuery(t *testing.T) {
	pipeline := &fakePipeline{page: &model.FeedPage{Status: "ok"}}
	r := newTestRouter(pipeline)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/articles/search?q=climate&sortBy=relevancy", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "climate", pipeline.gotFilter.Query)
	assert.Equal(t, "relevancy", pipeline.gotFilter.SortBy)
}

func TestGetSources(t *testing.T) {
	pipeline := &fakePipeline{sources: []news.SourceInfo{{ID: "bbc-news", Name: "BBC News"}}}
	r := newTestRouter(pipeline)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/sources?country=gb", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res SourcesResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res.Sources))
	assert.Equal(t, "bbc-news", res.Sources[0].ID)
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakePipeline{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
}
