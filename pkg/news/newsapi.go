package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/model"
)

const defaultBaseURL = "https://newsapi.org/v2"

type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsAPIClient) TopHeadlines(ctx context.Context, p HeadlinesParams) (*Result, error) {
	q := url.Values{}
	if p.Country != "" {
		q.Set("country", p.Country)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if len(p.Sources) > 0 {
		q.Set("sources", strings.Join(p.Sources, ","))
	}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	q.Set("pageSize", strconv.Itoa(p.PageSize))
	q.Set("page", strconv.Itoa(p.Page))

	var res Result
	if err := c.get(ctx, "/top-headlines", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *NewsAPIClient) Everything(ctx context.Context, p EverythingParams) (*Result, error) {
	q := url.Values{}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	if len(p.Sources) > 0 {
		q.Set("sources", strings.Join(p.Sources, ","))
	}
	if p.From != "" {
		q.Set("from", p.From)
	}
	if p.To != "" {
		q.Set("to", p.To)
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	q.Set("pageSize", strconv.Itoa(p.PageSize))
	q.Set("page", strconv.Itoa(p.Page))

	var res Result
	if err := c.get(ctx, "/everything", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *NewsAPIClient) Sources(ctx context.Context, country, category string) ([]SourceInfo, error) {
	q := url.Values{}
	if country != "" {
		q.Set("country", country)
	}
	if category != "" {
		q.Set("category", category)
	}

	var res struct {
		Status  string       `json:"status"`
		Sources []SourceInfo `json:"sources"`
	}
	if err := c.get(ctx, "/top-headlines/sources", q, &res); err != nil {
		return nil, err
	}
	return res.Sources, nil
}

func (c *NewsAPIClient) get(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("newsapi request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("newsapi %s: %w", path, model.ErrTimeout)
		}
		return fmt.Errorf("newsapi %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Status  string `json:"status"`
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		// Best effort decode of the provider's error body.
		json.NewDecoder(resp.Body).Decode(&apiErr)
		return &model.ProviderError{
			StatusCode: resp.StatusCode,
			Code:       apiErr.Code,
			Message:    apiErr.Message,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("newsapi decode: %w", err)
	}
	return nil
}
