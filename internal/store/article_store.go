package store

import (
	"sort"
	"sync"
	"time"

	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/model"

	"github.com/google/uuid"
)

// Filter narrows GetAll results. Empty fields match everything.
type Filter struct {
	Country  string
	Category string
	Sources  []string
}

// Patch holds the fields Update may change. Nil pointers leave the stored
// value untouched.
type Patch struct {
	Title       *string
	Description *string
	Content     *string
	Category    *string
	Country     *string
	AISummary   *string
}

// ArticleStore is the single owner of ArticleRecord state. Reads hand out
// copies, writes go through the mutex, so no caller ever observes a
// half-written record.
type ArticleStore struct {
	mu       sync.RWMutex
	articles map[string]*model.ArticleRecord
	order    []*model.ArticleRecord
}

func NewArticleStore() *ArticleStore {
	return &ArticleStore{
		articles: make(map[string]*model.ArticleRecord),
	}
}

// Create assigns the id and ingestion timestamp and stores the draft.
func (s *ArticleStore) Create(draft model.ArticleRecord) model.ArticleRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = uuid.NewString()
	draft.CreatedAt = time.Now()

	stored := draft
	s.articles[stored.ID] = &stored
	s.order = append(s.order, &stored)

	return draft
}

func (s *ArticleStore) GetByID(id string) (model.ArticleRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return model.ArticleRecord{}, false
	}
	return *a, true
}

// GetAll returns matching records sorted by publishedAt descending, ties
// broken by insertion order.
func (s *ArticleStore) GetAll(f *Filter) []model.ArticleRecord {
	s.mu.RLock()
	matched := make([]model.ArticleRecord, 0, len(s.order))
	for _, a := range s.order {
		if f.matches(a) {
			matched = append(matched, *a)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PublishedAt.After(matched[j].PublishedAt)
	})

	return matched
}

// Update merges the patch into the stored record and returns the result.
func (s *ArticleStore) Update(id string, p Patch) (model.ArticleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return model.ArticleRecord{}, model.ErrNotFound
	}

	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Country != nil {
		a.Country = *p.Country
	}
	if p.AISummary != nil {
		a.AISummary = *p.AISummary
	}

	return *a, nil
}

func (f *Filter) matches(a *model.ArticleRecord) bool {
	if f == nil {
		return true
	}
	if f.Country != "" && a.Country != f.Country {
		return false
	}
	if f.Category != "" && a.Category != f.Category {
		return false
	}
	if len(f.Sources) > 0 {
		found := false
		for _, s := range f.Sources {
			if s == a.Source.Name || (a.Source.ID != "" && s == a.Source.ID) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
