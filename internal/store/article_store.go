package store

import (
	"sort"
	"sync"

	"miniblog/api/internal/models"
)

// ArticleDirectory is the read-only article collaborator the comment store
// and the moderation view resolve ids against.
type ArticleDirectory interface {
	FindByID(id string) (models.Article, error)
	List() []models.Article
}

// ArticleStore is a seeded, read-only article collection. There are no
// mutation operations: deletion/unpublishing is deliberately unspecified.
type ArticleStore struct {
	mu       sync.RWMutex
	articles []models.Article
}

func NewArticleStore(articles []models.Article) *ArticleStore {
	copied := make([]models.Article, len(articles))
	copy(copied, articles)
	return &ArticleStore{articles: copied}
}

// List returns public articles, newest first.
func (s *ArticleStore) List() []models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Article, 0, len(s.articles))
	for _, article := range s.articles {
		if article.IsPublic {
			out = append(out, article)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func (s *ArticleStore) FindByID(id string) (models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, article := range s.articles {
		if article.ID == id && article.IsPublic {
			return article, nil
		}
	}
	return models.Article{}, ErrNotFound
}
