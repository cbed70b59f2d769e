package service

import (
	"context"

	"github.com/ArturCreativeLab/studio-api/internal/core"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
)

// ResearchServiceOptions groups dependencies for ResearchService.
type ResearchServiceOptions struct {
	Articles core.ResearchRepository
}

// ResearchService orchestrates research-article CRUD.
type ResearchService struct {
	articles core.ResearchRepository
}

// NewResearchService constructs a new ResearchService.
func NewResearchService(opts ResearchServiceOptions) *ResearchService {
	return &ResearchService{articles: opts.Articles}
}

// Create creates a research article.
func (s *ResearchService) Create(ctx context.Context, req *model.CreateResearchArticleRequest) (*model.ResearchArticle, error) {
	return s.articles.Create(ctx, req)
}

// GetByID retrieves a research article by ID.
func (s *ResearchService) GetByID(ctx context.Context, id string) (*model.ResearchArticle, error) {
	return s.articles.GetByID(ctx, id)
}

// List returns all research articles, newest first.
func (s *ResearchService) List(ctx context.Context) ([]*model.ResearchArticle, error) {
	return s.articles.List(ctx)
}

// Delete deletes a research article. Returns false when no row matched.
func (s *ResearchService) Delete(ctx context.Context, id string) (bool, error) {
	return s.articles.Delete(ctx, id)
}
