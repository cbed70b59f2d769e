package service

import (
	"context"

	"github.com/ArturCreativeLab/studio-api/internal/core"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
)

// BriefingServiceOptions groups dependencies for BriefingService.
type BriefingServiceOptions struct {
	Briefings core.BriefingRepository
}

// BriefingService orchestrates client-briefing CRUD.
type BriefingService struct {
	briefings core.BriefingRepository
}

// NewBriefingService constructs a new BriefingService.
func NewBriefingService(opts BriefingServiceOptions) *BriefingService {
	return &BriefingService{briefings: opts.Briefings}
}

// Create creates a briefing.
func (s *BriefingService) Create(ctx context.Context, req *model.CreateBriefingRequest) (*model.Briefing, error) {
	return s.briefings.Create(ctx, req)
}

// GetByID retrieves a briefing by ID.
func (s *BriefingService) GetByID(ctx context.Context, id string) (*model.Briefing, error) {
	return s.briefings.GetByID(ctx, id)
}

// List returns all briefings, newest first.
func (s *BriefingService) List(ctx context.Context) ([]*model.Briefing, error) {
	return s.briefings.List(ctx)
}

// Delete deletes a briefing. Returns false when no row matched.
func (s *BriefingService) Delete(ctx context.Context, id string) (bool, error) {
	return s.briefings.Delete(ctx, id)
}
