package service

import (
	"context"

	"github.com/ArturCreativeLab/studio-api/internal/core"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
)

// OfferingServiceOptions groups dependencies for OfferingService.
type OfferingServiceOptions struct {
	Offerings core.OfferingRepository
}

// OfferingService orchestrates agency service-offering CRUD.
type OfferingService struct {
	offerings core.OfferingRepository
}

// NewOfferingService constructs a new OfferingService.
func NewOfferingService(opts OfferingServiceOptions) *OfferingService {
	return &OfferingService{offerings: opts.Offerings}
}

// Create creates an offering.
func (s *OfferingService) Create(ctx context.Context, req *model.CreateOfferingRequest) (*model.Offering, error) {
	return s.offerings.Create(ctx, req)
}

// GetByID retrieves an offering by ID.
func (s *OfferingService) GetByID(ctx context.Context, id string) (*model.Offering, error) {
	return s.offerings.GetByID(ctx, id)
}

// List returns all offerings, newest first.
func (s *OfferingService) List(ctx context.Context) ([]*model.Offering, error) {
	return s.offerings.List(ctx)
}

// Delete deletes an offering. Returns false when no row matched.
func (s *OfferingService) Delete(ctx context.Context, id string) (bool, error) {
	return s.offerings.Delete(ctx, id)
}
