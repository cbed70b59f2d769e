package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ArturCreativeLab/studio-api/internal/core"
)

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Projects  core.ProjectRepository
	Offerings core.OfferingRepository
	Resources core.ResourceRepository
	Articles  core.ResearchRepository
	Briefings core.BriefingRepository
}

// DashboardService aggregates per-section counts for the dashboard landing view.
type DashboardService struct {
	projects  core.ProjectRepository
	offerings core.OfferingRepository
	resources core.ResourceRepository
	articles  core.ResearchRepository
	briefings core.BriefingRepository
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	return &DashboardService{
		projects:  opts.Projects,
		offerings: opts.Offerings,
		resources: opts.Resources,
		articles:  opts.Articles,
		briefings: opts.Briefings,
	}
}

// DashboardCounts holds one count per content section.
type DashboardCounts struct {
	Projects  int `json:"projects"`
	Offerings int `json:"services"`
	Resources int `json:"resources"`
	Articles  int `json:"research_articles"`
	Briefings int `json:"briefings"`
}

// Counts fetches all section counts concurrently. Any single failure fails
// the whole aggregate; callers treat the counts as all-or-nothing.
func (s *DashboardService) Counts(ctx context.Context) (*DashboardCounts, error) {
	var counts DashboardCounts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.projects.Count(gctx)
		counts.Projects = n
		return err
	})
	g.Go(func() error {
		n, err := s.offerings.Count(gctx)
		counts.Offerings = n
		return err
	})
	g.Go(func() error {
		n, err := s.resources.Count(gctx)
		counts.Resources = n
		return err
	})
	g.Go(func() error {
		n, err := s.articles.Count(gctx)
		counts.Articles = n
		return err
	})
	g.Go(func() error {
		n, err := s.briefings.Count(gctx)
		counts.Briefings = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &counts, nil
}
