package service

import (
	"context"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/ArturCreativeLab/studio-api/internal/core"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
)

// ResourceServiceOptions groups dependencies for ResourceService.
type ResourceServiceOptions struct {
	Resources core.ResourceRepository
}

// ResourceService orchestrates curated-resource CRUD. Reads are decorated
// with the registrable domain derived from the resource URL.
type ResourceService struct {
	resources core.ResourceRepository
}

// NewResourceService constructs a new ResourceService.
func NewResourceService(opts ResourceServiceOptions) *ResourceService {
	return &ResourceService{resources: opts.Resources}
}

// Create creates a resource.
func (s *ResourceService) Create(ctx context.Context, req *model.CreateResourceRequest) (*model.Resource, error) {
	resource, err := s.resources.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	decorateDomain(resource)
	return resource, nil
}

// GetByID retrieves a resource by ID.
func (s *ResourceService) GetByID(ctx context.Context, id string) (*model.Resource, error) {
	resource, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	decorateDomain(resource)
	return resource, nil
}

// List returns all resources, newest first.
func (s *ResourceService) List(ctx context.Context) ([]*model.Resource, error) {
	resources, err := s.resources.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range resources {
		decorateDomain(r)
	}
	return resources, nil
}

// Delete deletes a resource. Returns false when no row matched.
func (s *ResourceService) Delete(ctx context.Context, id string) (bool, error) {
	return s.resources.Delete(ctx, id)
}

// decorateDomain fills Resource.Domain with the registrable domain of the
// resource URL. Hosts without a public suffix (IPs, localhost) keep the raw
// host; unparseable URLs leave Domain empty.
func decorateDomain(r *model.Resource) {
	if r == nil || r.URL == "" {
		return
	}
	parsed, err := url.Parse(r.URL)
	if err != nil || parsed.Hostname() == "" {
		return
	}
	host := strings.ToLower(parsed.Hostname())
	if domain, derr := publicsuffix.EffectiveTLDPlusOne(host); derr == nil {
		r.Domain = domain
		return
	}
	r.Domain = host
}
