package core

import (
	"context"

	domainauth "github.com/ArturCreativeLab/studio-api/internal/domain/auth"
	"github.com/ArturCreativeLab/studio-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// SetOrcidParams groups parameters for ProfileRepository.SetOrcid.
type SetOrcidParams struct {
	TargetUserID string
	Orcid        string
}

// SetRoleParams groups parameters for ProfileRepository.SetRole.
type SetRoleParams struct {
	TargetUserID string
	NewRole      domainauth.Role
}

// ProfileRepository defines the interface for profile data operations.
// The profiles table is the durable source of truth for roles.
type ProfileRepository interface {
	Upsert(ctx context.Context, req *model.UpsertProfileRequest) (*model.Profile, error)
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	List(ctx context.Context) ([]*model.Profile, error)
	SetRole(ctx context.Context, params SetRoleParams) error
	SetOrcid(ctx context.Context, params SetOrcidParams) error
}

// CredentialRepository defines the interface for password credential operations.
type CredentialRepository interface {
	SetPassword(ctx context.Context, userID, passwordHash string) error
	GetPasswordHash(ctx context.Context, email string) (userID, hash string, confirmed bool, err error)
}

// ProjectRepository defines the interface for project data operations.
type ProjectRepository interface {
	Create(ctx context.Context, req *model.CreateProjectRequest) (*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context) ([]*model.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// OfferingRepository defines the interface for offering (agency service) data operations.
type OfferingRepository interface {
	Create(ctx context.Context, req *model.CreateOfferingRequest) (*model.Offering, error)
	GetByID(ctx context.Context, id string) (*model.Offering, error)
	List(ctx context.Context) ([]*model.Offering, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// ResourceRepository defines the interface for resource data operations.
type ResourceRepository interface {
	Create(ctx context.Context, req *model.CreateResourceRequest) (*model.Resource, error)
	GetByID(ctx context.Context, id string) (*model.Resource, error)
	List(ctx context.Context) ([]*model.Resource, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// ResearchRepository defines the interface for research article data operations.
type ResearchRepository interface {
	Create(ctx context.Context, req *model.CreateResearchArticleRequest) (*model.ResearchArticle, error)
	GetByID(ctx context.Context, id string) (*model.ResearchArticle, error)
	List(ctx context.Context) ([]*model.ResearchArticle, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// BriefingRepository defines the interface for briefing data operations.
type BriefingRepository interface {
	Create(ctx context.Context, req *model.CreateBriefingRequest) (*model.Briefing, error)
	GetByID(ctx context.Context, id string) (*model.Briefing, error)
	List(ctx context.Context) ([]*model.Briefing, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
